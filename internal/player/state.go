package player

// State is a step of the note lifecycle. Closed is both the initial and the terminal state.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateInstrumentSelected
	StateSounding
	StateSilenced
)

var stateNames = [...]string{
	StateClosed:             "Closed",
	StateOpen:               "Open",
	StateInstrumentSelected: "InstrumentSelected",
	StateSounding:           "Sounding",
	StateSilenced:           "Silenced",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}
