// Package player sequences a single note on a DeviceSink:
// open, select instrument, note on, hold, note off, close.
package player

import (
	"time"

	"github.com/kodistudios/playnote/internal/logger"
	"github.com/kodistudios/playnote/sdk/contracts"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Config wires a Player.
type Config struct {
	Sink        contracts.DeviceSink
	Logger      contracts.Logger // defaults to a no-op logger
	DeviceIndex int
	Mode        contracts.Mode
	Hold        func(time.Duration) // defaults to time.Sleep
}

// Player implements contracts.NotePlayer. Each PlayNote call owns the device for its whole
// duration; concurrent calls against the same device index need external locking.
type Player struct {
	sink        contracts.DeviceSink
	logger      contracts.Logger
	deviceIndex int
	mode        contracts.Mode
	enc         encoder
	hold        func(time.Duration)
}

// New creates a Player from cfg.
func New(cfg Config) *Player {
	hold := cfg.Hold
	if hold == nil {
		hold = time.Sleep
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NewZapLoggerFrom(zap.NewNop())
	}
	return &Player{
		sink:        cfg.Sink,
		logger:      log,
		deviceIndex: cfg.DeviceIndex,
		mode:        cfg.Mode,
		enc:         encoderFor(cfg.Mode),
		hold:        hold,
	}
}

// PlayNote plays req once. The device is released on every path after a successful open;
// a cleanup failure is appended after the error that aborted the note.
func (p *Player) PlayNote(req contracts.PlaybackRequest) (err error) {
	log := p.logger
	log.Info("Playing note",
		log.Field().String("mode", p.mode.String()),
		log.Field().Int("channel", int(req.Channel)),
		log.Field().Int("instrument", int(req.Instrument)),
		log.Field().Int("pitch", int(req.Pitch)),
		log.Field().Int("velocity", int(req.Velocity)),
		log.Field().Duration("hold", req.Hold()),
	)

	// Nothing is opened for a request that cannot be encoded.
	if err := p.enc.checkRequest(req); err != nil {
		log.Error("Invalid note request", log.Field().Error("error", err))
		return err
	}

	s := &session{player: p, state: StateClosed}
	if err := s.open(); err != nil {
		log.Error("Failed to open MIDI device",
			log.Field().Int("deviceIndex", p.deviceIndex), log.Field().Error("error", err))
		return err
	}
	defer func() {
		err = multierr.Append(err, s.release(req))
		if err != nil {
			log.Error("Note playback failed", log.Field().Error("error", err))
			return
		}
		log.Info("Note finished")
	}()

	if err := s.selectInstrument(req); err != nil {
		return err
	}
	if err := s.noteOn(req); err != nil {
		return err
	}
	p.hold(req.Hold())
	return s.noteOff(req)
}

// session tracks one open device through the note lifecycle.
type session struct {
	player    *Player
	handle    contracts.Handle
	state     State
	silencing bool // note off already attempted
}

func (s *session) transition(to State) {
	log := s.player.logger
	log.Debug("Note state changed",
		log.Field().String("from", s.state.String()),
		log.Field().String("to", to.String()))
	s.state = to
}

func (s *session) send(msg contracts.ShortMessage) error {
	log := s.player.logger
	if err := s.player.sink.Send(s.handle, msg); err != nil {
		return err
	}
	log.Debug("MIDI message sent", log.Field().String("message", msg.String()))
	return nil
}

func (s *session) open() error {
	h, err := s.player.sink.Open(s.player.deviceIndex)
	if err != nil {
		return err
	}
	s.handle = h
	s.transition(StateOpen)
	return nil
}

func (s *session) selectInstrument(req contracts.PlaybackRequest) error {
	msg, err := s.player.enc.selectInstrument(req.Channel, req.Instrument)
	if err != nil {
		return err
	}
	if err := s.send(msg); err != nil {
		return err
	}
	s.transition(StateInstrumentSelected)
	return nil
}

func (s *session) noteOn(req contracts.PlaybackRequest) error {
	msg, err := s.player.enc.note(req.Channel, req.Pitch, req.Velocity)
	if err != nil {
		return err
	}
	if err := s.send(msg); err != nil {
		return err
	}
	s.transition(StateSounding)
	return nil
}

func (s *session) noteOff(req contracts.PlaybackRequest) error {
	s.silencing = true
	msg, err := s.player.enc.note(req.Channel, req.Pitch, 0)
	if err != nil {
		return err
	}
	if err := s.send(msg); err != nil {
		return err
	}
	s.transition(StateSilenced)
	return nil
}

// release silences a note left sounding without a note off attempt (a panic during the
// hold) and closes the device.
func (s *session) release(req contracts.PlaybackRequest) error {
	log := s.player.logger
	var err error
	if s.state == StateSounding && !s.silencing {
		log.Warn("Silencing note left sounding")
		if silenceErr := s.noteOff(req); silenceErr != nil {
			err = multierr.Append(err, silenceErr)
		}
	}

	if closeErr := s.player.sink.Close(s.handle); closeErr != nil {
		log.Warn("Failed to close MIDI device", log.Field().Error("error", closeErr))
		err = multierr.Append(err, closeErr)
	}
	s.transition(StateClosed)
	return err
}
