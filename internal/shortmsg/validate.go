package shortmsg

import "github.com/kodistudios/playnote/sdk/contracts"

// Field names reported in validation errors.
const (
	FieldChannel    = "Channel"
	FieldInstrument = "Instrument"
	FieldPitch      = "Pitch"
	FieldVelocity   = "Velocity"
)

// Validate fails with a *contracts.ValidationError when value exceeds max.
func Validate(value, max uint32, field string) error {
	if value > max {
		return &contracts.ValidationError{Field: field, Value: value, Max: max}
	}
	return nil
}

// ValidateSelectInstrument checks the parameters of a program change.
func ValidateSelectInstrument(channel, instrument uint32) error {
	if err := Validate(channel, contracts.MaxChannel, FieldChannel); err != nil {
		return err
	}
	return Validate(instrument, contracts.MaxInstrument, FieldInstrument)
}

// ValidateNote checks the parameters of a note message.
func ValidateNote(channel, pitch, velocity uint32) error {
	if err := Validate(channel, contracts.MaxChannel, FieldChannel); err != nil {
		return err
	}
	if err := Validate(pitch, contracts.MaxPitch, FieldPitch); err != nil {
		return err
	}
	return Validate(velocity, contracts.MaxVelocity, FieldVelocity)
}

// ValidateRequest checks a whole request in the order Channel, Instrument, Pitch, Velocity
// and returns the first failure.
func ValidateRequest(req contracts.PlaybackRequest) error {
	if err := ValidateSelectInstrument(req.Channel, req.Instrument); err != nil {
		return err
	}
	return ValidateNote(req.Channel, req.Pitch, req.Velocity)
}
