package player

import (
	"github.com/kodistudios/playnote/internal/shortmsg"
	"github.com/kodistudios/playnote/sdk/contracts"
)

// encoder turns request fields into wire messages under a validation policy.
type encoder interface {
	checkRequest(req contracts.PlaybackRequest) error
	selectInstrument(channel, instrument uint32) (contracts.ShortMessage, error)
	note(channel, pitch, velocity uint32) (contracts.ShortMessage, error)
}

func encoderFor(mode contracts.Mode) encoder {
	if mode == contracts.ModeSimple {
		return simpleEncoder{}
	}
	return robustEncoder{}
}

// robustEncoder validates before every encode step.
type robustEncoder struct{}

func (robustEncoder) checkRequest(req contracts.PlaybackRequest) error {
	return shortmsg.ValidateRequest(req)
}

func (robustEncoder) selectInstrument(channel, instrument uint32) (contracts.ShortMessage, error) {
	if err := shortmsg.ValidateSelectInstrument(channel, instrument); err != nil {
		return contracts.ShortMessage{}, err
	}
	return shortmsg.EncodeSelectInstrument(byte(channel), byte(instrument)), nil
}

func (robustEncoder) note(channel, pitch, velocity uint32) (contracts.ShortMessage, error) {
	if err := shortmsg.ValidateNote(channel, pitch, velocity); err != nil {
		return contracts.ShortMessage{}, err
	}
	return shortmsg.EncodeNote(byte(channel), byte(pitch), byte(velocity)), nil
}

// simpleEncoder never validates: each value keeps only its low 8 bits and goes
// straight to the codec, whatever that does to the status byte.
type simpleEncoder struct{}

func (simpleEncoder) checkRequest(contracts.PlaybackRequest) error {
	return nil
}

func (simpleEncoder) selectInstrument(channel, instrument uint32) (contracts.ShortMessage, error) {
	return shortmsg.EncodeSelectInstrument(byte(channel), byte(instrument)), nil
}

func (simpleEncoder) note(channel, pitch, velocity uint32) (contracts.ShortMessage, error) {
	return shortmsg.EncodeNote(byte(channel), byte(pitch), byte(velocity)), nil
}
