package contracts

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Status signatures occupying the high nibble of a short message status byte.
const (
	// NoteOnSignature marks a note on/off message (0b1001). A zero velocity silences the note.
	NoteOnSignature byte = 0b1001
	// SelectInstrumentSignature marks a program change message (0b1100).
	SelectInstrumentSignature byte = 0b1100
)

// Protocol bit-width limits for each field.
const (
	MaxChannel    = 15  // 4 bits
	MaxPitch      = 127 // 7 bits
	MaxInstrument = 127 // 7 bits
	MaxVelocity   = 127 // 7 bits
)

// General MIDI conventions used for defaults. They are not enforced.
const (
	InstrumentGrandPiano = 0
	InstrumentGuitar     = 24
	PitchMiddleC         = 60
)

const (
	MIDIStatusCodeMask = 0xf0
	MIDIChannelMask    = 0x0f
)

// ShortMessage is the wire form of a channel voice message: status, data1, data2 and an unused zero byte.
type ShortMessage [4]byte

// Status returns the status byte.
func (m ShortMessage) Status() byte { return m[0] }

// Command returns the high nibble of the status byte, left in place (e.g. 0x90).
func (m ShortMessage) Command() byte { return m[0] & MIDIStatusCodeMask }

// Channel returns the low nibble of the status byte.
func (m ShortMessage) Channel() byte { return m[0] & MIDIChannelMask }

// Data1 returns the first data byte (pitch or instrument).
func (m ShortMessage) Data1() byte { return m[1] }

// Data2 returns the second data byte (velocity for notes).
func (m ShortMessage) Data2() byte { return m[2] }

// Bytes returns the significant bytes for drivers that take a raw byte stream.
// Program change and channel pressure carry a single data byte.
func (m ShortMessage) Bytes() []byte {
	switch m.Command() {
	case 0xc0, 0xd0:
		return []byte{m[0], m[1]}
	default:
		return []byte{m[0], m[1], m[2]}
	}
}

// Uint32 packs the message little-endian, status in the low byte, as midiOutShortMsg expects.
func (m ShortMessage) Uint32() uint32 {
	return binary.LittleEndian.Uint32(m[:])
}

func (m ShortMessage) String() string {
	return fmt.Sprintf("%02X %02X %02X", m[0], m[1], m[2])
}

// PlaybackRequest is the full input for playing one note.
type PlaybackRequest struct {
	Channel        uint32 // 0-15
	Instrument     uint32 // 0-127, General MIDI program
	Pitch          uint32 // 0-127, 60 is middle C
	Velocity       uint32 // 0-127
	DurationMillis uint32 // hold time between note on and note off
}

// DefaultPlaybackRequest returns the default demo: a grand piano middle C at full velocity for 3 seconds.
func DefaultPlaybackRequest() PlaybackRequest {
	return PlaybackRequest{
		Channel:        0,
		Instrument:     InstrumentGrandPiano,
		Pitch:          PitchMiddleC,
		Velocity:       MaxVelocity,
		DurationMillis: 3000,
	}
}

// Hold returns the note length as a time.Duration.
func (r PlaybackRequest) Hold() time.Duration {
	return time.Duration(r.DurationMillis) * time.Millisecond
}

// NotePlayer plays a single note on an output device.
type NotePlayer interface {
	PlayNote(req PlaybackRequest) error // Opens the device, plays the note and always releases the device.
}
