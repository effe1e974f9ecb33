// Package shortmsg encodes and validates MIDI channel voice short messages.
package shortmsg

import "github.com/kodistudios/playnote/sdk/contracts"

// EncodeSelectInstrument builds a program change: 0b1100CCCC, instrument.
//
// Inputs are not range checked. The channel is OR-ed into the status byte, so a channel
// above 15 overwrites signature bits.
func EncodeSelectInstrument(channel, instrument byte) contracts.ShortMessage {
	status := contracts.SelectInstrumentSignature << 4
	status |= channel

	var msg contracts.ShortMessage
	msg[0] = status
	msg[1] = instrument
	return msg
}

// EncodeNote builds a note message: 0b1001CCCC, pitch, velocity.
// A zero velocity turns the note off; no 0x8n status is ever produced.
func EncodeNote(channel, pitch, velocity byte) contracts.ShortMessage {
	status := contracts.NoteOnSignature << 4
	status |= channel

	var msg contracts.ShortMessage
	msg[0] = status
	msg[1] = pitch
	msg[2] = velocity
	return msg
}

// EncodeNoteOff silences a note sounded with EncodeNote.
func EncodeNoteOff(channel, pitch byte) contracts.ShortMessage {
	return EncodeNote(channel, pitch, 0)
}

// IsNoteOff reports whether msg silences a note.
func IsNoteOff(msg contracts.ShortMessage) bool {
	return msg.Command() == contracts.NoteOnSignature<<4 && msg.Data2() == 0
}
