package midi

import (
	"github.com/kodistudios/playnote/internal/player"
	"github.com/kodistudios/playnote/sdk/contracts"
)

// NewNotePlayer creates a note player with the specified options.
// It applies default options, builds the device sink and wires the player.
//
// opts ...contracts.Option: A variadic list of option functions to customize the player configuration.
//
// Returns:
//   - contracts.NotePlayer: The player. Robust mode unless WithSimpleMode(true) was given.
//   - error: An error, if the driver could not be initialized.
func NewNotePlayer(opts ...contracts.Option) (contracts.NotePlayer, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	sink := options.Sink
	if sink == nil {
		sink, err = NewDeviceSink(&options)
		if err != nil {
			return nil, err
		}
	}

	return player.New(player.Config{
		Sink:        sink,
		Logger:      options.Logger,
		DeviceIndex: options.DeviceIndex,
		Mode:        options.Mode,
		Hold:        options.Hold,
	}), nil
}

// PlayNote is a one-shot helper: it builds a player from opts and plays req.
func PlayNote(req contracts.PlaybackRequest, opts ...contracts.Option) error {
	p, err := NewNotePlayer(opts...)
	if err != nil {
		return err
	}
	return p.PlayNote(req)
}
