//go:build !darwin
// +build !darwin

package mididarwin

import (
	"errors"

	"github.com/kodistudios/playnote/sdk/contracts"
)

// ErrUnavailable is returned when the CoreMIDI driver is requested off macOS.
var ErrUnavailable = errors.New("CoreMIDI output is only available on macOS")

func NewDeviceSink(options *contracts.PlayerOptions) (contracts.DeviceSink, error) {
	options.Logger.Warn("coremidi driver requested on a non-macOS system")
	return nil, contracts.NewDeviceError(contracts.OpOpen, contracts.StatusNoDriver, ErrUnavailable)
}
