//go:build !windows
// +build !windows

package midiwindows

import (
	"errors"

	"github.com/kodistudios/playnote/sdk/contracts"
)

// ErrUnavailable is returned when the winmm driver is requested off Windows.
var ErrUnavailable = errors.New("winmm MIDI output is only available on Windows")

// NewDeviceSink fails on non-Windows systems.
func NewDeviceSink(options *contracts.PlayerOptions) (contracts.DeviceSink, error) {
	options.Logger.Warn("winmm driver requested on a non-Windows system")
	return nil, contracts.NewDeviceError(contracts.OpOpen, contracts.StatusNoDriver, ErrUnavailable)
}
