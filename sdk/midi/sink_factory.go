package midi

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/kodistudios/playnote/internal/midi/mididarwin"
	"github.com/kodistudios/playnote/internal/midi/midiportmidi"
	"github.com/kodistudios/playnote/internal/midi/midirtmidi"
	"github.com/kodistudios/playnote/internal/midi/midivirtual"
	"github.com/kodistudios/playnote/internal/midi/midiwindows"
	"github.com/kodistudios/playnote/sdk/contracts"
)

var (
	// ErrUnsupportedDriver is returned for a driver name with no registered sink.
	ErrUnsupportedDriver = errors.New("unsupported MIDI driver")
	// ErrInvalidDeviceIndex is returned for a negative device index.
	ErrInvalidDeviceIndex = errors.New("invalid MIDI device index")
)

// sinkInitializers maps driver names to DeviceSink constructors.
var sinkInitializers = map[contracts.Driver]func(*contracts.PlayerOptions) (contracts.DeviceSink, error){
	contracts.DriverWinMM:    midiwindows.NewDeviceSink,  // Windows multimedia API.
	contracts.DriverCoreMIDI: mididarwin.NewDeviceSink,   // macOS (Darwin) CoreMIDI.
	contracts.DriverRtMIDI:   midirtmidi.NewDeviceSink,   // RtMidi (ALSA, JACK, ...).
	contracts.DriverPortMIDI: midiportmidi.NewDeviceSink, // PortMidi.
	contracts.DriverVirtual:  midivirtual.NewDeviceSink,  // In-memory recorder.
}

// platformDrivers maps OS names to their native driver.
var platformDrivers = map[string]contracts.Driver{
	"darwin":  contracts.DriverCoreMIDI,
	"windows": contracts.DriverWinMM,
}

// DefaultDriver returns the native driver for the current operating system, RtMidi elsewhere.
func DefaultDriver() contracts.Driver {
	if driver, exists := platformDrivers[runtime.GOOS]; exists {
		return driver
	}
	return contracts.DriverRtMIDI
}

// Drivers lists the registered driver names.
func Drivers() []contracts.Driver {
	drivers := make([]contracts.Driver, 0, len(sinkInitializers))
	for name := range sinkInitializers {
		drivers = append(drivers, name)
	}
	sort.Slice(drivers, func(i, j int) bool { return drivers[i] < drivers[j] })
	return drivers
}

// NewDeviceSink initializes the sink named by opts.Driver.
//
// opts *contracts.PlayerOptions: Configuration options with defaults applied.
//
// Returns:
//   - contracts.DeviceSink: The output sink.
//   - error: ErrUnsupportedDriver for an unknown driver, or the driver's initialization error.
func NewDeviceSink(opts *contracts.PlayerOptions) (contracts.DeviceSink, error) {
	if initializer, exists := sinkInitializers[opts.Driver]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, opts.Driver)
}
