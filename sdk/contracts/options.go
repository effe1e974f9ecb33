package contracts

import "time"

// Driver names a DeviceSink implementation.
type Driver string

const (
	DriverWinMM    Driver = "winmm"    // Windows multimedia API (winmm.dll).
	DriverCoreMIDI Driver = "coremidi" // macOS CoreMIDI.
	DriverRtMIDI   Driver = "rtmidi"   // RtMidi through gomidi.
	DriverPortMIDI Driver = "portmidi" // PortMidi.
	DriverVirtual  Driver = "virtual"  // In-memory recorder, no sound.
)

// Mode selects the validation policy of the player.
type Mode int

const (
	// ModeRobust validates every parameter before encoding and reports every failure.
	ModeRobust Mode = iota
	// ModeSimple skips validation and passes the low 8 bits of each value straight to the codec.
	ModeSimple
)

func (m Mode) String() string {
	if m == ModeSimple {
		return "simple"
	}
	return "robust"
}

// CoreMIDIConfig holds configuration for CoreMIDI.
type CoreMIDIConfig struct {
	ClientName string // Name of the MIDI client.
	PortName   string // Name of the output port.
}

// PlayerOptions defines the configuration options for the note player.
type PlayerOptions struct {
	Logger         Logger              // Logger for logging events and errors.
	LogLevel       LogLevel            // Level of logging to use.
	DeviceIndex    int                 // Output device index; 0 is the system default.
	Driver         Driver              // Sink implementation; empty selects the platform default.
	PortName       string              // Optional port name substring for rtmidi and portmidi.
	Sink           DeviceSink          // Explicit sink; overrides Driver.
	Mode           Mode                // Validation policy.
	Hold           func(time.Duration) // Blocking wait between note on and note off.
	CoreMIDIConfig *CoreMIDIConfig     // Configuration specific to CoreMIDI.
}

// Option is a function that modifies PlayerOptions.
type Option func(*PlayerOptions)

// WithLogger sets the logger for the player.
func WithLogger(l Logger) Option {
	return func(opts *PlayerOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level.
func WithLogLevel(level LogLevel) Option {
	return func(opts *PlayerOptions) {
		opts.LogLevel = level
	}
}

// WithDeviceIndex selects the output device to open.
func WithDeviceIndex(index int) Option {
	return func(opts *PlayerOptions) {
		opts.DeviceIndex = index
	}
}

// WithDriver selects the DeviceSink implementation by name.
func WithDriver(driver Driver) Option {
	return func(opts *PlayerOptions) {
		opts.Driver = driver
	}
}

// WithPortName restricts rtmidi and portmidi to the first output port whose name contains name.
func WithPortName(name string) Option {
	return func(opts *PlayerOptions) {
		opts.PortName = name
	}
}

// WithDeviceSink uses sink instead of a driver.
func WithDeviceSink(sink DeviceSink) Option {
	return func(opts *PlayerOptions) {
		opts.Sink = sink
	}
}

// WithSimpleMode disables validation.
func WithSimpleMode(simple bool) Option {
	return func(opts *PlayerOptions) {
		if simple {
			opts.Mode = ModeSimple
		} else {
			opts.Mode = ModeRobust
		}
	}
}

// WithHoldFunc replaces time.Sleep for the note hold.
func WithHoldFunc(hold func(time.Duration)) Option {
	return func(opts *PlayerOptions) {
		opts.Hold = hold
	}
}

// WithCoreMIDIConfig sets the CoreMIDI configuration.
func WithCoreMIDIConfig(config CoreMIDIConfig) Option {
	return func(opts *PlayerOptions) {
		opts.CoreMIDIConfig = &config
	}
}
