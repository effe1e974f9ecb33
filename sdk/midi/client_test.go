package midi

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/kodistudios/playnote/internal/logger"
	"github.com/kodistudios/playnote/internal/midi/midivirtual"
	"github.com/kodistudios/playnote/sdk/contracts"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func quietLogger() contracts.Logger {
	return logger.NewZapLoggerFrom(zap.NewNop())
}

func noHold(time.Duration) {}

func TestApplyDefaultOptions(t *testing.T) {
	options, err := applyDefaultOptions(contracts.WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("applyDefaultOptions: %v", err)
	}
	if options.LogLevel != contracts.InfoLevel {
		t.Errorf("LogLevel = %v", options.LogLevel)
	}
	if options.Driver != DefaultDriver() {
		t.Errorf("Driver = %q", options.Driver)
	}
	if options.Mode != contracts.ModeRobust {
		t.Errorf("Mode = %v", options.Mode)
	}
	if options.DeviceIndex != 0 || options.Hold == nil {
		t.Errorf("DeviceIndex = %d, Hold set = %v", options.DeviceIndex, options.Hold != nil)
	}
	if options.CoreMIDIConfig.ClientName != DefaultClientName || options.CoreMIDIConfig.PortName == "" {
		t.Errorf("CoreMIDIConfig = %+v", options.CoreMIDIConfig)
	}
}

func TestApplyDefaultOptionsRejectsNegativeIndex(t *testing.T) {
	_, err := applyDefaultOptions(contracts.WithLogger(quietLogger()), contracts.WithDeviceIndex(-1))
	if !errors.Is(err, ErrInvalidDeviceIndex) {
		t.Errorf("expected ErrInvalidDeviceIndex, got %v", err)
	}
}

func TestDefaultDriver(t *testing.T) {
	want := map[string]contracts.Driver{"darwin": contracts.DriverCoreMIDI, "windows": contracts.DriverWinMM}[runtime.GOOS]
	if want == "" {
		want = contracts.DriverRtMIDI
	}
	if got := DefaultDriver(); got != want {
		t.Errorf("DefaultDriver() = %q, want %q", got, want)
	}
}

func TestNewDeviceSinkUnsupported(t *testing.T) {
	opts := &contracts.PlayerOptions{Logger: quietLogger(), Driver: "fluidsynth"}
	if _, err := NewDeviceSink(opts); !errors.Is(err, ErrUnsupportedDriver) {
		t.Errorf("expected ErrUnsupportedDriver, got %v", err)
	}
}

func TestDriversListed(t *testing.T) {
	got := Drivers()
	want := []contracts.Driver{"coremidi", "portmidi", "rtmidi", "virtual", "winmm"}
	if len(got) != len(want) {
		t.Fatalf("Drivers() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Drivers() = %v, want %v", got, want)
		}
	}
}

func TestVirtualDriverPlaysNote(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewZapLoggerFrom(zap.New(core))

	err := PlayNote(contracts.DefaultPlaybackRequest(),
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.DebugLevel),
		contracts.WithDriver(contracts.DriverVirtual),
		contracts.WithHoldFunc(noHold),
	)
	if err != nil {
		t.Fatalf("PlayNote: %v", err)
	}
	if n := logs.FilterMessage("Virtual MIDI message").Len(); n != 3 {
		t.Errorf("virtual sink saw %d messages, want 3", n)
	}
	if logs.FilterMessage("Virtual MIDI device closed").Len() != 1 {
		t.Error("virtual device not closed")
	}
}

func TestFacadeModes(t *testing.T) {
	req := contracts.PlaybackRequest{Channel: 20, Pitch: 60, Velocity: 127, DurationMillis: 3000}

	robustSink := midivirtual.NewSink(nil, midivirtual.Faults{})
	robust, err := NewNotePlayer(
		contracts.WithLogger(quietLogger()),
		contracts.WithDeviceSink(robustSink),
		contracts.WithHoldFunc(noHold),
	)
	if err != nil {
		t.Fatalf("NewNotePlayer: %v", err)
	}
	if err := robust.PlayNote(req); !errors.Is(err, contracts.ErrOutOfRange) {
		t.Errorf("robust mode: expected validation error, got %v", err)
	}
	if robustSink.Opens() != 0 {
		t.Error("robust mode opened the device for an invalid request")
	}

	simpleSink := midivirtual.NewSink(nil, midivirtual.Faults{})
	simple, err := NewNotePlayer(
		contracts.WithLogger(quietLogger()),
		contracts.WithDeviceSink(simpleSink),
		contracts.WithSimpleMode(true),
		contracts.WithHoldFunc(noHold),
	)
	if err != nil {
		t.Fatalf("NewNotePlayer: %v", err)
	}
	if err := simple.PlayNote(req); err != nil {
		t.Errorf("simple mode: %v", err)
	}
	if msgs := simpleSink.Messages(); len(msgs) != 3 || msgs[1].Channel() != 4 {
		t.Errorf("simple mode messages = %v", msgs)
	}
}
