package midiportmidi

import (
	"errors"
	"testing"

	"github.com/kodistudios/playnote/internal/logger"
	"github.com/kodistudios/playnote/sdk/contracts"
	"github.com/rakyll/portmidi"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func newTestSink(t *testing.T, terminateErr error) (*Sink, *int) {
	t.Helper()
	sink, err := NewDeviceSink(&contracts.PlayerOptions{Logger: logger.NewZapLoggerFrom(zap.NewNop())})
	if err != nil {
		t.Fatalf("NewDeviceSink: %v", err)
	}
	s := sink.(*Sink)

	terminated := 0
	s.initialize = func() error { return nil }
	s.terminate = func() error {
		terminated++
		return terminateErr
	}
	s.devices = func() ([]portmidi.DeviceID, []string) {
		return []portmidi.DeviceID{0}, []string{"Midi Through Port-0"}
	}
	return s, &terminated
}

func TestOpenBadDeviceTerminates(t *testing.T) {
	s, terminated := newTestSink(t, nil)

	_, err := s.Open(5)
	var devErr *contracts.DeviceError
	if !errors.As(err, &devErr) || devErr.Status != contracts.StatusBadDeviceID {
		t.Fatalf("Open(5) error = %v", err)
	}
	if *terminated != 1 {
		t.Errorf("terminate called %d times, want 1", *terminated)
	}
}

func TestOpenReportsTerminateFailure(t *testing.T) {
	errTerminate := errors.New("terminate failed")
	s, _ := newTestSink(t, errTerminate)

	_, err := s.Open(5)
	errs := multierr.Errors(err)
	if len(errs) != 2 {
		t.Fatalf("Open(5) error = %v, want the selection error and the terminate error", err)
	}
	if !errors.Is(errs[0], contracts.ErrDevice) {
		t.Errorf("first error = %v, want the device error", errs[0])
	}
	if !errors.Is(errs[1], errTerminate) {
		t.Errorf("second error = %v, want %v", errs[1], errTerminate)
	}
}

func TestOpenNoDevicesTerminates(t *testing.T) {
	s, terminated := newTestSink(t, nil)
	s.devices = func() ([]portmidi.DeviceID, []string) { return nil, nil }

	_, err := s.Open(0)
	var devErr *contracts.DeviceError
	if !errors.As(err, &devErr) || devErr.Status != contracts.StatusNoDevice {
		t.Fatalf("Open(0) error = %v", err)
	}
	if *terminated != 1 {
		t.Errorf("terminate called %d times, want 1", *terminated)
	}
}

func TestUnknownHandle(t *testing.T) {
	s, _ := newTestSink(t, nil)

	if err := s.Send(7, contracts.ShortMessage{0x90, 60, 127, 0}); !errors.Is(err, contracts.ErrDevice) {
		t.Errorf("Send on unknown handle = %v", err)
	}
	if err := s.Close(7); !errors.Is(err, contracts.ErrDevice) {
		t.Errorf("Close on unknown handle = %v", err)
	}
}
