package ports

import (
	"errors"
	"testing"

	"github.com/kodistudios/playnote/sdk/contracts"
)

func TestSelect(t *testing.T) {
	names := []string{"Midi Through:0", "FLUID Synth (qsynth)", "Launchpad X LPX MIDI", "fluid synth 2"}

	tests := []struct {
		index  int
		filter string
		want   int
		status contracts.DeviceStatus
	}{
		{0, "", 0, contracts.StatusOK},
		{3, "", 3, contracts.StatusOK},
		{4, "", -1, contracts.StatusBadDeviceID},
		{0, "fluid", 1, contracts.StatusOK},
		{1, "FLUID", 3, contracts.StatusOK},
		{2, "fluid", -1, contracts.StatusBadDeviceID},
		{0, "timidity", -1, contracts.StatusBadDeviceID},
		{-1, "", -1, contracts.StatusBadDeviceID},
	}

	for _, tt := range tests {
		got, err := Select(names, tt.index, tt.filter)
		if got != tt.want {
			t.Errorf("Select(%d, %q) = %d, want %d", tt.index, tt.filter, got, tt.want)
		}
		checkStatus(t, err, tt.status)
	}
}

func TestSelectNoPorts(t *testing.T) {
	_, err := Select(nil, 0, "")
	checkStatus(t, err, contracts.StatusNoDevice)
}

func checkStatus(t *testing.T, err error, want contracts.DeviceStatus) {
	t.Helper()
	if want == contracts.StatusOK {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		return
	}
	var derr *contracts.DeviceError
	if !errors.As(err, &derr) || derr.Status != want || derr.Op != contracts.OpOpen {
		t.Errorf("error = %v, want open status %v", err, want)
	}
}
