// Package midirtmidi sends short messages through RtMidi using gomidi.
package midirtmidi

import (
	"errors"
	"sync"
	"time"

	"github.com/kodistudios/playnote/internal/midi/ports"
	"github.com/kodistudios/playnote/sdk/contracts"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

// ScanTimeout bounds port discovery; some backends hang while enumerating.
const ScanTimeout = 3 * time.Second

// ErrScanTimeout is returned when port discovery does not finish within ScanTimeout.
var ErrScanTimeout = errors.New("timed out listing MIDI output ports")

// Sink drives RtMidi output ports.
type Sink struct {
	logger   contracts.Logger
	portName string

	mu   sync.Mutex
	next contracts.Handle
	open map[contracts.Handle]drivers.Out
}

// NewDeviceSink creates an RtMidi output sink.
func NewDeviceSink(options *contracts.PlayerOptions) (contracts.DeviceSink, error) {
	options.Logger.Info("MIDI output sink created for RtMidi")
	return &Sink{
		logger:   options.Logger,
		portName: options.PortName,
		open:     make(map[contracts.Handle]drivers.Out),
	}, nil
}

func scanOutPorts() ([]drivers.Out, error) {
	ch := make(chan []drivers.Out, 1)
	go func() {
		ch <- gomidi.GetOutPorts()
	}()

	select {
	case outs := <-ch:
		return outs, nil
	case <-time.After(ScanTimeout):
		return nil, ErrScanTimeout
	}
}

// Open opens the output port selected by deviceIndex and the configured port name.
func (s *Sink) Open(deviceIndex int) (contracts.Handle, error) {
	outs, err := scanOutPorts()
	if err != nil {
		return 0, contracts.NewDeviceError(contracts.OpOpen, contracts.StatusNotReady, err)
	}

	names := make([]string, len(outs))
	for i, out := range outs {
		names[i] = out.String()
	}
	i, err := ports.Select(names, deviceIndex, s.portName)
	if err != nil {
		s.logger.Error("No matching MIDI output port",
			s.logger.Field().Int("deviceIndex", deviceIndex),
			s.logger.Field().String("portName", s.portName),
			s.logger.Field().Int("ports", len(outs)))
		return 0, err
	}

	out := outs[i]
	if err := out.Open(); err != nil {
		return 0, contracts.NewDeviceError(contracts.OpOpen, contracts.StatusAllocated, err)
	}

	s.mu.Lock()
	s.next++
	h := s.next
	s.open[h] = out
	s.mu.Unlock()

	s.logger.Info("MIDI output port opened", s.logger.Field().String("port", out.String()))
	return h, nil
}

// Send writes the significant bytes of msg.
func (s *Sink) Send(h contracts.Handle, msg contracts.ShortMessage) error {
	s.mu.Lock()
	out, ok := s.open[h]
	s.mu.Unlock()
	if !ok {
		return contracts.CheckDeviceStatus(contracts.OpSend, contracts.StatusInvalidHandle)
	}

	if err := out.Send(msg.Bytes()); err != nil {
		return contracts.NewDeviceError(contracts.OpSend, contracts.StatusError, err)
	}
	return nil
}

// Close closes the port.
func (s *Sink) Close(h contracts.Handle) error {
	s.mu.Lock()
	out, ok := s.open[h]
	delete(s.open, h)
	s.mu.Unlock()
	if !ok {
		return contracts.CheckDeviceStatus(contracts.OpClose, contracts.StatusInvalidHandle)
	}

	if err := out.Close(); err != nil {
		return contracts.NewDeviceError(contracts.OpClose, contracts.StatusError, err)
	}
	s.logger.Info("MIDI output port closed")
	return nil
}
