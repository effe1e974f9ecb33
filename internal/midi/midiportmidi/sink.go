// Package midiportmidi sends short messages through PortMidi output streams.
package midiportmidi

import (
	"sync"

	"github.com/kodistudios/playnote/internal/midi/ports"
	"github.com/kodistudios/playnote/sdk/contracts"
	"github.com/rakyll/portmidi"
	"go.uber.org/multierr"
)

// BufferSize is the output stream's event buffer.
const BufferSize = 1024

// Sink drives PortMidi output streams. PortMidi is initialized when the first stream opens
// and terminated when the last one closes.
type Sink struct {
	logger   contracts.Logger
	portName string

	mu      sync.Mutex
	next    contracts.Handle
	streams map[contracts.Handle]*portmidi.Stream

	initialize func() error
	terminate  func() error
	devices    func() ([]portmidi.DeviceID, []string)
}

// NewDeviceSink creates a PortMidi output sink.
func NewDeviceSink(options *contracts.PlayerOptions) (contracts.DeviceSink, error) {
	options.Logger.Info("MIDI output sink created for PortMidi")
	return &Sink{
		logger:   options.Logger,
		portName: options.PortName,
		streams:  make(map[contracts.Handle]*portmidi.Stream),

		initialize: portmidi.Initialize,
		terminate:  portmidi.Terminate,
		devices:    outputDevices,
	}, nil
}

// outputDevices lists the devices able to take output, in PortMidi order.
func outputDevices() ([]portmidi.DeviceID, []string) {
	var (
		ids   []portmidi.DeviceID
		names []string
	)
	for i := 0; i < portmidi.CountDevices(); i++ {
		info := portmidi.Info(portmidi.DeviceID(i))
		if info == nil || !info.IsOutputAvailable {
			continue
		}
		ids = append(ids, portmidi.DeviceID(i))
		names = append(names, info.Name)
	}
	return ids, names
}

// Open opens an output stream on the deviceIndex-th output device.
func (s *Sink) Open(deviceIndex int) (contracts.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.streams) == 0 {
		if err := s.initialize(); err != nil {
			return 0, contracts.NewDeviceError(contracts.OpOpen, contracts.StatusNoDriver, err)
		}
	}

	ids, names := s.devices()
	i, err := ports.Select(names, deviceIndex, s.portName)
	if err != nil {
		return 0, multierr.Append(err, s.terminateIfIdle())
	}

	stream, err := portmidi.NewOutputStream(ids[i], BufferSize, 0)
	if err != nil {
		openErr := contracts.NewDeviceError(contracts.OpOpen, contracts.StatusAllocated, err)
		return 0, multierr.Append(openErr, s.terminateIfIdle())
	}

	s.next++
	s.streams[s.next] = stream
	s.logger.Info("PortMidi output stream opened", s.logger.Field().String("device", names[i]))
	return s.next, nil
}

// Send writes msg with WriteShort.
func (s *Sink) Send(h contracts.Handle, msg contracts.ShortMessage) error {
	s.mu.Lock()
	stream, ok := s.streams[h]
	s.mu.Unlock()
	if !ok {
		return contracts.CheckDeviceStatus(contracts.OpSend, contracts.StatusInvalidHandle)
	}

	if err := stream.WriteShort(int64(msg.Status()), int64(msg.Data1()), int64(msg.Data2())); err != nil {
		return contracts.NewDeviceError(contracts.OpSend, contracts.StatusError, err)
	}
	return nil
}

// Close closes the stream and terminates PortMidi if it was the last one.
func (s *Sink) Close(h contracts.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stream, ok := s.streams[h]
	if !ok {
		return contracts.CheckDeviceStatus(contracts.OpClose, contracts.StatusInvalidHandle)
	}
	delete(s.streams, h)

	err := stream.Close()
	err = multierr.Append(err, s.terminateIfIdle())
	if err != nil {
		return contracts.NewDeviceError(contracts.OpClose, contracts.StatusError, err)
	}
	s.logger.Info("PortMidi output stream closed")
	return nil
}

func (s *Sink) terminateIfIdle() error {
	if len(s.streams) > 0 {
		return nil
	}
	return s.terminate()
}
