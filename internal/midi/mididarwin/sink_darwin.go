//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kodistudios/playnote/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for CoreMIDI output issues.
var (
	ErrNoMIDIDestinations = errors.New("no MIDI destinations found")
	ErrCreateOutputPort   = errors.New("error creating output port")
)

// Sink sends short messages to CoreMIDI destinations.
// Device indexes refer to the order reported by coremidi.AllDestinations.
type Sink struct {
	logger contracts.Logger
	config *contracts.CoreMIDIConfig
	client coremidi.Client

	mu   sync.Mutex
	port *coremidi.OutputPort // created on first Open
	next contracts.Handle
	open map[contracts.Handle]coremidi.Destination
}

// NewDeviceSink initializes a CoreMIDI client for output.
func NewDeviceSink(options *contracts.PlayerOptions) (contracts.DeviceSink, error) {
	client, err := coremidi.NewClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, contracts.NewDeviceError(contracts.OpOpen, contracts.StatusNoDriver, err)
	}
	options.Logger.Info("CoreMIDI client successfully created",
		options.Logger.Field().String("client", options.CoreMIDIConfig.ClientName))

	return &Sink{
		logger: options.Logger,
		config: options.CoreMIDIConfig,
		client: client,
		open:   make(map[contracts.Handle]coremidi.Destination),
	}, nil
}

// Open resolves the destination at deviceIndex.
func (s *Sink) Open(deviceIndex int) (contracts.Handle, error) {
	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return 0, contracts.NewDeviceError(contracts.OpOpen, contracts.StatusError, fmt.Errorf("error listing MIDI destinations: %w", err))
	}
	if len(destinations) == 0 {
		s.logger.Warn(ErrNoMIDIDestinations.Error())
		return 0, contracts.NewDeviceError(contracts.OpOpen, contracts.StatusNoDevice, ErrNoMIDIDestinations)
	}
	if deviceIndex < 0 || deviceIndex >= len(destinations) {
		return 0, contracts.CheckDeviceStatus(contracts.OpOpen, contracts.StatusBadDeviceID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.port == nil {
		port, err := coremidi.NewOutputPort(s.client, s.config.PortName)
		if err != nil {
			s.logger.Error(ErrCreateOutputPort.Error(), s.logger.Field().Error("error", err))
			return 0, contracts.NewDeviceError(contracts.OpOpen, contracts.StatusAllocated, fmt.Errorf("%w: %v", ErrCreateOutputPort, err))
		}
		s.port = &port
	}

	destination := destinations[deviceIndex]
	s.next++
	s.open[s.next] = destination

	s.logger.Info("MIDI destination selected",
		s.logger.Field().Int("deviceIndex", deviceIndex),
		s.logger.Field().String("deviceName", destination.Name()))
	return s.next, nil
}

// Send emits msg as a single packet.
func (s *Sink) Send(h contracts.Handle, msg contracts.ShortMessage) error {
	s.mu.Lock()
	destination, ok := s.open[h]
	port := s.port
	s.mu.Unlock()
	if !ok {
		return contracts.CheckDeviceStatus(contracts.OpSend, contracts.StatusInvalidHandle)
	}

	packet := coremidi.NewPacket(msg.Bytes(), 0)
	if err := packet.Send(port, &destination); err != nil {
		return contracts.NewDeviceError(contracts.OpSend, contracts.StatusError, err)
	}
	return nil
}

// Close forgets the destination. The output port stays open for the life of the client.
func (s *Sink) Close(h contracts.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.open[h]; !ok {
		return contracts.CheckDeviceStatus(contracts.OpClose, contracts.StatusInvalidHandle)
	}
	delete(s.open, h)
	s.logger.Info("MIDI destination released")
	return nil
}
