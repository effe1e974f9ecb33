// Package midivirtual provides an in-memory DeviceSink that records every message it is sent.
package midivirtual

import (
	"sync"

	"github.com/kodistudios/playnote/sdk/contracts"
)

// Record is one message accepted by the sink.
type Record struct {
	Handle  contracts.Handle
	Message contracts.ShortMessage
}

// Faults injects device failures. Zero values mean no failure.
type Faults struct {
	Open      contracts.DeviceStatus // status returned by every Open
	SendAt    int                    // 1-based index of the Send call that fails
	SendError contracts.DeviceStatus // status for the failing Send; defaults to StatusError
	Close     contracts.DeviceStatus // status returned by Close
}

// Sink is a recording DeviceSink. It is safe for concurrent use.
type Sink struct {
	mu      sync.Mutex
	logger  contracts.Logger
	faults  Faults
	next    contracts.Handle
	open    map[contracts.Handle]int
	records []Record
	sends   int
	opens   int
	closes  int
}

// NewSink creates a virtual sink. A nil logger disables logging.
func NewSink(logger contracts.Logger, faults Faults) *Sink {
	return &Sink{
		logger: logger,
		faults: faults,
		open:   make(map[contracts.Handle]int),
	}
}

// NewDeviceSink is the driver constructor used by the sink factory.
func NewDeviceSink(options *contracts.PlayerOptions) (contracts.DeviceSink, error) {
	options.Logger.Info("Using virtual MIDI output; no sound will be produced")
	return NewSink(options.Logger, Faults{}), nil
}

// Open hands out a fresh handle for any non-negative device index.
func (s *Sink) Open(deviceIndex int) (contracts.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opens++
	if err := contracts.CheckDeviceStatus(contracts.OpOpen, s.faults.Open); err != nil {
		return 0, err
	}
	if deviceIndex < 0 {
		return 0, contracts.CheckDeviceStatus(contracts.OpOpen, contracts.StatusBadDeviceID)
	}

	s.next++
	s.open[s.next] = deviceIndex
	if s.logger != nil {
		s.logger.Info("Virtual MIDI device opened", s.logger.Field().Int("deviceIndex", deviceIndex))
	}
	return s.next, nil
}

// Send records msg.
func (s *Sink) Send(h contracts.Handle, msg contracts.ShortMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.open[h]; !ok {
		return contracts.CheckDeviceStatus(contracts.OpSend, contracts.StatusInvalidHandle)
	}

	s.sends++
	if s.faults.SendAt == s.sends {
		status := s.faults.SendError
		if status == contracts.StatusOK {
			status = contracts.StatusError
		}
		return contracts.CheckDeviceStatus(contracts.OpSend, status)
	}

	s.records = append(s.records, Record{Handle: h, Message: msg})
	if s.logger != nil {
		s.logger.Debug("Virtual MIDI message", s.logger.Field().String("message", msg.String()))
	}
	return nil
}

// Close releases h. The handle is released even when a close fault is injected.
func (s *Sink) Close(h contracts.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.open[h]; !ok {
		return contracts.CheckDeviceStatus(contracts.OpClose, contracts.StatusInvalidHandle)
	}
	s.closes++
	delete(s.open, h)
	if s.logger != nil {
		s.logger.Info("Virtual MIDI device closed")
	}
	return contracts.CheckDeviceStatus(contracts.OpClose, s.faults.Close)
}

// Messages returns a copy of every recorded message in emission order.
func (s *Sink) Messages() []contracts.ShortMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]contracts.ShortMessage, len(s.records))
	for i, r := range s.records {
		out[i] = r.Message
	}
	return out
}

// Records returns a copy of every recorded message with its handle.
func (s *Sink) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.records...)
}

// Opens returns the number of Open calls.
func (s *Sink) Opens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opens
}

// Closes returns the number of successful Close calls on open handles.
func (s *Sink) Closes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closes
}

// OpenHandles returns the number of handles not yet closed.
func (s *Sink) OpenHandles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.open)
}
