//go:build windows
// +build windows

package midiwindows

import (
	"sync"
	"unsafe"

	"github.com/kodistudios/playnote/sdk/contracts"
	"golang.org/x/sys/windows"
)

// HMIDIOUT is a winmm MIDI output handle.
type HMIDIOUT windows.Handle

// CALLBACK_NULL opens the device without a callback.
const CALLBACK_NULL = 0x00000000

// Load the winmm.dll library and required functions
var (
	winmm                 = windows.NewLazySystemDLL("winmm.dll")
	procMidiOutGetNumDevs = winmm.NewProc("midiOutGetNumDevs")
	procMidiOutOpen       = winmm.NewProc("midiOutOpen")
	procMidiOutShortMsg   = winmm.NewProc("midiOutShortMsg")
	procMidiOutClose      = winmm.NewProc("midiOutClose")
)

// Sink drives MIDI output devices through winmm. Handles returned by Open are the raw HMIDIOUT values.
type Sink struct {
	logger contracts.Logger
	mu     sync.Mutex
	open   map[contracts.Handle]HMIDIOUT
}

// NewDeviceSink creates a winmm output sink.
func NewDeviceSink(options *contracts.PlayerOptions) (contracts.DeviceSink, error) {
	if err := winmm.Load(); err != nil {
		return nil, contracts.NewDeviceError(contracts.OpOpen, contracts.StatusNoDriver, err)
	}
	options.Logger.Info("MIDI output sink created for Windows")
	return &Sink{
		logger: options.Logger,
		open:   make(map[contracts.Handle]HMIDIOUT),
	}, nil
}

// Open opens the output device at deviceIndex; 0 is the system's default synthesizer.
func (s *Sink) Open(deviceIndex int) (contracts.Handle, error) {
	if deviceIndex < 0 {
		return 0, contracts.CheckDeviceStatus(contracts.OpOpen, contracts.StatusBadDeviceID)
	}

	var handle HMIDIOUT
	r1, _, _ := procMidiOutOpen.Call(
		uintptr(unsafe.Pointer(&handle)),
		uintptr(deviceIndex),
		0,
		0,
		CALLBACK_NULL,
	)
	if err := contracts.CheckDeviceStatus(contracts.OpOpen, contracts.DeviceStatus(r1)); err != nil {
		r0, _, _ := procMidiOutGetNumDevs.Call()
		s.logger.Error("Failed to open MIDI output device",
			s.logger.Field().Int("deviceIndex", deviceIndex),
			s.logger.Field().Int("devices", int(r0)),
			s.logger.Field().Error("error", err))
		return 0, err
	}

	h := contracts.Handle(handle)
	s.mu.Lock()
	s.open[h] = handle
	s.mu.Unlock()

	s.logger.Info("MIDI output device opened", s.logger.Field().Int("deviceIndex", deviceIndex))
	return h, nil
}

// Send passes msg to midiOutShortMsg as a packed DWORD.
func (s *Sink) Send(h contracts.Handle, msg contracts.ShortMessage) error {
	handle, ok := s.lookup(h)
	if !ok {
		return contracts.CheckDeviceStatus(contracts.OpSend, contracts.StatusInvalidHandle)
	}
	r1, _, _ := procMidiOutShortMsg.Call(uintptr(handle), uintptr(msg.Uint32()))
	return contracts.CheckDeviceStatus(contracts.OpSend, contracts.DeviceStatus(r1))
}

// Close releases the device.
func (s *Sink) Close(h contracts.Handle) error {
	handle, ok := s.lookup(h)
	if !ok {
		return contracts.CheckDeviceStatus(contracts.OpClose, contracts.StatusInvalidHandle)
	}

	r1, _, _ := procMidiOutClose.Call(uintptr(handle))
	if err := contracts.CheckDeviceStatus(contracts.OpClose, contracts.DeviceStatus(r1)); err != nil {
		s.logger.Error("Failed to close MIDI output device", s.logger.Field().Error("error", err))
		return err
	}

	s.mu.Lock()
	delete(s.open, h)
	s.mu.Unlock()
	s.logger.Info("MIDI output device closed")
	return nil
}

func (s *Sink) lookup(h contracts.Handle) (HMIDIOUT, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	handle, ok := s.open[h]
	return handle, ok
}
