package contracts

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange matches every ValidationError through errors.Is.
	ErrOutOfRange = errors.New("value out of range")
	// ErrDevice matches every DeviceError through errors.Is.
	ErrDevice = errors.New("midi device error")
)

// ValidationError reports a parameter exceeding its protocol bit-width limit.
type ValidationError struct {
	Field string
	Value uint32
	Max   uint32
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s Current: %d Max: %d", e.Field, e.Value, e.Max)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrOutOfRange
}

// DeviceError reports a failed open, send or close at the device boundary.
type DeviceError struct {
	Op     DeviceOp
	Status DeviceStatus
	Err    error // driver cause, if any
}

func (e *DeviceError) Error() string {
	msg := fmt.Sprintf("midi %s failed: %s (%d)", e.Op, e.Status, uint32(e.Status))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

func (e *DeviceError) Is(target error) bool {
	return target == ErrDevice
}

// NewDeviceError wraps a driver error that carries no native status code.
func NewDeviceError(op DeviceOp, status DeviceStatus, err error) *DeviceError {
	return &DeviceError{Op: op, Status: status, Err: err}
}
