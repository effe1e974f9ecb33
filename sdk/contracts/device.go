package contracts

// Handle identifies an open output device. Its meaning is private to the DeviceSink that issued it.
type Handle uintptr

// DeviceSink is the I/O boundary: an output device accepting encoded short messages.
type DeviceSink interface {
	Open(deviceIndex int) (Handle, error)  // Acquires the output device at deviceIndex.
	Send(h Handle, msg ShortMessage) error // Emits one short message.
	Close(h Handle) error                  // Releases the device.
}

// DeviceOp names the device operation that failed.
type DeviceOp string

const (
	OpOpen  DeviceOp = "open"
	OpSend  DeviceOp = "send"
	OpClose DeviceOp = "close"
)

// DeviceStatus is a device-specific status code. Values follow the MMSYSERR/MIDIERR numbering
// so the Windows driver can pass its results through unchanged; other drivers map onto them.
type DeviceStatus uint32

const (
	StatusOK            DeviceStatus = 0
	StatusError         DeviceStatus = 1
	StatusBadDeviceID   DeviceStatus = 2
	StatusAllocated     DeviceStatus = 4
	StatusInvalidHandle DeviceStatus = 5
	StatusNoDriver      DeviceStatus = 6
	StatusNoMem         DeviceStatus = 7
	StatusInvalidParam  DeviceStatus = 11
	StatusNotReady      DeviceStatus = 67
	StatusNoDevice      DeviceStatus = 68
)

var statusText = map[DeviceStatus]string{
	StatusOK:            "no error",
	StatusError:         "unspecified error",
	StatusBadDeviceID:   "no such device",
	StatusAllocated:     "device busy",
	StatusInvalidHandle: "invalid device handle",
	StatusNoDriver:      "no device driver",
	StatusNoMem:         "out of memory",
	StatusInvalidParam:  "invalid parameter",
	StatusNotReady:      "device not ready",
	StatusNoDevice:      "device not connected",
}

func (s DeviceStatus) String() string {
	if text, ok := statusText[s]; ok {
		return text
	}
	return "unknown device status"
}

// CheckDeviceStatus turns the status returned by a device operation into an error.
func CheckDeviceStatus(op DeviceOp, status DeviceStatus) error {
	if status == StatusOK {
		return nil
	}
	return &DeviceError{Op: op, Status: status}
}
