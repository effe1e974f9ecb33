package midi

import (
	"fmt"
	"time"

	"github.com/kodistudios/playnote/internal/logger"
	"github.com/kodistudios/playnote/sdk/contracts"
)

// DefaultClientName names the CoreMIDI client and output port.
const DefaultClientName = "playnote"

// applyDefaultOptions sets default values for PlayerOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify PlayerOptions.
//
// Returns:
//   - contracts.PlayerOptions: A structure containing the finalized options with defaults applied.
//   - error: An error if the options are inconsistent.
func applyDefaultOptions(opts ...contracts.Option) (contracts.PlayerOptions, error) {
	options := &contracts.PlayerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Set defaults if options are not provided
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.Driver == "" {
		options.Driver = DefaultDriver()
	}
	if options.Hold == nil {
		options.Hold = time.Sleep
	}
	if options.CoreMIDIConfig == nil {
		options.CoreMIDIConfig = &contracts.CoreMIDIConfig{}
	}
	if options.CoreMIDIConfig.ClientName == "" {
		options.CoreMIDIConfig.ClientName = DefaultClientName
	}
	if options.CoreMIDIConfig.PortName == "" {
		options.CoreMIDIConfig.PortName = DefaultClientName + " output"
	}

	if options.DeviceIndex < 0 {
		return contracts.PlayerOptions{}, fmt.Errorf("%w: %d", ErrInvalidDeviceIndex, options.DeviceIndex)
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options, nil
}
