// Package ports picks an output port out of a driver's port list.
package ports

import (
	"strings"

	"github.com/kodistudios/playnote/sdk/contracts"
)

// Select returns the position in names of the requested output port.
//
// With an empty filter, deviceIndex is a position in names. With a filter, deviceIndex counts
// only the ports whose name contains filter (case-insensitive), so 0 is the first match.
func Select(names []string, deviceIndex int, filter string) (int, error) {
	if len(names) == 0 {
		return -1, contracts.CheckDeviceStatus(contracts.OpOpen, contracts.StatusNoDevice)
	}
	if deviceIndex < 0 {
		return -1, contracts.CheckDeviceStatus(contracts.OpOpen, contracts.StatusBadDeviceID)
	}

	filter = strings.ToLower(filter)
	seen := 0
	for i, name := range names {
		if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
			continue
		}
		if seen == deviceIndex {
			return i, nil
		}
		seen++
	}
	return -1, contracts.CheckDeviceStatus(contracts.OpOpen, contracts.StatusBadDeviceID)
}
