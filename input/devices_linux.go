//go:build linux && cgo

package input

import (
	"fmt"
	"strings"

	"github.com/jochenvg/go-udev"
)

// ListTouchpads enumerates initialized touchpad event nodes assigned to seat.
func ListTouchpads(seat string) ([]TouchpadInfo, error) {
	u := udev.Udev{}
	enumerate := u.NewEnumerate()

	if err := enumerate.AddMatchSubsystem("input"); err != nil {
		return nil, fmt.Errorf("failed to match input subsystem: %w", err)
	}
	if err := enumerate.AddMatchProperty("ID_INPUT_TOUCHPAD", "1"); err != nil {
		return nil, fmt.Errorf("failed to match touchpad property: %w", err)
	}
	if err := enumerate.AddMatchIsInitialized(); err != nil {
		return nil, fmt.Errorf("failed to match initialized devices: %w", err)
	}

	devices, err := enumerate.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate udev devices: %w", err)
	}

	var touchpads []TouchpadInfo
	for _, d := range devices {
		// only event nodes are opened by libinput
		if !strings.HasPrefix(d.Sysname(), "event") {
			continue
		}

		name := ""
		if parent := d.Parent(); parent != nil {
			name = parent.SysattrValue("name")
		}

		touchpads = append(touchpads, TouchpadInfo{
			Name:    name,
			Devnode: d.Devnode(),
			Syspath: d.Syspath(),
			Seat:    seatOf(d.PropertyValue("ID_SEAT")),
		})
	}

	return filterSeat(touchpads, seat), nil
}
