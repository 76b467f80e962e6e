package commands

import (
	"github.com/mobile-next/swiped/input"
)

// listTouchpads is swapped in tests, udev is not available there
var listTouchpads = input.ListTouchpads

// DevicesCommand lists the touchpads libinput would use on seat
func DevicesCommand(seat string) *CommandResponse {
	touchpads, err := listTouchpads(seat)
	if err != nil {
		return NewErrorResponse(err)
	}

	if touchpads == nil {
		touchpads = []input.TouchpadInfo{}
	}

	return NewSuccessResponse(map[string]interface{}{
		"seat":      seat,
		"touchpads": touchpads,
	})
}
