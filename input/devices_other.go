//go:build !linux || !cgo

package input

import "fmt"

// ListTouchpads needs libudev, which is only available on linux with cgo.
func ListTouchpads(seat string) ([]TouchpadInfo, error) {
	return nil, fmt.Errorf("touchpad enumeration requires linux and cgo")
}
