package input

// DefaultSeat is the seat udev assigns devices without an ID_SEAT property to.
const DefaultSeat = "seat0"

// TouchpadInfo describes a touchpad visible on a seat.
type TouchpadInfo struct {
	Name    string `json:"name"`
	Devnode string `json:"devnode"`
	Syspath string `json:"syspath"`
	Seat    string `json:"seat"`
}

// seatOf resolves the udev ID_SEAT property to a seat name
func seatOf(idSeat string) string {
	if idSeat == "" {
		return DefaultSeat
	}
	return idSeat
}

func filterSeat(touchpads []TouchpadInfo, seat string) []TouchpadInfo {
	result := make([]TouchpadInfo, 0, len(touchpads))
	for _, t := range touchpads {
		if t.Seat == seat {
			result = append(result, t)
		}
	}
	return result
}
