package models

// Room is a bookable unit. RoomNumber is the stable identifier used everywhere;
// reservations reference rooms by number, never by pointer.
type Room struct {
	RoomNumber    string  `json:"roomNumber"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"pricePerNight"`
	Available     bool    `json:"available"`
}
