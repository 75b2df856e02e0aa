package models

import "time"

// Reservation associates a customer with one room for a fixed number of nights.
// TotalCost is computed once at booking time from the room's nightly price and
// never recomputed, so later price changes cannot retroactively reprice it.
type Reservation struct {
	BookingID     string    `json:"bookingId"`
	ReferenceCode string    `json:"referenceCode"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	RoomNumber    string    `json:"roomNumber"`
	Nights        int       `json:"nights"`
	TotalCost     float64   `json:"totalCost"`
	BookedAt      time.Time `json:"bookedAt"`
}
