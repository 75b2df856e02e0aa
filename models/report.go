package models

// Report is the structured summary produced by the report service. Rendering it
// to text or a table is the caller's concern.
type Report struct {
	TotalRooms     int                 `json:"totalRooms"`
	AvailableRooms int                 `json:"availableRooms"`
	BookedRooms    int                 `json:"bookedRooms"`
	TotalBookings  int                 `json:"totalBookings"`
	TotalRevenue   float64             `json:"totalRevenue"`
	Details        []ReservationDetail `json:"details"`
}

// ReservationDetail is one itemized report line, in booking order.
type ReservationDetail struct {
	BookingID     string  `json:"bookingId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	RoomNumber    string  `json:"roomNumber"`
	RoomType      string  `json:"roomType"`
	Nights        int     `json:"nights"`
	TotalCost     float64 `json:"totalCost"`
}
