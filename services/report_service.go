package services

import (
	"hotel-reservation/models"
	"hotel-reservation/store"
)

// ReportService aggregates a read-only summary over the registry and ledger.
// It has no failure modes: an empty inventory yields an empty report.
type ReportService struct {
	store *store.Store
}

func NewReportService(s *store.Store) *ReportService {
	return &ReportService{store: s}
}

func (s *ReportService) Generate() models.Report {
	rooms, reservations := s.store.Snapshot()

	roomTypes := make(map[string]string, len(rooms))
	available := 0
	for _, room := range rooms {
		if room.Available {
			available++
		}
		roomTypes[room.RoomNumber] = room.Type
	}

	report := models.Report{
		TotalRooms:     len(rooms),
		AvailableRooms: available,
		BookedRooms:    len(rooms) - available,
		TotalBookings:  len(reservations),
		Details:        make([]models.ReservationDetail, 0, len(reservations)),
	}

	for _, reservation := range reservations {
		report.TotalRevenue += reservation.TotalCost
		report.Details = append(report.Details, models.ReservationDetail{
			BookingID:     reservation.BookingID,
			CustomerName:  reservation.CustomerName,
			CustomerPhone: reservation.CustomerPhone,
			RoomNumber:    reservation.RoomNumber,
			RoomType:      roomTypes[reservation.RoomNumber],
			Nights:        reservation.Nights,
			TotalCost:     reservation.TotalCost,
		})
	}

	return report
}
