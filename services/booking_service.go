package services

import (
	"fmt"
	"strings"

	"hotel-reservation/models"
	"hotel-reservation/store"
)

// BookingService is the reservation ledger. Booking and cancellation go through
// the store in one atomic step each, so two concurrent bookings can never both
// claim the same room.
type BookingService struct {
	store *store.Store
}

func NewBookingService(s *store.Store) *BookingService {
	return &BookingService{store: s}
}

func (s *BookingService) Create(customerName, customerPhone, roomNumber string, nights int) (models.Reservation, error) {
	customerName = strings.TrimSpace(customerName)
	customerPhone = strings.TrimSpace(customerPhone)
	roomNumber = strings.TrimSpace(roomNumber)

	if customerName == "" {
		return models.Reservation{}, fmt.Errorf("customer name is required: %w", models.ErrInvalidInput)
	}
	if customerPhone == "" {
		return models.Reservation{}, fmt.Errorf("customer phone is required: %w", models.ErrInvalidInput)
	}
	if roomNumber == "" {
		return models.Reservation{}, fmt.Errorf("room number is required: %w", models.ErrInvalidInput)
	}
	if nights <= 0 {
		return models.Reservation{}, fmt.Errorf("number of nights must be greater than zero: %w", models.ErrInvalidInput)
	}

	return s.store.CreateReservation(customerName, customerPhone, roomNumber, nights)
}

// Cancel frees the booked room and removes the reservation. The booking ID is
// retired for good; the counter never hands it out again.
func (s *BookingService) Cancel(bookingID string) error {
	return s.store.DeleteReservation(bookingID)
}

func (s *BookingService) GetByID(bookingID string) (models.Reservation, error) {
	return s.store.GetReservation(bookingID)
}

func (s *BookingService) GetAll() []models.Reservation {
	return s.store.ListReservations()
}
