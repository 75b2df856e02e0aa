package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"hotel-reservation/models"
)

// Store owns the room registry and the reservation ledger. A single mutex
// serializes every mutation and snapshot across the pair, so "check available,
// then reserve" is one atomic step and readers never see a half-applied booking.
//
// The booking counter belongs to the instance, not the package: independent
// stores never share ID state. It is incremented on every successful booking
// and never decremented, so booking IDs are never reused after cancellation.
type Store struct {
	mu               sync.Mutex
	rooms            map[string]*models.Room
	roomOrder        []string
	reservations     map[string]*models.Reservation
	reservationOrder []string
	nextBookingID    int
}

func New() *Store {
	return &Store{
		rooms:         make(map[string]*models.Room),
		reservations:  make(map[string]*models.Reservation),
		nextBookingID: 1,
	}
}

// CreateRoom registers a new room. The caller is expected to have validated the
// field shapes; only the uniqueness invariant is enforced here.
func (s *Store) CreateRoom(room models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rooms[room.RoomNumber]; exists {
		return fmt.Errorf("room %q: %w", room.RoomNumber, models.ErrDuplicateRoom)
	}

	s.rooms[room.RoomNumber] = &room
	s.roomOrder = append(s.roomOrder, room.RoomNumber)

	return nil
}

// DeleteRoom removes a room permanently. A booked room cannot be removed, which
// also guarantees no reservation is ever left pointing at a missing room.
func (s *Store) DeleteRoom(roomNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, exists := s.rooms[roomNumber]
	if !exists {
		return fmt.Errorf("room %q: %w", roomNumber, models.ErrNotFound)
	}
	if !room.Available {
		return fmt.Errorf("room %q: %w", roomNumber, models.ErrRoomOccupied)
	}

	delete(s.rooms, roomNumber)
	s.roomOrder = removeKey(s.roomOrder, roomNumber)

	return nil
}

func (s *Store) GetRoom(roomNumber string) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, exists := s.rooms[roomNumber]
	if !exists {
		return models.Room{}, fmt.Errorf("room %q: %w", roomNumber, models.ErrNotFound)
	}

	return *room, nil
}

// ListRooms returns a copy of the registry in insertion order.
func (s *Store) ListRooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listRoomsLocked()
}

// CreateReservation books a room: it resolves the room, checks availability,
// flips the flag, assigns the next sequential booking ID and stores the
// reservation, all inside one critical section. The total cost is locked in
// from the room's current nightly price.
func (s *Store) CreateReservation(customerName, customerPhone, roomNumber string, nights int) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, exists := s.rooms[roomNumber]
	if !exists {
		return models.Reservation{}, fmt.Errorf("room %q: %w", roomNumber, models.ErrNotFound)
	}
	if !room.Available {
		return models.Reservation{}, fmt.Errorf("room %q: %w", roomNumber, models.ErrRoomUnavailable)
	}

	reservation := models.Reservation{
		BookingID:     fmt.Sprintf("BK%d", s.nextBookingID),
		ReferenceCode: uuid.NewString(),
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		RoomNumber:    roomNumber,
		Nights:        nights,
		TotalCost:     room.PricePerNight * float64(nights),
		BookedAt:      time.Now().UTC(),
	}

	s.nextBookingID++
	room.Available = false
	s.reservations[reservation.BookingID] = &reservation
	s.reservationOrder = append(s.reservationOrder, reservation.BookingID)

	return reservation, nil
}

// DeleteReservation cancels a booking and frees the associated room.
func (s *Store) DeleteReservation(bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, exists := s.reservations[bookingID]
	if !exists {
		return fmt.Errorf("booking %q: %w", bookingID, models.ErrNotFound)
	}

	if room, ok := s.rooms[reservation.RoomNumber]; ok {
		room.Available = true
	}

	delete(s.reservations, bookingID)
	s.reservationOrder = removeKey(s.reservationOrder, bookingID)

	return nil
}

func (s *Store) GetReservation(bookingID string) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, exists := s.reservations[bookingID]
	if !exists {
		return models.Reservation{}, fmt.Errorf("booking %q: %w", bookingID, models.ErrNotFound)
	}

	return *reservation, nil
}

// ListReservations returns a copy of the ledger in booking order.
func (s *Store) ListReservations() []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listReservationsLocked()
}

// Snapshot returns both collections from the same critical section, for report
// aggregation over a consistent state.
func (s *Store) Snapshot() ([]models.Room, []models.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listRoomsLocked(), s.listReservationsLocked()
}

func (s *Store) listRoomsLocked() []models.Room {
	rooms := make([]models.Room, 0, len(s.roomOrder))
	for _, number := range s.roomOrder {
		rooms = append(rooms, *s.rooms[number])
	}

	return rooms
}

func (s *Store) listReservationsLocked() []models.Reservation {
	reservations := make([]models.Reservation, 0, len(s.reservationOrder))
	for _, id := range s.reservationOrder {
		reservations = append(reservations, *s.reservations[id])
	}

	return reservations
}

func removeKey(keys []string, key string) []string {
	for i, k := range keys {
		if k == key {
			return append(keys[:i], keys[i+1:]...)
		}
	}

	return keys
}
