package services

import (
	"fmt"
	"strings"

	"hotel-reservation/models"
	"hotel-reservation/store"
)

// RoomService is the room registry: it validates input shapes and delegates the
// uniqueness and occupancy rules to the store.
type RoomService struct {
	store *store.Store
}

func NewRoomService(s *store.Store) *RoomService {
	return &RoomService{store: s}
}

func (s *RoomService) Create(roomNumber, roomType string, pricePerNight float64) (models.Room, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	roomType = strings.TrimSpace(roomType)

	if roomNumber == "" {
		return models.Room{}, fmt.Errorf("room number is required: %w", models.ErrInvalidInput)
	}
	if pricePerNight <= 0 {
		return models.Room{}, fmt.Errorf("price per night must be greater than zero: %w", models.ErrInvalidInput)
	}

	room := models.Room{
		RoomNumber:    roomNumber,
		Type:          roomType,
		PricePerNight: pricePerNight,
		Available:     true,
	}

	if err := s.store.CreateRoom(room); err != nil {
		return models.Room{}, err
	}

	return room, nil
}

func (s *RoomService) GetAll() []models.Room {
	return s.store.ListRooms()
}

func (s *RoomService) GetByNumber(roomNumber string) (models.Room, error) {
	return s.store.GetRoom(roomNumber)
}

func (s *RoomService) Delete(roomNumber string) error {
	return s.store.DeleteRoom(roomNumber)
}
