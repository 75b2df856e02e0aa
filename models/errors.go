package models

import "errors"

// Domain error kinds. Callers classify failures with errors.Is; every operation
// either fully succeeds or fails with one of these and no partial mutation.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicateRoom   = errors.New("room number already exists")
	ErrNotFound        = errors.New("record not found")
	ErrRoomUnavailable = errors.New("room is already booked")
	ErrRoomOccupied    = errors.New("room is currently booked")
)
