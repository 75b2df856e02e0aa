package controllers

import (
	"errors"
	"net/http"

	"hotel-reservation/models"
)

// statusForError maps a domain error kind onto the HTTP status returned to the
// client. Anything unclassified is treated as a server error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateRoom),
		errors.Is(err, models.ErrRoomUnavailable),
		errors.Is(err, models.ErrRoomOccupied):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
