package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation/utils"
)

// RoomTypeController serves the configured room type labels. Types on rooms are
// free-form strings; this list is display guidance for clients, not a constraint.
type RoomTypeController struct {
	types []string
}

func NewRoomTypeController(types []string) *RoomTypeController {
	return &RoomTypeController{types: types}
}

func (tc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, tc.types)
}
