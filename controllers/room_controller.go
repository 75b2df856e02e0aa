package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{service: service}
}

type createRoomRequest struct {
	RoomNumber    string  `json:"roomNumber"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"pricePerNight"`
}

// GetRooms returns the full inventory in the order rooms were added.
func (rc *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.service.GetAll())
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	room, err := rc.service.Create(req.RoomNumber, req.Type, req.PricePerNight)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (rc *RoomController) GetRoomByNumber(c *gin.Context) {
	room, err := rc.service.GetByNumber(strings.TrimSpace(c.Param("roomNumber")))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	roomNumber := strings.TrimSpace(c.Param("roomNumber"))

	if err := rc.service.Delete(roomNumber); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	utils.JSONMessage(c, http.StatusOK, fmt.Sprintf("Room %s removed", roomNumber))
}
