package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{service: service}
}

type createBookingRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	RoomNumber    string `json:"roomNumber"`
	Nights        int    `json:"nights"`
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, bc.service.GetAll())
}

// CreateBooking books a room. A payload that does not parse (e.g. non-numeric
// nights) is rejected here; domain rules are enforced by the service.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reservation, err := bc.service.Create(req.CustomerName, req.CustomerPhone, req.RoomNumber, req.Nights)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	reservation, err := bc.service.GetByID(strings.TrimSpace(c.Param("bookingId")))
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	bookingID := strings.TrimSpace(c.Param("bookingId"))

	if err := bc.service.Cancel(bookingID); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	utils.JSONMessage(c, http.StatusOK, fmt.Sprintf("Booking %s cancelled", bookingID))
}
