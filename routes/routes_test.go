package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservation/controllers"
	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/store"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	db := store.New()
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	reportService := services.NewReportService(db)

	return SetupRouter(
		controllers.NewRoomController(roomService),
		controllers.NewBookingController(bookingService),
		controllers.NewReportController(reportService),
		controllers.NewRoomTypeController([]string{"Single", "Double", "Suite", "Deluxe"}),
	)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (int, apiResponse) {
	t.Helper()

	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp apiResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}

	return w.Code, resp
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	code, _ := doRequest(t, router, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, code)
}

func TestRoomTypesEndpoint(t *testing.T) {
	router := newTestRouter()

	code, resp := doRequest(t, router, "GET", "/api/room-types", "")
	require.Equal(t, http.StatusOK, code)

	var types []string
	require.NoError(t, json.Unmarshal(resp.Data, &types))
	assert.Equal(t, []string{"Single", "Double", "Suite", "Deluxe"}, types)
}

func TestRoomEndpoints(t *testing.T) {
	router := newTestRouter()

	code, resp := doRequest(t, router, "POST", "/api/rooms",
		`{"roomNumber":"101","type":"Single","pricePerNight":50}`)
	require.Equal(t, http.StatusCreated, code)

	var room models.Room
	require.NoError(t, json.Unmarshal(resp.Data, &room))
	assert.Equal(t, "101", room.RoomNumber)
	assert.True(t, room.Available)

	tests := []struct {
		description  string
		body         string
		expectedCode int
	}{
		{"duplicate room number", `{"roomNumber":"101","type":"Suite","pricePerNight":120}`, http.StatusConflict},
		{"empty room number", `{"roomNumber":"","type":"Single","pricePerNight":50}`, http.StatusBadRequest},
		{"non-positive price", `{"roomNumber":"102","type":"Single","pricePerNight":0}`, http.StatusBadRequest},
		{"unparsable price", `{"roomNumber":"102","type":"Single","pricePerNight":"cheap"}`, http.StatusBadRequest},
	}
	for _, test := range tests {
		code, _ := doRequest(t, router, "POST", "/api/rooms", test.body)
		assert.Equalf(t, test.expectedCode, code, test.description)
	}

	code, resp = doRequest(t, router, "GET", "/api/rooms", "")
	require.Equal(t, http.StatusOK, code)

	var rooms []models.Room
	require.NoError(t, json.Unmarshal(resp.Data, &rooms))
	assert.Len(t, rooms, 1)

	code, _ = doRequest(t, router, "GET", "/api/rooms/101", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, router, "GET", "/api/rooms/999", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doRequest(t, router, "DELETE", "/api/rooms/101", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, router, "DELETE", "/api/rooms/101", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestBookingEndpoints(t *testing.T) {
	router := newTestRouter()

	code, _ := doRequest(t, router, "POST", "/api/rooms",
		`{"roomNumber":"101","type":"Single","pricePerNight":50}`)
	require.Equal(t, http.StatusCreated, code)

	code, resp := doRequest(t, router, "POST", "/api/bookings",
		`{"customerName":"Alice","customerPhone":"555-1111","roomNumber":"101","nights":3}`)
	require.Equal(t, http.StatusCreated, code)

	var reservation models.Reservation
	require.NoError(t, json.Unmarshal(resp.Data, &reservation))
	assert.Equal(t, "BK1", reservation.BookingID)
	assert.Equal(t, 150.0, reservation.TotalCost)

	tests := []struct {
		description  string
		body         string
		expectedCode int
	}{
		{"room already booked", `{"customerName":"Bob","customerPhone":"555-2222","roomNumber":"101","nights":1}`, http.StatusConflict},
		{"unknown room", `{"customerName":"Bob","customerPhone":"555-2222","roomNumber":"999","nights":1}`, http.StatusNotFound},
		{"missing name", `{"customerName":"","customerPhone":"555-2222","roomNumber":"101","nights":1}`, http.StatusBadRequest},
		{"zero nights", `{"customerName":"Bob","customerPhone":"555-2222","roomNumber":"101","nights":0}`, http.StatusBadRequest},
		{"non-numeric nights", `{"customerName":"Bob","customerPhone":"555-2222","roomNumber":"101","nights":"two"}`, http.StatusBadRequest},
	}
	for _, test := range tests {
		code, _ := doRequest(t, router, "POST", "/api/bookings", test.body)
		assert.Equalf(t, test.expectedCode, code, test.description)
	}

	// a booked room cannot be removed
	code, _ = doRequest(t, router, "DELETE", "/api/rooms/101", "")
	assert.Equal(t, http.StatusConflict, code)

	code, _ = doRequest(t, router, "GET", "/api/bookings/BK1", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, router, "DELETE", "/api/bookings/BK1", "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, router, "DELETE", "/api/bookings/BK1", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, resp = doRequest(t, router, "GET", "/api/rooms/101", "")
	require.Equal(t, http.StatusOK, code)

	var room models.Room
	require.NoError(t, json.Unmarshal(resp.Data, &room))
	assert.True(t, room.Available)
}

func TestReportEndpoint(t *testing.T) {
	router := newTestRouter()

	for _, body := range []string{
		`{"roomNumber":"101","type":"Single","pricePerNight":50}`,
		`{"roomNumber":"201","type":"Double","pricePerNight":80}`,
	} {
		code, _ := doRequest(t, router, "POST", "/api/rooms", body)
		require.Equal(t, http.StatusCreated, code)
	}

	code, _ := doRequest(t, router, "POST", "/api/bookings",
		`{"customerName":"Alice","customerPhone":"555-1111","roomNumber":"101","nights":3}`)
	require.Equal(t, http.StatusCreated, code)
	code, _ = doRequest(t, router, "POST", "/api/bookings",
		`{"customerName":"Bob","customerPhone":"555-2222","roomNumber":"201","nights":2}`)
	require.Equal(t, http.StatusCreated, code)

	code, _ = doRequest(t, router, "DELETE", "/api/bookings/BK1", "")
	require.Equal(t, http.StatusOK, code)

	code, resp := doRequest(t, router, "GET", "/api/report", "")
	require.Equal(t, http.StatusOK, code)

	var report models.Report
	require.NoError(t, json.Unmarshal(resp.Data, &report))

	assert.Equal(t, 2, report.TotalRooms)
	assert.Equal(t, 1, report.AvailableRooms)
	assert.Equal(t, 1, report.BookedRooms)
	assert.Equal(t, 1, report.TotalBookings)
	assert.Equal(t, 160.0, report.TotalRevenue)
	require.Len(t, report.Details, 1)
	assert.Equal(t, "BK2", report.Details[0].BookingID)
	assert.Equal(t, "Double", report.Details[0].RoomType)
}
