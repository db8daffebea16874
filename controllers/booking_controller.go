package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"booking-backend/dto"
	"booking-backend/services"
	"booking-backend/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	id, err := bc.BookingSvc.Create(c.Request.Context(), req.RoomID, req.DateStart, req.DateEnd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking_id": id})
}

// GET /api/bookings?room_id=
//
// room_id is required. A room with no bookings (or no such room) returns an
// empty list, not an error.
func (bc *BookingController) GetBookings(c *gin.Context) {
	raw := c.Query("room_id")
	if raw == "" {
		utils.JSONError(c, http.StatusBadRequest, "room_id is required")
		return
	}
	roomID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room_id must be a valid integer")
		return
	}

	bookings, err := bc.BookingSvc.ListByRoom(c.Request.Context(), uint(roomID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBookingList(bookings))
}

// DELETE /api/bookings/:id
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	if err := bc.BookingSvc.Delete(c.Request.Context(), uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
