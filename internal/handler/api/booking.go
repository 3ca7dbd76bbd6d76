package api

import (
	"net/http"

	reqdto "boxoffice/internal/handler/dto/request"
	"boxoffice/internal/usecase/commands"
	"boxoffice/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary List bookings
// @Description List bookings, optionally filtered by date and status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param date query string false "Booking date (YYYY-MM-DD)"
// @Param status query string false "Booking status"
// @Success 200 {array} queries.BookingView
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var filter queries.BookingFilter
	if date := c.Query("date"); date != "" {
		filter.Date = &date
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}

	views, err := h.bookingQueries.List(c.Request.Context(), filter)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update booking status
// @Description Move a booking to Confirmed, Checked-In or Cancelled
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	view, err := h.bookingCommands.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Create group booking
// @Description Book a whole party as one record with per-head pricing
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGroupBookingRequest true "Group booking"
// @Success 201 {object} queries.BookingView
// @Failure 422 {object} map[string]string
// @Router /bookings/group [post]
func (h *BookingHandler) CreateGroup(c *gin.Context) {
	var req reqdto.CreateGroupBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	view, err := h.bookingCommands.CreateGroupBooking(c.Request.Context(), req)
	if err != nil {
		respondAdminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}
