package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandeepnani0902/customer-hostel-booking/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	HostelID    int64   `json:"hostelId"`
	BedID       int     `json:"bedId"`
	UserEmail   string  `json:"userEmail"`
	UserName    string  `json:"userName"`
	CheckInDate string  `json:"checkInDate"`
	RoomType    string  `json:"roomType"`
	Duration    string  `json:"duration"`
	TotalAmount float64 `json:"totalAmount"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.DELETE("/:id", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.BookBed(c.Request.Context(), req.HostelID, req.BedID, booking.BookingRequest{
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
		CheckInDate: req.CheckInDate,
		RoomType:    req.RoomType,
		Duration:    req.Duration,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) list(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	bookings, err := h.service.GetUserBookings(c.Request.Context(), email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}

	if err := h.service.CancelBooking(c.Request.Context(), c.Param("id"), email); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
