package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sandeepnani0902/customer-hostel-booking/internal/domain"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/service/booking"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Validate(req booking.BookingRequest) []string {
	args := m.Called(req)
	return args.Get(0).([]string)
}

func (m *MockBookingUseCase) BookBed(ctx context.Context, hostelID int64, bedID int, req booking.BookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, hostelID, bedID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CancelBooking(ctx context.Context, bookingID, requesterEmail string) error {
	args := m.Called(ctx, bookingID, requesterEmail)
	return args.Error(0)
}

func (m *MockBookingUseCase) GetBookingStats(ctx context.Context, hostelID int64) (domain.BookingStats, error) {
	args := m.Called(ctx, hostelID)
	return args.Get(0).(domain.BookingStats), args.Error(1)
}

func (m *MockBookingUseCase) GenerateBedLayout(ctx context.Context, hostelID int64) ([]domain.BedSlot, error) {
	args := m.Called(ctx, hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BedSlot), args.Error(1)
}

func (m *MockBookingUseCase) GetUserBookings(ctx context.Context, userEmail string) ([]domain.Booking, error) {
	args := m.Called(ctx, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) SharingSummary(ctx context.Context, hostelID int64, baseRent float64) (map[string]domain.SharingOption, error) {
	args := m.Called(ctx, hostelID, baseRent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.SharingOption), args.Error(1)
}

const createBody = `{
	"hostelId": 1,
	"bedId": 7,
	"userEmail": "a@b.com",
	"userName": "Jo",
	"checkInDate": "2026-09-01",
	"roomType": "single",
	"duration": "1",
	"totalAmount": 8500
}`

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings", strings.NewReader(createBody))
	c.Request.Header.Set("Content-Type", "application/json")

	created := &domain.Booking{
		ID:          "1712000000000-abc12345",
		HostelID:    1,
		BedID:       7,
		BedNumber:   "R2B1",
		UserEmail:   "a@b.com",
		Status:      domain.BookingStatusConfirmed,
		CheckInDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	mockService.On("BookBed", c.Request.Context(), int64(1), 7, mock.AnythingOfType("booking.BookingRequest")).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got domain.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_ValidationError(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings", strings.NewReader(createBody))
	c.Request.Header.Set("Content-Type", "application/json")

	verr := domain.NewValidationError([]string{"Valid email is required", "Check-in date cannot be in the past"})
	mockService.On("BookBed", c.Request.Context(), int64(1), 7, mock.Anything).Return(nil, verr)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error      string   `json:"error"`
		Violations []string `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Violations, 2)
	assert.Contains(t, body.Error, "Valid email is required")

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_Conflict(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/bookings", strings.NewReader(createBody))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("BookBed", c.Request.Context(), int64(1), 7, mock.Anything).Return(nil, domain.ErrBedAlreadyBooked)

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/bookings?email=a@b.com", nil)

	bookings := []domain.Booking{{ID: "x-1", UserEmail: "a@b.com"}}
	mockService.On("GetUserBookings", c.Request.Context(), "a@b.com").Return(bookings, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_list_MissingEmail(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/bookings", nil)

	handler.list(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetUserBookings")
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "x-1"}}
	c.Request = httptest.NewRequest("DELETE", "/bookings/x-1?email=a@b.com", nil)

	mockService.On("CancelBooking", c.Request.Context(), "x-1", "a@b.com").Return(nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	c.Request = httptest.NewRequest("DELETE", "/bookings/missing?email=a@b.com", nil)

	mockService.On("CancelBooking", c.Request.Context(), "missing", "a@b.com").Return(domain.ErrBookingNotFound)

	handler.cancel(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}
