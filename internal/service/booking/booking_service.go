package booking

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sandeepnani0902/customer-hostel-booking/internal/domain"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/inventory"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/kafka"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/repository"
)

const checkInDateLayout = "2006-01-02"

type BookingUseCase interface {
	Validate(req BookingRequest) []string
	BookBed(ctx context.Context, hostelID int64, bedID int, req BookingRequest) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID, requesterEmail string) error
	GetBookingStats(ctx context.Context, hostelID int64) (domain.BookingStats, error)
	GenerateBedLayout(ctx context.Context, hostelID int64) ([]domain.BedSlot, error)
	GetUserBookings(ctx context.Context, userEmail string) ([]domain.Booking, error)
	SharingSummary(ctx context.Context, hostelID int64, baseRent float64) (map[string]domain.SharingOption, error)
}

// Locker guards the read-modify-write window across processes sharing one
// store. In a single-process deployment the service mutex is enough and the
// locker may be nil.
type Locker interface {
	AcquireBedLock(ctx context.Context, hostelID int64, bedID int, ttl time.Duration) (bool, error)
	ReleaseBedLock(ctx context.Context, hostelID int64, bedID int) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService is the only authority allowed to mutate bed occupancy and
// the booking ledger. Every mutating call is a full read-modify-write of the
// persisted state, serialized by an internal mutex.
type BookingService struct {
	inventories        repository.InventoryRepository
	ledger             repository.LedgerRepository
	generator          *inventory.Generator
	producer           Producer
	locker             Locker
	bookingTopic       string
	notificationsTopic string
	minAmount          float64
	bedLockTTL         time.Duration
	seed               int64
	now                func() time.Time

	mu sync.Mutex
}

// BookingRequest is the explicit booking payload; malformed input is
// rejected before it reaches the inventory.
type BookingRequest struct {
	UserEmail   string  `json:"userEmail" validate:"required,email"`
	UserName    string  `json:"userName" validate:"required"`
	CheckInDate string  `json:"checkInDate" validate:"required"`
	RoomType    string  `json:"roomType" validate:"required,oneof=single double triple"`
	Duration    string  `json:"duration" validate:"required,oneof=1 3 6 12"`
	TotalAmount float64 `json:"totalAmount" validate:"required"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithLocker(locker Locker, ttl time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.locker = locker
		s.bedLockTTL = ttl
	}
}

func WithSeed(seed int64) BookingServiceOption {
	return func(s *BookingService) {
		s.seed = seed
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	inventories repository.InventoryRepository,
	ledger repository.LedgerRepository,
	generator *inventory.Generator,
	producer Producer,
	bookingTopic string,
	minAmount float64,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		inventories:  inventories,
		ledger:       ledger,
		generator:    generator,
		producer:     producer,
		bookingTopic: bookingTopic,
		minAmount:    minAmount,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Validate reports every violated rule at once, in field order, so the
// caller can present the complete error list.
func (s *BookingService) Validate(req BookingRequest) []string {
	failed := validateStruct(req)
	violations := []string{}

	if req.UserEmail == "" || failed["UserEmail"] {
		violations = append(violations, "Valid email is required")
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.UserName)) < 2 {
		violations = append(violations, "Name must be at least 2 characters")
	}
	if req.CheckInDate == "" {
		violations = append(violations, "Check-in date is required")
	} else if checkIn, err := time.Parse(checkInDateLayout, req.CheckInDate); err != nil {
		violations = append(violations, "Check-in date must be a valid date")
	} else {
		today := s.today()
		if checkIn.Before(today) {
			violations = append(violations, "Check-in date cannot be in the past")
		}
	}
	if req.RoomType == "" || failed["RoomType"] {
		violations = append(violations, "Valid room type is required")
	}
	if req.Duration == "" || failed["Duration"] {
		violations = append(violations, "Valid duration is required")
	}
	if req.TotalAmount < s.minAmount {
		violations = append(violations, "Valid total amount is required")
	}

	return violations
}

// BookBed marks the target bed occupied, appends a confirmed booking to the
// ledger and persists both, all within one serialized call.
func (s *BookingService) BookBed(ctx context.Context, hostelID int64, bedID int, req BookingRequest) (*domain.Booking, error) {
	if violations := s.Validate(req); len(violations) > 0 {
		return nil, domain.NewValidationError(violations)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locker != nil {
		ok, err := s.locker.AcquireBedLock(ctx, hostelID, bedID, s.bedLockTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrBedAlreadyBooked
		}
		defer func() {
			_ = s.locker.ReleaseBedLock(ctx, hostelID, bedID)
		}()
	}

	inventories, err := s.ensureInventories(ctx)
	if err != nil {
		return nil, err
	}

	inv, ok := inventories[hostelID]
	if !ok {
		return nil, domain.ErrListingNotFound
	}

	bed, room := inv.FindBed(bedID)
	if bed == nil {
		return nil, domain.ErrBedNotFound
	}
	if bed.IsBooked {
		return nil, domain.ErrBedAlreadyBooked
	}

	bed.IsBooked = true
	inv.BookedBeds = append(inv.BookedBeds, bedID)
	inv.Recount()

	checkIn, _ := time.Parse(checkInDateLayout, req.CheckInDate)
	booking := domain.Booking{
		ID:          s.newBookingID(),
		HostelID:    hostelID,
		RoomNumber:  room.RoomNumber,
		BedID:       bedID,
		BedNumber:   bed.BedNumber,
		UserEmail:   strings.TrimSpace(req.UserEmail),
		UserName:    strings.TrimSpace(req.UserName),
		CheckInDate: checkIn,
		RoomType:    domain.RoomType(req.RoomType),
		Duration:    domain.Duration(req.Duration),
		TotalAmount: req.TotalAmount,
		BookingDate: s.now(),
		Status:      domain.BookingStatusConfirmed,
	}

	bookings, err := s.ledger.Load(ctx)
	if err != nil {
		return nil, err
	}
	bookings = append(bookings, booking)

	if err := s.inventories.Save(ctx, inventories); err != nil {
		return nil, err
	}
	if err := s.ledger.Save(ctx, bookings); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", &booking)
	return &booking, nil
}

// CancelBooking frees the booked bed and removes the ledger record. Only
// the booking owner may cancel.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, requesterEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.ledger.Load(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i, b := range bookings {
		if b.ID == bookingID && b.UserEmail == requesterEmail {
			index = i
			break
		}
	}
	if index == -1 {
		return domain.ErrBookingNotFound
	}
	cancelled := bookings[index]

	inventories, err := s.ensureInventories(ctx)
	if err != nil {
		return err
	}

	if inv, ok := inventories[cancelled.HostelID]; ok {
		if bed, _ := inv.FindBed(cancelled.BedID); bed != nil {
			bed.IsBooked = false
		}
		inv.BookedBeds = removeBedID(inv.BookedBeds, cancelled.BedID)
		inv.Recount()

		if err := s.inventories.Save(ctx, inventories); err != nil {
			return err
		}
	}

	bookings = append(bookings[:index], bookings[index+1:]...)
	if err := s.ledger.Save(ctx, bookings); err != nil {
		return err
	}

	cancelled.Status = domain.BookingStatusCancelled
	s.publish(ctx, "booking_cancelled", &cancelled)
	return nil
}

// GetBookingStats never fails on an unknown listing; it returns zeroed
// stats so the UI can render an empty state.
func (s *BookingService) GetBookingStats(ctx context.Context, hostelID int64) (domain.BookingStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inventories, err := s.ensureInventories(ctx)
	if err != nil {
		return domain.BookingStats{}, err
	}

	inv, ok := inventories[hostelID]
	if !ok {
		return domain.BookingStats{}, nil
	}

	booked := len(inv.BookedBeds)
	available := inv.TotalBeds - booked
	if available < 0 {
		available = 0
	}

	rate := 0
	if inv.TotalBeds > 0 {
		rate = int(math.Round(float64(booked) / float64(inv.TotalBeds) * 100))
	}

	return domain.BookingStats{
		TotalRooms:    inv.TotalRooms,
		TotalBeds:     inv.TotalBeds,
		AvailableBeds: available,
		BookedBeds:    booked,
		OccupancyRate: rate,
	}, nil
}

// GenerateBedLayout flattens the room topology into an ordered bed list for
// rendering. Unknown listings yield an empty layout.
func (s *BookingService) GenerateBedLayout(ctx context.Context, hostelID int64) ([]domain.BedSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inventories, err := s.ensureInventories(ctx)
	if err != nil {
		return nil, err
	}

	inv, ok := inventories[hostelID]
	if !ok {
		return []domain.BedSlot{}, nil
	}

	layout := make([]domain.BedSlot, 0, inv.TotalBeds)
	for _, room := range inv.Rooms {
		for _, bed := range room.Beds {
			layout = append(layout, domain.BedSlot{
				BedID:       bed.BedID,
				BedNumber:   bed.BedNumber,
				RoomNumber:  room.RoomNumber,
				IsBooked:    bed.IsBooked,
				IsAvailable: !bed.IsBooked,
			})
		}
	}
	return layout, nil
}

func (s *BookingService) GetUserBookings(ctx context.Context, userEmail string) ([]domain.Booking, error) {
	if userEmail == "" {
		return []domain.Booking{}, nil
	}

	bookings, err := s.ledger.Load(ctx)
	if err != nil {
		return nil, err
	}

	matched := []domain.Booking{}
	for _, b := range bookings {
		if b.UserEmail == userEmail {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

// SharingSummary groups a listing's rooms by bed count into sharing plans
// with live availability and the per-bed monthly price.
func (s *BookingService) SharingSummary(ctx context.Context, hostelID int64, baseRent float64) (map[string]domain.SharingOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inventories, err := s.ensureInventories(ctx)
	if err != nil {
		return nil, err
	}

	summary := map[string]domain.SharingOption{}
	inv, ok := inventories[hostelID]
	if !ok {
		return summary, nil
	}

	for _, room := range inv.Rooms {
		key := sharingKey(room.BedsCount)
		option := summary[key]
		option.Price = domain.SharingPrice(baseRent, room.BedsCount)
		for _, bed := range room.Beds {
			option.Total++
			if !bed.IsBooked {
				option.Available++
			}
		}
		summary[key] = option
	}
	return summary, nil
}

// ensureInventories loads the persisted inventory map, generating and
// persisting a fresh one when nothing valid is stored.
func (s *BookingService) ensureInventories(ctx context.Context) (map[int64]*domain.Inventory, error) {
	inventories, err := s.inventories.Load(ctx)
	if err != nil {
		return nil, err
	}
	if inventories != nil {
		return inventories, nil
	}

	seed := s.seed
	if seed == 0 {
		seed = s.now().UnixNano()
	}
	inventories = s.generator.Generate(seed)
	if err := s.inventories.Save(ctx, inventories); err != nil {
		return nil, err
	}
	return inventories, nil
}

// Booking ids are time-based with a random suffix: collision-improbable,
// not cryptographically unique.
func (s *BookingService) newBookingID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + suffix
}

func (s *BookingService) today() time.Time {
	year, month, day := s.now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		HostelID:    booking.HostelID,
		RoomNumber:  booking.RoomNumber,
		BedID:       booking.BedID,
		BedNumber:   booking.BedNumber,
		Email:       booking.UserEmail,
		Status:      string(booking.Status),
		CheckInDate: booking.CheckInDate,
		TotalAmount: booking.TotalAmount,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", eventType, booking.ID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for booking %s: %v", eventType, booking.ID, err)
		}
	}
}

func removeBedID(bookedBeds []int, bedID int) []int {
	kept := bookedBeds[:0]
	for _, id := range bookedBeds {
		if id != bedID {
			kept = append(kept, id)
		}
	}
	return kept
}

func sharingKey(beds int) string {
	return strconv.Itoa(beds) + "-sharing"
}

var _ BookingUseCase = (*BookingService)(nil)
