package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeTriple RoomType = "triple"
)

// Duration is a stay length in months. The booking form only offers
// fixed plans, so the set of valid values is closed.
type Duration string

const (
	DurationOneMonth     Duration = "1"
	DurationThreeMonths  Duration = "3"
	DurationSixMonths    Duration = "6"
	DurationTwelveMonths Duration = "12"
)

func (r RoomType) Valid() bool {
	switch r {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeTriple:
		return true
	}
	return false
}

func (d Duration) Valid() bool {
	switch d {
	case DurationOneMonth, DurationThreeMonths, DurationSixMonths, DurationTwelveMonths:
		return true
	}
	return false
}

// Booking is a ledger record. Room and bed fields are a denormalized
// snapshot of the bed at booking time; the bed itself only carries the
// occupancy flag.
type Booking struct {
	ID          string        `json:"id"`
	HostelID    int64         `json:"hostelId"`
	RoomNumber  int           `json:"roomNumber"`
	BedID       int           `json:"bedId"`
	BedNumber   string        `json:"bedNumber"`
	UserEmail   string        `json:"userEmail"`
	UserName    string        `json:"userName"`
	CheckInDate time.Time     `json:"checkInDate"`
	RoomType    RoomType      `json:"roomType"`
	Duration    Duration      `json:"duration"`
	TotalAmount float64       `json:"totalAmount"`
	BookingDate time.Time     `json:"bookingDate"`
	Status      BookingStatus `json:"status"`
}
