package email

import (
	"context"
	"fmt"

	"github.com/sandeepnani0902/customer-hostel-booking/internal/kafka"
)

// Sender delivers booking notifications. The current implementation prints
// to stdout; a real mail transport slots in behind the same method.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case "booking_created":
		fmt.Printf("send email to %s: booking %s confirmed for hostel %d, bed %s (room %d), check-in %s\n",
			event.Email, event.BookingID, event.HostelID, event.BedNumber, event.RoomNumber, event.CheckInDate.Format("2006-01-02"))
	case "booking_cancelled":
		fmt.Printf("send email to %s: booking %s cancelled, bed %s released\n",
			event.Email, event.BookingID, event.BedNumber)
	default:
		fmt.Printf("send email to %s about %s for booking %s\n", event.Email, event.Type, event.BookingID)
	}
	return nil
}
