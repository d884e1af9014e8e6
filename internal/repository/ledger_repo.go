package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/sandeepnani0902/customer-hostel-booking/internal/domain"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/store"
)

// HostelBookingsKey is the store entry holding the global booking ledger as
// a JSON array in insertion order.
const HostelBookingsKey = "hostel_bookings"

type LedgerRepository interface {
	// Load returns all bookings in insertion order. An absent or corrupt
	// entry yields an empty ledger.
	Load(ctx context.Context) ([]domain.Booking, error)
	Save(ctx context.Context, bookings []domain.Booking) error
}

type StoreLedgerRepository struct {
	store store.Store
}

func NewLedgerRepository(s store.Store) LedgerRepository {
	return &StoreLedgerRepository{store: s}
}

func (r *StoreLedgerRepository) Load(ctx context.Context) ([]domain.Booking, error) {
	data, err := r.store.Get(ctx, HostelBookingsKey)
	if err != nil {
		if err == store.ErrKeyNotFound {
			return []domain.Booking{}, nil
		}
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	var bookings []domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Printf("WARNING: corrupt booking ledger, discarding: %v", err)
		return []domain.Booking{}, nil
	}
	return bookings, nil
}

func (r *StoreLedgerRepository) Save(ctx context.Context, bookings []domain.Booking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("marshal bookings: %w", err)
	}
	if err := r.store.Set(ctx, HostelBookingsKey, data); err != nil {
		return fmt.Errorf("save bookings: %w", err)
	}
	return nil
}

var _ LedgerRepository = (*StoreLedgerRepository)(nil)
