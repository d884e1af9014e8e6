package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/sandeepnani0902/customer-hostel-booking/internal/domain"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/store"
)

// HostelListingsKey is the store entry holding the listing catalog.
const HostelListingsKey = "hostel_listings"

type ListingRepository interface {
	// Load returns the persisted catalog, or nil when nothing valid is
	// stored so the caller can seed it.
	Load(ctx context.Context) ([]domain.Listing, error)
	Save(ctx context.Context, listings []domain.Listing) error
}

type StoreListingRepository struct {
	store store.Store
}

func NewListingRepository(s store.Store) ListingRepository {
	return &StoreListingRepository{store: s}
}

func (r *StoreListingRepository) Load(ctx context.Context) ([]domain.Listing, error) {
	data, err := r.store.Get(ctx, HostelListingsKey)
	if err != nil {
		if err == store.ErrKeyNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("load listings: %w", err)
	}

	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		log.Printf("WARNING: corrupt listing catalog, discarding: %v", err)
		return nil, nil
	}
	if len(listings) == 0 {
		return nil, nil
	}
	return listings, nil
}

func (r *StoreListingRepository) Save(ctx context.Context, listings []domain.Listing) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("marshal listings: %w", err)
	}
	if err := r.store.Set(ctx, HostelListingsKey, data); err != nil {
		return fmt.Errorf("save listings: %w", err)
	}
	return nil
}

var _ ListingRepository = (*StoreListingRepository)(nil)
