package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/sandeepnani0902/customer-hostel-booking/internal/domain"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/store"
)

// BedAvailabilityKey is the store entry holding the inventory map, keyed by
// listing id (string-coerced by JSON map encoding).
const BedAvailabilityKey = "bed_availability"

type InventoryRepository interface {
	// Load returns the persisted inventory map, or nil when nothing valid
	// is stored. A corrupt entry is discarded with a warning, never
	// surfaced as an error: the caller regenerates instead.
	Load(ctx context.Context) (map[int64]*domain.Inventory, error)
	Save(ctx context.Context, inventories map[int64]*domain.Inventory) error
}

type StoreInventoryRepository struct {
	store store.Store
}

func NewInventoryRepository(s store.Store) InventoryRepository {
	return &StoreInventoryRepository{store: s}
}

func (r *StoreInventoryRepository) Load(ctx context.Context) (map[int64]*domain.Inventory, error) {
	data, err := r.store.Get(ctx, BedAvailabilityKey)
	if err != nil {
		if err == store.ErrKeyNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("load inventories: %w", err)
	}

	var inventories map[int64]*domain.Inventory
	if err := json.Unmarshal(data, &inventories); err != nil {
		log.Printf("WARNING: corrupt inventory data, discarding: %v", err)
		return nil, nil
	}
	if len(inventories) == 0 {
		return nil, nil
	}
	return inventories, nil
}

func (r *StoreInventoryRepository) Save(ctx context.Context, inventories map[int64]*domain.Inventory) error {
	data, err := json.Marshal(inventories)
	if err != nil {
		return fmt.Errorf("marshal inventories: %w", err)
	}
	if err := r.store.Set(ctx, BedAvailabilityKey, data); err != nil {
		return fmt.Errorf("save inventories: %w", err)
	}
	return nil
}

var _ InventoryRepository = (*StoreInventoryRepository)(nil)
