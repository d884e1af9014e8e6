package catalog

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sandeepnani0902/customer-hostel-booking/internal/domain"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/repository"
)

type CatalogUseCase interface {
	List(ctx context.Context) ([]domain.Listing, error)
	Search(ctx context.Context, query SearchQuery) ([]domain.Listing, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	Quote(ctx context.Context, id int64, roomType domain.RoomType, duration domain.Duration) (domain.Quote, error)
}

// SearchQuery narrows the catalog. Zero fields are ignored; filters
// combine with AND. RadiusKm only applies when both coordinates are set.
type SearchQuery struct {
	Term     string
	Type     domain.HostelType
	MinPrice float64
	MaxPrice float64
	Sort     string
	Lat      float64
	Lng      float64
	RadiusKm float64
}

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortRating    = "rating"
)

// CatalogService serves the hostel catalog. Listings live in the store,
// seeded on first access, and are kept in memory for the cache TTL so
// repeated searches do not re-read the store.
type CatalogService struct {
	listings repository.ListingRepository
	cacheTTL time.Duration
	now      func() time.Time

	mu       sync.Mutex
	cached   []domain.Listing
	cachedAt time.Time
}

func NewCatalogService(listings repository.ListingRepository, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{
		listings: listings,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Listing, error) {
	return s.load(ctx)
}

func (s *CatalogService) Search(ctx context.Context, query SearchQuery) ([]domain.Listing, error) {
	listings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query.Term))
	matched := []domain.Listing{}
	for _, l := range listings {
		if term != "" &&
			!strings.Contains(strings.ToLower(l.Name), term) &&
			!strings.Contains(strings.ToLower(l.Location), term) {
			continue
		}
		if query.Type != "" && l.Type != query.Type {
			continue
		}
		if query.MinPrice > 0 && l.Price < query.MinPrice {
			continue
		}
		if query.MaxPrice > 0 && l.Price > query.MaxPrice {
			continue
		}
		if query.RadiusKm > 0 && (query.Lat != 0 || query.Lng != 0) {
			if distanceKm(query.Lat, query.Lng, l.Latitude, l.Longitude) > query.RadiusKm {
				continue
			}
		}
		matched = append(matched, l)
	}

	switch query.Sort {
	case SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	case SortRating:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Rating > matched[j].Rating })
	}

	return matched, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	listings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		if listings[i].ID == id {
			listing := listings[i]
			return &listing, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

// Quote prices a stay at the listing's base rent. Unknown room types or
// durations are validation failures, not server errors.
func (s *CatalogService) Quote(ctx context.Context, id int64, roomType domain.RoomType, duration domain.Duration) (domain.Quote, error) {
	listing, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Quote{}, err
	}

	violations := []string{}
	if !roomType.Valid() {
		violations = append(violations, "Valid room type is required")
	}
	if !duration.Valid() {
		violations = append(violations, "Valid duration is required")
	}
	if len(violations) > 0 {
		return domain.Quote{}, domain.NewValidationError(violations)
	}

	quote, _ := domain.PriceQuote(listing.Price, roomType, duration)
	return quote, nil
}

// load returns the catalog, seeding the store on first access and caching
// the result for the configured TTL.
func (s *CatalogService) load(ctx context.Context) ([]domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Sub(s.cachedAt) < s.cacheTTL {
		return s.cached, nil
	}

	listings, err := s.listings.Load(ctx)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = seedListings()
		if err := s.listings.Save(ctx, listings); err != nil {
			return nil, err
		}
	}

	s.cached = listings
	s.cachedAt = s.now()
	return listings, nil
}

// distanceKm is the haversine great-circle distance.
func distanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

var _ CatalogUseCase = (*CatalogService)(nil)
