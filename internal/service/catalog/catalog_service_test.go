package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepnani0902/customer-hostel-booking/internal/domain"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/repository"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/store"
)

func newTestCatalog() (*CatalogService, repository.ListingRepository) {
	s := store.NewMemoryStore()
	repo := repository.NewListingRepository(s)
	return NewCatalogService(repo, time.Minute), repo
}

func TestCatalog_List_SeedsOnFirstAccess(t *testing.T) {
	service, repo := newTestCatalog()
	ctx := context.Background()

	listings, err := service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listings, len(seedListings()))

	persisted, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, listings, persisted)
}

func TestCatalog_Search(t *testing.T) {
	service, _ := newTestCatalog()
	ctx := context.Background()

	t.Run("term matches name and location case-insensitively", func(t *testing.T) {
		byName, err := service.Search(ctx, SearchQuery{Term: "sunrise"})
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "Sunrise Boys Hostel", byName[0].Name)

		byLocation, err := service.Search(ctx, SearchQuery{Term: "MADHAPUR"})
		require.NoError(t, err)
		require.Len(t, byLocation, 1)
		assert.Equal(t, "Madhapur", byLocation[0].Location)
	})

	t.Run("type filter", func(t *testing.T) {
		girls, err := service.Search(ctx, SearchQuery{Type: domain.HostelTypeGirls})
		require.NoError(t, err)
		require.NotEmpty(t, girls)
		for _, l := range girls {
			assert.Equal(t, domain.HostelTypeGirls, l.Type)
		}
	})

	t.Run("price range", func(t *testing.T) {
		matched, err := service.Search(ctx, SearchQuery{MinPrice: 7000, MaxPrice: 9000})
		require.NoError(t, err)
		require.NotEmpty(t, matched)
		for _, l := range matched {
			assert.GreaterOrEqual(t, l.Price, 7000.0)
			assert.LessOrEqual(t, l.Price, 9000.0)
		}
	})

	t.Run("sort by price ascending", func(t *testing.T) {
		sorted, err := service.Search(ctx, SearchQuery{Sort: SortPriceAsc})
		require.NoError(t, err)
		for i := 1; i < len(sorted); i++ {
			assert.LessOrEqual(t, sorted[i-1].Price, sorted[i].Price)
		}
	})

	t.Run("sort by rating descending", func(t *testing.T) {
		sorted, err := service.Search(ctx, SearchQuery{Sort: SortRating})
		require.NoError(t, err)
		for i := 1; i < len(sorted); i++ {
			assert.GreaterOrEqual(t, sorted[i-1].Rating, sorted[i].Rating)
		}
	})

	t.Run("nearby search", func(t *testing.T) {
		// Madhapur coordinates; a 2km radius excludes Dilsukhnagar etc.
		near, err := service.Search(ctx, SearchQuery{Lat: 17.4483, Lng: 78.3915, RadiusKm: 2})
		require.NoError(t, err)
		require.NotEmpty(t, near)
		all, err := service.List(ctx)
		require.NoError(t, err)
		assert.Less(t, len(near), len(all))
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		matched, err := service.Search(ctx, SearchQuery{Term: "does-not-exist"})
		require.NoError(t, err)
		assert.Empty(t, matched)
	})
}

func TestCatalog_GetByID(t *testing.T) {
	service, _ := newTestCatalog()
	ctx := context.Background()

	listing, err := service.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), listing.ID)

	_, err = service.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestCatalog_Quote(t *testing.T) {
	service, _ := newTestCatalog()
	ctx := context.Background()

	t.Run("single one month", func(t *testing.T) {
		// listing 1 rents at 8500
		quote, err := service.Quote(ctx, 1, domain.RoomTypeSingle, domain.DurationOneMonth)
		require.NoError(t, err)
		assert.Equal(t, 8500.0, quote.MonthlyRent)
		assert.Equal(t, 10000.0, quote.TotalAmount)
	})

	t.Run("triple twelve months gets the deepest discount", func(t *testing.T) {
		quote, err := service.Quote(ctx, 1, domain.RoomTypeTriple, domain.DurationTwelveMonths)
		require.NoError(t, err)
		assert.InDelta(t, 4250, quote.MonthlyRent, 0.001)
		assert.InDelta(t, 4250*12*0.85+1500, quote.TotalAmount, 0.001)
	})

	t.Run("invalid plan is a validation error", func(t *testing.T) {
		_, err := service.Quote(ctx, 1, "penthouse", "2")

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Violations, 2)
	})

	t.Run("unknown listing", func(t *testing.T) {
		_, err := service.Quote(ctx, 999, domain.RoomTypeSingle, domain.DurationOneMonth)
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})
}

func TestCatalog_CachesForTTL(t *testing.T) {
	service, repo := newTestCatalog()
	ctx := context.Background()

	now := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	first, err := service.List(ctx)
	require.NoError(t, err)

	// Changing the store behind the cache is invisible until the TTL lapses.
	require.NoError(t, repo.Save(ctx, []domain.Listing{{ID: 42, Name: "New Place"}}))

	cached, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	now = now.Add(2 * time.Minute)
	refreshed, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, refreshed, 1)
	assert.Equal(t, int64(42), refreshed[0].ID)
}
