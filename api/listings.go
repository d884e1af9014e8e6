package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sandeepnani0902/customer-hostel-booking/internal/domain"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/service/booking"
	"github.com/sandeepnani0902/customer-hostel-booking/internal/service/catalog"
)

type ListingHandler struct {
	catalog  catalog.CatalogUseCase
	bookings booking.BookingUseCase
}

func NewListingHandler(catalogService catalog.CatalogUseCase, bookingService booking.BookingUseCase) *ListingHandler {
	return &ListingHandler{catalog: catalogService, bookings: bookingService}
}

func (h *ListingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.search)
	router.GET("/:id", h.get)
	router.GET("/:id/layout", h.layout)
	router.GET("/:id/stats", h.stats)
	router.GET("/:id/sharing", h.sharing)
	router.GET("/:id/quote", h.quote)
}

func (h *ListingHandler) search(c *gin.Context) {
	query := catalog.SearchQuery{
		Term:     c.Query("q"),
		Type:     domain.HostelType(c.Query("type")),
		MinPrice: queryFloat(c, "min_price"),
		MaxPrice: queryFloat(c, "max_price"),
		Sort:     c.Query("sort"),
		Lat:      queryFloat(c, "lat"),
		Lng:      queryFloat(c, "lng"),
		RadiusKm: queryFloat(c, "radius_km"),
	}

	listings, err := h.catalog.Search(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) get(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	listing, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) layout(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	layout, err := h.bookings.GenerateBedLayout(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, layout)
}

func (h *ListingHandler) stats(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	stats, err := h.bookings.GetBookingStats(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ListingHandler) sharing(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	listing, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	summary, err := h.bookings.SharingSummary(c.Request.Context(), id, listing.Price)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ListingHandler) quote(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	quote, err := h.catalog.Quote(c.Request.Context(), id,
		domain.RoomType(c.Query("room_type")), domain.Duration(c.Query("duration")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func listingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func queryFloat(c *gin.Context, name string) float64 {
	value, err := strconv.ParseFloat(c.Query(name), 64)
	if err != nil {
		return 0
	}
	return value
}
