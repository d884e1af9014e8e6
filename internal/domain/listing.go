package domain

type HostelType string

const (
	HostelTypeBoys     HostelType = "boys"
	HostelTypeGirls    HostelType = "girls"
	HostelTypeCoLiving HostelType = "co-living"
)

// Listing is a hostel/property with its own independent bed inventory.
// Price is the base monthly rent for a single room before multipliers
// and discounts.
type Listing struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Location  string     `json:"location"`
	Type      HostelType `json:"type"`
	Price     float64    `json:"price"`
	Rating    float64    `json:"rating"`
	Amenities []string   `json:"amenities"`
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
}
