package domain

// Bed occupancy is the only mutable piece of a generated topology.
// BedID is unique within one listing's inventory and never reused.
type Bed struct {
	BedID     int    `json:"bedId"`
	BedNumber string `json:"bedNumber"`
	IsBooked  bool   `json:"isBooked"`
}

type Room struct {
	RoomNumber int   `json:"roomNumber"`
	BedsCount  int   `json:"bedsCount"`
	Beds       []Bed `json:"beds"`
}

// Inventory is the full room/bed topology plus occupancy state for one
// listing. AvailableBeds is derived: TotalBeds - len(BookedBeds), never
// negative.
type Inventory struct {
	TotalRooms    int    `json:"totalRooms"`
	TotalBeds     int    `json:"totalBeds"`
	AvailableBeds int    `json:"availableBeds"`
	Rooms         []Room `json:"rooms"`
	BookedBeds    []int  `json:"bookedBeds"`
}

// FindBed returns the bed with the given id and its room, or nil when the
// id does not exist in this inventory.
func (inv *Inventory) FindBed(bedID int) (*Bed, *Room) {
	for i := range inv.Rooms {
		room := &inv.Rooms[i]
		for j := range room.Beds {
			if room.Beds[j].BedID == bedID {
				return &room.Beds[j], room
			}
		}
	}
	return nil, nil
}

// Recount recomputes the derived available-bed counter from the booked set.
func (inv *Inventory) Recount() {
	available := inv.TotalBeds - len(inv.BookedBeds)
	if available < 0 {
		available = 0
	}
	inv.AvailableBeds = available
}

// BedSlot is one row of the flat bed layout the UI renders: a bed with its
// room number attached, in room then bed order.
type BedSlot struct {
	BedID       int    `json:"bedId"`
	BedNumber   string `json:"bedNumber"`
	RoomNumber  int    `json:"roomNumber"`
	IsBooked    bool   `json:"isBooked"`
	IsAvailable bool   `json:"isAvailable"`
}

// BookingStats summarizes one listing's occupancy.
type BookingStats struct {
	TotalRooms    int `json:"totalRooms"`
	TotalBeds     int `json:"totalBeds"`
	AvailableBeds int `json:"availableBeds"`
	BookedBeds    int `json:"bookedBeds"`
	OccupancyRate int `json:"occupancyRate"`
}

// SharingOption aggregates rooms with the same bed count ("2-sharing" means
// rooms with two beds) together with the monthly price for that plan.
type SharingOption struct {
	Available int     `json:"available"`
	Total     int     `json:"total"`
	Price     float64 `json:"price"`
}
