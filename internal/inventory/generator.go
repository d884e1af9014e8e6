package inventory

import (
	"fmt"
	"math/rand"

	"github.com/sandeepnani0902/customer-hostel-booking/internal/domain"
)

// Generator synthesizes the bed/room topology for every listing in one
// pass. Room count per listing is fixed; the bed count of each room is
// drawn from the generator's random source at generation time and stays
// fixed for the life of the inventory.
type Generator struct {
	listings        int
	roomsPerListing int
	maxBedsPerRoom  int
}

func NewGenerator(listings, roomsPerListing, maxBedsPerRoom int) *Generator {
	return &Generator{
		listings:        listings,
		roomsPerListing: roomsPerListing,
		maxBedsPerRoom:  maxBedsPerRoom,
	}
}

// Generate builds a fresh inventory map for listings 1..N. The same seed
// produces the same topology. Bed ids count up from 1 within each listing,
// labels follow the R{room}B{position} scheme, every bed starts available.
func (g *Generator) Generate(seed int64) map[int64]*domain.Inventory {
	rng := rand.New(rand.NewSource(seed))

	inventories := make(map[int64]*domain.Inventory, g.listings)
	for id := int64(1); id <= int64(g.listings); id++ {
		inventories[id] = g.generateListing(rng)
	}
	return inventories
}

func (g *Generator) generateListing(rng *rand.Rand) *domain.Inventory {
	rooms := make([]domain.Room, 0, g.roomsPerListing)
	totalBeds := 0

	for roomNum := 1; roomNum <= g.roomsPerListing; roomNum++ {
		bedsInRoom := rng.Intn(g.maxBedsPerRoom) + 1
		room := domain.Room{
			RoomNumber: roomNum,
			BedsCount:  bedsInRoom,
			Beds:       make([]domain.Bed, 0, bedsInRoom),
		}

		for bedNum := 1; bedNum <= bedsInRoom; bedNum++ {
			totalBeds++
			room.Beds = append(room.Beds, domain.Bed{
				BedID:     totalBeds,
				BedNumber: fmt.Sprintf("R%dB%d", roomNum, bedNum),
			})
		}
		rooms = append(rooms, room)
	}

	return &domain.Inventory{
		TotalRooms:    g.roomsPerListing,
		TotalBeds:     totalBeds,
		AvailableBeds: totalBeds,
		Rooms:         rooms,
		BookedBeds:    []int{},
	}
}
