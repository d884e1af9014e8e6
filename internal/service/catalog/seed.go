package catalog

import "github.com/sandeepnani0902/customer-hostel-booking/internal/domain"

// seedListings is the default catalog written to the store on first access.
// Listing ids line up with the generated inventories (1..N).
func seedListings() []domain.Listing {
	return []domain.Listing{
		{ID: 1, Name: "Sunrise Boys Hostel", Location: "Madhapur", Type: domain.HostelTypeBoys, Price: 8500, Rating: 4.5,
			Amenities: []string{"wifi", "laundry", "food", "power_backup"}, Latitude: 17.4483, Longitude: 78.3915},
		{ID: 2, Name: "Green Valley PG", Location: "Gachibowli", Type: domain.HostelTypeBoys, Price: 7000, Rating: 4.2,
			Amenities: []string{"wifi", "water", "security"}, Latitude: 17.4401, Longitude: 78.3489},
		{ID: 3, Name: "Lakshmi Womens Hostel", Location: "Ameerpet", Type: domain.HostelTypeGirls, Price: 6500, Rating: 4.0,
			Amenities: []string{"wifi", "food", "security", "laundry"}, Latitude: 17.4375, Longitude: 78.4483},
		{ID: 4, Name: "Urban Nest Co-Living", Location: "Hitech City", Type: domain.HostelTypeCoLiving, Price: 12000, Rating: 4.7,
			Amenities: []string{"wifi", "ac", "tv", "laundry", "food"}, Latitude: 17.4435, Longitude: 78.3772},
		{ID: 5, Name: "Sri Sai Boys PG", Location: "Kukatpally", Type: domain.HostelTypeBoys, Price: 5500, Rating: 3.8,
			Amenities: []string{"wifi", "water"}, Latitude: 17.4849, Longitude: 78.4138},
		{ID: 6, Name: "Comfort Stay Womens PG", Location: "Kondapur", Type: domain.HostelTypeGirls, Price: 9000, Rating: 4.4,
			Amenities: []string{"wifi", "ac", "food", "security"}, Latitude: 17.4647, Longitude: 78.3639},
		{ID: 7, Name: "Metro Heights Hostel", Location: "SR Nagar", Type: domain.HostelTypeBoys, Price: 6000, Rating: 3.9,
			Amenities: []string{"wifi", "power_backup", "laundry"}, Latitude: 17.4411, Longitude: 78.4438},
		{ID: 8, Name: "Elite Co-Living Spaces", Location: "Jubilee Hills", Type: domain.HostelTypeCoLiving, Price: 15000, Rating: 4.8,
			Amenities: []string{"wifi", "ac", "tv", "food", "laundry", "security"}, Latitude: 17.4326, Longitude: 78.4071},
		{ID: 9, Name: "Annapurna Womens Hostel", Location: "Dilsukhnagar", Type: domain.HostelTypeGirls, Price: 5000, Rating: 3.7,
			Amenities: []string{"wifi", "water", "food"}, Latitude: 17.3688, Longitude: 78.5247},
		{ID: 10, Name: "Cityscape Boys Hostel", Location: "Begumpet", Type: domain.HostelTypeBoys, Price: 7500, Rating: 4.1,
			Amenities: []string{"wifi", "laundry", "security", "study_table"}, Latitude: 17.4440, Longitude: 78.4664},
	}
}
