package domain

// SecurityDeposit is added on top of every quote, refundable at move-out.
const SecurityDeposit = 1500

// Shared rooms rent cheaper per bed than singles.
var roomTypeMultipliers = map[RoomType]float64{
	RoomTypeSingle: 1.0,
	RoomTypeDouble: 0.7,
	RoomTypeTriple: 0.5,
}

// Longer stays earn a flat discount on the whole amount.
var durationDiscounts = map[Duration]float64{
	DurationOneMonth:     0,
	DurationThreeMonths:  0.05,
	DurationSixMonths:    0.10,
	DurationTwelveMonths: 0.15,
}

var durationMonths = map[Duration]int{
	DurationOneMonth:     1,
	DurationThreeMonths:  3,
	DurationSixMonths:    6,
	DurationTwelveMonths: 12,
}

// Quote is the priced breakdown the booking form presents before payment.
type Quote struct {
	BaseRent        float64  `json:"baseRent"`
	RoomType        RoomType `json:"roomType"`
	Duration        Duration `json:"duration"`
	MonthlyRent     float64  `json:"monthlyRent"`
	Months          int      `json:"months"`
	Discount        float64  `json:"discount"`
	SecurityDeposit float64  `json:"securityDeposit"`
	TotalAmount     float64  `json:"totalAmount"`
}

// PriceQuote computes the total amount for a stay: base rent scaled by the
// room-type multiplier, times the stay length, minus the duration discount,
// plus the security deposit. Returns false for an unknown room type or
// duration.
func PriceQuote(baseRent float64, roomType RoomType, duration Duration) (Quote, bool) {
	multiplier, ok := roomTypeMultipliers[roomType]
	if !ok {
		return Quote{}, false
	}
	discount, ok := durationDiscounts[duration]
	if !ok {
		return Quote{}, false
	}

	months := durationMonths[duration]
	monthly := baseRent * multiplier
	subtotal := monthly * float64(months)
	total := subtotal*(1-discount) + SecurityDeposit

	return Quote{
		BaseRent:        baseRent,
		RoomType:        roomType,
		Duration:        duration,
		MonthlyRent:     monthly,
		Months:          months,
		Discount:        subtotal * discount,
		SecurityDeposit: SecurityDeposit,
		TotalAmount:     total,
	}, true
}

// SharingPrice is the monthly per-bed rent for a room with the given bed
// count, derived from the base rent with the same multipliers the booking
// form uses. Counts above three price like triples.
func SharingPrice(baseRent float64, bedsInRoom int) float64 {
	switch bedsInRoom {
	case 1:
		return baseRent * roomTypeMultipliers[RoomTypeSingle]
	case 2:
		return baseRent * roomTypeMultipliers[RoomTypeDouble]
	default:
		return baseRent * roomTypeMultipliers[RoomTypeTriple]
	}
}
