package model

// ParkingLot is a generated lot with per-slot occupancy fractions and prices.
// Series are shared read-only once generated.
type ParkingLot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  LatLng    `json:"position"`
	Capacity  int       `json:"capacity"`
	BasePrice int       `json:"base_price"`
	Occupancy []float64 `json:"occupancy"`
	Price     []int     `json:"price"`
	IsCore    bool      `json:"is_core"`
}

// ParkingValue is the occupancy and price of a lot at one slot.
type ParkingValue struct {
	Occupancy float64 `json:"occupancy"`
	Price     int     `json:"price"`
}

// LotView is a lot as displayed at one slot, before and after the scenario.
type LotView struct {
	ParkingLot
	BaseOccupancy  float64 `json:"base_occupancy"`
	BaseSlotPrice  int     `json:"base_slot_price"`
	OccupancyValue float64 `json:"occupancy_value"`
	PriceValue     int     `json:"price_value"`
}
