package domain

import "time"

// InventoryNight is one row per room type per calendar night, keyed by
// (RoomTypeID, Night). Counters must satisfy, after every mutation:
//
//	TotalUnits >= 0, ClosedUnits >= 0, HeldUnits >= 0, ConfirmedUnits >= 0
//	ClosedUnits + HeldUnits + ConfirmedUnits <= TotalUnits
//
// Writes that would break the invariant are rejected, never clamped.
type InventoryNight struct {
	RoomTypeID     int64     `json:"room_type_id"`
	Night          time.Time `json:"night"`
	TotalUnits     int       `json:"total_units"`
	ClosedUnits    int       `json:"closed_units"`
	HeldUnits      int       `json:"held_units"`
	ConfirmedUnits int       `json:"confirmed_units"`
	PricePerNight  *float64  `json:"price_per_night,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AvailableUnits is derived, never stored.
func (n *InventoryNight) AvailableUnits() int {
	return n.TotalUnits - n.ClosedUnits - n.HeldUnits - n.ConfirmedUnits
}

// Price returns the sellable price for this night, falling back to the
// room type's base price when no per-night override is set.
func (n *InventoryNight) Price(basePerNight float64) float64 {
	if n.PricePerNight != nil {
		return *n.PricePerNight
	}
	return basePerNight
}
