package domain

// Hotel is a self-managed property. Created by administrative
// provisioning; read-only inside this service.
type Hotel struct {
	ID           int64   `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	Stars        int     `json:"stars"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime string  `json:"check_out_time"`
	Active       bool    `json:"active"`
}

// RoomType belongs to exactly one hotel; the relation is carried as a
// plain foreign key, entities never hold live references to each other.
type RoomType struct {
	ID                int64   `json:"id"`
	HotelID           int64   `json:"hotel_id"`
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	MaxAdults         int     `json:"max_adults"`
	MaxChildren       int     `json:"max_children"`
	MaxOccupancy      int     `json:"max_occupancy"`
	BasePricePerNight float64 `json:"base_price_per_night"`
	DefaultTotalUnits int     `json:"default_total_units"`
	Active            bool    `json:"active"`
}
