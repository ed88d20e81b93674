package domain

// RateOffer is one sellable rate for a room type over a stay. A room
// type carries one rate per distinct occupancy, not per physical room.
type RateOffer struct {
	RateID         string  `json:"rate_id"`
	TotalPrice     float64 `json:"total_price"`
	RemainingRooms int     `json:"remaining_rooms"`
}

// AvailableRoom is a room type that can host the requested party for
// the whole stay.
type AvailableRoom struct {
	RoomTypeID int64     `json:"room_type_id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Rate       RateOffer `json:"rate"`
}

// HotelAvailability is the answer to "is this hotel available for
// these dates and this party". An empty Rooms slice is a legitimate
// result, not an error.
type HotelAvailability struct {
	Hotel *Hotel          `json:"hotel"`
	Stay  DateRange       `json:"stay"`
	Rooms []AvailableRoom `json:"rooms"`
}

// AlternativeStay is a nearby date range that can host the original
// party at the same stay length.
type AlternativeStay struct {
	Stay       DateRange `json:"stay"`
	TotalPrice float64   `json:"total_price"`
}

// BoundingBox is the geographic search area.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

type SortField string

const (
	SortByPrice      SortField = "price"
	SortByDistance   SortField = "distance"
	SortByRating     SortField = "rating"
	SortByPopularity SortField = "popularity"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SearchQuery drives the multi-hotel geographic search.
type SearchQuery struct {
	Box       BoundingBox
	Stay      DateRange
	Party     PartyConfiguration
	CenterLat float64
	CenterLon float64
	SortBy    SortField
	SortDir   SortDirection
}

// HotelOffer is one qualifying hotel with its cheapest stay price and
// the great-circle distance from the search center.
type HotelOffer struct {
	Hotel         *Hotel  `json:"hotel"`
	HotelRef      string  `json:"hotel_ref"`
	MinTotalPrice float64 `json:"min_total_price"`
	DistanceKm    float64 `json:"distance_km"`
}

// SearchSkip records a hotel that was dropped from the results because
// its lookup failed. Failures are isolated per hotel; they never abort
// the whole search.
type SearchSkip struct {
	HotelCode string `json:"hotel_code"`
	Reason    string `json:"reason"`
}

type SearchResult struct {
	Offers  []HotelOffer `json:"offers"`
	Skipped []SearchSkip `json:"skipped,omitempty"`
}
