package dto

import "github.com/achilleaskar/TravelBridge-sub001/internal/domain"

// Dates travel as plain calendar days; ranges are half-open, check_out
// is never consumed as a night.
const DateLayout = "2006-01-02"

type PartyRoomRequest struct {
	Adults       int   `json:"adults" binding:"required,gte=1"`
	ChildrenAges []int `json:"children_ages"`
}

type AvailabilityRequest struct {
	CheckIn  string             `json:"check_in" binding:"required"`
	CheckOut string             `json:"check_out" binding:"required"`
	Rooms    []PartyRoomRequest `json:"rooms" binding:"required,min=1,dive"`
}

type AlternativesRequest struct {
	CheckIn   string             `json:"check_in" binding:"required"`
	CheckOut  string             `json:"check_out" binding:"required"`
	Rooms     []PartyRoomRequest `json:"rooms" binding:"required,min=1,dive"`
	RangeDays int                `json:"range_days"`
}

type SearchRequest struct {
	MinLat    float64            `json:"min_lat"`
	MaxLat    float64            `json:"max_lat"`
	MinLon    float64            `json:"min_lon"`
	MaxLon    float64            `json:"max_lon"`
	CenterLat float64            `json:"center_lat"`
	CenterLon float64            `json:"center_lon"`
	CheckIn   string             `json:"check_in" binding:"required"`
	CheckOut  string             `json:"check_out" binding:"required"`
	Rooms     []PartyRoomRequest `json:"rooms" binding:"required,min=1,dive"`
	SortBy    string             `json:"sort_by"`
	SortDir   string             `json:"sort_dir"`
}

type EnsureInventoryRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	Nights    int    `json:"nights" binding:"required,gt=0"`
}

type UpdateCapacityRequest struct {
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	TotalUnits *int   `json:"total_units" binding:"required"`
}

type UpdateClosedUnitsRequest struct {
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	ClosedUnits *int   `json:"closed_units" binding:"required"`
}

func ToPartyConfiguration(rooms []PartyRoomRequest) domain.PartyConfiguration {
	party := domain.PartyConfiguration{Rooms: make([]domain.PartyRoom, 0, len(rooms))}
	for _, r := range rooms {
		party.Rooms = append(party.Rooms, domain.PartyRoom{
			Adults:       r.Adults,
			ChildrenAges: r.ChildrenAges,
		})
	}
	return party
}
