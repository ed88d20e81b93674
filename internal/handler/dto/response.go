package dto

import "github.com/achilleaskar/TravelBridge-sub001/internal/domain"

type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

type RateOfferResponse struct {
	RateID         string  `json:"rate_id"`
	TotalPrice     float64 `json:"total_price"`
	RemainingRooms int     `json:"remaining_rooms"`
}

type AvailableRoomResponse struct {
	RoomTypeID int64             `json:"room_type_id"`
	Code       string            `json:"code"`
	Name       string            `json:"name"`
	Rate       RateOfferResponse `json:"rate"`
}

type AvailabilityResponse struct {
	HotelID   string                  `json:"hotel_id"`
	HotelName string                  `json:"hotel_name"`
	CheckIn   string                  `json:"check_in"`
	CheckOut  string                  `json:"check_out"`
	Nights    int                     `json:"nights"`
	Rooms     []AvailableRoomResponse `json:"rooms"`
}

type AlternativeStayResponse struct {
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
}

type AlternativesResponse struct {
	HotelID      string                    `json:"hotel_id"`
	Alternatives []AlternativeStayResponse `json:"alternatives"`
}

type HotelOfferResponse struct {
	HotelID       string  `json:"hotel_id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Stars         int     `json:"stars"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	MinTotalPrice float64 `json:"min_total_price"`
	DistanceKm    float64 `json:"distance_km"`
}

type SearchSkipResponse struct {
	HotelID string `json:"hotel_id"`
	Reason  string `json:"reason"`
}

type SearchResponse struct {
	Offers  []HotelOfferResponse `json:"offers"`
	Skipped []SearchSkipResponse `json:"skipped,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

func ToAvailabilityResponse(a *domain.HotelAvailability) AvailabilityResponse {
	ref := domain.HotelRef{Source: domain.SourceOwned, Code: a.Hotel.Code}
	resp := AvailabilityResponse{
		HotelID:   ref.String(),
		HotelName: a.Hotel.Name,
		CheckIn:   a.Stay.Start.Format(DateLayout),
		CheckOut:  a.Stay.End.Format(DateLayout),
		Nights:    a.Stay.Nights(),
		Rooms:     make([]AvailableRoomResponse, 0, len(a.Rooms)),
	}
	for _, r := range a.Rooms {
		resp.Rooms = append(resp.Rooms, AvailableRoomResponse{
			RoomTypeID: r.RoomTypeID,
			Code:       r.Code,
			Name:       r.Name,
			Rate: RateOfferResponse{
				RateID:         r.Rate.RateID,
				TotalPrice:     r.Rate.TotalPrice,
				RemainingRooms: r.Rate.RemainingRooms,
			},
		})
	}
	return resp
}

func ToAlternativesResponse(hotelID string, stays []domain.AlternativeStay) AlternativesResponse {
	resp := AlternativesResponse{
		HotelID:      hotelID,
		Alternatives: make([]AlternativeStayResponse, 0, len(stays)),
	}
	for _, alt := range stays {
		resp.Alternatives = append(resp.Alternatives, AlternativeStayResponse{
			CheckIn:    alt.Stay.Start.Format(DateLayout),
			CheckOut:   alt.Stay.End.Format(DateLayout),
			Nights:     alt.Stay.Nights(),
			TotalPrice: alt.TotalPrice,
		})
	}
	return resp
}

func ToSearchResponse(res *domain.SearchResult) SearchResponse {
	resp := SearchResponse{
		Offers: make([]HotelOfferResponse, 0, len(res.Offers)),
	}
	for _, o := range res.Offers {
		resp.Offers = append(resp.Offers, HotelOfferResponse{
			HotelID:       o.HotelRef,
			Name:          o.Hotel.Name,
			City:          o.Hotel.City,
			Country:       o.Hotel.Country,
			Stars:         o.Hotel.Stars,
			Latitude:      o.Hotel.Latitude,
			Longitude:     o.Hotel.Longitude,
			MinTotalPrice: o.MinTotalPrice,
			DistanceKm:    o.DistanceKm,
		})
	}
	for _, s := range res.Skipped {
		ref := domain.HotelRef{Source: domain.SourceOwned, Code: s.HotelCode}
		resp.Skipped = append(resp.Skipped, SearchSkipResponse{
			HotelID: ref.String(),
			Reason:  s.Reason,
		})
	}
	return resp
}
