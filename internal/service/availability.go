package service

import (
	"context"
	"fmt"
	"time"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
	"github.com/achilleaskar/TravelBridge-sub001/internal/ratecode"
	"github.com/achilleaskar/TravelBridge-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AvailabilityService struct {
	store  ports.InventoryStore
	logger logger.Logger
}

func NewAvailabilityService(store ports.InventoryStore, logger logger.Logger) *AvailabilityService {
	return &AvailabilityService{
		store:  store,
		logger: logger,
	}
}

// CheckAvailability computes which room types of one hotel can host
// the party for the whole stay and at what price. A hotel with no
// matching room type answers with an empty room list, not an error.
func (s *AvailabilityService) CheckAvailability(
	ctx context.Context,
	hotelCode string,
	checkIn, checkOut time.Time,
	party domain.PartyConfiguration,
) (*domain.HotelAvailability, error) {
	if err := party.Validate(); err != nil {
		return nil, err
	}

	hotel, err := s.store.GetHotelByCode(ctx, hotelCode)
	if err != nil {
		return nil, fmt.Errorf("resolve hotel: %w", err)
	}

	roomTypes, err := s.store.GetRoomTypesByHotelID(ctx, hotel.ID, true)
	if err != nil {
		return nil, fmt.Errorf("load room types: %w", err)
	}

	stay := domain.DateRange{Start: domain.Day(checkIn), End: domain.Day(checkOut)}
	result := &domain.HotelAvailability{
		Hotel: hotel,
		Stay:  stay,
		Rooms: []domain.AvailableRoom{},
	}
	if len(roomTypes) == 0 {
		return result, nil
	}

	if stay.Nights() <= 0 {
		return nil, domain.ErrInvalidDates
	}

	ids := make([]int64, len(roomTypes))
	for i, rt := range roomTypes {
		ids[i] = rt.ID
	}

	inventory, err := s.store.GetInventoryForRoomTypes(ctx, ids, stay)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	requestedRooms := party.TotalRooms()
	for _, rt := range roomTypes {
		price, remaining, ok := stayQuote(rt, indexNights(inventory[rt.ID]), stay, requestedRooms)
		if !ok {
			continue
		}

		// One rate per room type per distinct occupancy: the first
		// party room defines the occupancy encoded into the rate id.
		result.Rooms = append(result.Rooms, domain.AvailableRoom{
			RoomTypeID: rt.ID,
			Code:       rt.Code,
			Name:       rt.Name,
			Rate: domain.RateOffer{
				RateID:         ratecode.Encode(rt.ID, party.Rooms[0]),
				TotalPrice:     price,
				RemainingRooms: remaining,
			},
		})
	}

	s.logger.Info("availability computed",
		logger.String("hotel_code", hotelCode),
		logger.Int("nights", stay.Nights()),
		logger.Int("room_types", len(roomTypes)),
		logger.Int("offered", len(result.Rooms)),
	)

	return result, nil
}
