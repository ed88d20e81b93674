package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
	"github.com/achilleaskar/TravelBridge-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultSearchRangeDays = 14

type AlternativesService struct {
	store  ports.InventoryStore
	logger logger.Logger
}

func NewAlternativesService(store ports.InventoryStore, logger logger.Logger) *AlternativesService {
	return &AlternativesService{
		store:  store,
		logger: logger,
	}
}

// FindAlternatives scans nearby date ranges of the same stay length
// when the requested dates have no availability. The whole scan window
// is prefetched in one store call; candidate ranges are evaluated
// against that snapshot with no further I/O.
func (s *AlternativesService) FindAlternatives(
	ctx context.Context,
	hotelCode string,
	checkIn, checkOut time.Time,
	party domain.PartyConfiguration,
	rangeDays int,
) ([]domain.AlternativeStay, error) {
	if rangeDays <= 0 {
		rangeDays = defaultSearchRangeDays
	}
	if err := party.Validate(); err != nil {
		return nil, err
	}

	stay, err := domain.NewDateRange(checkIn, checkOut)
	if err != nil {
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
	if len(roomTypes) == 0 {
		return []domain.AlternativeStay{}, nil
	}

	window := domain.DateRange{
		Start: stay.Start.AddDate(0, 0, -rangeDays),
		End:   stay.End.AddDate(0, 0, rangeDays),
	}

	ids := make([]int64, len(roomTypes))
	for i, rt := range roomTypes {
		ids[i] = rt.ID
	}
	inventory, err := s.store.GetInventoryForRoomTypes(ctx, ids, window)
	if err != nil {
		return nil, fmt.Errorf("load inventory window: %w", err)
	}

	indexed := make(map[int64]nightIndex, len(roomTypes))
	for _, rt := range roomTypes {
		indexed[rt.ID] = indexNights(inventory[rt.ID])
	}

	nights := stay.Nights()
	requestedRooms := party.TotalRooms()
	// Last start whose final night still lies inside the prefetched
	// window; later starts could never pass the coverage check.
	lastStart := window.End.AddDate(0, 0, -nights)

	results := []domain.AlternativeStay{}
	for start := window.Start; !start.After(lastStart); start = start.AddDate(0, 0, 1) {
		if start.Equal(stay.Start) {
			continue
		}

		candidate := domain.DateRange{Start: start, End: start.AddDate(0, 0, nights)}
		// First room type that fits wins for this candidate date.
		for _, rt := range roomTypes {
			price, _, ok := stayQuote(rt, indexed[rt.ID], candidate, requestedRooms)
			if !ok {
				continue
			}
			results = append(results, domain.AlternativeStay{Stay: candidate, TotalPrice: price})
			break
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Stay.Start.Before(results[j].Stay.Start)
	})

	s.logger.Info("alternative dates scanned",
		logger.String("hotel_code", hotelCode),
		logger.Int("range_days", rangeDays),
		logger.Int("alternatives", len(results)),
	)

	return results, nil
}
