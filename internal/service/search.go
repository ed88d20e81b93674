package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
	"github.com/achilleaskar/TravelBridge-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SearchService struct {
	store  ports.InventoryStore
	logger logger.Logger
}

func NewSearchService(store ports.InventoryStore, logger logger.Logger) *SearchService {
	return &SearchService{
		store:  store,
		logger: logger,
	}
}

// Search finds hotels inside a bounding box that can host the party
// over the stay, priced at their cheapest qualifying room type and
// ranked by the requested sort. One hotel's lookup failure drops that
// hotel into the skip list; it never aborts the whole search.
func (s *SearchService) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error) {
	if err := q.Party.Validate(); err != nil {
		return nil, err
	}
	if q.Stay.Nights() <= 0 {
		return nil, domain.ErrInvalidDates
	}

	hotels, err := s.store.SearchHotelsInBoundingBox(ctx, q.Box, true)
	if err != nil {
		return nil, fmt.Errorf("search hotels: %w", err)
	}

	requestedRooms := q.Party.TotalRooms()
	result := &domain.SearchResult{Offers: []domain.HotelOffer{}}

	for _, hotel := range hotels {
		offer, err := s.quoteHotel(ctx, hotel, q.Stay, requestedRooms)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Error("hotel lookup failed during area search",
				logger.String("hotel_code", hotel.Code),
				logger.String("error", err.Error()),
			)
			result.Skipped = append(result.Skipped, domain.SearchSkip{
				HotelCode: hotel.Code,
				Reason:    err.Error(),
			})
			continue
		}
		if offer == nil {
			continue
		}

		offer.DistanceKm = haversineKm(q.CenterLat, q.CenterLon, hotel.Latitude, hotel.Longitude)
		result.Offers = append(result.Offers, *offer)
	}

	sortOffers(result.Offers, q.SortBy, q.SortDir)

	s.logger.Info("area search finished",
		logger.Int("hotels_in_box", len(hotels)),
		logger.Int("offers", len(result.Offers)),
		logger.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}

// quoteHotel returns nil without error when no room type qualifies.
func (s *SearchService) quoteHotel(
	ctx context.Context,
	hotel *domain.Hotel,
	stay domain.DateRange,
	requestedRooms int,
) (*domain.HotelOffer, error) {
	roomTypes, err := s.store.GetRoomTypesByHotelID(ctx, hotel.ID, true)
	if err != nil {
		return nil, fmt.Errorf("load room types: %w", err)
	}
	if len(roomTypes) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(roomTypes))
	for i, rt := range roomTypes {
		ids[i] = rt.ID
	}
	inventory, err := s.store.GetInventoryForRoomTypes(ctx, ids, stay)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	minPrice := -1.0
	for _, rt := range roomTypes {
		price, _, ok := stayQuote(rt, indexNights(inventory[rt.ID]), stay, requestedRooms)
		if ok && (minPrice < 0 || price < minPrice) {
			minPrice = price
		}
	}
	if minPrice < 0 {
		return nil, nil
	}

	ref := domain.HotelRef{Source: domain.SourceOwned, Code: hotel.Code}
	return &domain.HotelOffer{
		Hotel:         hotel,
		HotelRef:      ref.String(),
		MinTotalPrice: minPrice,
	}, nil
}

func sortOffers(offers []domain.HotelOffer, field domain.SortField, dir domain.SortDirection) {
	var less func(a, b *domain.HotelOffer) bool
	switch field {
	case domain.SortByPrice:
		less = func(a, b *domain.HotelOffer) bool { return a.MinTotalPrice < b.MinTotalPrice }
	case domain.SortByDistance:
		less = func(a, b *domain.HotelOffer) bool { return a.DistanceKm < b.DistanceKm }
	case domain.SortByRating:
		less = func(a, b *domain.HotelOffer) bool { return a.Hotel.Stars < b.Hotel.Stars }
	default:
		// Popularity and anything unspecified: fixed two-key sort,
		// ascending distance then ascending price.
		sort.SliceStable(offers, func(i, j int) bool {
			if offers[i].DistanceKm != offers[j].DistanceKm {
				return offers[i].DistanceKm < offers[j].DistanceKm
			}
			return offers[i].MinTotalPrice < offers[j].MinTotalPrice
		})
		return
	}

	sort.SliceStable(offers, func(i, j int) bool {
		if dir == domain.SortDesc {
			return less(&offers[j], &offers[i])
		}
		return less(&offers[i], &offers[j])
	})
}
