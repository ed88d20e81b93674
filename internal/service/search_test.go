package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
	"github.com/achilleaskar/TravelBridge-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var searchBox = domain.BoundingBox{MinLat: -1, MaxLat: 1, MinLon: -1, MaxLon: 1}

// near is ~2 km from the center, far is ~10 km; far is cheaper.
var (
	nearHotel = &domain.Hotel{ID: 1, Code: "NEAR", Name: "Near & Pricey", Latitude: 0.018, Longitude: 0, Stars: 3, Active: true}
	farHotel  = &domain.Hotel{ID: 2, Code: "FAR", Name: "Far & Cheap", Latitude: 0.09, Longitude: 0, Stars: 5, Active: true}
)

func searchQuery(sortBy domain.SortField, dir domain.SortDirection) domain.SearchQuery {
	return domain.SearchQuery{
		Box:     searchBox,
		Stay:    domain.DateRange{Start: date(2026, time.July, 15), End: date(2026, time.July, 16)},
		Party:   onePersonParty(),
		SortBy:  sortBy,
		SortDir: dir,
	}
}

func expectHotelQuote(store *mocks.MockInventoryStore, hotel *domain.Hotel, roomTypeID int64, price float64) {
	rt := &domain.RoomType{ID: roomTypeID, HotelID: hotel.ID, BasePricePerNight: price}
	store.EXPECT().GetRoomTypesByHotelID(mock.Anything, hotel.ID, true).Return([]*domain.RoomType{rt}, nil)
	store.EXPECT().GetInventoryForRoomTypes(mock.Anything, []int64{roomTypeID}, mock.Anything).Return(map[int64][]domain.InventoryNight{
		roomTypeID: openNights(roomTypeID, date(2026, time.July, 15), 1, 3),
	}, nil)
}

func TestSearch_SortByDistance(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewSearchService(store, newTestLogger(t))

	store.EXPECT().SearchHotelsInBoundingBox(mock.Anything, searchBox, true).Return([]*domain.Hotel{farHotel, nearHotel}, nil)
	expectHotelQuote(store, farHotel, 20, 80)
	expectHotelQuote(store, nearHotel, 10, 100)

	result, err := svc.Search(context.Background(), searchQuery(domain.SortByDistance, domain.SortAsc))

	require.NoError(t, err)
	require.Len(t, result.Offers, 2)
	assert.Equal(t, "NEAR", result.Offers[0].Hotel.Code)
	assert.Equal(t, "FAR", result.Offers[1].Hotel.Code)
	assert.InDelta(t, 2.0, result.Offers[0].DistanceKm, 0.1)
	assert.InDelta(t, 10.0, result.Offers[1].DistanceKm, 0.1)
}

func TestSearch_SortByPrice(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewSearchService(store, newTestLogger(t))

	store.EXPECT().SearchHotelsInBoundingBox(mock.Anything, searchBox, true).Return([]*domain.Hotel{nearHotel, farHotel}, nil)
	expectHotelQuote(store, nearHotel, 10, 100)
	expectHotelQuote(store, farHotel, 20, 80)

	result, err := svc.Search(context.Background(), searchQuery(domain.SortByPrice, domain.SortAsc))

	require.NoError(t, err)
	require.Len(t, result.Offers, 2)
	assert.Equal(t, "FAR", result.Offers[0].Hotel.Code)
	assert.Equal(t, 80.0, result.Offers[0].MinTotalPrice)
	assert.Equal(t, "NEAR", result.Offers[1].Hotel.Code)
}

func TestSearch_SortByRatingDesc(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewSearchService(store, newTestLogger(t))

	store.EXPECT().SearchHotelsInBoundingBox(mock.Anything, searchBox, true).Return([]*domain.Hotel{nearHotel, farHotel}, nil)
	expectHotelQuote(store, nearHotel, 10, 100)
	expectHotelQuote(store, farHotel, 20, 80)

	result, err := svc.Search(context.Background(), searchQuery(domain.SortByRating, domain.SortDesc))

	require.NoError(t, err)
	require.Len(t, result.Offers, 2)
	assert.Equal(t, 5, result.Offers[0].Hotel.Stars)
	assert.Equal(t, 3, result.Offers[1].Hotel.Stars)
}

func TestSearch_DefaultSortIsDistanceThenPrice(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewSearchService(store, newTestLogger(t))

	twin := &domain.Hotel{ID: 3, Code: "TWIN", Latitude: nearHotel.Latitude, Longitude: nearHotel.Longitude, Active: true}

	store.EXPECT().SearchHotelsInBoundingBox(mock.Anything, searchBox, true).Return([]*domain.Hotel{nearHotel, twin, farHotel}, nil)
	expectHotelQuote(store, nearHotel, 10, 100)
	expectHotelQuote(store, twin, 30, 70)
	expectHotelQuote(store, farHotel, 20, 80)

	result, err := svc.Search(context.Background(), searchQuery(domain.SortByPopularity, ""))

	require.NoError(t, err)
	require.Len(t, result.Offers, 3)
	// Same distance: the cheaper one first; the far hotel last despite
	// being cheaper than the near one.
	assert.Equal(t, "TWIN", result.Offers[0].Hotel.Code)
	assert.Equal(t, "NEAR", result.Offers[1].Hotel.Code)
	assert.Equal(t, "FAR", result.Offers[2].Hotel.Code)
}

func TestSearch_CheapestRoomTypePricesTheHotel(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewSearchService(store, newTestLogger(t))

	suite := &domain.RoomType{ID: 10, HotelID: 1, BasePricePerNight: 300}
	double := &domain.RoomType{ID: 11, HotelID: 1, BasePricePerNight: 120}

	store.EXPECT().SearchHotelsInBoundingBox(mock.Anything, searchBox, true).Return([]*domain.Hotel{nearHotel}, nil)
	store.EXPECT().GetRoomTypesByHotelID(mock.Anything, int64(1), true).Return([]*domain.RoomType{suite, double}, nil)
	store.EXPECT().GetInventoryForRoomTypes(mock.Anything, []int64{10, 11}, mock.Anything).Return(map[int64][]domain.InventoryNight{
		10: openNights(10, date(2026, time.July, 15), 1, 2),
		11: openNights(11, date(2026, time.July, 15), 1, 2),
	}, nil)

	result, err := svc.Search(context.Background(), searchQuery(domain.SortByPrice, domain.SortAsc))

	require.NoError(t, err)
	require.Len(t, result.Offers, 1)
	assert.Equal(t, 120.0, result.Offers[0].MinTotalPrice)
}

func TestSearch_HotelWithoutAvailabilityIsExcluded(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewSearchService(store, newTestLogger(t))

	rt := &domain.RoomType{ID: 10, HotelID: 1, BasePricePerNight: 100}
	store.EXPECT().SearchHotelsInBoundingBox(mock.Anything, searchBox, true).Return([]*domain.Hotel{nearHotel}, nil)
	store.EXPECT().GetRoomTypesByHotelID(mock.Anything, int64(1), true).Return([]*domain.RoomType{rt}, nil)
	store.EXPECT().GetInventoryForRoomTypes(mock.Anything, []int64{10}, mock.Anything).Return(map[int64][]domain.InventoryNight{
		10: {night(10, date(2026, time.July, 15), 2, 0, 0, 2)},
	}, nil)

	result, err := svc.Search(context.Background(), searchQuery(domain.SortByPrice, domain.SortAsc))

	require.NoError(t, err)
	assert.Empty(t, result.Offers)
	assert.Empty(t, result.Skipped)
}

func TestSearch_PerHotelFailureIsIsolated(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewSearchService(store, newTestLogger(t))

	store.EXPECT().SearchHotelsInBoundingBox(mock.Anything, searchBox, true).Return([]*domain.Hotel{farHotel, nearHotel}, nil)
	store.EXPECT().GetRoomTypesByHotelID(mock.Anything, farHotel.ID, true).Return(nil, errors.New("timeout"))
	expectHotelQuote(store, nearHotel, 10, 100)

	result, err := svc.Search(context.Background(), searchQuery(domain.SortByPrice, domain.SortAsc))

	require.NoError(t, err)
	require.Len(t, result.Offers, 1)
	assert.Equal(t, "NEAR", result.Offers[0].Hotel.Code)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "FAR", result.Skipped[0].HotelCode)
	assert.Contains(t, result.Skipped[0].Reason, "timeout")
}

func TestSearch_InvalidDatesFailBeforeIteration(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewSearchService(store, newTestLogger(t))

	q := searchQuery(domain.SortByPrice, domain.SortAsc)
	q.Stay.End = q.Stay.Start

	_, err := svc.Search(context.Background(), q)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDates)
}

func TestSearch_BoxQueryError(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewSearchService(store, newTestLogger(t))

	store.EXPECT().SearchHotelsInBoundingBox(mock.Anything, searchBox, true).Return(nil, errors.New("db down"))

	_, err := svc.Search(context.Background(), searchQuery(domain.SortByPrice, domain.SortAsc))

	require.Error(t, err)
}
