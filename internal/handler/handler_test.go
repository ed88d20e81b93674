package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
	"github.com/achilleaskar/TravelBridge-sub001/internal/handler/dto"
	hmocks "github.com/achilleaskar/TravelBridge-sub001/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockAvailabilitySvc, *hmocks.MockAlternativesSvc, *hmocks.MockSearchSvc, *hmocks.MockCapacitySvc, http.Handler) {
	t.Helper()
	availabilitySvc := hmocks.NewMockAvailabilitySvc(t)
	alternativesSvc := hmocks.NewMockAlternativesSvc(t)
	searchSvc := hmocks.NewMockSearchSvc(t)
	capacitySvc := hmocks.NewMockCapacitySvc(t)

	h := NewHandler(availabilitySvc, alternativesSvc, searchSvc, capacitySvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/hotels/:id/availability", h.CheckAvailability)
		api.POST("/hotels/:id/alternatives", h.FindAlternatives)
		api.POST("/search", h.SearchHotels)
		api.POST("/room-types/:id/inventory", h.EnsureInventory)
		api.PUT("/room-types/:id/capacity", h.UpdateCapacity)
		api.PUT("/room-types/:id/closed-units", h.UpdateClosedUnits)
	}

	return availabilitySvc, alternativesSvc, searchSvc, capacitySvc, r
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func availabilityBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(dto.AvailabilityRequest{
		CheckIn:  "2026-07-10",
		CheckOut: "2026-07-13",
		Rooms:    []dto.PartyRoomRequest{{Adults: 2}},
	})
	require.NoError(t, err)
	return body
}

// --- Availability ---

func TestHandler_CheckAvailability_Success(t *testing.T) {
	availabilitySvc, _, _, _, r := setupRouter(t)

	availability := &domain.HotelAvailability{
		Hotel: &domain.Hotel{ID: 7, Code: "ATH001", Name: "Acropolis View"},
		Stay:  domain.DateRange{Start: day(2026, time.July, 10), End: day(2026, time.July, 13)},
		Rooms: []domain.AvailableRoom{
			{
				RoomTypeID: 5,
				Code:       "DBL",
				Name:       "Double Room",
				Rate:       domain.RateOffer{RateID: "rt_5-2", TotalPrice: 360, RemainingRooms: 4},
			},
		},
	}

	availabilitySvc.EXPECT().
		CheckAvailability(mock.Anything, "ATH001", day(2026, time.July, 10), day(2026, time.July, 13), mock.Anything).
		Return(availability, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/own_ATH001/availability", bytes.NewReader(availabilityBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "own_ATH001", resp.HotelID)
	assert.Equal(t, 3, resp.Nights)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "rt_5-2", resp.Rooms[0].Rate.RateID)
	assert.Equal(t, 360.0, resp.Rooms[0].Rate.TotalPrice)
}

func TestHandler_CheckAvailability_ExternalSource(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/ext_88123/availability", bytes.NewReader(availabilityBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION", resp.Code)
}

func TestHandler_CheckAvailability_MalformedHotelID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/ATH001/availability", bytes.NewReader(availabilityBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckAvailability_BadDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"check_in":"10/07/2026","check_out":"2026-07-13","rooms":[{"adults":2}]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/own_ATH001/availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_DATES", resp.Code)
}

func TestHandler_CheckAvailability_MissingRooms(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"check_in":"2026-07-10","check_out":"2026-07-13"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/own_ATH001/availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckAvailability_NotFound(t *testing.T) {
	availabilitySvc, _, _, _, r := setupRouter(t)

	availabilitySvc.EXPECT().
		CheckAvailability(mock.Anything, "NOPE", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrHotelNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/own_NOPE/availability", bytes.NewReader(availabilityBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Code)
}

func TestHandler_CheckAvailability_InvalidStay(t *testing.T) {
	availabilitySvc, _, _, _, r := setupRouter(t)

	availabilitySvc.EXPECT().
		CheckAvailability(mock.Anything, "ATH001", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidDates)

	body := []byte(`{"check_in":"2026-07-13","check_out":"2026-07-10","rooms":[{"adults":2}]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/own_ATH001/availability", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_DATES", resp.Code)
}

// --- Alternatives ---

func TestHandler_FindAlternatives_Success(t *testing.T) {
	_, alternativesSvc, _, _, r := setupRouter(t)

	stays := []domain.AlternativeStay{
		{Stay: domain.DateRange{Start: day(2026, time.July, 9), End: day(2026, time.July, 12)}, TotalPrice: 330},
		{Stay: domain.DateRange{Start: day(2026, time.July, 11), End: day(2026, time.July, 14)}, TotalPrice: 360},
	}

	alternativesSvc.EXPECT().
		FindAlternatives(mock.Anything, "ATH001", day(2026, time.July, 10), day(2026, time.July, 13), mock.Anything, 2).
		Return(stays, nil)

	body, _ := json.Marshal(dto.AlternativesRequest{
		CheckIn:   "2026-07-10",
		CheckOut:  "2026-07-13",
		Rooms:     []dto.PartyRoomRequest{{Adults: 2}},
		RangeDays: 2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/own_ATH001/alternatives", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AlternativesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "own_ATH001", resp.HotelID)
	require.Len(t, resp.Alternatives, 2)
	assert.Equal(t, "2026-07-09", resp.Alternatives[0].CheckIn)
	assert.Equal(t, "2026-07-12", resp.Alternatives[0].CheckOut)
	assert.Equal(t, 330.0, resp.Alternatives[0].TotalPrice)
}

func TestHandler_FindAlternatives_NoneFound(t *testing.T) {
	_, alternativesSvc, _, _, r := setupRouter(t)

	alternativesSvc.EXPECT().
		FindAlternatives(mock.Anything, "ATH001", mock.Anything, mock.Anything, mock.Anything, 0).
		Return([]domain.AlternativeStay{}, nil)

	body, _ := json.Marshal(dto.AlternativesRequest{
		CheckIn:  "2026-07-10",
		CheckOut: "2026-07-13",
		Rooms:    []dto.PartyRoomRequest{{Adults: 2}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/own_ATH001/alternatives", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AlternativesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Alternatives)
}

// --- Search ---

func TestHandler_SearchHotels_Success(t *testing.T) {
	_, _, searchSvc, _, r := setupRouter(t)

	result := &domain.SearchResult{
		Offers: []domain.HotelOffer{
			{
				Hotel:         &domain.Hotel{ID: 7, Code: "ATH001", Name: "Acropolis View", City: "Athens", Country: "GR", Stars: 4},
				HotelRef:      "own_ATH001",
				MinTotalPrice: 360,
				DistanceKm:    1.2,
			},
		},
		Skipped: []domain.SearchSkip{{HotelCode: "ATH002", Reason: "timeout"}},
	}

	searchSvc.EXPECT().Search(mock.Anything, mock.Anything).Return(result, nil)

	body, _ := json.Marshal(dto.SearchRequest{
		MinLat:   37.9,
		MaxLat:   38.1,
		MinLon:   23.6,
		MaxLon:   23.8,
		CheckIn:  "2026-07-10",
		CheckOut: "2026-07-13",
		Rooms:    []dto.PartyRoomRequest{{Adults: 2}},
		SortBy:   "distance",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "own_ATH001", resp.Offers[0].HotelID)
	assert.Equal(t, 360.0, resp.Offers[0].MinTotalPrice)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, "own_ATH002", resp.Skipped[0].HotelID)
	assert.Equal(t, "timeout", resp.Skipped[0].Reason)
}

func TestHandler_SearchHotels_MissingRooms(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"min_lat":37.9,"max_lat":38.1,"min_lon":23.6,"max_lon":23.8,"check_in":"2026-07-10","check_out":"2026-07-13"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Inventory administration ---

func TestHandler_EnsureInventory_Success(t *testing.T) {
	_, _, _, capacitySvc, r := setupRouter(t)

	capacitySvc.EXPECT().
		EnsureInventory(mock.Anything, int64(5), day(2026, time.July, 1), 30).
		Return(nil)

	body, _ := json.Marshal(dto.EnsureInventoryRequest{StartDate: "2026-07-01", Nights: 30})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/room-types/5/inventory", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_EnsureInventory_InvalidRoomTypeID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.EnsureInventoryRequest{StartDate: "2026-07-01", Nights: 30})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/room-types/abc/inventory", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateCapacity_Success(t *testing.T) {
	_, _, _, capacitySvc, r := setupRouter(t)

	capacitySvc.EXPECT().
		UpdateCapacity(mock.Anything, int64(5), day(2026, time.July, 1), day(2026, time.July, 15), 12).
		Return(nil)

	units := 12
	body, _ := json.Marshal(dto.UpdateCapacityRequest{
		StartDate:  "2026-07-01",
		EndDate:    "2026-07-15",
		TotalUnits: &units,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/room-types/5/capacity", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateCapacity_Violation(t *testing.T) {
	_, _, _, capacitySvc, r := setupRouter(t)

	violation := &domain.CapacityViolationError{
		RoomTypeID:     5,
		Night:          day(2026, time.July, 3),
		TotalUnits:     10,
		ConfirmedUnits: 8,
		Requested:      6,
		Counter:        "total_units",
	}
	capacitySvc.EXPECT().
		UpdateCapacity(mock.Anything, int64(5), mock.Anything, mock.Anything, 6).
		Return(violation)

	units := 6
	body, _ := json.Marshal(dto.UpdateCapacityRequest{
		StartDate:  "2026-07-01",
		EndDate:    "2026-07-15",
		TotalUnits: &units,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/room-types/5/capacity", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CAPACITY_VIOLATION", resp.Code)
}

func TestHandler_UpdateClosedUnits_Success(t *testing.T) {
	_, _, _, capacitySvc, r := setupRouter(t)

	capacitySvc.EXPECT().
		UpdateClosedUnits(mock.Anything, int64(5), day(2026, time.July, 1), day(2026, time.July, 15), 2).
		Return(nil)

	units := 2
	body, _ := json.Marshal(dto.UpdateClosedUnitsRequest{
		StartDate:   "2026-07-01",
		EndDate:     "2026-07-15",
		ClosedUnits: &units,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/room-types/5/closed-units", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	availabilitySvc, _, _, _, r := setupRouter(t)

	availabilitySvc.EXPECT().
		CheckAvailability(mock.Anything, "ATH001", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotels/own_ATH001/availability", bytes.NewReader(availabilityBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ERROR", resp.Code)
}
