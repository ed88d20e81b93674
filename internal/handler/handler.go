package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
	"github.com/achilleaskar/TravelBridge-sub001/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	codeNotFound          = "NOT_FOUND"
	codeInvalidDates      = "INVALID_DATES"
	codeCapacityViolation = "CAPACITY_VIOLATION"
	codeValidation        = "VALIDATION"
	codeInternal          = "ERROR"
)

type AvailabilitySvc interface {
	CheckAvailability(ctx context.Context, hotelCode string, checkIn, checkOut time.Time, party domain.PartyConfiguration) (*domain.HotelAvailability, error)
}

type AlternativesSvc interface {
	FindAlternatives(ctx context.Context, hotelCode string, checkIn, checkOut time.Time, party domain.PartyConfiguration, rangeDays int) ([]domain.AlternativeStay, error)
}

type SearchSvc interface {
	Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchResult, error)
}

type CapacitySvc interface {
	EnsureInventory(ctx context.Context, roomTypeID int64, start time.Time, nights int) error
	UpdateCapacity(ctx context.Context, roomTypeID int64, start, end time.Time, totalUnits int) error
	UpdateClosedUnits(ctx context.Context, roomTypeID int64, start, end time.Time, closedUnits int) error
}

type Handler struct {
	availabilityService AvailabilitySvc
	alternativesService AlternativesSvc
	searchService       SearchSvc
	capacityService     CapacitySvc
}

func NewHandler(availability AvailabilitySvc, alternatives AlternativesSvc, search SearchSvc, capacity CapacitySvc) *Handler {
	return &Handler{
		availabilityService: availability,
		alternativesService: alternatives,
		searchService:       search,
		capacityService:     capacity,
	}
}

// Availability

func (h *Handler) CheckAvailability(c *ginext.Context) {
	code, ok := h.hotelCode(c)
	if !ok {
		return
	}

	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: codeValidation, Error: err.Error()})
		return
	}

	checkIn, checkOut, ok := h.stayDates(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	availability, err := h.availabilityService.CheckAvailability(
		c.Request.Context(), code, checkIn, checkOut, dto.ToPartyConfiguration(req.Rooms),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(availability))
}

func (h *Handler) FindAlternatives(c *ginext.Context) {
	code, ok := h.hotelCode(c)
	if !ok {
		return
	}

	var req dto.AlternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: codeValidation, Error: err.Error()})
		return
	}

	checkIn, checkOut, ok := h.stayDates(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	stays, err := h.alternativesService.FindAlternatives(
		c.Request.Context(), code, checkIn, checkOut, dto.ToPartyConfiguration(req.Rooms), req.RangeDays,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAlternativesResponse(c.Param("id"), stays))
}

// Search

func (h *Handler) SearchHotels(c *ginext.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: codeValidation, Error: err.Error()})
		return
	}

	checkIn, checkOut, ok := h.stayDates(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	q := domain.SearchQuery{
		Box: domain.BoundingBox{
			MinLat: req.MinLat,
			MaxLat: req.MaxLat,
			MinLon: req.MinLon,
			MaxLon: req.MaxLon,
		},
		Stay:      domain.DateRange{Start: domain.Day(checkIn), End: domain.Day(checkOut)},
		Party:     dto.ToPartyConfiguration(req.Rooms),
		CenterLat: req.CenterLat,
		CenterLon: req.CenterLon,
		SortBy:    domain.SortField(strings.ToLower(req.SortBy)),
		SortDir:   domain.SortDirection(strings.ToLower(req.SortDir)),
	}

	result, err := h.searchService.Search(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSearchResponse(result))
}

// Inventory administration

func (h *Handler) EnsureInventory(c *ginext.Context) {
	roomTypeID, ok := h.roomTypeID(c)
	if !ok {
		return
	}

	var req dto.EnsureInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: codeValidation, Error: err.Error()})
		return
	}

	start, ok := h.day(c, req.StartDate)
	if !ok {
		return
	}

	if err := h.capacityService.EnsureInventory(c.Request.Context(), roomTypeID, start, req.Nights); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "seeded"})
}

func (h *Handler) UpdateCapacity(c *ginext.Context) {
	roomTypeID, ok := h.roomTypeID(c)
	if !ok {
		return
	}

	var req dto.UpdateCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: codeValidation, Error: err.Error()})
		return
	}

	start, end, ok := h.stayDates(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	if err := h.capacityService.UpdateCapacity(c.Request.Context(), roomTypeID, start, end, *req.TotalUnits); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "updated"})
}

func (h *Handler) UpdateClosedUnits(c *ginext.Context) {
	roomTypeID, ok := h.roomTypeID(c)
	if !ok {
		return
	}

	var req dto.UpdateClosedUnitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: codeValidation, Error: err.Error()})
		return
	}

	start, end, ok := h.stayDates(c, req.StartDate, req.EndDate)
	if !ok {
		return
	}

	if err := h.capacityService.UpdateClosedUnits(c.Request.Context(), roomTypeID, start, end, *req.ClosedUnits); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "updated"})
}

// hotelCode resolves the composite hotel id path parameter. Only owned
// hotels live in this service; externally sourced ids are rejected at
// the boundary.
func (h *Handler) hotelCode(c *ginext.Context) (string, bool) {
	ref, err := domain.ParseHotelRef(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: codeValidation, Error: "invalid hotel id"})
		return "", false
	}
	if ref.Source != domain.SourceOwned {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  codeValidation,
			Error: "hotel id source not served here: " + string(ref.Source),
		})
		return "", false
	}
	return ref.Code, true
}

func (h *Handler) roomTypeID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: codeValidation, Error: "invalid room type id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) day(c *ginext.Context, value string) (time.Time, bool) {
	day, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:  codeInvalidDates,
			Error: "invalid date, expected " + dto.DateLayout,
		})
		return time.Time{}, false
	}
	return day, true
}

func (h *Handler) stayDates(c *ginext.Context, from, to string) (time.Time, time.Time, bool) {
	start, ok := h.day(c, from)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok := h.day(c, to)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrHotelNotFound),
		errors.Is(err, domain.ErrRoomTypeNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Code: codeNotFound, Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityViolation):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Code: codeCapacityViolation, Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidDates):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: codeInvalidDates, Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnsupportedSource):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: codeValidation, Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: codeInternal, Error: "internal server error"})
	}
}
