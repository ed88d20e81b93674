package service

import (
	"context"
	"testing"
	"time"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
	"github.com/achilleaskar/TravelBridge-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCapacity_EnsureInventory(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewCapacityService(store, newTestLogger(t))

	start := date(2026, time.July, 15)
	store.EXPECT().EnsureInventoryExists(mock.Anything, int64(5), start, 3).Return(nil)

	err := svc.EnsureInventory(context.Background(), 5, start, 3)

	require.NoError(t, err)
}

func TestCapacity_EnsureInventory_NonPositiveNights(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewCapacityService(store, newTestLogger(t))

	err := svc.EnsureInventory(context.Background(), 5, date(2026, time.July, 15), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCapacity_UpdateCapacity_EnsuresRowsFirst(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewCapacityService(store, newTestLogger(t))

	start, end := date(2026, time.July, 15), date(2026, time.July, 18)
	rng := domain.DateRange{Start: start, End: end}

	store.EXPECT().EnsureInventoryExists(mock.Anything, int64(5), start, 3).Return(nil)
	store.EXPECT().UpdateCapacity(mock.Anything, int64(5), rng, 12).Return(nil)

	err := svc.UpdateCapacity(context.Background(), 5, start, end, 12)

	require.NoError(t, err)
}

func TestCapacity_UpdateCapacity_NegativeRejected(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewCapacityService(store, newTestLogger(t))

	err := svc.UpdateCapacity(context.Background(), 5, date(2026, time.July, 15), date(2026, time.July, 18), -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCapacity_UpdateCapacity_InvalidRange(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewCapacityService(store, newTestLogger(t))

	day := date(2026, time.July, 15)
	err := svc.UpdateCapacity(context.Background(), 5, day, day, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDates)
}

func TestCapacity_UpdateCapacity_ViolationPropagates(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewCapacityService(store, newTestLogger(t))

	start, end := date(2026, time.July, 15), date(2026, time.July, 18)
	rng := domain.DateRange{Start: start, End: end}
	violation := &domain.CapacityViolationError{
		RoomTypeID:     5,
		Night:          date(2026, time.July, 16),
		TotalUnits:     10,
		ConfirmedUnits: 5,
		Requested:      3,
		Counter:        "total_units",
	}

	store.EXPECT().EnsureInventoryExists(mock.Anything, int64(5), start, 3).Return(nil)
	store.EXPECT().UpdateCapacity(mock.Anything, int64(5), rng, 3).Return(violation)

	err := svc.UpdateCapacity(context.Background(), 5, start, end, 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityViolation)

	var detail *domain.CapacityViolationError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, date(2026, time.July, 16), detail.Night)
}

func TestCapacity_UpdateClosedUnits(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewCapacityService(store, newTestLogger(t))

	start, end := date(2026, time.July, 15), date(2026, time.July, 18)
	rng := domain.DateRange{Start: start, End: end}

	store.EXPECT().EnsureInventoryExists(mock.Anything, int64(5), start, 3).Return(nil)
	store.EXPECT().UpdateClosedUnits(mock.Anything, int64(5), rng, 2).Return(nil)

	err := svc.UpdateClosedUnits(context.Background(), 5, start, end, 2)

	require.NoError(t, err)
}

func TestCapacity_UpdateClosedUnits_NegativeRejected(t *testing.T) {
	store := mocks.NewMockInventoryStore(t)
	svc := NewCapacityService(store, newTestLogger(t))

	err := svc.UpdateClosedUnits(context.Background(), 5, date(2026, time.July, 15), date(2026, time.July, 18), -2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
