package service

import (
	"context"
	"fmt"
	"time"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
	"github.com/achilleaskar/TravelBridge-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CapacityService is the only writer of inventory counters. Range
// mutations are all-or-nothing: the store applies them as one guarded
// transaction, so a violation on any night leaves every night as it
// was.
type CapacityService struct {
	store  ports.InventoryStore
	logger logger.Logger
}

func NewCapacityService(store ports.InventoryStore, logger logger.Logger) *CapacityService {
	return &CapacityService{
		store:  store,
		logger: logger,
	}
}

// EnsureInventory creates missing rows for [start, start+nights) from
// the room type's defaults. Existing rows are untouched; calling it
// twice is a no-op.
func (s *CapacityService) EnsureInventory(ctx context.Context, roomTypeID int64, start time.Time, nights int) error {
	if nights <= 0 {
		return fmt.Errorf("%w: nights must be positive", domain.ErrValidation)
	}

	if err := s.store.EnsureInventoryExists(ctx, roomTypeID, domain.Day(start), nights); err != nil {
		return fmt.Errorf("ensure inventory: %w", err)
	}

	s.logger.Info("inventory ensured",
		logger.Int("room_type_id", int(roomTypeID)),
		logger.String("start", domain.Day(start).Format("2006-01-02")),
		logger.Int("nights", nights),
	)

	return nil
}

// UpdateCapacity sets TotalUnits for every night in [start, end).
func (s *CapacityService) UpdateCapacity(ctx context.Context, roomTypeID int64, start, end time.Time, totalUnits int) error {
	if totalUnits < 0 {
		return fmt.Errorf("%w: total_units must not be negative", domain.ErrValidation)
	}
	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return err
	}

	if err := s.store.EnsureInventoryExists(ctx, roomTypeID, rng.Start, rng.Nights()); err != nil {
		return fmt.Errorf("ensure inventory: %w", err)
	}
	if err := s.store.UpdateCapacity(ctx, roomTypeID, rng, totalUnits); err != nil {
		return fmt.Errorf("update capacity: %w", err)
	}

	s.logger.Info("capacity updated",
		logger.Int("room_type_id", int(roomTypeID)),
		logger.String("start", rng.Start.Format("2006-01-02")),
		logger.String("end", rng.End.Format("2006-01-02")),
		logger.Int("total_units", totalUnits),
	)

	return nil
}

// UpdateClosedUnits sets the stop-sell counter for every night in
// [start, end).
func (s *CapacityService) UpdateClosedUnits(ctx context.Context, roomTypeID int64, start, end time.Time, closedUnits int) error {
	if closedUnits < 0 {
		return fmt.Errorf("%w: closed_units must not be negative", domain.ErrValidation)
	}
	rng, err := domain.NewDateRange(start, end)
	if err != nil {
		return err
	}

	if err := s.store.EnsureInventoryExists(ctx, roomTypeID, rng.Start, rng.Nights()); err != nil {
		return fmt.Errorf("ensure inventory: %w", err)
	}
	if err := s.store.UpdateClosedUnits(ctx, roomTypeID, rng, closedUnits); err != nil {
		return fmt.Errorf("update closed units: %w", err)
	}

	s.logger.Info("closed units updated",
		logger.Int("room_type_id", int(roomTypeID)),
		logger.String("start", rng.Start.Format("2006-01-02")),
		logger.String("end", rng.End.Format("2006-01-02")),
		logger.Int("closed_units", closedUnits),
	)

	return nil
}
