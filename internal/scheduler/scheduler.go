// Package scheduler keeps the sellable inventory horizon materialized.
// Lookups never create rows on the read path, so a background seeder
// rolls the horizon forward as calendar days pass.
package scheduler

import (
	"context"
	"time"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
	"github.com/achilleaskar/TravelBridge-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type Seeder struct {
	store       ports.InventoryStore
	notifier    ports.OpsNotifier
	interval    time.Duration
	horizonDays int
	now         func() time.Time
	logger      logger.Logger
}

func New(
	store ports.InventoryStore,
	notifier ports.OpsNotifier,
	interval time.Duration,
	horizonDays int,
	logger logger.Logger,
) *Seeder {
	return &Seeder{
		store:       store,
		notifier:    notifier,
		interval:    interval,
		horizonDays: horizonDays,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *Seeder) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("inventory seeder started",
		logger.Duration("interval", s.interval),
		logger.Int("horizon_days", s.horizonDays),
	)

	// Seed once up front so a fresh deployment is sellable before the
	// first tick fires.
	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("inventory seeder stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Seeder) tick(ctx context.Context) {
	hotels, err := s.store.ListHotels(ctx, true)
	if err != nil {
		s.logger.Error("failed to list hotels for seeding",
			logger.String("error", err.Error()),
		)
		return
	}

	start := domain.Day(s.now())
	var seeded, failed int
	for _, hotel := range hotels {
		roomTypes, err := s.store.GetRoomTypesByHotelID(ctx, hotel.ID, true)
		if err != nil {
			s.logger.Error("failed to list room types for seeding",
				logger.String("hotel_code", hotel.Code),
				logger.String("error", err.Error()),
			)
			continue
		}

		for _, rt := range roomTypes {
			if ctx.Err() != nil {
				return
			}
			if err := s.store.EnsureInventoryExists(ctx, rt.ID, start, s.horizonDays); err != nil {
				failed++
				s.logger.Error("failed to seed inventory horizon",
					logger.String("hotel_code", hotel.Code),
					logger.Int64("room_type_id", rt.ID),
					logger.String("error", err.Error()),
				)
				s.notifier.NotifySeedingFailed(ctx, hotel, rt, err)
				continue
			}
			seeded++
		}
	}

	s.logger.Info("inventory horizon seeded",
		logger.Int("room_types", seeded),
		logger.Int("failed", failed),
	)
}
