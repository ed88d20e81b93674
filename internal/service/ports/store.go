package ports

import (
	"context"
	"time"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
)

// InventoryStore is the persistence boundary for owned inventory. All
// date ranges are half-open [Start, End); every mutation is
// all-or-nothing for the whole range.
type InventoryStore interface {
	GetHotelByCode(ctx context.Context, code string) (*domain.Hotel, error)
	ListHotels(ctx context.Context, activeOnly bool) ([]*domain.Hotel, error)
	SearchHotelsInBoundingBox(ctx context.Context, box domain.BoundingBox, activeOnly bool) ([]*domain.Hotel, error)

	GetRoomTypesByHotelID(ctx context.Context, hotelID int64, activeOnly bool) ([]*domain.RoomType, error)

	GetInventory(ctx context.Context, roomTypeID int64, rng domain.DateRange) ([]domain.InventoryNight, error)
	GetInventoryForRoomTypes(ctx context.Context, roomTypeIDs []int64, rng domain.DateRange) (map[int64][]domain.InventoryNight, error)

	EnsureInventoryExists(ctx context.Context, roomTypeID int64, start time.Time, nights int) error
	UpdateCapacity(ctx context.Context, roomTypeID int64, rng domain.DateRange, totalUnits int) error
	UpdateClosedUnits(ctx context.Context, roomTypeID int64, rng domain.DateRange, closedUnits int) error
}
