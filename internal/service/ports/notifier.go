package ports

import (
	"context"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
)

// OpsNotifier alerts the operations channel about inventory upkeep
// problems. Implementations must not block request handling.
type OpsNotifier interface {
	NotifySeedingFailed(ctx context.Context, hotel *domain.Hotel, roomType *domain.RoomType, err error)
}
