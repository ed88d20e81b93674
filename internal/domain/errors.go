package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrRoomTypeNotFound = errors.New("room type not found")
)

var (
	ErrInvalidDates      = errors.New("check-out must be after check-in")
	ErrValidation        = errors.New("validation error")
	ErrUnsupportedSource = errors.New("unsupported inventory source")
)

// ErrCapacityViolation is the errors.Is target for every rejected
// capacity mutation; the concrete value is a *CapacityViolationError
// naming the conflicting night.
var ErrCapacityViolation = errors.New("capacity violation")

// CapacityViolationError reports the first night on which a range
// mutation would break the counter invariant. The whole range update
// is rolled back when it is returned.
type CapacityViolationError struct {
	RoomTypeID     int64
	Night          time.Time
	TotalUnits     int
	ClosedUnits    int
	HeldUnits      int
	ConfirmedUnits int
	Requested      int
	Counter        string // "total_units" or "closed_units"
}

func (e *CapacityViolationError) Error() string {
	return fmt.Sprintf(
		"capacity violation on room type %d, night %s: %s=%d conflicts with total=%d closed=%d held=%d confirmed=%d",
		e.RoomTypeID, e.Night.Format("2006-01-02"), e.Counter, e.Requested,
		e.TotalUnits, e.ClosedUnits, e.HeldUnits, e.ConfirmedUnits,
	)
}

func (e *CapacityViolationError) Is(target error) bool {
	return target == ErrCapacityViolation
}
