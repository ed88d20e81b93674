package service

import (
	"time"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
)

// nightIndex maps normalized dates to inventory rows for one room type.
type nightIndex map[time.Time]domain.InventoryNight

func indexNights(rows []domain.InventoryNight) nightIndex {
	idx := make(nightIndex, len(rows))
	for _, row := range rows {
		idx[domain.Day(row.Night)] = row
	}
	return idx
}

// stayQuote prices one room type over a stay for the requested number
// of rooms. ok is false when coverage is incomplete (any night without
// a row) or when the scarcest night cannot host all requested rooms;
// a stay is never partially priced. remaining is the minimum available
// units across the stay: the bottleneck night caps the whole range.
func stayQuote(rt *domain.RoomType, idx nightIndex, stay domain.DateRange, rooms int) (price float64, remaining int, ok bool) {
	remaining = -1
	var perRoom float64
	for d := stay.Start; d.Before(stay.End); d = d.AddDate(0, 0, 1) {
		row, found := idx[d]
		if !found {
			return 0, 0, false
		}
		if avail := row.AvailableUnits(); remaining < 0 || avail < remaining {
			remaining = avail
		}
		perRoom += row.Price(rt.BasePricePerNight)
	}
	if remaining < rooms {
		return 0, 0, false
	}
	return float64(rooms) * perRoom, remaining, true
}
