package repository

import (
	"context"
	"fmt"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
)

func (s *Store) GetRoomTypesByHotelID(ctx context.Context, hotelID int64, activeOnly bool) ([]*domain.RoomType, error) {
	query := `SELECT id, hotel_id, code, name, max_adults, max_children, max_occupancy,
					 base_price_per_night, default_total_units, active
			  FROM room_types
			  WHERE hotel_id = $1
			    AND (NOT $2 OR active)
			  ORDER BY id`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query, hotelID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}
	defer rows.Close()

	var res []*domain.RoomType
	for rows.Next() {
		var rt domain.RoomType
		if err = rows.Scan(
			&rt.ID, &rt.HotelID, &rt.Code, &rt.Name,
			&rt.MaxAdults, &rt.MaxChildren, &rt.MaxOccupancy,
			&rt.BasePricePerNight, &rt.DefaultTotalUnits, &rt.Active,
		); err != nil {
			return nil, fmt.Errorf("scan room type: %w", err)
		}
		res = append(res, &rt)
	}

	return res, rows.Err()
}
