package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
)

const hotelColumns = `id, code, name, latitude, longitude, address, city, country,
       stars, check_in_time, check_out_time, active`

func scanHotel(scan func(dest ...any) error) (*domain.Hotel, error) {
	var h domain.Hotel
	err := scan(
		&h.ID, &h.Code, &h.Name, &h.Latitude, &h.Longitude,
		&h.Address, &h.City, &h.Country, &h.Stars,
		&h.CheckInTime, &h.CheckOutTime, &h.Active,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Store) GetHotelByCode(ctx context.Context, code string) (*domain.Hotel, error) {
	query := `SELECT ` + hotelColumns + `
			  FROM hotels
			  WHERE code = $1`

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get hotel: %w", err)
	}

	h, err := scanHotel(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHotelNotFound
		}
		return nil, fmt.Errorf("scan hotel: %w", err)
	}

	return h, nil
}

func (s *Store) ListHotels(ctx context.Context, activeOnly bool) ([]*domain.Hotel, error) {
	query := `SELECT ` + hotelColumns + `
			  FROM hotels
			  WHERE (NOT $1 OR active)
			  ORDER BY id`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	var res []*domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		res = append(res, h)
	}

	return res, rows.Err()
}

func (s *Store) SearchHotelsInBoundingBox(ctx context.Context, box domain.BoundingBox, activeOnly bool) ([]*domain.Hotel, error) {
	query := `SELECT ` + hotelColumns + `
			  FROM hotels
			  WHERE latitude BETWEEN $1 AND $2
			    AND longitude BETWEEN $3 AND $4
			    AND (NOT $5 OR active)
			  ORDER BY id`

	rows, err := s.db.QueryWithRetry(
		ctx, s.strategy, query,
		box.MinLat, box.MaxLat, box.MinLon, box.MaxLon, activeOnly,
	)
	if err != nil {
		return nil, fmt.Errorf("search hotels in box: %w", err)
	}
	defer rows.Close()

	var res []*domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		res = append(res, h)
	}

	return res, rows.Err()
}
