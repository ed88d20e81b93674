package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/achilleaskar/TravelBridge-sub001/internal/domain"
	"github.com/lib/pq"
)

const inventoryColumns = `room_type_id, night, total_units, closed_units, held_units,
       confirmed_units, price_per_night, updated_at`

func scanInventoryNight(scan func(dest ...any) error) (domain.InventoryNight, error) {
	var n domain.InventoryNight
	var price sql.NullFloat64
	err := scan(
		&n.RoomTypeID, &n.Night, &n.TotalUnits, &n.ClosedUnits,
		&n.HeldUnits, &n.ConfirmedUnits, &price, &n.UpdatedAt,
	)
	if err != nil {
		return domain.InventoryNight{}, err
	}
	if price.Valid {
		n.PricePerNight = &price.Float64
	}
	n.Night = domain.Day(n.Night)
	return n, nil
}

func (s *Store) GetInventory(ctx context.Context, roomTypeID int64, rng domain.DateRange) ([]domain.InventoryNight, error) {
	query := `SELECT ` + inventoryColumns + `
			  FROM inventory_nights
			  WHERE room_type_id = $1 AND night >= $2 AND night < $3
			  ORDER BY night`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query, roomTypeID, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	defer rows.Close()

	var res []domain.InventoryNight
	for rows.Next() {
		n, err := scanInventoryNight(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan inventory night: %w", err)
		}
		res = append(res, n)
	}

	return res, rows.Err()
}

func (s *Store) GetInventoryForRoomTypes(ctx context.Context, roomTypeIDs []int64, rng domain.DateRange) (map[int64][]domain.InventoryNight, error) {
	query := `SELECT ` + inventoryColumns + `
			  FROM inventory_nights
			  WHERE room_type_id = ANY($1) AND night >= $2 AND night < $3
			  ORDER BY room_type_id, night`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query, pq.Array(roomTypeIDs), rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("get inventory for room types: %w", err)
	}
	defer rows.Close()

	res := make(map[int64][]domain.InventoryNight, len(roomTypeIDs))
	for rows.Next() {
		n, err := scanInventoryNight(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan inventory night: %w", err)
		}
		res[n.RoomTypeID] = append(res[n.RoomTypeID], n)
	}

	return res, rows.Err()
}

// EnsureInventoryExists lazily materializes rows for
// [start, start+nights) from the room type's defaults. Existing rows
// are left untouched, so the call is idempotent and safe to retry
// after a cancellation.
func (s *Store) EnsureInventoryExists(ctx context.Context, roomTypeID int64, start time.Time, nights int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM room_types WHERE id = $1)`
	if err = tx.QueryRowContext(ctx, checkQuery, roomTypeID).Scan(&exists); err != nil {
		return fmt.Errorf("check room type: %w", err)
	}
	if !exists {
		return domain.ErrRoomTypeNotFound
	}

	query := `INSERT INTO inventory_nights
				(room_type_id, night, total_units, closed_units, held_units, confirmed_units, updated_at)
			  SELECT rt.id, gs::date, rt.default_total_units, 0, 0, 0, now()
			  FROM room_types rt,
				   generate_series($2::date, $2::date + ($3 - 1) * interval '1 day', interval '1 day') gs
			  WHERE rt.id = $1
			  ON CONFLICT (room_type_id, night) DO NOTHING`

	if _, err = tx.ExecContext(ctx, query, roomTypeID, start, nights); err != nil {
		return fmt.Errorf("seed inventory nights: %w", err)
	}

	return tx.Commit()
}

// UpdateCapacity sets TotalUnits across [rng.Start, rng.End). The
// UPDATE only touches nights where the new total still covers
// closed+held+confirmed; if any night in the range is left behind the
// transaction is rolled back, so the range either updates as a whole
// or not at all, even under concurrent writers.
func (s *Store) UpdateCapacity(ctx context.Context, roomTypeID int64, rng domain.DateRange, totalUnits int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE inventory_nights
			  SET total_units = $4, updated_at = now()
			  WHERE room_type_id = $1 AND night >= $2 AND night < $3
			    AND closed_units + held_units + confirmed_units <= $4`

	res, err := tx.ExecContext(ctx, query, roomTypeID, rng.Start, rng.End, totalUnits)
	if err != nil {
		return fmt.Errorf("update capacity: %w", err)
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("capacity rows affected: %w", err)
	}
	if int(updated) != rng.Nights() {
		conflictQuery := `SELECT night, total_units, closed_units, held_units, confirmed_units
						  FROM inventory_nights
						  WHERE room_type_id = $1 AND night >= $2 AND night < $3
						    AND closed_units + held_units + confirmed_units > $4
						  ORDER BY night
						  LIMIT 1`
		violation := &domain.CapacityViolationError{
			RoomTypeID: roomTypeID,
			Requested:  totalUnits,
			Counter:    "total_units",
		}
		err = tx.QueryRowContext(ctx, conflictQuery, roomTypeID, rng.Start, rng.End, totalUnits).Scan(
			&violation.Night, &violation.TotalUnits, &violation.ClosedUnits,
			&violation.HeldUnits, &violation.ConfirmedUnits,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Fewer rows than nights and no conflict: the range was
				// never fully materialized.
				return fmt.Errorf("inventory rows missing in [%s, %s): %w",
					rng.Start.Format("2006-01-02"), rng.End.Format("2006-01-02"), domain.ErrRoomTypeNotFound)
			}
			return fmt.Errorf("inspect capacity conflict: %w", err)
		}
		violation.Night = domain.Day(violation.Night)
		return violation
	}

	return tx.Commit()
}

// UpdateClosedUnits sets the stop-sell counter across [rng.Start,
// rng.End) with the same all-or-nothing contract as UpdateCapacity.
func (s *Store) UpdateClosedUnits(ctx context.Context, roomTypeID int64, rng domain.DateRange, closedUnits int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE inventory_nights
			  SET closed_units = $4, updated_at = now()
			  WHERE room_type_id = $1 AND night >= $2 AND night < $3
			    AND $4 + held_units + confirmed_units <= total_units`

	res, err := tx.ExecContext(ctx, query, roomTypeID, rng.Start, rng.End, closedUnits)
	if err != nil {
		return fmt.Errorf("update closed units: %w", err)
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("closed units rows affected: %w", err)
	}
	if int(updated) != rng.Nights() {
		conflictQuery := `SELECT night, total_units, closed_units, held_units, confirmed_units
						  FROM inventory_nights
						  WHERE room_type_id = $1 AND night >= $2 AND night < $3
						    AND $4 + held_units + confirmed_units > total_units
						  ORDER BY night
						  LIMIT 1`
		violation := &domain.CapacityViolationError{
			RoomTypeID: roomTypeID,
			Requested:  closedUnits,
			Counter:    "closed_units",
		}
		err = tx.QueryRowContext(ctx, conflictQuery, roomTypeID, rng.Start, rng.End, closedUnits).Scan(
			&violation.Night, &violation.TotalUnits, &violation.ClosedUnits,
			&violation.HeldUnits, &violation.ConfirmedUnits,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("inventory rows missing in [%s, %s): %w",
					rng.Start.Format("2006-01-02"), rng.End.Format("2006-01-02"), domain.ErrRoomTypeNotFound)
			}
			return fmt.Errorf("inspect closed units conflict: %w", err)
		}
		violation.Night = domain.Day(violation.Night)
		return violation
	}

	return tx.Commit()
}
