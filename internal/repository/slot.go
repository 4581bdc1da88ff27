package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	query := `INSERT INTO slots (id, start_time, venue, capacity, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.StartTime, s.Venue, s.Capacity, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}
	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `SELECT s.id, s.start_time, s.venue, s.capacity, s.created_at, s.updated_at,
			  		COUNT(b.id) AS booked_count
			  FROM slots s
			  LEFT JOIN bookings b ON b.slot_id = s.id
			  WHERE s.id = $1
			  GROUP BY s.id`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	var s domain.Slot
	if err = row.Scan(&s.ID, &s.StartTime, &s.Venue, &s.Capacity, &s.CreatedAt, &s.UpdatedAt, &s.BookedCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}

// ListOpen returns every slot, including full ones; callers filter and
// rank as needed (the Slot Ranker drops full slots itself via FreeSeats;
// they are not excluded at the query level).
func (r *SlotRepository) ListOpen(ctx context.Context) ([]*domain.Slot, error) {
	query := `SELECT s.id, s.start_time, s.venue, s.capacity, s.created_at, s.updated_at,
			  		COUNT(b.id) AS booked_count
			  FROM slots s
			  LEFT JOIN bookings b ON b.slot_id = s.id
			  GROUP BY s.id
			  ORDER BY s.start_time ASC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.Slot
	for rows.Next() {
		var s domain.Slot
		if err = rows.Scan(&s.ID, &s.StartTime, &s.Venue, &s.Capacity, &s.CreatedAt, &s.UpdatedAt, &s.BookedCount); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

// UpdateCapacity rejects a new capacity strictly below the current booked
// count in one round trip, counting the slot's bookings in a subquery of
// the same UPDATE statement.
func (r *SlotRepository) UpdateCapacity(ctx context.Context, id string, capacity int) error {
	query := `UPDATE slots SET capacity = $2, updated_at = now()
			  WHERE id = $1
			    AND $2 >= (SELECT COUNT(*) FROM bookings WHERE slot_id = $1)`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, capacity)
	if err != nil {
		return fmt.Errorf("update slot capacity: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		if _, err = r.GetByID(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("%w: capacity below current booked count", domain.ErrConflict)
	}

	return nil
}

func (r *SlotRepository) Update(ctx context.Context, id string, in domain.UpdateSlotInput) error {
	if in.Capacity != nil {
		if err := r.UpdateCapacity(ctx, id, *in.Capacity); err != nil {
			return err
		}
	}

	if in.StartTime == nil && in.Venue == nil {
		return nil
	}

	query := `UPDATE slots SET
				start_time = COALESCE($2, start_time),
				venue = COALESCE($3, venue),
				updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, in.StartTime, in.Venue)
	if err != nil {
		return fmt.Errorf("update slot: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotNotFound
	}

	return nil
}

// Delete cascades to bookings via the FK constraint declared in the
// migration.
func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotNotFound
	}
	return nil
}
