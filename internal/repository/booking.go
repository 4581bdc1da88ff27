package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Book replaces any prior booking held by recipientID and conditionally
// inserts the new one. The slot row is locked with FOR UPDATE before the
// capacity check so two concurrent bookers on the same slot serialise on
// that lock instead of both reading pre-insert state: the second
// transaction only sees the count once the first has committed its
// insert, making the check-and-insert atomic. Zero rows inserted means
// the slot filled up between the caller's read and this call; the
// current capacity/count are re-read for the error.
func (r *BookingRepository) Book(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE recipient_id = $1`, b.RecipientID); err != nil {
		return fmt.Errorf("delete prior booking: %w", err)
	}

	var locked string
	row := tx.QueryRowContext(ctx, `SELECT id FROM slots WHERE id = $1 FOR UPDATE`, b.SlotID)
	if err = row.Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("lock slot: %w", err)
	}

	query := `INSERT INTO bookings (id, recipient_id, slot_id, created_at)
			  SELECT $1, $2, $3, $4
			  WHERE (SELECT COUNT(*) FROM bookings WHERE slot_id = $3)
			      < (SELECT capacity FROM slots WHERE id = $3)`
	res, err := tx.ExecContext(ctx, query, b.ID, b.RecipientID, b.SlotID, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		capacity, current, cErr := r.capacitySnapshot(ctx, tx, b.SlotID)
		if cErr != nil {
			return cErr
		}
		return &domain.ErrSlotFull{Capacity: capacity, Current: current}
	}

	return tx.Commit()
}

func (r *BookingRepository) capacitySnapshot(ctx context.Context, tx *sql.Tx, slotID string) (capacity, current int, err error) {
	row := tx.QueryRowContext(ctx, `SELECT capacity FROM slots WHERE id = $1`, slotID)
	if err = row.Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, domain.ErrSlotNotFound
		}
		return 0, 0, fmt.Errorf("get capacity: %w", err)
	}

	row = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE slot_id = $1`, slotID)
	if err = row.Scan(&current); err != nil {
		return 0, 0, fmt.Errorf("get booked count: %w", err)
	}

	return capacity, current, nil
}

func (r *BookingRepository) GetByRecipient(ctx context.Context, recipientID string) (*domain.Booking, error) {
	query := `SELECT id, recipient_id, slot_id, created_at FROM bookings WHERE recipient_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(&b.ID, &b.RecipientID, &b.SlotID, &b.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListBySlot(ctx context.Context, slotID string) ([]*domain.Booking, error) {
	query := `SELECT id, recipient_id, slot_id, created_at FROM bookings WHERE slot_id = $1`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, slotID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by slot: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.RecipientID, &b.SlotID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

// ListDueToday returns bookings whose slot starts on today's UTC date,
// grounded on original_source/core_logic/src/db.rs::get_todays_bookings.
func (r *BookingRepository) ListDueToday(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT b.id, b.recipient_id, b.slot_id, b.created_at
			  FROM bookings b
			  JOIN slots s ON s.id = b.slot_id
			  WHERE date(s.start_time) = date(now() AT TIME ZONE 'UTC')`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list due-today bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.RecipientID, &b.SlotID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

// ListRecipientsWithoutBooking returns, from a candidate recipient-id set,
// those with no booking row at all.
func (r *BookingRepository) ListRecipientsWithoutBooking(ctx context.Context, recipientIDs []string) ([]string, error) {
	if len(recipientIDs) == 0 {
		return nil, nil
	}

	query := `SELECT r.id FROM unnest($1::text[]) AS r(id)
			  WHERE NOT EXISTS (SELECT 1 FROM bookings b WHERE b.recipient_id = r.id)`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(recipientIDs))
	if err != nil {
		return nil, fmt.Errorf("list recipients without booking: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan recipient id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

func (r *BookingRepository) DeleteBySlot(ctx context.Context, slotID string) error {
	_, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM bookings WHERE slot_id = $1`, slotID)
	if err != nil {
		return fmt.Errorf("delete bookings by slot: %w", err)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
