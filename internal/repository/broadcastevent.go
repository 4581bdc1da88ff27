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

type BroadcastEventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBroadcastEventRepo(db *dbpg.DB) *BroadcastEventRepository {
	return &BroadcastEventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Append inserts the next event for broadcastID with a strictly
// increasing version, computed inside the same transaction as the
// insert so two concurrent appenders never collide on the same version.
func (r *BroadcastEventRepository) Append(ctx context.Context, e *domain.BroadcastEvent) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, e.BroadcastID); err != nil {
		return fmt.Errorf("lock broadcast versions: %w", err)
	}

	var nextVersion int
	row := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) + 1 FROM broadcast_events WHERE broadcast_id = $1`, e.BroadcastID)
	if err = row.Scan(&nextVersion); err != nil {
		return fmt.Errorf("compute next version: %w", err)
	}
	e.Version = nextVersion

	query := `INSERT INTO broadcast_events (event_id, broadcast_id, type, payload, version, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(ctx, query, e.EventID, e.BroadcastID, string(e.Type), e.Payload, e.Version, e.CreatedAt); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return tx.Commit()
}

// AppendCreatedWithSummary appends the broadcast's first event and inserts
// its summary row in one transaction, satisfying CreateBroadcast's
// single-transaction requirement. It assumes e is the first event for
// its broadcast and always writes version 1.
func (r *BroadcastEventRepository) AppendCreatedWithSummary(ctx context.Context, e *domain.BroadcastEvent, s *domain.BroadcastSummary) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	e.Version = 1
	eventQuery := `INSERT INTO broadcast_events (event_id, broadcast_id, type, payload, version, created_at)
				   VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(ctx, eventQuery, e.EventID, e.BroadcastID, string(e.Type), e.Payload, e.Version, e.CreatedAt); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	summaryQuery := `INSERT INTO broadcast_summaries
						(broadcast_id, message, message_type, total_users, sent_count, failed_count, pending_count, status, created_at)
					  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, summaryQuery,
		s.BroadcastID, s.Message, string(s.MessageType), s.TotalUsers, s.SentCount, s.FailedCount, s.PendingCount, string(s.Status), s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}

	return tx.Commit()
}

// ListSince returns every event for broadcastID with version > afterVersion,
// in version order.
func (r *BroadcastEventRepository) ListSince(ctx context.Context, broadcastID string, afterVersion int) ([]*domain.BroadcastEvent, error) {
	query := `SELECT event_id, broadcast_id, type, payload, version, created_at
			  FROM broadcast_events
			  WHERE broadcast_id = $1 AND version > $2
			  ORDER BY version ASC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, broadcastID, afterVersion)
	if err != nil {
		return nil, fmt.Errorf("list events since: %w", err)
	}
	defer rows.Close()

	var res []*domain.BroadcastEvent
	for rows.Next() {
		var e domain.BroadcastEvent
		var typ string
		if err = rows.Scan(&e.EventID, &e.BroadcastID, &typ, &e.Payload, &e.Version, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Type = domain.EventType(typ)
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *BroadcastEventRepository) GetByID(ctx context.Context, eventID string) (*domain.BroadcastEvent, error) {
	query := `SELECT event_id, broadcast_id, type, payload, version, created_at FROM broadcast_events WHERE event_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.BroadcastEvent
	var typ string
	if err = row.Scan(&e.EventID, &e.BroadcastID, &typ, &e.Payload, &e.Version, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	e.Type = domain.EventType(typ)

	return &e, nil
}

// IsProcessed reports whether workerID has already recorded eventID as
// applied. Checked before any processing happens.
func (r *BroadcastEventRepository) IsProcessed(ctx context.Context, eventID, workerID string) (bool, error) {
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy,
		`SELECT EXISTS(SELECT 1 FROM processed_events WHERE event_id = $1 AND worker_id = $2)`,
		eventID, workerID,
	)
	if err != nil {
		return false, fmt.Errorf("check processed: %w", err)
	}
	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan processed: %w", err)
	}
	return exists, nil
}

// MarkProcessed records that workerID applied eventID. A unique
// violation on (event_id, worker_id) means this exact worker already
// applied it; the caller treats that as "already done", not an error.
func (r *BroadcastEventRepository) MarkProcessed(ctx context.Context, eventID, workerID string) (bool, error) {
	query := `INSERT INTO processed_events (event_id, worker_id) VALUES ($1, $2)
			  ON CONFLICT (event_id, worker_id) DO NOTHING`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID, workerID)
	if err != nil {
		return false, fmt.Errorf("mark processed: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}
