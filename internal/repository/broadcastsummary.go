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

type BroadcastSummaryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBroadcastSummaryRepo(db *dbpg.DB) *BroadcastSummaryRepository {
	return &BroadcastSummaryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BroadcastSummaryRepository) Create(ctx context.Context, s *domain.BroadcastSummary) error {
	query := `INSERT INTO broadcast_summaries
					(broadcast_id, message, message_type, total_users, sent_count, failed_count, pending_count, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.BroadcastID, s.Message, string(s.MessageType), s.TotalUsers, s.SentCount, s.FailedCount, s.PendingCount, string(s.Status), s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}
	return nil
}

func (r *BroadcastSummaryRepository) GetByID(ctx context.Context, broadcastID string) (*domain.BroadcastSummary, error) {
	query := `SELECT broadcast_id, message, message_type, total_users, sent_count, failed_count, pending_count,
					status, created_at, started_at, completed_at
			  FROM broadcast_summaries WHERE broadcast_id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, broadcastID)
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}

	s, err := scanSummary(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBroadcastNotFound
		}
		return nil, err
	}
	return s, nil
}

// ApplyDelta atomically moves sentCount/failedCount by the given signed
// deltas and pendingCount by its own, so two workers converging on the
// same summary via ON CONFLICT-style event replay never lose an update.
func (r *BroadcastSummaryRepository) ApplyDelta(ctx context.Context, broadcastID string, sentDelta, failedDelta, pendingDelta int, status domain.SummaryStatus) error {
	query := `UPDATE broadcast_summaries SET
					sent_count = sent_count + $2,
					failed_count = failed_count + $3,
					pending_count = pending_count + $4,
					status = $5
			  WHERE broadcast_id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, broadcastID, sentDelta, failedDelta, pendingDelta, string(status))
	if err != nil {
		return fmt.Errorf("apply summary delta: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBroadcastNotFound
	}
	return nil
}

func (r *BroadcastSummaryRepository) MarkStarted(ctx context.Context, broadcastID string, startedAt time.Time) error {
	query := `UPDATE broadcast_summaries SET status = $2, started_at = $3 WHERE broadcast_id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, broadcastID, string(domain.SummaryInProgress), startedAt)
	if err != nil {
		return fmt.Errorf("mark summary started: %w", err)
	}
	return nil
}

func (r *BroadcastSummaryRepository) MarkCompleted(ctx context.Context, broadcastID string, completedAt time.Time, status domain.SummaryStatus) error {
	query := `UPDATE broadcast_summaries SET status = $2, completed_at = $3 WHERE broadcast_id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, broadcastID, string(status), completedAt)
	if err != nil {
		return fmt.Errorf("mark summary completed: %w", err)
	}
	return nil
}

func (r *BroadcastSummaryRepository) ListActive(ctx context.Context) ([]*domain.BroadcastSummary, error) {
	query := `SELECT broadcast_id, message, message_type, total_users, sent_count, failed_count, pending_count,
					status, created_at, started_at, completed_at
			  FROM broadcast_summaries
			  WHERE status IN ($1, $2)
			  ORDER BY created_at ASC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, string(domain.SummaryPending), string(domain.SummaryInProgress))
	if err != nil {
		return nil, fmt.Errorf("list active summaries: %w", err)
	}
	defer rows.Close()

	var res []*domain.BroadcastSummary
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSummary(row rowScanner) (*domain.BroadcastSummary, error) {
	var s domain.BroadcastSummary
	var status, msgType string
	if err := row.Scan(
		&s.BroadcastID, &s.Message, &msgType, &s.TotalUsers, &s.SentCount, &s.FailedCount, &s.PendingCount,
		&status, &s.CreatedAt, &s.StartedAt, &s.CompletedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan summary: %w", err)
	}
	s.Status = domain.SummaryStatus(status)
	s.MessageType = domain.MessageType(msgType)
	return &s, nil
}
