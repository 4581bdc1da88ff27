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

type BroadcastMessageRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBroadcastMessageRepo(db *dbpg.DB) *BroadcastMessageRepository {
	return &BroadcastMessageRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BroadcastMessageRepository) Create(ctx context.Context, m *domain.BroadcastMessage) error {
	query := `INSERT INTO broadcast_messages
					(id, broadcast_id, recipient_id, status, error, sent_at, retry_count, message_type, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.BroadcastID, m.RecipientID, string(m.Status), m.Error, m.SentAt, m.RetryCount, string(m.MessageType), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert broadcast message: %w", err)
	}
	return nil
}

// UpsertPending inserts a Pending row for (broadcast_id, recipient_id),
// or does nothing if replay is recreating a row that already exists —
// the Event Worker relies on this to make BroadcastCreated replay
// deterministic.
func (r *BroadcastMessageRepository) UpsertPending(ctx context.Context, m *domain.BroadcastMessage) error {
	query := `INSERT INTO broadcast_messages
					(id, broadcast_id, recipient_id, status, error, sent_at, retry_count, message_type, created_at)
			  VALUES ($1, $2, $3, $4, '', NULL, 0, $5, $6)
			  ON CONFLICT (broadcast_id, recipient_id) DO NOTHING`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.BroadcastID, m.RecipientID, string(domain.MessageStatusPending), string(m.MessageType), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert pending broadcast message: %w", err)
	}
	return nil
}

func (r *BroadcastMessageRepository) GetByRecipient(ctx context.Context, broadcastID, recipientID string) (*domain.BroadcastMessage, error) {
	query := `SELECT id, broadcast_id, recipient_id, status, error, sent_at, retry_count, message_type, created_at
			  FROM broadcast_messages WHERE broadcast_id = $1 AND recipient_id = $2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, broadcastID, recipientID)
	if err != nil {
		return nil, fmt.Errorf("get broadcast message: %w", err)
	}

	m, err := scanMessage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *BroadcastMessageRepository) ListByBroadcast(ctx context.Context, broadcastID string) ([]*domain.BroadcastMessage, error) {
	query := `SELECT id, broadcast_id, recipient_id, status, error, sent_at, retry_count, message_type, created_at
			  FROM broadcast_messages WHERE broadcast_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, broadcastID)
	if err != nil {
		return nil, fmt.Errorf("list broadcast messages: %w", err)
	}
	defer rows.Close()

	var res []*domain.BroadcastMessage
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}

	return res, rows.Err()
}

// MarkSent transitions a message to Sent, stamping sent_at.
func (r *BroadcastMessageRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	query := `UPDATE broadcast_messages SET status = $2, sent_at = $3, error = '' WHERE id = $1`
	return r.mustAffectOne(ctx, query, id, string(domain.MessageStatusSent), sentAt)
}

// MarkFailed transitions a message to Failed, recording the terminal error.
func (r *BroadcastMessageRepository) MarkFailed(ctx context.Context, id, errMsg string) error {
	query := `UPDATE broadcast_messages SET status = $2, error = $3 WHERE id = $1`
	return r.mustAffectOne(ctx, query, id, string(domain.MessageStatusFailed), errMsg)
}

// MarkRetrying transitions a message to Retrying and bumps retry_count,
// capped at 1 per the retry-count (0 or 1) invariant: a message already
// retried once stays at 1 rather than counting further attempts.
func (r *BroadcastMessageRepository) MarkRetrying(ctx context.Context, id, errMsg string) error {
	query := `UPDATE broadcast_messages SET status = $2, error = $3, retry_count = LEAST(retry_count + 1, 1) WHERE id = $1`
	return r.mustAffectOne(ctx, query, id, string(domain.MessageStatusRetrying), errMsg)
}

// ResetForRetry puts a Failed message back to Pending without touching
// retry_count, for the RetryMessage command.
func (r *BroadcastMessageRepository) ResetForRetry(ctx context.Context, id string) error {
	query := `UPDATE broadcast_messages SET status = $2, error = '' WHERE id = $1 AND status = $3`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, string(domain.MessageStatusPending), string(domain.MessageStatusFailed))
	if err != nil {
		return fmt.Errorf("reset for retry: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: message is not in Failed state", domain.ErrConflict)
	}
	return nil
}

// ListSignUpDelivered returns the distinct recipients of a SignUp-typed
// message that reached a terminal delivery outcome (Sent or Failed)
// within a broadcast whose summary has not been cancelled, for the
// No-Response Reporter.
func (r *BroadcastMessageRepository) ListSignUpDelivered(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT m.recipient_id
			  FROM broadcast_messages m
			  JOIN broadcast_summaries s ON s.broadcast_id = m.broadcast_id
			  WHERE m.message_type = $1
			    AND m.status IN ($2, $3)
			    AND s.status IN ($4, $5, $6)`
	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		string(domain.MessageTypeSignUp), string(domain.MessageStatusSent), string(domain.MessageStatusFailed),
		string(domain.SummaryPending), string(domain.SummaryInProgress), string(domain.SummaryCompleted),
	)
	if err != nil {
		return nil, fmt.Errorf("list sign-up delivered: %w", err)
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

func (r *BroadcastMessageRepository) mustAffectOne(ctx context.Context, query string, id string, args ...any) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("update broadcast message: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func scanMessage(row rowScanner) (*domain.BroadcastMessage, error) {
	var m domain.BroadcastMessage
	var status, msgType string
	if err := row.Scan(&m.ID, &m.BroadcastID, &m.RecipientID, &status, &m.Error, &m.SentAt, &m.RetryCount, &msgType, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan broadcast message: %w", err)
	}
	m.Status = domain.MessageStatus(status)
	m.MessageType = domain.MessageType(msgType)
	return &m, nil
}
