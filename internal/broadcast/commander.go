package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/interviewsched/internal/broadcast/ports"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stpnv0/interviewsched/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

// Commander is the Broadcast Command Handler. It never creates
// per-recipient message rows itself: that is the Event Worker's job, so
// replaying the event log recreates them deterministically.
type Commander struct {
	events    ports.EventRepo
	summaries ports.SummaryRepo
	messages  ports.MessageRepo
	publisher ports.Publisher
	logger    logger.Logger
}

func NewCommander(events ports.EventRepo, summaries ports.SummaryRepo, messages ports.MessageRepo, publisher ports.Publisher, log logger.Logger) *Commander {
	return &Commander{events: events, summaries: summaries, messages: messages, publisher: publisher, logger: log}
}

type CreateBroadcastResult struct {
	BroadcastID string
	Status      domain.SummaryStatus
}

func (c *Commander) CreateBroadcast(ctx context.Context, in domain.CreateBroadcastInput) (*CreateBroadcastResult, error) {
	if len(in.RecipientIDs) == 0 {
		return nil, fmt.Errorf("%w: recipient_ids must be non-empty", domain.ErrInvalidInput)
	}

	broadcastID := uuid.New().String()
	now := time.Now().UTC()

	recipients := make([]domain.Recipient, 0, len(in.RecipientIDs))
	for _, id := range in.RecipientIDs {
		recipients = append(recipients, domain.Recipient{Name: id})
	}

	eventType := domain.EventBroadcastCreated
	if in.MessageType == domain.MessageTypeSignUp {
		eventType = domain.EventBroadcastCreatedSignUp
	}

	payload, err := json.Marshal(domain.BroadcastCreatedPayload{
		BroadcastID: broadcastID,
		Message:     in.Message,
		TargetUsers: recipients,
		MessageType: in.MessageType,
		MediaGroup:  in.MediaGroup,
		CreatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal created payload: %w", err)
	}

	event := &domain.BroadcastEvent{
		EventID:     uuid.New().String(),
		BroadcastID: broadcastID,
		Type:        eventType,
		Payload:     payload,
		CreatedAt:   now,
	}
	summary := &domain.BroadcastSummary{
		BroadcastID:  broadcastID,
		Message:      in.Message,
		MessageType:  in.MessageType,
		TotalUsers:   len(in.RecipientIDs),
		PendingCount: len(in.RecipientIDs),
		Status:       domain.SummaryPending,
		CreatedAt:    now,
	}

	if err = c.events.AppendCreatedWithSummary(ctx, event, summary); err != nil {
		return nil, fmt.Errorf("create broadcast: %w", err)
	}

	if err = c.publisher.PublishEvent(ctx, event); err != nil {
		c.logger.Error("publish broadcast created failed, relying on replay",
			logger.String("broadcast_id", broadcastID),
			logger.String("error", err.Error()),
		)
	}

	metrics.BroadcastsCreated.Inc()
	c.logger.Info("broadcast created",
		logger.String("broadcast_id", broadcastID),
		logger.Int("recipients", len(in.RecipientIDs)),
	)

	return &CreateBroadcastResult{BroadcastID: broadcastID, Status: domain.SummaryPending}, nil
}

// CancelBroadcast marks the summary Failed without touching in-flight
// deliveries: per-message status remains authoritative for work already
// underway.
func (c *Commander) CancelBroadcast(ctx context.Context, broadcastID string) error {
	if err := c.summaries.MarkCompleted(ctx, broadcastID, time.Now().UTC(), domain.SummaryFailed); err != nil {
		return fmt.Errorf("cancel broadcast: %w", err)
	}
	return nil
}

// RetryMessage is idempotent against a row already in Retrying: only a
// Failed row is a valid retry target.
func (c *Commander) RetryMessage(ctx context.Context, broadcastID, recipientID string) error {
	msg, err := c.messages.GetByRecipient(ctx, broadcastID, recipientID)
	if err != nil {
		return fmt.Errorf("get message: %w", err)
	}

	if msg.Status == domain.MessageStatusRetrying {
		return nil
	}
	if msg.Status != domain.MessageStatusFailed {
		return fmt.Errorf("%w: message is not in Failed state", domain.ErrConflict)
	}

	summary, err := c.summaries.GetByID(ctx, broadcastID)
	if err != nil {
		return fmt.Errorf("get summary: %w", err)
	}

	if err = c.messages.MarkRetrying(ctx, msg.ID, msg.Error); err != nil {
		return fmt.Errorf("mark retrying: %w", err)
	}

	now := time.Now().UTC()
	payload, err := json.Marshal(domain.MessageOutcomePayload{BroadcastID: broadcastID, Recipient: recipientID, RetryCount: msg.RetryCount + 1, At: now})
	if err != nil {
		return fmt.Errorf("marshal retry payload: %w", err)
	}
	event := &domain.BroadcastEvent{
		EventID:     uuid.New().String(),
		BroadcastID: broadcastID,
		Type:        domain.EventMessageRetrying,
		Payload:     payload,
		CreatedAt:   now,
	}
	if err = c.events.Append(ctx, event); err != nil {
		return fmt.Errorf("append retrying event: %w", err)
	}

	cmd := &domain.DeliveryCommand{
		RecipientID: recipientID,
		Message:     summary.Message, // the summary row keeps the text; no media group is carried
		BroadcastID: broadcastID,
		MessageType: msg.MessageType,
		CreatedAt:   now,
	}
	if err = c.publisher.PublishDelivery(ctx, cmd); err != nil {
		return fmt.Errorf("republish delivery: %w", err)
	}

	return nil
}
