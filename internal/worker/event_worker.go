package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/interviewsched/internal/broadcast/ports"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stpnv0/interviewsched/internal/workerutil"
	"github.com/wb-go/wbf/logger"
)

// interDeliverySleep is the coarse rate-shaping pause between
// deliveries, both for the Event Worker fanning out per-recipient
// commands and the Delivery Worker sending them.
const interDeliverySleep = 100 * time.Millisecond

// EventWorker is a single-queue consumer that turns a BroadcastCreated
// event into one pending message row and one delivery command per
// recipient.
type EventWorker struct {
	id        string
	events    ports.EventRepo
	messages  ports.MessageRepo
	publisher ports.Publisher
	logger    logger.Logger
	sleep     func(time.Duration)
}

func NewEventWorker(id string, events ports.EventRepo, messages ports.MessageRepo, publisher ports.Publisher, log logger.Logger) *EventWorker {
	return &EventWorker{id: id, events: events, messages: messages, publisher: publisher, logger: log, sleep: time.Sleep}
}

// Run drains deliveries until the channel closes or ctx is cancelled.
// Every delivery is acked regardless of processing outcome: a parse
// failure or a partial publish failure is logged and isolated to that
// one event, never allowed to jam the queue.
func (w *EventWorker) Run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			workerutil.Guard(w.logger, "event_worker", func() { w.handle(ctx, d) })
		}
	}
}

func (w *EventWorker) handle(ctx context.Context, d amqp.Delivery) {
	defer d.Ack(false)

	var event domain.BroadcastEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		w.logger.Error("poison broadcast event, skipping", logger.String("error", err.Error()))
		return
	}

	processed, err := w.events.IsProcessed(ctx, event.EventID, w.id)
	if err != nil {
		w.logger.Error("check processed event failed", logger.String("event_id", event.EventID), logger.String("error", err.Error()))
		return
	}
	if processed {
		return
	}

	if event.Type == domain.EventBroadcastCreated || event.Type == domain.EventBroadcastCreatedSignUp {
		w.fanOut(ctx, &event)
	}

	if _, err = w.events.MarkProcessed(ctx, event.EventID, w.id); err != nil {
		w.logger.Error("mark processed failed", logger.String("event_id", event.EventID), logger.String("error", err.Error()))
	}
}

func (w *EventWorker) fanOut(ctx context.Context, event *domain.BroadcastEvent) {
	var payload domain.BroadcastCreatedPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		w.logger.Error("poison broadcast created payload, skipping", logger.String("event_id", event.EventID), logger.String("error", err.Error()))
		return
	}

	for _, recipient := range payload.TargetUsers {
		msg := &domain.BroadcastMessage{
			ID:          uuid.New().String(),
			BroadcastID: payload.BroadcastID,
			RecipientID: recipient.Name,
			Status:      domain.MessageStatusPending,
			MessageType: payload.MessageType,
			CreatedAt:   time.Now().UTC(),
		}
		if err := w.messages.UpsertPending(ctx, msg); err != nil {
			w.logger.Error("upsert pending message failed",
				logger.String("broadcast_id", payload.BroadcastID),
				logger.String("recipient_id", recipient.Name),
				logger.String("error", err.Error()),
			)
			continue
		}

		cmd := &domain.DeliveryCommand{
			RecipientID: recipient.Name,
			Message:     payload.Message,
			BroadcastID: payload.BroadcastID,
			MessageType: payload.MessageType,
			MediaGroup:  payload.MediaGroup,
			CreatedAt:   time.Now().UTC(),
		}
		if err := w.publisher.PublishDelivery(ctx, cmd); err != nil {
			w.logger.Error("publish delivery command failed, marking recipient failed",
				logger.String("broadcast_id", payload.BroadcastID),
				logger.String("recipient_id", recipient.Name),
				logger.String("error", err.Error()),
			)
			if failErr := w.messages.MarkFailed(ctx, msg.ID, err.Error()); failErr != nil {
				w.logger.Error("mark message failed also failed", logger.String("error", failErr.Error()))
			}
			continue
		}

		w.sleep(interDeliverySleep)
	}
}
