package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/interviewsched/internal/broadcast/ports"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stpnv0/interviewsched/internal/metrics"
	"github.com/stpnv0/interviewsched/internal/workerutil"
	"github.com/wb-go/wbf/logger"
)

// projector is the narrow surface the Delivery Worker needs from the
// Summary Projector: recompute after every terminal outcome.
type projector interface {
	Recompute(ctx context.Context, broadcastID string) error
}

// DeliveryWorker consumes delivery commands with prefetch=1 so exactly
// one send is in flight per worker instance. Every delivery is acked
// regardless of send outcome; failures live in the message row, not in
// broker redelivery.
type DeliveryWorker struct {
	messages  ports.MessageRepo
	events    ports.EventRepo
	sender    ports.Sender
	projector projector
	logger    logger.Logger
	sleep     func(time.Duration)
}

func NewDeliveryWorker(messages ports.MessageRepo, events ports.EventRepo, sender ports.Sender, proj projector, log logger.Logger) *DeliveryWorker {
	return &DeliveryWorker{messages: messages, events: events, sender: sender, projector: proj, logger: log, sleep: time.Sleep}
}

func (w *DeliveryWorker) Run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			workerutil.Guard(w.logger, "delivery_worker", func() { w.handle(ctx, d) })
			w.sleep(interDeliverySleep)
		}
	}
}

func (w *DeliveryWorker) handle(ctx context.Context, d amqp.Delivery) {
	defer d.Ack(false)

	var cmd domain.DeliveryCommand
	if err := json.Unmarshal(d.Body, &cmd); err != nil {
		w.logger.Error("poison delivery command, skipping", logger.String("error", err.Error()))
		return
	}

	msg, err := w.messages.GetByRecipient(ctx, cmd.BroadcastID, cmd.RecipientID)
	if err != nil {
		w.logger.Error("load message row failed",
			logger.String("broadcast_id", cmd.BroadcastID),
			logger.String("recipient_id", cmd.RecipientID),
			logger.String("error", err.Error()),
		)
		return
	}

	sendErr := w.sender.Send(ctx, &cmd)

	now := time.Now().UTC()
	var eventType domain.EventType
	if sendErr == nil {
		if err = w.messages.MarkSent(ctx, msg.ID, now); err != nil {
			w.logger.Error("mark sent failed", logger.String("message_id", msg.ID), logger.String("error", err.Error()))
		}
		eventType = domain.EventMessageSent
		metrics.MessagesSent.WithLabelValues("sent").Inc()
	} else {
		if err = w.messages.MarkFailed(ctx, msg.ID, sendErr.Error()); err != nil {
			w.logger.Error("mark failed failed", logger.String("message_id", msg.ID), logger.String("error", err.Error()))
		}
		eventType = domain.EventMessageFailed
		metrics.MessagesSent.WithLabelValues("failed").Inc()
		w.logger.Error("delivery send failed",
			logger.String("broadcast_id", cmd.BroadcastID),
			logger.String("recipient_id", cmd.RecipientID),
			logger.String("error", sendErr.Error()),
		)
	}

	w.appendOutcome(ctx, &cmd, eventType, sendErr, now)

	if err = w.projector.Recompute(ctx, cmd.BroadcastID); err != nil {
		w.logger.Error("summary recompute failed", logger.String("broadcast_id", cmd.BroadcastID), logger.String("error", err.Error()))
	}
}

func (w *DeliveryWorker) appendOutcome(ctx context.Context, cmd *domain.DeliveryCommand, eventType domain.EventType, sendErr error, at time.Time) {
	outcome := domain.MessageOutcomePayload{BroadcastID: cmd.BroadcastID, Recipient: cmd.RecipientID, At: at}
	if sendErr != nil {
		outcome.Error = sendErr.Error()
	}

	payload, err := json.Marshal(outcome)
	if err != nil {
		w.logger.Error("marshal outcome payload failed", logger.String("error", err.Error()))
		return
	}

	event := &domain.BroadcastEvent{
		EventID:     uuid.New().String(),
		BroadcastID: cmd.BroadcastID,
		Type:        eventType,
		Payload:     payload,
		CreatedAt:   at,
	}
	if err = w.events.Append(ctx, event); err != nil {
		w.logger.Error("append outcome event failed", logger.String("error", err.Error()))
	}
}
