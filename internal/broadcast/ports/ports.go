package ports

import (
	"context"
	"time"

	"github.com/stpnv0/interviewsched/internal/domain"
)

type EventRepo interface {
	Append(ctx context.Context, e *domain.BroadcastEvent) error
	AppendCreatedWithSummary(ctx context.Context, e *domain.BroadcastEvent, s *domain.BroadcastSummary) error
	ListSince(ctx context.Context, broadcastID string, afterVersion int) ([]*domain.BroadcastEvent, error)
	GetByID(ctx context.Context, eventID string) (*domain.BroadcastEvent, error)
	IsProcessed(ctx context.Context, eventID, workerID string) (bool, error)
	MarkProcessed(ctx context.Context, eventID, workerID string) (bool, error)
}

type SummaryRepo interface {
	Create(ctx context.Context, s *domain.BroadcastSummary) error
	GetByID(ctx context.Context, broadcastID string) (*domain.BroadcastSummary, error)
	ApplyDelta(ctx context.Context, broadcastID string, sentDelta, failedDelta, pendingDelta int, status domain.SummaryStatus) error
	MarkStarted(ctx context.Context, broadcastID string, startedAt time.Time) error
	MarkCompleted(ctx context.Context, broadcastID string, completedAt time.Time, status domain.SummaryStatus) error
	ListActive(ctx context.Context) ([]*domain.BroadcastSummary, error)
}

type MessageRepo interface {
	Create(ctx context.Context, m *domain.BroadcastMessage) error
	UpsertPending(ctx context.Context, m *domain.BroadcastMessage) error
	GetByRecipient(ctx context.Context, broadcastID, recipientID string) (*domain.BroadcastMessage, error)
	ListByBroadcast(ctx context.Context, broadcastID string) ([]*domain.BroadcastMessage, error)
	ListSignUpDelivered(ctx context.Context) ([]string, error)
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
	MarkFailed(ctx context.Context, id, errMsg string) error
	MarkRetrying(ctx context.Context, id, errMsg string) error
	ResetForRetry(ctx context.Context, id string) error
}

// BookingLookup is the narrow slice of the Booking Manager the
// No-Response Reporter needs, kept separate from the full booking ports
// surface so this package does not import booking/ports.
type BookingLookup interface {
	WithoutBooking(ctx context.Context, recipientIDs []string) ([]string, error)
}

// Publisher fans a message out over the broker adapter: broadcast events
// to the fanout exchange, delivery commands to the direct exchange.
type Publisher interface {
	PublishEvent(ctx context.Context, e *domain.BroadcastEvent) error
	PublishDelivery(ctx context.Context, cmd *domain.DeliveryCommand) error
}

// Sender is the messenger-facing side of the Delivery Worker.
type Sender interface {
	Send(ctx context.Context, cmd *domain.DeliveryCommand) error
}
