package domain

import "time"

// MessageType selects how a broadcast is rendered externally. It comes
// from the command that created the broadcast and is persisted on every
// message row; it is never inferred from message text (see SPEC_FULL.md
// section 10 on substring matching of message text).
type MessageType string

const (
	MessageTypeCustom MessageType = "custom"
	MessageTypeSignUp MessageType = "sign_up"
)

// EventType enumerates the append-only broadcast event log's variants.
type EventType string

const (
	EventBroadcastCreated      EventType = "BroadcastCreated"
	EventBroadcastCreatedSignUp EventType = "BroadcastCreatedSignUp"
	EventBroadcastStarted      EventType = "BroadcastStarted"
	EventMessageSent           EventType = "MessageSent"
	EventMessageFailed         EventType = "MessageFailed"
	EventMessageRetrying       EventType = "MessageRetrying"
	EventBroadcastCompleted    EventType = "BroadcastCompleted"
)

// Recipient is one addressee of a broadcast. CreateBroadcast fills only
// Name, with the raw recipient id; TelegramID is left zero and the id is
// parsed as a chat id at delivery time.
type Recipient struct {
	TelegramID int64  `json:"telegram_id"`
	Name       string `json:"name"`
}

// MediaItem is one file in an optional media group attached to a
// broadcast, identified by a durable messenger file id.
type MediaItem struct {
	FileID  string `json:"file_id"`
	Caption string `json:"caption,omitempty"`
}

// BroadcastEvent is one append-only row in the event log. Payload carries
// the event-specific fields serialized as JSON; Version is strictly
// increasing per BroadcastID in insertion order and is never reused.
type BroadcastEvent struct {
	EventID     string    `json:"event_id"`
	BroadcastID string    `json:"broadcast_id"`
	Type        EventType `json:"type"`
	Payload     []byte    `json:"payload"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
}

// BroadcastCreatedPayload is the JSON payload of a BroadcastCreated /
// BroadcastCreatedSignUp event.
type BroadcastCreatedPayload struct {
	BroadcastID  string       `json:"broadcast_id"`
	Message      string       `json:"message"`
	TargetUsers  []Recipient  `json:"target_users"`
	MessageType  MessageType  `json:"message_type"`
	MediaGroup   []MediaItem  `json:"media_group,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// MessageOutcomePayload is the payload shape shared by MessageSent,
// MessageFailed and MessageRetrying events.
type MessageOutcomePayload struct {
	BroadcastID string    `json:"broadcast_id"`
	Recipient   string    `json:"recipient"`
	Error       string    `json:"error,omitempty"`
	RetryCount  int       `json:"retry_count,omitempty"`
	At          time.Time `json:"at"`
}

// ProcessedEvent records that a worker has already applied an event,
// making event-log replay idempotent.
type ProcessedEvent struct {
	EventID  string `json:"event_id"`
	WorkerID string `json:"worker_id"`
}

// SummaryStatus is the terminal-or-not state of a broadcast summary.
type SummaryStatus string

const (
	SummaryPending    SummaryStatus = "pending"
	SummaryInProgress SummaryStatus = "in_progress"
	SummaryCompleted  SummaryStatus = "completed"
	SummaryFailed     SummaryStatus = "failed"
)

// BroadcastSummary is the read-model projection of a broadcast's progress.
type BroadcastSummary struct {
	BroadcastID  string        `json:"broadcast_id"`
	Message      string        `json:"message"`
	MessageType  MessageType   `json:"message_type"`
	TotalUsers   int           `json:"total_users"`
	SentCount    int           `json:"sent_count"`
	FailedCount  int           `json:"failed_count"`
	PendingCount int           `json:"pending_count"`
	Status       SummaryStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	StartedAt    *time.Time    `json:"started_at,omitempty"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
}

// MessageStatus is the per-recipient delivery state. Transitions are
// unidirectional except Retrying -> Sent|Failed.
type MessageStatus string

const (
	MessageStatusPending  MessageStatus = "pending"
	MessageStatusSent     MessageStatus = "sent"
	MessageStatusFailed   MessageStatus = "failed"
	MessageStatusRetrying MessageStatus = "retrying"
)

// BroadcastMessage is one recipient's row within a broadcast, unique on
// (BroadcastID, RecipientID).
type BroadcastMessage struct {
	ID          string        `json:"id"`
	BroadcastID string        `json:"broadcast_id"`
	RecipientID string        `json:"recipient_id"`
	Status      MessageStatus `json:"status"`
	Error       string        `json:"error,omitempty"`
	SentAt      *time.Time    `json:"sent_at,omitempty"`
	RetryCount  int           `json:"retry_count"`
	MessageType MessageType   `json:"message_type"`
	CreatedAt   time.Time     `json:"created_at"`
}

// CreateBroadcastInput is the input to the Broadcast Command Handler.
type CreateBroadcastInput struct {
	Message      string
	MessageType  MessageType
	RecipientIDs []string
	MediaGroup   []MediaItem
}

// DeliveryCommand is the per-recipient payload published to the messages
// exchange for the Delivery Worker to consume.
type DeliveryCommand struct {
	RecipientID string      `json:"telegram_id"`
	Message     string      `json:"message"`
	BroadcastID string      `json:"broadcast_id"`
	MessageType MessageType `json:"message_type,omitempty"`
	MediaGroup  []MediaItem `json:"media_group,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
