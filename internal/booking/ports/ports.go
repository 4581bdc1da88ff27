package ports

import (
	"context"

	"github.com/stpnv0/interviewsched/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.Slot) error
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	ListOpen(ctx context.Context) ([]*domain.Slot, error)
	UpdateCapacity(ctx context.Context, id string, capacity int) error
	Update(ctx context.Context, id string, in domain.UpdateSlotInput) error
	Delete(ctx context.Context, id string) error
}

type BookingRepo interface {
	Book(ctx context.Context, b *domain.Booking) error
	GetByRecipient(ctx context.Context, recipientID string) (*domain.Booking, error)
	ListBySlot(ctx context.Context, slotID string) ([]*domain.Booking, error)
	ListDueToday(ctx context.Context) ([]*domain.Booking, error)
	ListRecipientsWithoutBooking(ctx context.Context, recipientIDs []string) ([]string, error)
	DeleteBySlot(ctx context.Context, slotID string) error
	Delete(ctx context.Context, id string) error
}

// BookingNotifier delivers a reminder for a recipient's confirmed slot and
// a no-response notice to a recipient without one. The Reminder Scheduler
// declares its own narrower interface instead of this one.
type BookingNotifier interface {
	NotifyReminder(ctx context.Context, recipientID string, slot *domain.Slot) error
	NotifyNoResponse(ctx context.Context, recipientID string) error
}
