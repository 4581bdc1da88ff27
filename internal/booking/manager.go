package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/interviewsched/internal/booking/ports"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stpnv0/interviewsched/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

// Manager owns slot capacity and per-recipient booking assignment. The
// only mutual-exclusion primitive it relies on is the repository's
// FOR UPDATE-locked conditional insert, so two recipients racing for the
// last seat never both succeed.
type Manager struct {
	slots    ports.SlotRepo
	bookings ports.BookingRepo
	logger   logger.Logger
}

func NewManager(slots ports.SlotRepo, bookings ports.BookingRepo, log logger.Logger) *Manager {
	return &Manager{slots: slots, bookings: bookings, logger: log}
}

func (m *Manager) CreateSlot(ctx context.Context, in domain.CreateSlotInput) (*domain.Slot, error) {
	if in.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	s := &domain.Slot{
		ID:        uuid.New().String(),
		StartTime: in.StartTime,
		Venue:     in.Venue,
		Capacity:  in.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.slots.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	m.logger.Info("slot created",
		logger.String("slot_id", s.ID),
		logger.Int("capacity", s.Capacity),
	)

	return s, nil
}

func (m *Manager) UpdateSlot(ctx context.Context, id string, in domain.UpdateSlotInput) error {
	if err := m.slots.Update(ctx, id, in); err != nil {
		return fmt.Errorf("update slot: %w", err)
	}
	return nil
}

func (m *Manager) DeleteSlot(ctx context.Context, id string) error {
	if err := m.slots.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	return nil
}

func (m *Manager) GetSlot(ctx context.Context, id string) (*domain.Slot, error) {
	return m.slots.GetByID(ctx, id)
}

func (m *Manager) ListOpenSlots(ctx context.Context) ([]*domain.Slot, error) {
	return m.slots.ListOpen(ctx)
}

// Book assigns recipientID to slotID, replacing any prior booking that
// recipient held. It never re-checks capacity in the service layer: the
// repository's slot-locked conditional insert is the single source of
// truth for whether the seat was actually free.
func (m *Manager) Book(ctx context.Context, recipientID, slotID string) (*domain.Booking, error) {
	if _, err := m.slots.GetByID(ctx, slotID); err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}

	b := &domain.Booking{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		SlotID:      slotID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := m.bookings.Book(ctx, b); err != nil {
		var full *domain.ErrSlotFull
		if errors.As(err, &full) {
			metrics.SlotFullRejections.Inc()
		}
		return nil, fmt.Errorf("book slot: %w", err)
	}

	metrics.BookingsCreated.Inc()
	m.logger.Info("slot booked",
		logger.String("slot_id", slotID),
		logger.String("recipient_id", recipientID),
	)

	return b, nil
}

func (m *Manager) GetBooking(ctx context.Context, recipientID string) (*domain.Booking, error) {
	return m.bookings.GetByRecipient(ctx, recipientID)
}

func (m *Manager) ListBySlot(ctx context.Context, slotID string) ([]*domain.Booking, error) {
	return m.bookings.ListBySlot(ctx, slotID)
}

// DueToday returns today's confirmed bookings, the working set for the
// Reminder Scheduler.
func (m *Manager) DueToday(ctx context.Context) ([]*domain.Booking, error) {
	return m.bookings.ListDueToday(ctx)
}

// WithoutBooking narrows a candidate recipient set to those who never
// booked a slot at all, for the No-Response Reporter.
func (m *Manager) WithoutBooking(ctx context.Context, recipientIDs []string) ([]string, error) {
	return m.bookings.ListRecipientsWithoutBooking(ctx, recipientIDs)
}
