package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stpnv0/interviewsched/internal/scheduler/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger(logger.Engine("slog"), "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_SendsReminderForEachDueBooking(t *testing.T) {
	bookings := mocks.NewMockBookingLister(t)
	notifier := mocks.NewMockReminderNotifier(t)
	s := New(bookings, notifier, newTestLogger(t))

	due := []*domain.Booking{
		{ID: "b1", RecipientID: "r1", SlotID: "s1"},
		{ID: "b2", RecipientID: "r2", SlotID: "s2"},
	}
	slot1 := &domain.Slot{ID: "s1", Venue: "Room A"}
	slot2 := &domain.Slot{ID: "s2", Venue: "Room B"}

	bookings.EXPECT().DueToday(mock.Anything).Return(due, nil)
	bookings.EXPECT().GetSlot(mock.Anything, "s1").Return(slot1, nil)
	bookings.EXPECT().GetSlot(mock.Anything, "s2").Return(slot2, nil)
	notifier.EXPECT().NotifyReminder(mock.Anything, "r1", slot1).Return(nil)
	notifier.EXPECT().NotifyReminder(mock.Anything, "r2", slot2).Return(nil)

	s.tick(context.Background())
}

func TestScheduler_Tick_ContinuesPastSlotLookupFailure(t *testing.T) {
	bookings := mocks.NewMockBookingLister(t)
	notifier := mocks.NewMockReminderNotifier(t)
	s := New(bookings, notifier, newTestLogger(t))

	due := []*domain.Booking{
		{ID: "b1", RecipientID: "r1", SlotID: "missing"},
		{ID: "b2", RecipientID: "r2", SlotID: "s2"},
	}
	slot2 := &domain.Slot{ID: "s2"}

	bookings.EXPECT().DueToday(mock.Anything).Return(due, nil)
	bookings.EXPECT().GetSlot(mock.Anything, "missing").Return(nil, errors.New("not found"))
	bookings.EXPECT().GetSlot(mock.Anything, "s2").Return(slot2, nil)
	notifier.EXPECT().NotifyReminder(mock.Anything, "r2", slot2).Return(nil)

	s.tick(context.Background())
}

func TestScheduler_Tick_LogsSendFailureWithoutAborting(t *testing.T) {
	bookings := mocks.NewMockBookingLister(t)
	notifier := mocks.NewMockReminderNotifier(t)
	s := New(bookings, notifier, newTestLogger(t))

	due := []*domain.Booking{{ID: "b1", RecipientID: "r1", SlotID: "s1"}}
	slot1 := &domain.Slot{ID: "s1"}

	bookings.EXPECT().DueToday(mock.Anything).Return(due, nil)
	bookings.EXPECT().GetSlot(mock.Anything, "s1").Return(slot1, nil)
	notifier.EXPECT().NotifyReminder(mock.Anything, "r1", slot1).Return(errors.New("telegram down"))

	s.tick(context.Background())
}

func TestScheduler_Tick_ReturnsEarlyOnListError(t *testing.T) {
	bookings := mocks.NewMockBookingLister(t)
	notifier := mocks.NewMockReminderNotifier(t)
	s := New(bookings, notifier, newTestLogger(t))

	bookings.EXPECT().DueToday(mock.Anything).Return(nil, errors.New("db down"))

	s.tick(context.Background())
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	bookings := mocks.NewMockBookingLister(t)
	notifier := mocks.NewMockReminderNotifier(t)
	s := New(bookings, notifier, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
