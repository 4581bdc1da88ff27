package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stpnv0/interviewsched/internal/workerutil"
	"github.com/wb-go/wbf/logger"
)

var timeUTC = time.UTC

type bookingLister interface {
	DueToday(ctx context.Context) ([]*domain.Booking, error)
	GetSlot(ctx context.Context, id string) (*domain.Slot, error)
}

type reminderNotifier interface {
	NotifyReminder(ctx context.Context, recipientID string, slot *domain.Slot) error
}

// dailyWakeSpec fires once a day at 09:00 UTC. The scheduler's own cron
// instance runs in UTC regardless of the host's local timezone.
const dailyWakeSpec = "0 9 * * *"

// Scheduler is a single long-running task that wakes once a day at
// 09:00 UTC and reminds everyone with a slot starting that day. A
// missed send is logged and left for the next window, never retried
// within the same wakeup.
type Scheduler struct {
	bookings bookingLister
	notifier reminderNotifier
	logger   logger.Logger
	cron     *cron.Cron
}

func New(bookings bookingLister, notifier reminderNotifier, log logger.Logger) *Scheduler {
	return &Scheduler{
		bookings: bookings,
		notifier: notifier,
		logger:   log,
		cron:     cron.New(cron.WithLocation(timeUTC)),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("reminder scheduler started", logger.String("spec", dailyWakeSpec))

	if _, err := s.cron.AddFunc(dailyWakeSpec, func() {
		workerutil.Guard(s.logger, "reminder_scheduler", func() { s.tick(ctx) })
	}); err != nil {
		s.logger.Error("failed to register reminder job", logger.String("error", err.Error()))
		return
	}

	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info("reminder scheduler stopped")
}

func (s *Scheduler) tick(ctx context.Context) {
	due, err := s.bookings.DueToday(ctx)
	if err != nil {
		s.logger.Error("failed to list today's bookings", logger.String("error", err.Error()))
		return
	}

	for _, b := range due {
		slot, err := s.bookings.GetSlot(ctx, b.SlotID)
		if err != nil {
			s.logger.Error("failed to load slot for reminder",
				logger.String("booking_id", b.ID),
				logger.String("slot_id", b.SlotID),
				logger.String("error", err.Error()),
			)
			continue
		}

		if err = s.notifier.NotifyReminder(ctx, b.RecipientID, slot); err != nil {
			s.logger.Error("failed to send reminder",
				logger.String("booking_id", b.ID),
				logger.String("recipient_id", b.RecipientID),
				logger.String("error", err.Error()),
			)
		}
	}

	s.logger.Info("reminder tick complete", logger.Int("count", len(due)))
}
