package broadcast

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/interviewsched/internal/broadcast/ports"
	"github.com/stpnv0/interviewsched/internal/domain"
)

// Projector recomputes a broadcast's counters from message rows rather
// than trusting incremental deltas alone, so a projection run after a
// crash always converges to the true state.
type Projector struct {
	summaries ports.SummaryRepo
	messages  ports.MessageRepo
}

func NewProjector(summaries ports.SummaryRepo, messages ports.MessageRepo) *Projector {
	return &Projector{summaries: summaries, messages: messages}
}

// Recompute reads every message row for broadcastID, derives the new
// counters and status, and writes them. Status never regresses from
// Completed; completed_at is set once, on the transition into Completed.
func (p *Projector) Recompute(ctx context.Context, broadcastID string) error {
	summary, err := p.summaries.GetByID(ctx, broadcastID)
	if err != nil {
		return fmt.Errorf("get summary: %w", err)
	}
	if summary.Status == domain.SummaryCompleted || summary.Status == domain.SummaryFailed {
		return nil
	}

	rows, err := p.messages.ListByBroadcast(ctx, broadcastID)
	if err != nil {
		return fmt.Errorf("list messages: %w", err)
	}

	var sent, failed, pending int
	for _, m := range rows {
		switch m.Status {
		case domain.MessageStatusSent:
			sent++
		case domain.MessageStatusFailed:
			failed++
		case domain.MessageStatusPending, domain.MessageStatusRetrying:
			pending++
		}
	}

	status := domain.SummaryPending
	switch {
	case pending == 0 && summary.TotalUsers > 0:
		status = domain.SummaryCompleted
	case summary.TotalUsers > 0:
		status = domain.SummaryInProgress
	}

	now := time.Now().UTC()
	if summary.Status == domain.SummaryPending && status == domain.SummaryInProgress {
		if err = p.summaries.MarkStarted(ctx, broadcastID, now); err != nil {
			return fmt.Errorf("mark started: %w", err)
		}
	}

	sentDelta := sent - summary.SentCount
	failedDelta := failed - summary.FailedCount
	pendingDelta := pending - summary.PendingCount
	if err = p.summaries.ApplyDelta(ctx, broadcastID, sentDelta, failedDelta, pendingDelta, status); err != nil {
		return fmt.Errorf("apply delta: %w", err)
	}

	if status == domain.SummaryCompleted && summary.CompletedAt == nil {
		if err = p.summaries.MarkCompleted(ctx, broadcastID, now, domain.SummaryCompleted); err != nil {
			return fmt.Errorf("mark completed: %w", err)
		}
	}

	return nil
}
