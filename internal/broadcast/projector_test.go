package broadcast

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/interviewsched/internal/broadcast/mocks"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProjector_Recompute_ShortCircuitsOnTerminalStatus(t *testing.T) {
	summaries := mocks.NewMockSummaryRepo(t)
	messages := mocks.NewMockMessageRepo(t)
	p := NewProjector(summaries, messages)

	summaries.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.BroadcastSummary{
		BroadcastID: "b1", Status: domain.SummaryCompleted,
	}, nil)

	err := p.Recompute(context.Background(), "b1")

	assert.NoError(t, err)
}

func TestProjector_Recompute_MarksStartedOnFirstNonPendingRow(t *testing.T) {
	summaries := mocks.NewMockSummaryRepo(t)
	messages := mocks.NewMockMessageRepo(t)
	p := NewProjector(summaries, messages)

	summaries.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.BroadcastSummary{
		BroadcastID: "b1", Status: domain.SummaryPending, TotalUsers: 2,
	}, nil)
	messages.EXPECT().ListByBroadcast(mock.Anything, "b1").Return([]*domain.BroadcastMessage{
		{Status: domain.MessageStatusSent},
		{Status: domain.MessageStatusPending},
	}, nil)
	summaries.EXPECT().MarkStarted(mock.Anything, "b1", mock.Anything).Return(nil)
	summaries.EXPECT().ApplyDelta(mock.Anything, "b1", 1, 0, 1, domain.SummaryInProgress).Return(nil)

	err := p.Recompute(context.Background(), "b1")

	assert.NoError(t, err)
}

func TestProjector_Recompute_MarksCompletedOnceAllMessagesResolved(t *testing.T) {
	summaries := mocks.NewMockSummaryRepo(t)
	messages := mocks.NewMockMessageRepo(t)
	p := NewProjector(summaries, messages)

	summaries.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.BroadcastSummary{
		BroadcastID: "b1", Status: domain.SummaryInProgress, TotalUsers: 2, SentCount: 1,
	}, nil)
	messages.EXPECT().ListByBroadcast(mock.Anything, "b1").Return([]*domain.BroadcastMessage{
		{Status: domain.MessageStatusSent},
		{Status: domain.MessageStatusFailed},
	}, nil)
	summaries.EXPECT().ApplyDelta(mock.Anything, "b1", 0, 1, 0, domain.SummaryCompleted).Return(nil)
	summaries.EXPECT().MarkCompleted(mock.Anything, "b1", mock.Anything, domain.SummaryCompleted).Return(nil)

	err := p.Recompute(context.Background(), "b1")

	assert.NoError(t, err)
}

func TestProjector_Recompute_DoesNotDoubleMarkCompleted(t *testing.T) {
	summaries := mocks.NewMockSummaryRepo(t)
	messages := mocks.NewMockMessageRepo(t)
	p := NewProjector(summaries, messages)

	now := time.Now().UTC()
	summaries.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.BroadcastSummary{
		BroadcastID: "b1", Status: domain.SummaryInProgress, TotalUsers: 1, SentCount: 1,
		CompletedAt: &now,
	}, nil)
	messages.EXPECT().ListByBroadcast(mock.Anything, "b1").Return([]*domain.BroadcastMessage{
		{Status: domain.MessageStatusSent},
	}, nil)
	summaries.EXPECT().ApplyDelta(mock.Anything, "b1", 0, 0, 0, domain.SummaryCompleted).Return(nil)

	err := p.Recompute(context.Background(), "b1")

	assert.NoError(t, err)
}
