package broadcast

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/interviewsched/internal/broadcast/mocks"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stretchr/testify/assert"
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

func TestCommander_CreateBroadcast_RejectsEmptyRecipients(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	summaries := mocks.NewMockSummaryRepo(t)
	messages := mocks.NewMockMessageRepo(t)
	pub := mocks.NewMockPublisher(t)
	c := NewCommander(events, summaries, messages, pub, newTestLogger(t))

	_, err := c.CreateBroadcast(context.Background(), domain.CreateBroadcastInput{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCommander_CreateBroadcast_UsesSignUpEventTypeForSignUpMessages(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	summaries := mocks.NewMockSummaryRepo(t)
	messages := mocks.NewMockMessageRepo(t)
	pub := mocks.NewMockPublisher(t)
	c := NewCommander(events, summaries, messages, pub, newTestLogger(t))

	var captured *domain.BroadcastEvent
	events.EXPECT().AppendCreatedWithSummary(mock.Anything, mock.AnythingOfType("*domain.BroadcastEvent"), mock.AnythingOfType("*domain.BroadcastSummary")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*domain.BroadcastEvent)
		}).Return(nil)
	pub.EXPECT().PublishEvent(mock.Anything, mock.AnythingOfType("*domain.BroadcastEvent")).Return(nil)

	res, err := c.CreateBroadcast(context.Background(), domain.CreateBroadcastInput{
		Message:      "reminder",
		MessageType:  domain.MessageTypeSignUp,
		RecipientIDs: []string{"r1", "r2"},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.SummaryPending, res.Status)
	assert.Equal(t, domain.EventBroadcastCreatedSignUp, captured.Type)
}

func TestCommander_CreateBroadcast_SurvivesPublishFailure(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	summaries := mocks.NewMockSummaryRepo(t)
	messages := mocks.NewMockMessageRepo(t)
	pub := mocks.NewMockPublisher(t)
	c := NewCommander(events, summaries, messages, pub, newTestLogger(t))

	events.EXPECT().AppendCreatedWithSummary(mock.Anything, mock.Anything, mock.Anything).Return(nil)
	pub.EXPECT().PublishEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	res, err := c.CreateBroadcast(context.Background(), domain.CreateBroadcastInput{
		Message:      "hi",
		RecipientIDs: []string{"r1"},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.BroadcastID)
}

func TestCommander_RetryMessage_RejectsNonFailedState(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	summaries := mocks.NewMockSummaryRepo(t)
	messages := mocks.NewMockMessageRepo(t)
	pub := mocks.NewMockPublisher(t)
	c := NewCommander(events, summaries, messages, pub, newTestLogger(t))

	messages.EXPECT().GetByRecipient(mock.Anything, "b1", "r1").
		Return(&domain.BroadcastMessage{ID: "m1", Status: domain.MessageStatusSent}, nil)

	err := c.RetryMessage(context.Background(), "b1", "r1")

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCommander_RetryMessage_IsIdempotentAgainstAlreadyRetrying(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	summaries := mocks.NewMockSummaryRepo(t)
	messages := mocks.NewMockMessageRepo(t)
	pub := mocks.NewMockPublisher(t)
	c := NewCommander(events, summaries, messages, pub, newTestLogger(t))

	messages.EXPECT().GetByRecipient(mock.Anything, "b1", "r1").
		Return(&domain.BroadcastMessage{ID: "m1", Status: domain.MessageStatusRetrying}, nil)

	err := c.RetryMessage(context.Background(), "b1", "r1")

	assert.NoError(t, err)
}

func TestCommander_RetryMessage_RepublishesForFailedMessage(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	summaries := mocks.NewMockSummaryRepo(t)
	messages := mocks.NewMockMessageRepo(t)
	pub := mocks.NewMockPublisher(t)
	c := NewCommander(events, summaries, messages, pub, newTestLogger(t))

	messages.EXPECT().GetByRecipient(mock.Anything, "b1", "r1").
		Return(&domain.BroadcastMessage{ID: "m1", Status: domain.MessageStatusFailed, RetryCount: 0}, nil)
	summaries.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.BroadcastSummary{BroadcastID: "b1", Message: "hi"}, nil)
	messages.EXPECT().MarkRetrying(mock.Anything, "m1", mock.Anything).Return(nil)
	events.EXPECT().Append(mock.Anything, mock.AnythingOfType("*domain.BroadcastEvent")).Return(nil)
	pub.EXPECT().PublishDelivery(mock.Anything, mock.AnythingOfType("*domain.DeliveryCommand")).Return(nil)

	err := c.RetryMessage(context.Background(), "b1", "r1")

	assert.NoError(t, err)
}

func TestCommander_CancelBroadcast_MarksSummaryFailed(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	summaries := mocks.NewMockSummaryRepo(t)
	messages := mocks.NewMockMessageRepo(t)
	pub := mocks.NewMockPublisher(t)
	c := NewCommander(events, summaries, messages, pub, newTestLogger(t))

	summaries.EXPECT().MarkCompleted(mock.Anything, "b1", mock.Anything, domain.SummaryFailed).Return(nil)

	err := c.CancelBroadcast(context.Background(), "b1")

	assert.NoError(t, err)
}
