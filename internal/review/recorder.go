package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stpnv0/interviewsched/internal/metrics"
	"github.com/stpnv0/interviewsched/internal/review/ports"
	"github.com/wb-go/wbf/logger"
)

// Recorder is the Vote Recorder: it finalises a reviewer's claim into a
// real vote and immediately hands back their next assignment.
type Recorder struct {
	votes  ports.VoteRepo
	router *Router
	logger logger.Logger
}

func NewRecorder(votes ports.VoteRepo, router *Router, log logger.Logger) *Recorder {
	return &Recorder{votes: votes, router: router, logger: log}
}

// SubmitResult bundles the recorded outcome with the reviewer's next
// candidate, if any.
type SubmitResult struct {
	Next *Assignment
}

func (rc *Recorder) SubmitVote(ctx context.Context, voterID, surveyID string, decision domain.Decision, comment domain.Comment) (*SubmitResult, error) {
	if comment.IsReserved() {
		return nil, fmt.Errorf("%w: comment must not be a reserved marker", domain.ErrInvalidInput)
	}

	_, err := rc.votes.FindClaim(ctx, surveyID, voterID)
	switch {
	case err == nil:
		if err = rc.votes.FinalizeClaim(ctx, surveyID, voterID, decision, comment); err != nil {
			return nil, fmt.Errorf("finalize claim: %w", err)
		}
	case errors.Is(err, domain.ErrVoteNotFound):
		v := &domain.Vote{
			ID:        uuid.New().String(),
			SurveyID:  surveyID,
			VoterID:   voterID,
			Decision:  decision,
			Comment:   comment,
			CreatedAt: time.Now().UTC(),
		}
		if err = rc.votes.InsertVote(ctx, v); err != nil {
			return nil, fmt.Errorf("insert vote: %w", err)
		}
	default:
		return nil, fmt.Errorf("find claim: %w", err)
	}

	metrics.VotesRecorded.Inc()
	rc.logger.Info("vote recorded",
		logger.String("survey_id", surveyID),
		logger.String("voter_id", voterID),
	)

	next, err := rc.router.GetNextSurvey(ctx, voterID)
	if err != nil {
		if errors.Is(err, ErrNoWork) {
			return &SubmitResult{Next: nil}, nil
		}
		return nil, fmt.Errorf("route next survey: %w", err)
	}

	return &SubmitResult{Next: next}, nil
}

func (rc *Recorder) Tally(ctx context.Context, surveyID string) (domain.Tally, error) {
	return rc.votes.Tally(ctx, surveyID)
}
