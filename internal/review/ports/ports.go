package ports

import (
	"context"
	"time"

	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stpnv0/interviewsched/internal/repository"
)

// VoteRepo is the persistence surface the Review Router and Vote Recorder
// depend on. Its methods mirror repository.VoteRepository's signatures
// directly so no adapter is needed between the two.
type VoteRepo interface {
	CancelStaleClaims(ctx context.Context, voterID string) error
	TouchedByVoter(ctx context.Context, voterID string) ([]string, error)
	Stats(ctx context.Context, surveyIDs []string) (map[string]repository.CandidateStats, error)
	InsertClaim(ctx context.Context, id, surveyID, voterID string, createdAt time.Time) error
	FindClaim(ctx context.Context, surveyID, voterID string) (*domain.Vote, error)
	FinalizeClaim(ctx context.Context, surveyID, voterID string, decision domain.Decision, comment domain.Comment) error
	InsertVote(ctx context.Context, v *domain.Vote) error
	Tally(ctx context.Context, surveyID string) (domain.Tally, error)
}

type UserRoleRepo interface {
	Get(ctx context.Context, recipientID string) (domain.Role, error)
	Set(ctx context.Context, recipientID string, role domain.Role) error
	ListPrivileged(ctx context.Context) ([]string, error)
}

// CandidateDirectory is the read-only view of the candidate universe the
// Review Router draws from, backed by the External Directory Client.
type CandidateDirectory interface {
	ListCompletedSurveys(ctx context.Context, limit, skip int) ([]string, error)
}
