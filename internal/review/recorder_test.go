package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stpnv0/interviewsched/internal/repository"
	"github.com/stpnv0/interviewsched/internal/review/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRecorder_SubmitVote_RejectsReservedComment(t *testing.T) {
	votes := mocks.NewMockVoteRepo(t)
	roles := mocks.NewMockUserRoleRepo(t)
	dir := mocks.NewMockCandidateDirectory(t)
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))
	rc := NewRecorder(votes, rt, newTestLogger(t))

	_, err := rc.SubmitVote(context.Background(), "voter1", "s1", domain.DecisionApprove, domain.CommentClaim)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecorder_SubmitVote_FinalizesExistingClaimThenRoutesNext(t *testing.T) {
	votes := mocks.NewMockVoteRepo(t)
	roles := mocks.NewMockUserRoleRepo(t)
	dir := mocks.NewMockCandidateDirectory(t)
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))
	rc := NewRecorder(votes, rt, newTestLogger(t))

	votes.EXPECT().FindClaim(mock.Anything, "s1", "voter1").Return(&domain.Vote{SurveyID: "s1", VoterID: "voter1"}, nil)
	votes.EXPECT().FinalizeClaim(mock.Anything, "s1", "voter1", domain.DecisionApprove, domain.Comment("looks good")).Return(nil)

	roles.EXPECT().Get(mock.Anything, "voter1").Return(domain.RoleOrdinary, nil)
	votes.EXPECT().CancelStaleClaims(mock.Anything, "voter1").Return(nil)
	votes.EXPECT().TouchedByVoter(mock.Anything, "voter1").Return([]string{"s1"}, nil)
	dir.EXPECT().ListCompletedSurveys(mock.Anything, DirectoryPageSize, 0).Return([]string{"s1", "s2"}, nil)
	votes.EXPECT().Stats(mock.Anything, []string{"s2"}).Return(map[string]repository.CandidateStats{"s2": {}}, nil)
	votes.EXPECT().InsertClaim(mock.Anything, mock.Anything, "s2", "voter1", mock.Anything).Return(nil)
	votes.EXPECT().Tally(mock.Anything, "s2").Return(domain.Tally{SurveyID: "s2"}, nil)

	res, err := rc.SubmitVote(context.Background(), "voter1", "s1", domain.DecisionApprove, domain.Comment("looks good"))

	assert.NoError(t, err)
	assert.NotNil(t, res.Next)
	assert.Equal(t, "s2", res.Next.SurveyID)
}

func TestRecorder_SubmitVote_InsertsFreshVoteWhenNoClaimExists(t *testing.T) {
	votes := mocks.NewMockVoteRepo(t)
	roles := mocks.NewMockUserRoleRepo(t)
	dir := mocks.NewMockCandidateDirectory(t)
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))
	rc := NewRecorder(votes, rt, newTestLogger(t))

	votes.EXPECT().FindClaim(mock.Anything, "s1", "voter1").Return(nil, domain.ErrVoteNotFound)
	votes.EXPECT().InsertVote(mock.Anything, mock.AnythingOfType("*domain.Vote")).Return(nil)

	roles.EXPECT().Get(mock.Anything, "voter1").Return(domain.RoleOrdinary, nil)
	votes.EXPECT().CancelStaleClaims(mock.Anything, "voter1").Return(nil)
	votes.EXPECT().TouchedByVoter(mock.Anything, "voter1").Return(nil, nil)
	dir.EXPECT().ListCompletedSurveys(mock.Anything, DirectoryPageSize, 0).Return(nil, nil)

	res, err := rc.SubmitVote(context.Background(), "voter1", "s1", domain.DecisionReject, domain.Comment("no"))

	assert.NoError(t, err)
	assert.Nil(t, res.Next)
}

func TestRecorder_SubmitVote_PropagatesFinalizeError(t *testing.T) {
	votes := mocks.NewMockVoteRepo(t)
	roles := mocks.NewMockUserRoleRepo(t)
	dir := mocks.NewMockCandidateDirectory(t)
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))
	rc := NewRecorder(votes, rt, newTestLogger(t))

	votes.EXPECT().FindClaim(mock.Anything, "s1", "voter1").Return(&domain.Vote{}, nil)
	votes.EXPECT().FinalizeClaim(mock.Anything, "s1", "voter1", domain.DecisionApprove, domain.Comment("x")).
		Return(errors.New("db down"))

	_, err := rc.SubmitVote(context.Background(), "voter1", "s1", domain.DecisionApprove, domain.Comment("x"))

	assert.Error(t, err)
}

func TestRecorder_Tally_Passthrough(t *testing.T) {
	votes := mocks.NewMockVoteRepo(t)
	roles := mocks.NewMockUserRoleRepo(t)
	dir := mocks.NewMockCandidateDirectory(t)
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))
	rc := NewRecorder(votes, rt, newTestLogger(t))

	votes.EXPECT().Tally(mock.Anything, "s1").Return(domain.Tally{SurveyID: "s1", RealVotes: 2}, nil)

	tl, err := rc.Tally(context.Background(), "s1")

	assert.NoError(t, err)
	assert.Equal(t, 2, tl.RealVotes)
}
