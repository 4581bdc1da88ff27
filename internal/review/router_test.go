package review

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stpnv0/interviewsched/internal/domain"
	"github.com/stpnv0/interviewsched/internal/repository"
	"github.com/stpnv0/interviewsched/internal/review/mocks"
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

const quorum = 3

func TestRouter_GetNextSurvey_OrdinaryPicksClosestToQuorum(t *testing.T) {
	votes := mocks.NewMockVoteRepo(t)
	roles := mocks.NewMockUserRoleRepo(t)
	dir := mocks.NewMockCandidateDirectory(t)
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))

	roles.EXPECT().Get(mock.Anything, "voter1").Return(domain.RoleOrdinary, nil)
	votes.EXPECT().CancelStaleClaims(mock.Anything, "voter1").Return(nil)
	votes.EXPECT().TouchedByVoter(mock.Anything, "voter1").Return(nil, nil)
	dir.EXPECT().ListCompletedSurveys(mock.Anything, DirectoryPageSize, 0).
		Return([]string{"s1", "s2"}, nil)

	stats := map[string]repository.CandidateStats{
		"s1": {SurveyID: "s1", RealVotes: 0},
		"s2": {SurveyID: "s2", RealVotes: 2},
	}
	votes.EXPECT().Stats(mock.Anything, []string{"s1", "s2"}).Return(stats, nil)
	votes.EXPECT().InsertClaim(mock.Anything, mock.Anything, "s2", "voter1", mock.Anything).Return(nil)
	votes.EXPECT().Tally(mock.Anything, "s2").Return(domain.Tally{SurveyID: "s2", RealVotes: 2}, nil)

	a, err := rt.GetNextSurvey(context.Background(), "voter1")

	assert.NoError(t, err)
	assert.Equal(t, "s2", a.SurveyID)
}

func TestRouter_GetNextSurvey_SkipsClaimedAndAtQuorumCandidates(t *testing.T) {
	votes := mocks.NewMockVoteRepo(t)
	roles := mocks.NewMockUserRoleRepo(t)
	dir := mocks.NewMockCandidateDirectory(t)
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))

	roles.EXPECT().Get(mock.Anything, "voter1").Return(domain.RoleOrdinary, nil)
	votes.EXPECT().CancelStaleClaims(mock.Anything, "voter1").Return(nil)
	votes.EXPECT().TouchedByVoter(mock.Anything, "voter1").Return(nil, nil)
	dir.EXPECT().ListCompletedSurveys(mock.Anything, DirectoryPageSize, 0).
		Return([]string{"claimed", "atquorum", "eligible"}, nil)

	stats := map[string]repository.CandidateStats{
		"claimed":  {ClaimVotes: 1},
		"atquorum": {RealVotes: quorum},
		"eligible": {RealVotes: 1},
	}
	votes.EXPECT().Stats(mock.Anything, []string{"claimed", "atquorum", "eligible"}).Return(stats, nil)
	votes.EXPECT().InsertClaim(mock.Anything, mock.Anything, "eligible", "voter1", mock.Anything).Return(nil)
	votes.EXPECT().Tally(mock.Anything, "eligible").Return(domain.Tally{}, nil)

	a, err := rt.GetNextSurvey(context.Background(), "voter1")

	assert.NoError(t, err)
	assert.Equal(t, "eligible", a.SurveyID)
}

func TestRouter_GetNextSurvey_PrivilegedRequiresQuorumAndNoPrivilegedRow(t *testing.T) {
	votes := mocks.NewMockVoteRepo(t)
	roles := mocks.NewMockUserRoleRepo(t)
	dir := mocks.NewMockCandidateDirectory(t)
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))

	roles.EXPECT().Get(mock.Anything, "boss").Return(domain.RolePrivileged, nil)
	votes.EXPECT().CancelStaleClaims(mock.Anything, "boss").Return(nil)
	votes.EXPECT().TouchedByVoter(mock.Anything, "boss").Return(nil, nil)
	dir.EXPECT().ListCompletedSurveys(mock.Anything, DirectoryPageSize, 0).
		Return([]string{"below", "already", "ready"}, nil)

	stats := map[string]repository.CandidateStats{
		"below":   {RealVotes: 1},
		"already": {RealVotes: quorum, HasPrivilegedRow: true},
		"ready":   {RealVotes: quorum, HasPrivilegedRow: false},
	}
	votes.EXPECT().Stats(mock.Anything, []string{"below", "already", "ready"}).Return(stats, nil)
	votes.EXPECT().InsertClaim(mock.Anything, mock.Anything, "ready", "boss", mock.Anything).Return(nil)
	votes.EXPECT().Tally(mock.Anything, "ready").Return(domain.Tally{}, nil)

	a, err := rt.GetNextSurvey(context.Background(), "boss")

	assert.NoError(t, err)
	assert.Equal(t, "ready", a.SurveyID)
}

func TestRouter_GetNextSurvey_ReturnsErrNoWorkWhenNothingEligible(t *testing.T) {
	votes := mocks.NewMockVoteRepo(t)
	roles := mocks.NewMockUserRoleRepo(t)
	dir := mocks.NewMockCandidateDirectory(t)
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))

	roles.EXPECT().Get(mock.Anything, "voter1").Return(domain.RoleOrdinary, nil)
	votes.EXPECT().CancelStaleClaims(mock.Anything, "voter1").Return(nil)
	votes.EXPECT().TouchedByVoter(mock.Anything, "voter1").Return(nil, nil)
	dir.EXPECT().ListCompletedSurveys(mock.Anything, DirectoryPageSize, 0).Return(nil, nil)

	_, err := rt.GetNextSurvey(context.Background(), "voter1")

	assert.ErrorIs(t, err, ErrNoWork)
}

func TestRouter_GetNextSurvey_ExcludesCandidatesTouchedByVoter(t *testing.T) {
	votes := mocks.NewMockVoteRepo(t)
	roles := mocks.NewMockUserRoleRepo(t)
	dir := mocks.NewMockCandidateDirectory(t)
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))

	roles.EXPECT().Get(mock.Anything, "voter1").Return(domain.RoleOrdinary, nil)
	votes.EXPECT().CancelStaleClaims(mock.Anything, "voter1").Return(nil)
	votes.EXPECT().TouchedByVoter(mock.Anything, "voter1").Return([]string{"already-voted"}, nil)
	dir.EXPECT().ListCompletedSurveys(mock.Anything, DirectoryPageSize, 0).
		Return([]string{"already-voted"}, nil)

	_, err := rt.GetNextSurvey(context.Background(), "voter1")

	assert.ErrorIs(t, err, ErrNoWork)
}

func TestRouter_GetNextSurvey_LosingClaimRaceReturnsErrNoWork(t *testing.T) {
	votes := mocks.NewMockVoteRepo(t)
	roles := mocks.NewMockUserRoleRepo(t)
	dir := mocks.NewMockCandidateDirectory(t)
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))

	roles.EXPECT().Get(mock.Anything, "voter1").Return(domain.RoleOrdinary, nil)
	votes.EXPECT().CancelStaleClaims(mock.Anything, "voter1").Return(nil)
	votes.EXPECT().TouchedByVoter(mock.Anything, "voter1").Return(nil, nil)
	dir.EXPECT().ListCompletedSurveys(mock.Anything, DirectoryPageSize, 0).Return([]string{"s1"}, nil)
	votes.EXPECT().Stats(mock.Anything, []string{"s1"}).Return(map[string]repository.CandidateStats{"s1": {}}, nil)
	votes.EXPECT().InsertClaim(mock.Anything, mock.Anything, "s1", "voter1", mock.Anything).
		Return(domain.ErrConflict)

	_, err := rt.GetNextSurvey(context.Background(), "voter1")

	assert.ErrorIs(t, err, ErrNoWork)
}

func TestRouter_GetNextSurvey_PropagatesRoleLookupError(t *testing.T) {
	votes := mocks.NewMockVoteRepo(t)
	roles := mocks.NewMockUserRoleRepo(t)
	dir := mocks.NewMockCandidateDirectory(t)
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))

	roles.EXPECT().Get(mock.Anything, "voter1").Return(domain.RoleOrdinary, errors.New("db down"))

	_, err := rt.GetNextSurvey(context.Background(), "voter1")

	assert.Error(t, err)
}

// fakeVoteRepo backs a single map of active claims/votes keyed by
// survey_id and reproduces the conditional-insert semantics a real
// UNIQUE constraint gives a lone writer: InsertClaim is the sole point
// that decides a race, under one mutex, regardless of what an earlier
// Stats call told the caller.
type fakeVoteRepo struct {
	mu      sync.Mutex
	claimed map[string]bool
	stats   map[string]repository.CandidateStats
}

func newFakeVoteRepo(stats map[string]repository.CandidateStats) *fakeVoteRepo {
	return &fakeVoteRepo{claimed: make(map[string]bool), stats: stats}
}

func (f *fakeVoteRepo) CancelStaleClaims(ctx context.Context, voterID string) error { return nil }
func (f *fakeVoteRepo) TouchedByVoter(ctx context.Context, voterID string) ([]string, error) {
	return nil, nil
}

func (f *fakeVoteRepo) Stats(ctx context.Context, surveyIDs []string) (map[string]repository.CandidateStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]repository.CandidateStats, len(surveyIDs))
	for _, id := range surveyIDs {
		s := f.stats[id]
		if f.claimed[id] {
			s.ClaimVotes++
		}
		out[id] = s
	}
	return out, nil
}

func (f *fakeVoteRepo) InsertClaim(ctx context.Context, id, surveyID, voterID string, createdAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.claimed[surveyID] {
		return domain.ErrConflict
	}
	f.claimed[surveyID] = true
	return nil
}

func (f *fakeVoteRepo) FindClaim(ctx context.Context, surveyID, voterID string) (*domain.Vote, error) {
	return nil, domain.ErrVoteNotFound
}
func (f *fakeVoteRepo) FinalizeClaim(ctx context.Context, surveyID, voterID string, decision domain.Decision, comment domain.Comment) error {
	return nil
}
func (f *fakeVoteRepo) InsertVote(ctx context.Context, v *domain.Vote) error { return nil }
func (f *fakeVoteRepo) Tally(ctx context.Context, surveyID string) (domain.Tally, error) {
	return domain.Tally{SurveyID: surveyID}, nil
}

type fakeUserRoleRepo struct {
	role domain.Role
}

func (f fakeUserRoleRepo) Get(ctx context.Context, recipientID string) (domain.Role, error) {
	return f.role, nil
}
func (f fakeUserRoleRepo) Set(ctx context.Context, recipientID string, role domain.Role) error {
	return nil
}
func (f fakeUserRoleRepo) ListPrivileged(ctx context.Context) ([]string, error) { return nil, nil }

type fakeCandidateDirectory struct {
	page []string
}

func (f fakeCandidateDirectory) ListCompletedSurveys(ctx context.Context, limit, skip int) ([]string, error) {
	if skip > 0 {
		return nil, nil
	}
	return f.page, nil
}

// TestRouter_GetNextSurvey_ConcurrentClaimRaceYieldsExactlyOneWinner
// exercises the claim race directly: N ordinary voters call GetNextSurvey
// concurrently when exactly one candidate is eligible, and exactly one
// must win the claim while the rest get ErrNoWork.
func TestRouter_GetNextSurvey_ConcurrentClaimRaceYieldsExactlyOneWinner(t *testing.T) {
	stats := map[string]repository.CandidateStats{"c": {SurveyID: "c", RealVotes: 1}}
	votes := newFakeVoteRepo(stats)
	roles := fakeUserRoleRepo{role: domain.RoleOrdinary}
	dir := fakeCandidateDirectory{page: []string{"c"}}
	rt := NewRouter(votes, roles, dir, quorum, newTestLogger(t))

	const n = 8
	assignments := make([]*Assignment, n)
	results := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			a, err := rt.GetNextSurvey(context.Background(), fmt.Sprintf("voter-%d", i))
			assignments[i] = a
			results[i] = err
		}(i)
	}
	wg.Wait()

	winners, noWork := 0, 0
	for i, err := range results {
		switch {
		case err == nil:
			winners++
			assert.Equal(t, "c", assignments[i].SurveyID)
		case errors.Is(err, ErrNoWork):
			noWork++
		default:
			t.Fatalf("voter %d got unexpected error: %v", i, err)
		}
	}

	assert.Equal(t, 1, winners)
	assert.Equal(t, n-1, noWork)
}
