// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"
	time "time"

	domain "github.com/stpnv0/interviewsched/internal/domain"
	repository "github.com/stpnv0/interviewsched/internal/repository"
	mock "github.com/stretchr/testify/mock"
)

// MockVoteRepo is a hand-written mock type for the VoteRepo type
type MockVoteRepo struct {
	mock.Mock
}

type MockVoteRepo_Expecter struct {
	mock *mock.Mock
}

func (_m *MockVoteRepo) EXPECT() *MockVoteRepo_Expecter {
	return &MockVoteRepo_Expecter{mock: &_m.Mock}
}

func (_m *MockVoteRepo) CancelStaleClaims(ctx context.Context, voterID string) error {
	return _m.Called(ctx, voterID).Error(0)
}

type MockVoteRepo_CancelStaleClaims_Call struct{ *mock.Call }

func (_e *MockVoteRepo_Expecter) CancelStaleClaims(ctx, voterID interface{}) *MockVoteRepo_CancelStaleClaims_Call {
	return &MockVoteRepo_CancelStaleClaims_Call{Call: _e.mock.On("CancelStaleClaims", ctx, voterID)}
}

func (_c *MockVoteRepo_CancelStaleClaims_Call) Return(_a0 error) *MockVoteRepo_CancelStaleClaims_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockVoteRepo) TouchedByVoter(ctx context.Context, voterID string) ([]string, error) {
	ret := _m.Called(ctx, voterID)
	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

type MockVoteRepo_TouchedByVoter_Call struct{ *mock.Call }

func (_e *MockVoteRepo_Expecter) TouchedByVoter(ctx, voterID interface{}) *MockVoteRepo_TouchedByVoter_Call {
	return &MockVoteRepo_TouchedByVoter_Call{Call: _e.mock.On("TouchedByVoter", ctx, voterID)}
}

func (_c *MockVoteRepo_TouchedByVoter_Call) Return(_a0 []string, _a1 error) *MockVoteRepo_TouchedByVoter_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockVoteRepo) Stats(ctx context.Context, surveyIDs []string) (map[string]repository.CandidateStats, error) {
	ret := _m.Called(ctx, surveyIDs)
	var r0 map[string]repository.CandidateStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]repository.CandidateStats)
	}
	return r0, ret.Error(1)
}

type MockVoteRepo_Stats_Call struct{ *mock.Call }

func (_e *MockVoteRepo_Expecter) Stats(ctx, surveyIDs interface{}) *MockVoteRepo_Stats_Call {
	return &MockVoteRepo_Stats_Call{Call: _e.mock.On("Stats", ctx, surveyIDs)}
}

func (_c *MockVoteRepo_Stats_Call) Return(_a0 map[string]repository.CandidateStats, _a1 error) *MockVoteRepo_Stats_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockVoteRepo) InsertClaim(ctx context.Context, id, surveyID, voterID string, createdAt time.Time) error {
	return _m.Called(ctx, id, surveyID, voterID, createdAt).Error(0)
}

type MockVoteRepo_InsertClaim_Call struct{ *mock.Call }

func (_e *MockVoteRepo_Expecter) InsertClaim(ctx, id, surveyID, voterID, createdAt interface{}) *MockVoteRepo_InsertClaim_Call {
	return &MockVoteRepo_InsertClaim_Call{Call: _e.mock.On("InsertClaim", ctx, id, surveyID, voterID, createdAt)}
}

func (_c *MockVoteRepo_InsertClaim_Call) Return(_a0 error) *MockVoteRepo_InsertClaim_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockVoteRepo) FindClaim(ctx context.Context, surveyID, voterID string) (*domain.Vote, error) {
	ret := _m.Called(ctx, surveyID, voterID)
	var r0 *domain.Vote
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Vote)
	}
	return r0, ret.Error(1)
}

type MockVoteRepo_FindClaim_Call struct{ *mock.Call }

func (_e *MockVoteRepo_Expecter) FindClaim(ctx, surveyID, voterID interface{}) *MockVoteRepo_FindClaim_Call {
	return &MockVoteRepo_FindClaim_Call{Call: _e.mock.On("FindClaim", ctx, surveyID, voterID)}
}

func (_c *MockVoteRepo_FindClaim_Call) Return(_a0 *domain.Vote, _a1 error) *MockVoteRepo_FindClaim_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockVoteRepo) FinalizeClaim(ctx context.Context, surveyID, voterID string, decision domain.Decision, comment domain.Comment) error {
	return _m.Called(ctx, surveyID, voterID, decision, comment).Error(0)
}

type MockVoteRepo_FinalizeClaim_Call struct{ *mock.Call }

func (_e *MockVoteRepo_Expecter) FinalizeClaim(ctx, surveyID, voterID, decision, comment interface{}) *MockVoteRepo_FinalizeClaim_Call {
	return &MockVoteRepo_FinalizeClaim_Call{Call: _e.mock.On("FinalizeClaim", ctx, surveyID, voterID, decision, comment)}
}

func (_c *MockVoteRepo_FinalizeClaim_Call) Return(_a0 error) *MockVoteRepo_FinalizeClaim_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockVoteRepo) InsertVote(ctx context.Context, v *domain.Vote) error {
	return _m.Called(ctx, v).Error(0)
}

type MockVoteRepo_InsertVote_Call struct{ *mock.Call }

func (_e *MockVoteRepo_Expecter) InsertVote(ctx, v interface{}) *MockVoteRepo_InsertVote_Call {
	return &MockVoteRepo_InsertVote_Call{Call: _e.mock.On("InsertVote", ctx, v)}
}

func (_c *MockVoteRepo_InsertVote_Call) Return(_a0 error) *MockVoteRepo_InsertVote_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockVoteRepo) Tally(ctx context.Context, surveyID string) (domain.Tally, error) {
	ret := _m.Called(ctx, surveyID)
	var r0 domain.Tally
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.Tally)
	}
	return r0, ret.Error(1)
}

type MockVoteRepo_Tally_Call struct{ *mock.Call }

func (_e *MockVoteRepo_Expecter) Tally(ctx, surveyID interface{}) *MockVoteRepo_Tally_Call {
	return &MockVoteRepo_Tally_Call{Call: _e.mock.On("Tally", ctx, surveyID)}
}

func (_c *MockVoteRepo_Tally_Call) Return(_a0 domain.Tally, _a1 error) *MockVoteRepo_Tally_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func NewMockVoteRepo(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVoteRepo {
	m := &MockVoteRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
