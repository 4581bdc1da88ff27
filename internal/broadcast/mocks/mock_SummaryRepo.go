// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"
	time "time"

	domain "github.com/stpnv0/interviewsched/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockSummaryRepo is a hand-written mock type for the SummaryRepo type
type MockSummaryRepo struct {
	mock.Mock
}

type MockSummaryRepo_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSummaryRepo) EXPECT() *MockSummaryRepo_Expecter {
	return &MockSummaryRepo_Expecter{mock: &_m.Mock}
}

func (_m *MockSummaryRepo) Create(ctx context.Context, s *domain.BroadcastSummary) error {
	return _m.Called(ctx, s).Error(0)
}

type MockSummaryRepo_Create_Call struct{ *mock.Call }

func (_e *MockSummaryRepo_Expecter) Create(ctx, s interface{}) *MockSummaryRepo_Create_Call {
	return &MockSummaryRepo_Create_Call{Call: _e.mock.On("Create", ctx, s)}
}

func (_c *MockSummaryRepo_Create_Call) Return(_a0 error) *MockSummaryRepo_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockSummaryRepo) GetByID(ctx context.Context, broadcastID string) (*domain.BroadcastSummary, error) {
	ret := _m.Called(ctx, broadcastID)
	var r0 *domain.BroadcastSummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.BroadcastSummary)
	}
	return r0, ret.Error(1)
}

type MockSummaryRepo_GetByID_Call struct{ *mock.Call }

func (_e *MockSummaryRepo_Expecter) GetByID(ctx, broadcastID interface{}) *MockSummaryRepo_GetByID_Call {
	return &MockSummaryRepo_GetByID_Call{Call: _e.mock.On("GetByID", ctx, broadcastID)}
}

func (_c *MockSummaryRepo_GetByID_Call) Return(_a0 *domain.BroadcastSummary, _a1 error) *MockSummaryRepo_GetByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockSummaryRepo) ApplyDelta(ctx context.Context, broadcastID string, sentDelta, failedDelta, pendingDelta int, status domain.SummaryStatus) error {
	return _m.Called(ctx, broadcastID, sentDelta, failedDelta, pendingDelta, status).Error(0)
}

type MockSummaryRepo_ApplyDelta_Call struct{ *mock.Call }

func (_e *MockSummaryRepo_Expecter) ApplyDelta(ctx, broadcastID, sentDelta, failedDelta, pendingDelta, status interface{}) *MockSummaryRepo_ApplyDelta_Call {
	return &MockSummaryRepo_ApplyDelta_Call{Call: _e.mock.On("ApplyDelta", ctx, broadcastID, sentDelta, failedDelta, pendingDelta, status)}
}

func (_c *MockSummaryRepo_ApplyDelta_Call) Return(_a0 error) *MockSummaryRepo_ApplyDelta_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockSummaryRepo) MarkStarted(ctx context.Context, broadcastID string, startedAt time.Time) error {
	return _m.Called(ctx, broadcastID, startedAt).Error(0)
}

type MockSummaryRepo_MarkStarted_Call struct{ *mock.Call }

func (_e *MockSummaryRepo_Expecter) MarkStarted(ctx, broadcastID, startedAt interface{}) *MockSummaryRepo_MarkStarted_Call {
	return &MockSummaryRepo_MarkStarted_Call{Call: _e.mock.On("MarkStarted", ctx, broadcastID, startedAt)}
}

func (_c *MockSummaryRepo_MarkStarted_Call) Return(_a0 error) *MockSummaryRepo_MarkStarted_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockSummaryRepo) MarkCompleted(ctx context.Context, broadcastID string, completedAt time.Time, status domain.SummaryStatus) error {
	return _m.Called(ctx, broadcastID, completedAt, status).Error(0)
}

type MockSummaryRepo_MarkCompleted_Call struct{ *mock.Call }

func (_e *MockSummaryRepo_Expecter) MarkCompleted(ctx, broadcastID, completedAt, status interface{}) *MockSummaryRepo_MarkCompleted_Call {
	return &MockSummaryRepo_MarkCompleted_Call{Call: _e.mock.On("MarkCompleted", ctx, broadcastID, completedAt, status)}
}

func (_c *MockSummaryRepo_MarkCompleted_Call) Return(_a0 error) *MockSummaryRepo_MarkCompleted_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockSummaryRepo) ListActive(ctx context.Context) ([]*domain.BroadcastSummary, error) {
	ret := _m.Called(ctx)
	var r0 []*domain.BroadcastSummary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.BroadcastSummary)
	}
	return r0, ret.Error(1)
}

type MockSummaryRepo_ListActive_Call struct{ *mock.Call }

func (_e *MockSummaryRepo_Expecter) ListActive(ctx interface{}) *MockSummaryRepo_ListActive_Call {
	return &MockSummaryRepo_ListActive_Call{Call: _e.mock.On("ListActive", ctx)}
}

func (_c *MockSummaryRepo_ListActive_Call) Return(_a0 []*domain.BroadcastSummary, _a1 error) *MockSummaryRepo_ListActive_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func NewMockSummaryRepo(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSummaryRepo {
	m := &MockSummaryRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
