// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"

	domain "github.com/stpnv0/interviewsched/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockEventRepo is a hand-written mock type for the EventRepo type
type MockEventRepo struct {
	mock.Mock
}

type MockEventRepo_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventRepo) EXPECT() *MockEventRepo_Expecter {
	return &MockEventRepo_Expecter{mock: &_m.Mock}
}

func (_m *MockEventRepo) Append(ctx context.Context, e *domain.BroadcastEvent) error {
	return _m.Called(ctx, e).Error(0)
}

type MockEventRepo_Append_Call struct{ *mock.Call }

func (_e *MockEventRepo_Expecter) Append(ctx, e interface{}) *MockEventRepo_Append_Call {
	return &MockEventRepo_Append_Call{Call: _e.mock.On("Append", ctx, e)}
}

func (_c *MockEventRepo_Append_Call) Return(_a0 error) *MockEventRepo_Append_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockEventRepo) AppendCreatedWithSummary(ctx context.Context, e *domain.BroadcastEvent, s *domain.BroadcastSummary) error {
	return _m.Called(ctx, e, s).Error(0)
}

type MockEventRepo_AppendCreatedWithSummary_Call struct{ *mock.Call }

func (_e *MockEventRepo_Expecter) AppendCreatedWithSummary(ctx, e, s interface{}) *MockEventRepo_AppendCreatedWithSummary_Call {
	return &MockEventRepo_AppendCreatedWithSummary_Call{Call: _e.mock.On("AppendCreatedWithSummary", ctx, e, s)}
}

func (_c *MockEventRepo_AppendCreatedWithSummary_Call) Return(_a0 error) *MockEventRepo_AppendCreatedWithSummary_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockEventRepo) ListSince(ctx context.Context, broadcastID string, afterVersion int) ([]*domain.BroadcastEvent, error) {
	ret := _m.Called(ctx, broadcastID, afterVersion)
	var r0 []*domain.BroadcastEvent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.BroadcastEvent)
	}
	return r0, ret.Error(1)
}

type MockEventRepo_ListSince_Call struct{ *mock.Call }

func (_e *MockEventRepo_Expecter) ListSince(ctx, broadcastID, afterVersion interface{}) *MockEventRepo_ListSince_Call {
	return &MockEventRepo_ListSince_Call{Call: _e.mock.On("ListSince", ctx, broadcastID, afterVersion)}
}

func (_c *MockEventRepo_ListSince_Call) Return(_a0 []*domain.BroadcastEvent, _a1 error) *MockEventRepo_ListSince_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockEventRepo) GetByID(ctx context.Context, eventID string) (*domain.BroadcastEvent, error) {
	ret := _m.Called(ctx, eventID)
	var r0 *domain.BroadcastEvent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.BroadcastEvent)
	}
	return r0, ret.Error(1)
}

type MockEventRepo_GetByID_Call struct{ *mock.Call }

func (_e *MockEventRepo_Expecter) GetByID(ctx, eventID interface{}) *MockEventRepo_GetByID_Call {
	return &MockEventRepo_GetByID_Call{Call: _e.mock.On("GetByID", ctx, eventID)}
}

func (_c *MockEventRepo_GetByID_Call) Return(_a0 *domain.BroadcastEvent, _a1 error) *MockEventRepo_GetByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockEventRepo) IsProcessed(ctx context.Context, eventID, workerID string) (bool, error) {
	ret := _m.Called(ctx, eventID, workerID)
	return ret.Get(0).(bool), ret.Error(1)
}

type MockEventRepo_IsProcessed_Call struct{ *mock.Call }

func (_e *MockEventRepo_Expecter) IsProcessed(ctx, eventID, workerID interface{}) *MockEventRepo_IsProcessed_Call {
	return &MockEventRepo_IsProcessed_Call{Call: _e.mock.On("IsProcessed", ctx, eventID, workerID)}
}

func (_c *MockEventRepo_IsProcessed_Call) Return(_a0 bool, _a1 error) *MockEventRepo_IsProcessed_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockEventRepo) MarkProcessed(ctx context.Context, eventID, workerID string) (bool, error) {
	ret := _m.Called(ctx, eventID, workerID)
	return ret.Get(0).(bool), ret.Error(1)
}

type MockEventRepo_MarkProcessed_Call struct{ *mock.Call }

func (_e *MockEventRepo_Expecter) MarkProcessed(ctx, eventID, workerID interface{}) *MockEventRepo_MarkProcessed_Call {
	return &MockEventRepo_MarkProcessed_Call{Call: _e.mock.On("MarkProcessed", ctx, eventID, workerID)}
}

func (_c *MockEventRepo_MarkProcessed_Call) Return(_a0 bool, _a1 error) *MockEventRepo_MarkProcessed_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func NewMockEventRepo(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventRepo {
	m := &MockEventRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
