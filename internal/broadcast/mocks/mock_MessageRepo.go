// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"
	time "time"

	domain "github.com/stpnv0/interviewsched/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockMessageRepo is a hand-written mock type for the MessageRepo type
type MockMessageRepo struct {
	mock.Mock
}

type MockMessageRepo_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMessageRepo) EXPECT() *MockMessageRepo_Expecter {
	return &MockMessageRepo_Expecter{mock: &_m.Mock}
}

func (_m *MockMessageRepo) Create(ctx context.Context, msg *domain.BroadcastMessage) error {
	return _m.Called(ctx, msg).Error(0)
}

type MockMessageRepo_Create_Call struct{ *mock.Call }

func (_e *MockMessageRepo_Expecter) Create(ctx, msg interface{}) *MockMessageRepo_Create_Call {
	return &MockMessageRepo_Create_Call{Call: _e.mock.On("Create", ctx, msg)}
}

func (_c *MockMessageRepo_Create_Call) Return(_a0 error) *MockMessageRepo_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockMessageRepo) UpsertPending(ctx context.Context, msg *domain.BroadcastMessage) error {
	return _m.Called(ctx, msg).Error(0)
}

type MockMessageRepo_UpsertPending_Call struct{ *mock.Call }

func (_e *MockMessageRepo_Expecter) UpsertPending(ctx, msg interface{}) *MockMessageRepo_UpsertPending_Call {
	return &MockMessageRepo_UpsertPending_Call{Call: _e.mock.On("UpsertPending", ctx, msg)}
}

func (_c *MockMessageRepo_UpsertPending_Call) Return(_a0 error) *MockMessageRepo_UpsertPending_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockMessageRepo) GetByRecipient(ctx context.Context, broadcastID, recipientID string) (*domain.BroadcastMessage, error) {
	ret := _m.Called(ctx, broadcastID, recipientID)
	var r0 *domain.BroadcastMessage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.BroadcastMessage)
	}
	return r0, ret.Error(1)
}

type MockMessageRepo_GetByRecipient_Call struct{ *mock.Call }

func (_e *MockMessageRepo_Expecter) GetByRecipient(ctx, broadcastID, recipientID interface{}) *MockMessageRepo_GetByRecipient_Call {
	return &MockMessageRepo_GetByRecipient_Call{Call: _e.mock.On("GetByRecipient", ctx, broadcastID, recipientID)}
}

func (_c *MockMessageRepo_GetByRecipient_Call) Return(_a0 *domain.BroadcastMessage, _a1 error) *MockMessageRepo_GetByRecipient_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockMessageRepo) ListByBroadcast(ctx context.Context, broadcastID string) ([]*domain.BroadcastMessage, error) {
	ret := _m.Called(ctx, broadcastID)
	var r0 []*domain.BroadcastMessage
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.BroadcastMessage)
	}
	return r0, ret.Error(1)
}

type MockMessageRepo_ListByBroadcast_Call struct{ *mock.Call }

func (_e *MockMessageRepo_Expecter) ListByBroadcast(ctx, broadcastID interface{}) *MockMessageRepo_ListByBroadcast_Call {
	return &MockMessageRepo_ListByBroadcast_Call{Call: _e.mock.On("ListByBroadcast", ctx, broadcastID)}
}

func (_c *MockMessageRepo_ListByBroadcast_Call) Return(_a0 []*domain.BroadcastMessage, _a1 error) *MockMessageRepo_ListByBroadcast_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockMessageRepo) ListSignUpDelivered(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)
	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

type MockMessageRepo_ListSignUpDelivered_Call struct{ *mock.Call }

func (_e *MockMessageRepo_Expecter) ListSignUpDelivered(ctx interface{}) *MockMessageRepo_ListSignUpDelivered_Call {
	return &MockMessageRepo_ListSignUpDelivered_Call{Call: _e.mock.On("ListSignUpDelivered", ctx)}
}

func (_c *MockMessageRepo_ListSignUpDelivered_Call) Return(_a0 []string, _a1 error) *MockMessageRepo_ListSignUpDelivered_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockMessageRepo) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	return _m.Called(ctx, id, sentAt).Error(0)
}

type MockMessageRepo_MarkSent_Call struct{ *mock.Call }

func (_e *MockMessageRepo_Expecter) MarkSent(ctx, id, sentAt interface{}) *MockMessageRepo_MarkSent_Call {
	return &MockMessageRepo_MarkSent_Call{Call: _e.mock.On("MarkSent", ctx, id, sentAt)}
}

func (_c *MockMessageRepo_MarkSent_Call) Return(_a0 error) *MockMessageRepo_MarkSent_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockMessageRepo) MarkFailed(ctx context.Context, id, errMsg string) error {
	return _m.Called(ctx, id, errMsg).Error(0)
}

type MockMessageRepo_MarkFailed_Call struct{ *mock.Call }

func (_e *MockMessageRepo_Expecter) MarkFailed(ctx, id, errMsg interface{}) *MockMessageRepo_MarkFailed_Call {
	return &MockMessageRepo_MarkFailed_Call{Call: _e.mock.On("MarkFailed", ctx, id, errMsg)}
}

func (_c *MockMessageRepo_MarkFailed_Call) Return(_a0 error) *MockMessageRepo_MarkFailed_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockMessageRepo) MarkRetrying(ctx context.Context, id, errMsg string) error {
	return _m.Called(ctx, id, errMsg).Error(0)
}

type MockMessageRepo_MarkRetrying_Call struct{ *mock.Call }

func (_e *MockMessageRepo_Expecter) MarkRetrying(ctx, id, errMsg interface{}) *MockMessageRepo_MarkRetrying_Call {
	return &MockMessageRepo_MarkRetrying_Call{Call: _e.mock.On("MarkRetrying", ctx, id, errMsg)}
}

func (_c *MockMessageRepo_MarkRetrying_Call) Return(_a0 error) *MockMessageRepo_MarkRetrying_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockMessageRepo) ResetForRetry(ctx context.Context, id string) error {
	return _m.Called(ctx, id).Error(0)
}

type MockMessageRepo_ResetForRetry_Call struct{ *mock.Call }

func (_e *MockMessageRepo_Expecter) ResetForRetry(ctx, id interface{}) *MockMessageRepo_ResetForRetry_Call {
	return &MockMessageRepo_ResetForRetry_Call{Call: _e.mock.On("ResetForRetry", ctx, id)}
}

func (_c *MockMessageRepo_ResetForRetry_Call) Return(_a0 error) *MockMessageRepo_ResetForRetry_Call {
	_c.Call.Return(_a0)
	return _c
}

func NewMockMessageRepo(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMessageRepo {
	m := &MockMessageRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
