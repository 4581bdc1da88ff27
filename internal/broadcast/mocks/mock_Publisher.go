// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"

	domain "github.com/stpnv0/interviewsched/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockPublisher is a hand-written mock type for the Publisher type
type MockPublisher struct {
	mock.Mock
}

type MockPublisher_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPublisher) EXPECT() *MockPublisher_Expecter {
	return &MockPublisher_Expecter{mock: &_m.Mock}
}

func (_m *MockPublisher) PublishEvent(ctx context.Context, e *domain.BroadcastEvent) error {
	return _m.Called(ctx, e).Error(0)
}

type MockPublisher_PublishEvent_Call struct{ *mock.Call }

func (_e *MockPublisher_Expecter) PublishEvent(ctx, e interface{}) *MockPublisher_PublishEvent_Call {
	return &MockPublisher_PublishEvent_Call{Call: _e.mock.On("PublishEvent", ctx, e)}
}

func (_c *MockPublisher_PublishEvent_Call) Return(_a0 error) *MockPublisher_PublishEvent_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockPublisher) PublishDelivery(ctx context.Context, cmd *domain.DeliveryCommand) error {
	return _m.Called(ctx, cmd).Error(0)
}

type MockPublisher_PublishDelivery_Call struct{ *mock.Call }

func (_e *MockPublisher_Expecter) PublishDelivery(ctx, cmd interface{}) *MockPublisher_PublishDelivery_Call {
	return &MockPublisher_PublishDelivery_Call{Call: _e.mock.On("PublishDelivery", ctx, cmd)}
}

func (_c *MockPublisher_PublishDelivery_Call) Return(_a0 error) *MockPublisher_PublishDelivery_Call {
	_c.Call.Return(_a0)
	return _c
}

func NewMockPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPublisher {
	m := &MockPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
