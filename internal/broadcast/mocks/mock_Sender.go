// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"

	domain "github.com/stpnv0/interviewsched/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockSender is a hand-written mock type for the Sender type
type MockSender struct {
	mock.Mock
}

type MockSender_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSender) EXPECT() *MockSender_Expecter {
	return &MockSender_Expecter{mock: &_m.Mock}
}

func (_m *MockSender) Send(ctx context.Context, cmd *domain.DeliveryCommand) error {
	return _m.Called(ctx, cmd).Error(0)
}

type MockSender_Send_Call struct{ *mock.Call }

func (_e *MockSender_Expecter) Send(ctx, cmd interface{}) *MockSender_Send_Call {
	return &MockSender_Send_Call{Call: _e.mock.On("Send", ctx, cmd)}
}

func (_c *MockSender_Send_Call) Return(_a0 error) *MockSender_Send_Call {
	_c.Call.Return(_a0)
	return _c
}

func NewMockSender(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSender {
	m := &MockSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
