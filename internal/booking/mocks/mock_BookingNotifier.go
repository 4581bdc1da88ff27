// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"

	domain "github.com/stpnv0/interviewsched/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockBookingNotifier is a hand-written mock type for the BookingNotifier type
type MockBookingNotifier struct {
	mock.Mock
}

type MockBookingNotifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBookingNotifier) EXPECT() *MockBookingNotifier_Expecter {
	return &MockBookingNotifier_Expecter{mock: &_m.Mock}
}

func (_m *MockBookingNotifier) NotifyReminder(ctx context.Context, recipientID string, slot *domain.Slot) error {
	return _m.Called(ctx, recipientID, slot).Error(0)
}

type MockBookingNotifier_NotifyReminder_Call struct{ *mock.Call }

func (_e *MockBookingNotifier_Expecter) NotifyReminder(ctx, recipientID, slot interface{}) *MockBookingNotifier_NotifyReminder_Call {
	return &MockBookingNotifier_NotifyReminder_Call{Call: _e.mock.On("NotifyReminder", ctx, recipientID, slot)}
}

func (_c *MockBookingNotifier_NotifyReminder_Call) Return(_a0 error) *MockBookingNotifier_NotifyReminder_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockBookingNotifier) NotifyNoResponse(ctx context.Context, recipientID string) error {
	return _m.Called(ctx, recipientID).Error(0)
}

type MockBookingNotifier_NotifyNoResponse_Call struct{ *mock.Call }

func (_e *MockBookingNotifier_Expecter) NotifyNoResponse(ctx, recipientID interface{}) *MockBookingNotifier_NotifyNoResponse_Call {
	return &MockBookingNotifier_NotifyNoResponse_Call{Call: _e.mock.On("NotifyNoResponse", ctx, recipientID)}
}

func (_c *MockBookingNotifier_NotifyNoResponse_Call) Return(_a0 error) *MockBookingNotifier_NotifyNoResponse_Call {
	_c.Call.Return(_a0)
	return _c
}

func NewMockBookingNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBookingNotifier {
	m := &MockBookingNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
