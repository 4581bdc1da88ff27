// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"

	domain "github.com/stpnv0/interviewsched/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockReminderNotifier is a hand-written mock type for the reminderNotifier type
type MockReminderNotifier struct {
	mock.Mock
}

type MockReminderNotifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockReminderNotifier) EXPECT() *MockReminderNotifier_Expecter {
	return &MockReminderNotifier_Expecter{mock: &_m.Mock}
}

func (_m *MockReminderNotifier) NotifyReminder(ctx context.Context, recipientID string, slot *domain.Slot) error {
	ret := _m.Called(ctx, recipientID, slot)
	return ret.Error(0)
}

type MockReminderNotifier_NotifyReminder_Call struct {
	*mock.Call
}

func (_e *MockReminderNotifier_Expecter) NotifyReminder(ctx interface{}, recipientID interface{}, slot interface{}) *MockReminderNotifier_NotifyReminder_Call {
	return &MockReminderNotifier_NotifyReminder_Call{Call: _e.mock.On("NotifyReminder", ctx, recipientID, slot)}
}

func (_c *MockReminderNotifier_NotifyReminder_Call) Return(_a0 error) *MockReminderNotifier_NotifyReminder_Call {
	_c.Call.Return(_a0)
	return _c
}

func NewMockReminderNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReminderNotifier {
	m := &MockReminderNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
