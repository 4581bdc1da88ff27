// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockBookingLookup is a hand-written mock type for the BookingLookup type
type MockBookingLookup struct {
	mock.Mock
}

type MockBookingLookup_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBookingLookup) EXPECT() *MockBookingLookup_Expecter {
	return &MockBookingLookup_Expecter{mock: &_m.Mock}
}

func (_m *MockBookingLookup) WithoutBooking(ctx context.Context, recipientIDs []string) ([]string, error) {
	ret := _m.Called(ctx, recipientIDs)
	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

type MockBookingLookup_WithoutBooking_Call struct{ *mock.Call }

func (_e *MockBookingLookup_Expecter) WithoutBooking(ctx, recipientIDs interface{}) *MockBookingLookup_WithoutBooking_Call {
	return &MockBookingLookup_WithoutBooking_Call{Call: _e.mock.On("WithoutBooking", ctx, recipientIDs)}
}

func (_c *MockBookingLookup_WithoutBooking_Call) Return(_a0 []string, _a1 error) *MockBookingLookup_WithoutBooking_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func NewMockBookingLookup(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBookingLookup {
	m := &MockBookingLookup{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
