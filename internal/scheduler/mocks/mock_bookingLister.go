// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"

	domain "github.com/stpnv0/interviewsched/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockBookingLister is a hand-written mock type for the bookingLister type
type MockBookingLister struct {
	mock.Mock
}

type MockBookingLister_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBookingLister) EXPECT() *MockBookingLister_Expecter {
	return &MockBookingLister_Expecter{mock: &_m.Mock}
}

func (_m *MockBookingLister) DueToday(ctx context.Context) ([]*domain.Booking, error) {
	ret := _m.Called(ctx)

	var r0 []*domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Booking)
	}
	return r0, ret.Error(1)
}

type MockBookingLister_DueToday_Call struct {
	*mock.Call
}

func (_e *MockBookingLister_Expecter) DueToday(ctx interface{}) *MockBookingLister_DueToday_Call {
	return &MockBookingLister_DueToday_Call{Call: _e.mock.On("DueToday", ctx)}
}

func (_c *MockBookingLister_DueToday_Call) Return(_a0 []*domain.Booking, _a1 error) *MockBookingLister_DueToday_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockBookingLister) GetSlot(ctx context.Context, id string) (*domain.Slot, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Slot
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Slot)
	}
	return r0, ret.Error(1)
}

type MockBookingLister_GetSlot_Call struct {
	*mock.Call
}

func (_e *MockBookingLister_Expecter) GetSlot(ctx interface{}, id interface{}) *MockBookingLister_GetSlot_Call {
	return &MockBookingLister_GetSlot_Call{Call: _e.mock.On("GetSlot", ctx, id)}
}

func (_c *MockBookingLister_GetSlot_Call) Return(_a0 *domain.Slot, _a1 error) *MockBookingLister_GetSlot_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func NewMockBookingLister(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBookingLister {
	m := &MockBookingLister{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
