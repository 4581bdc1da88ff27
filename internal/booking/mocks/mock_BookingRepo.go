// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"

	domain "github.com/stpnv0/interviewsched/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockBookingRepo is a hand-written mock type for the BookingRepo type
type MockBookingRepo struct {
	mock.Mock
}

type MockBookingRepo_Expecter struct {
	mock *mock.Mock
}

func (_m *MockBookingRepo) EXPECT() *MockBookingRepo_Expecter {
	return &MockBookingRepo_Expecter{mock: &_m.Mock}
}

func (_m *MockBookingRepo) Book(ctx context.Context, b *domain.Booking) error {
	return _m.Called(ctx, b).Error(0)
}

type MockBookingRepo_Book_Call struct{ *mock.Call }

func (_e *MockBookingRepo_Expecter) Book(ctx, b interface{}) *MockBookingRepo_Book_Call {
	return &MockBookingRepo_Book_Call{Call: _e.mock.On("Book", ctx, b)}
}

func (_c *MockBookingRepo_Book_Call) Return(_a0 error) *MockBookingRepo_Book_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockBookingRepo) GetByRecipient(ctx context.Context, recipientID string) (*domain.Booking, error) {
	ret := _m.Called(ctx, recipientID)
	var r0 *domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Booking)
	}
	return r0, ret.Error(1)
}

type MockBookingRepo_GetByRecipient_Call struct{ *mock.Call }

func (_e *MockBookingRepo_Expecter) GetByRecipient(ctx, recipientID interface{}) *MockBookingRepo_GetByRecipient_Call {
	return &MockBookingRepo_GetByRecipient_Call{Call: _e.mock.On("GetByRecipient", ctx, recipientID)}
}

func (_c *MockBookingRepo_GetByRecipient_Call) Return(_a0 *domain.Booking, _a1 error) *MockBookingRepo_GetByRecipient_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockBookingRepo) ListBySlot(ctx context.Context, slotID string) ([]*domain.Booking, error) {
	ret := _m.Called(ctx, slotID)
	var r0 []*domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Booking)
	}
	return r0, ret.Error(1)
}

type MockBookingRepo_ListBySlot_Call struct{ *mock.Call }

func (_e *MockBookingRepo_Expecter) ListBySlot(ctx, slotID interface{}) *MockBookingRepo_ListBySlot_Call {
	return &MockBookingRepo_ListBySlot_Call{Call: _e.mock.On("ListBySlot", ctx, slotID)}
}

func (_c *MockBookingRepo_ListBySlot_Call) Return(_a0 []*domain.Booking, _a1 error) *MockBookingRepo_ListBySlot_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockBookingRepo) ListDueToday(ctx context.Context) ([]*domain.Booking, error) {
	ret := _m.Called(ctx)
	var r0 []*domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Booking)
	}
	return r0, ret.Error(1)
}

type MockBookingRepo_ListDueToday_Call struct{ *mock.Call }

func (_e *MockBookingRepo_Expecter) ListDueToday(ctx interface{}) *MockBookingRepo_ListDueToday_Call {
	return &MockBookingRepo_ListDueToday_Call{Call: _e.mock.On("ListDueToday", ctx)}
}

func (_c *MockBookingRepo_ListDueToday_Call) Return(_a0 []*domain.Booking, _a1 error) *MockBookingRepo_ListDueToday_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockBookingRepo) ListRecipientsWithoutBooking(ctx context.Context, recipientIDs []string) ([]string, error) {
	ret := _m.Called(ctx, recipientIDs)
	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

type MockBookingRepo_ListRecipientsWithoutBooking_Call struct{ *mock.Call }

func (_e *MockBookingRepo_Expecter) ListRecipientsWithoutBooking(ctx, recipientIDs interface{}) *MockBookingRepo_ListRecipientsWithoutBooking_Call {
	return &MockBookingRepo_ListRecipientsWithoutBooking_Call{Call: _e.mock.On("ListRecipientsWithoutBooking", ctx, recipientIDs)}
}

func (_c *MockBookingRepo_ListRecipientsWithoutBooking_Call) Return(_a0 []string, _a1 error) *MockBookingRepo_ListRecipientsWithoutBooking_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockBookingRepo) DeleteBySlot(ctx context.Context, slotID string) error {
	return _m.Called(ctx, slotID).Error(0)
}

type MockBookingRepo_DeleteBySlot_Call struct{ *mock.Call }

func (_e *MockBookingRepo_Expecter) DeleteBySlot(ctx, slotID interface{}) *MockBookingRepo_DeleteBySlot_Call {
	return &MockBookingRepo_DeleteBySlot_Call{Call: _e.mock.On("DeleteBySlot", ctx, slotID)}
}

func (_c *MockBookingRepo_DeleteBySlot_Call) Return(_a0 error) *MockBookingRepo_DeleteBySlot_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockBookingRepo) Delete(ctx context.Context, id string) error {
	return _m.Called(ctx, id).Error(0)
}

type MockBookingRepo_Delete_Call struct{ *mock.Call }

func (_e *MockBookingRepo_Expecter) Delete(ctx, id interface{}) *MockBookingRepo_Delete_Call {
	return &MockBookingRepo_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockBookingRepo_Delete_Call) Return(_a0 error) *MockBookingRepo_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func NewMockBookingRepo(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockBookingRepo {
	m := &MockBookingRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
