// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"

	domain "github.com/stpnv0/interviewsched/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockSlotRepo is a hand-written mock type for the SlotRepo type
type MockSlotRepo struct {
	mock.Mock
}

type MockSlotRepo_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSlotRepo) EXPECT() *MockSlotRepo_Expecter {
	return &MockSlotRepo_Expecter{mock: &_m.Mock}
}

func (_m *MockSlotRepo) Create(ctx context.Context, s *domain.Slot) error {
	return _m.Called(ctx, s).Error(0)
}

type MockSlotRepo_Create_Call struct{ *mock.Call }

func (_e *MockSlotRepo_Expecter) Create(ctx interface{}, s interface{}) *MockSlotRepo_Create_Call {
	return &MockSlotRepo_Create_Call{Call: _e.mock.On("Create", ctx, s)}
}

func (_c *MockSlotRepo_Create_Call) Return(_a0 error) *MockSlotRepo_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockSlotRepo) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Slot
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Slot)
	}
	return r0, ret.Error(1)
}

type MockSlotRepo_GetByID_Call struct{ *mock.Call }

func (_e *MockSlotRepo_Expecter) GetByID(ctx interface{}, id interface{}) *MockSlotRepo_GetByID_Call {
	return &MockSlotRepo_GetByID_Call{Call: _e.mock.On("GetByID", ctx, id)}
}

func (_c *MockSlotRepo_GetByID_Call) Return(_a0 *domain.Slot, _a1 error) *MockSlotRepo_GetByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockSlotRepo) ListOpen(ctx context.Context) ([]*domain.Slot, error) {
	ret := _m.Called(ctx)
	var r0 []*domain.Slot
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*domain.Slot)
	}
	return r0, ret.Error(1)
}

type MockSlotRepo_ListOpen_Call struct{ *mock.Call }

func (_e *MockSlotRepo_Expecter) ListOpen(ctx interface{}) *MockSlotRepo_ListOpen_Call {
	return &MockSlotRepo_ListOpen_Call{Call: _e.mock.On("ListOpen", ctx)}
}

func (_c *MockSlotRepo_ListOpen_Call) Return(_a0 []*domain.Slot, _a1 error) *MockSlotRepo_ListOpen_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockSlotRepo) UpdateCapacity(ctx context.Context, id string, capacity int) error {
	return _m.Called(ctx, id, capacity).Error(0)
}

type MockSlotRepo_UpdateCapacity_Call struct{ *mock.Call }

func (_e *MockSlotRepo_Expecter) UpdateCapacity(ctx, id, capacity interface{}) *MockSlotRepo_UpdateCapacity_Call {
	return &MockSlotRepo_UpdateCapacity_Call{Call: _e.mock.On("UpdateCapacity", ctx, id, capacity)}
}

func (_c *MockSlotRepo_UpdateCapacity_Call) Return(_a0 error) *MockSlotRepo_UpdateCapacity_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockSlotRepo) Update(ctx context.Context, id string, in domain.UpdateSlotInput) error {
	return _m.Called(ctx, id, in).Error(0)
}

type MockSlotRepo_Update_Call struct{ *mock.Call }

func (_e *MockSlotRepo_Expecter) Update(ctx, id, in interface{}) *MockSlotRepo_Update_Call {
	return &MockSlotRepo_Update_Call{Call: _e.mock.On("Update", ctx, id, in)}
}

func (_c *MockSlotRepo_Update_Call) Return(_a0 error) *MockSlotRepo_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockSlotRepo) Delete(ctx context.Context, id string) error {
	return _m.Called(ctx, id).Error(0)
}

type MockSlotRepo_Delete_Call struct{ *mock.Call }

func (_e *MockSlotRepo_Expecter) Delete(ctx, id interface{}) *MockSlotRepo_Delete_Call {
	return &MockSlotRepo_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockSlotRepo_Delete_Call) Return(_a0 error) *MockSlotRepo_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func NewMockSlotRepo(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSlotRepo {
	m := &MockSlotRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
