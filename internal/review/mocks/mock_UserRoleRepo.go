// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"

	domain "github.com/stpnv0/interviewsched/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// MockUserRoleRepo is a hand-written mock type for the UserRoleRepo type
type MockUserRoleRepo struct {
	mock.Mock
}

type MockUserRoleRepo_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRoleRepo) EXPECT() *MockUserRoleRepo_Expecter {
	return &MockUserRoleRepo_Expecter{mock: &_m.Mock}
}

func (_m *MockUserRoleRepo) Get(ctx context.Context, recipientID string) (domain.Role, error) {
	ret := _m.Called(ctx, recipientID)
	var r0 domain.Role
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.Role)
	}
	return r0, ret.Error(1)
}

type MockUserRoleRepo_Get_Call struct{ *mock.Call }

func (_e *MockUserRoleRepo_Expecter) Get(ctx, recipientID interface{}) *MockUserRoleRepo_Get_Call {
	return &MockUserRoleRepo_Get_Call{Call: _e.mock.On("Get", ctx, recipientID)}
}

func (_c *MockUserRoleRepo_Get_Call) Return(_a0 domain.Role, _a1 error) *MockUserRoleRepo_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_m *MockUserRoleRepo) Set(ctx context.Context, recipientID string, role domain.Role) error {
	return _m.Called(ctx, recipientID, role).Error(0)
}

type MockUserRoleRepo_Set_Call struct{ *mock.Call }

func (_e *MockUserRoleRepo_Expecter) Set(ctx, recipientID, role interface{}) *MockUserRoleRepo_Set_Call {
	return &MockUserRoleRepo_Set_Call{Call: _e.mock.On("Set", ctx, recipientID, role)}
}

func (_c *MockUserRoleRepo_Set_Call) Return(_a0 error) *MockUserRoleRepo_Set_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_m *MockUserRoleRepo) ListPrivileged(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)
	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

type MockUserRoleRepo_ListPrivileged_Call struct{ *mock.Call }

func (_e *MockUserRoleRepo_Expecter) ListPrivileged(ctx interface{}) *MockUserRoleRepo_ListPrivileged_Call {
	return &MockUserRoleRepo_ListPrivileged_Call{Call: _e.mock.On("ListPrivileged", ctx)}
}

func (_c *MockUserRoleRepo_ListPrivileged_Call) Return(_a0 []string, _a1 error) *MockUserRoleRepo_ListPrivileged_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func NewMockUserRoleRepo(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRoleRepo {
	m := &MockUserRoleRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
