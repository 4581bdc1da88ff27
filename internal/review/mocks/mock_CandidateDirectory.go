// Hand-written mock in the mockery v2 style.

package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockCandidateDirectory is a hand-written mock type for the CandidateDirectory type
type MockCandidateDirectory struct {
	mock.Mock
}

type MockCandidateDirectory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCandidateDirectory) EXPECT() *MockCandidateDirectory_Expecter {
	return &MockCandidateDirectory_Expecter{mock: &_m.Mock}
}

func (_m *MockCandidateDirectory) ListCompletedSurveys(ctx context.Context, limit, skip int) ([]string, error) {
	ret := _m.Called(ctx, limit, skip)
	var r0 []string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	return r0, ret.Error(1)
}

type MockCandidateDirectory_ListCompletedSurveys_Call struct{ *mock.Call }

func (_e *MockCandidateDirectory_Expecter) ListCompletedSurveys(ctx, limit, skip interface{}) *MockCandidateDirectory_ListCompletedSurveys_Call {
	return &MockCandidateDirectory_ListCompletedSurveys_Call{Call: _e.mock.On("ListCompletedSurveys", ctx, limit, skip)}
}

func (_c *MockCandidateDirectory_ListCompletedSurveys_Call) Return(_a0 []string, _a1 error) *MockCandidateDirectory_ListCompletedSurveys_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func NewMockCandidateDirectory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCandidateDirectory {
	m := &MockCandidateDirectory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
