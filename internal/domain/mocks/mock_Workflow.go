// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	domain "regren.dev/pkg/regren/internal/domain"
	model "regren.dev/pkg/regren/internal/model"
)

// MockWorkflow is a mock type for the Workflow type.
type MockWorkflow struct {
	mock.Mock
}

// Rename provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Rename(ctx context.Context, args domain.RenameArgs) (model.RunReport, error) {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Rename")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.RenameArgs) (model.RunReport, error)); ok {
		return rf(ctx, args)
	}

	return ret.Get(0).(model.RunReport), ret.Error(1)
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a
// cleanup function to assert the mocks expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
