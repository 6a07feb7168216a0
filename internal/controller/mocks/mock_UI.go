// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	controller "regren.dev/pkg/regren/internal/controller"
)

// MockUI is a mock type for the UI type.
type MockUI struct {
	mock.Mock
}

// DisplayMatch provides a mock function with given fields: ctx, line.
func (_m *MockUI) DisplayMatch(ctx context.Context, line controller.MatchLine) {
	_m.Called(ctx, line)
}

// DisplayRename provides a mock function with given fields: ctx, progress.
func (_m *MockUI) DisplayRename(ctx context.Context, progress controller.RenameProgress) {
	_m.Called(ctx, progress)
}

// DisplaySummary provides a mock function with given fields: ctx, summary.
func (_m *MockUI) DisplaySummary(ctx context.Context, summary controller.Summary) error {
	ret := _m.Called(ctx, summary)

	if len(ret) == 0 {
		panic("no return value specified for DisplaySummary")
	}

	return ret.Error(0)
}

// DisplayDiff provides a mock function with given fields: ctx, before, after.
func (_m *MockUI) DisplayDiff(ctx context.Context, before, after []string) error {
	ret := _m.Called(ctx, before, after)

	if len(ret) == 0 {
		panic("no return value specified for DisplayDiff")
	}

	return ret.Error(0)
}

// NewMockUI creates a new instance of MockUI. It also registers a cleanup
// function to assert the mocks expectations.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	m := &MockUI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
