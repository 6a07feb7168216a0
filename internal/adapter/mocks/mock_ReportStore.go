package mocks

import (
	mock "github.com/stretchr/testify/mock"

	model "regren.dev/pkg/regren/internal/model"
)

// MockReportStore is a mock type for the ReportStore type.
type MockReportStore struct {
	mock.Mock
}

// SaveReport provides a mock function with given fields: path, report.
func (_m *MockReportStore) SaveReport(path model.Path, report model.RunReport) error {
	ret := _m.Called(path, report)

	if len(ret) == 0 {
		panic("no return value specified for SaveReport")
	}

	return ret.Error(0)
}

// NewMockReportStore creates a new instance of MockReportStore. It also
// registers a cleanup function to assert the mocks expectations.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	m := &MockReportStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
