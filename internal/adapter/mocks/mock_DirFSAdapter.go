// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"os"

	mock "github.com/stretchr/testify/mock"

	model "regren.dev/pkg/regren/internal/model"
)

// MockDirFSAdapter is a mock type for the DirFSAdapter type.
type MockDirFSAdapter struct {
	mock.Mock
}

// ReadDir provides a mock function with given fields: dir.
func (_m *MockDirFSAdapter) ReadDir(dir model.Path) ([]os.FileInfo, error) {
	ret := _m.Called(dir)

	if len(ret) == 0 {
		panic("no return value specified for ReadDir")
	}

	if rf, ok := ret.Get(0).(func(model.Path) ([]os.FileInfo, error)); ok {
		return rf(dir)
	}

	var r0 []os.FileInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]os.FileInfo)
	}

	return r0, ret.Error(1)
}

// FileInfo provides a mock function with given fields: path.
func (_m *MockDirFSAdapter) FileInfo(path model.Path) (os.FileInfo, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for FileInfo")
	}

	if rf, ok := ret.Get(0).(func(model.Path) (os.FileInfo, error)); ok {
		return rf(path)
	}

	var r0 os.FileInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(os.FileInfo)
	}

	return r0, ret.Error(1)
}

// Rename provides a mock function with given fields: oldPath, newPath.
func (_m *MockDirFSAdapter) Rename(oldPath, newPath model.Path) error {
	ret := _m.Called(oldPath, newPath)

	if len(ret) == 0 {
		panic("no return value specified for Rename")
	}

	if rf, ok := ret.Get(0).(func(model.Path, model.Path) error); ok {
		return rf(oldPath, newPath)
	}

	return ret.Error(0)
}

// AbsPath provides a mock function with given fields: path.
func (_m *MockDirFSAdapter) AbsPath(path model.Path) (model.Path, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for AbsPath")
	}

	if rf, ok := ret.Get(0).(func(model.Path) (model.Path, error)); ok {
		return rf(path)
	}

	return ret.Get(0).(model.Path), ret.Error(1)
}

// JoinPath provides a mock function with given fields: elem.
func (_m *MockDirFSAdapter) JoinPath(elem ...string) model.Path {
	ret := _m.Called(elem)

	if len(ret) == 0 {
		panic("no return value specified for JoinPath")
	}

	if rf, ok := ret.Get(0).(func(...string) model.Path); ok {
		return rf(elem...)
	}

	return ret.Get(0).(model.Path)
}

// NewMockDirFSAdapter creates a new instance of MockDirFSAdapter. It also
// registers a cleanup function to assert the mocks expectations.
func NewMockDirFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDirFSAdapter {
	m := &MockDirFSAdapter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
