// Package mocks holds testify mocks of the adapter interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/mojifix/internal/model"
)

// MockSourceFSAdapter is a mock of adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

// MockSourceFSAdapter_Expecter records expectations with typed helpers.
type MockSourceFSAdapter_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter.
func (_m *MockSourceFSAdapter) EXPECT() *MockSourceFSAdapter_Expecter {
	return &MockSourceFSAdapter_Expecter{mock: &_m.Mock}
}

// Get provides a mock function.
func (_m *MockSourceFSAdapter) Get(roots []m.Path) ([]m.SourceFile, error) {
	ret := _m.Called(roots)

	var r0 []m.SourceFile
	if rf, ok := ret.Get(0).(func([]m.Path) []m.SourceFile); ok {
		r0 = rf(roots)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]m.SourceFile)
	}

	return r0, ret.Error(1)
}

// MockSourceFSAdapter_Get_Call wraps a Get expectation.
type MockSourceFSAdapter_Get_Call struct {
	*mock.Call
}

// Get sets an expectation.
func (_e *MockSourceFSAdapter_Expecter) Get(roots interface{}) *MockSourceFSAdapter_Get_Call {
	return &MockSourceFSAdapter_Get_Call{Call: _e.mock.On("Get", roots)}
}

// Return sets the return values.
func (_c *MockSourceFSAdapter_Get_Call) Return(sources []m.SourceFile, err error) *MockSourceFSAdapter_Get_Call {
	_c.Call.Return(sources, err)
	return _c
}

// Source provides a mock function.
func (_m *MockSourceFSAdapter) Source(path m.Path) (m.SourceFile, bool) {
	ret := _m.Called(path)

	if rf, ok := ret.Get(0).(func(m.Path) (m.SourceFile, bool)); ok {
		return rf(path)
	}

	return ret.Get(0).(m.SourceFile), ret.Bool(1)
}

// MockSourceFSAdapter_Source_Call wraps a Source expectation.
type MockSourceFSAdapter_Source_Call struct {
	*mock.Call
}

// Source sets an expectation.
func (_e *MockSourceFSAdapter_Expecter) Source(path interface{}) *MockSourceFSAdapter_Source_Call {
	return &MockSourceFSAdapter_Source_Call{Call: _e.mock.On("Source", path)}
}

// Return sets the return values.
func (_c *MockSourceFSAdapter_Source_Call) Return(src m.SourceFile, ok bool) *MockSourceFSAdapter_Source_Call {
	_c.Call.Return(src, ok)
	return _c
}

// ReadFile provides a mock function.
func (_m *MockSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	ret := _m.Called(path)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	return r0, ret.Error(1)
}

// MockSourceFSAdapter_ReadFile_Call wraps a ReadFile expectation.
type MockSourceFSAdapter_ReadFile_Call struct {
	*mock.Call
}

// ReadFile sets an expectation.
func (_e *MockSourceFSAdapter_Expecter) ReadFile(path interface{}) *MockSourceFSAdapter_ReadFile_Call {
	return &MockSourceFSAdapter_ReadFile_Call{Call: _e.mock.On("ReadFile", path)}
}

// Return sets the return values.
func (_c *MockSourceFSAdapter_ReadFile_Call) Return(content []byte, err error) *MockSourceFSAdapter_ReadFile_Call {
	_c.Call.Return(content, err)
	return _c
}

// WriteFileAtomic provides a mock function.
func (_m *MockSourceFSAdapter) WriteFileAtomic(path m.Path, content []byte) error {
	ret := _m.Called(path, content)

	return ret.Error(0)
}

// MockSourceFSAdapter_WriteFileAtomic_Call wraps a WriteFileAtomic expectation.
type MockSourceFSAdapter_WriteFileAtomic_Call struct {
	*mock.Call
}

// WriteFileAtomic sets an expectation.
func (_e *MockSourceFSAdapter_Expecter) WriteFileAtomic(path interface{}, content interface{}) *MockSourceFSAdapter_WriteFileAtomic_Call {
	return &MockSourceFSAdapter_WriteFileAtomic_Call{Call: _e.mock.On("WriteFileAtomic", path, content)}
}

// Return sets the return values.
func (_c *MockSourceFSAdapter_WriteFileAtomic_Call) Return(err error) *MockSourceFSAdapter_WriteFileAtomic_Call {
	_c.Call.Return(err)
	return _c
}

// Backup provides a mock function.
func (_m *MockSourceFSAdapter) Backup(path m.Path, original []byte) (m.Path, error) {
	ret := _m.Called(path, original)

	return ret.Get(0).(m.Path), ret.Error(1)
}

// MockSourceFSAdapter_Backup_Call wraps a Backup expectation.
type MockSourceFSAdapter_Backup_Call struct {
	*mock.Call
}

// Backup sets an expectation.
func (_e *MockSourceFSAdapter_Expecter) Backup(path interface{}, original interface{}) *MockSourceFSAdapter_Backup_Call {
	return &MockSourceFSAdapter_Backup_Call{Call: _e.mock.On("Backup", path, original)}
}

// Return sets the return values.
func (_c *MockSourceFSAdapter_Backup_Call) Return(backup m.Path, err error) *MockSourceFSAdapter_Backup_Call {
	_c.Call.Return(backup, err)
	return _c
}

// NewMockSourceFSAdapter creates a mock and asserts its expectations on cleanup.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	mockAdapter := &MockSourceFSAdapter{}
	mockAdapter.Mock.Test(t)

	t.Cleanup(func() { mockAdapter.AssertExpectations(t) })

	return mockAdapter
}
