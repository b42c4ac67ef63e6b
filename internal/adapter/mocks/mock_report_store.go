package mocks

import (
	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/mojifix/internal/model"
)

// MockReportStore is a mock of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// MockReportStore_Expecter records expectations with typed helpers.
type MockReportStore_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter.
func (_m *MockReportStore) EXPECT() *MockReportStore_Expecter {
	return &MockReportStore_Expecter{mock: &_m.Mock}
}

// SaveReport provides a mock function.
func (_m *MockReportStore) SaveReport(path m.Path, report m.ScanReport) error {
	ret := _m.Called(path, report)

	return ret.Error(0)
}

// MockReportStore_SaveReport_Call wraps a SaveReport expectation.
type MockReportStore_SaveReport_Call struct {
	*mock.Call
}

// SaveReport sets an expectation.
func (_e *MockReportStore_Expecter) SaveReport(path interface{}, report interface{}) *MockReportStore_SaveReport_Call {
	return &MockReportStore_SaveReport_Call{Call: _e.mock.On("SaveReport", path, report)}
}

// Return sets the return values.
func (_c *MockReportStore_SaveReport_Call) Return(err error) *MockReportStore_SaveReport_Call {
	_c.Call.Return(err)
	return _c
}

// LoadReport provides a mock function.
func (_m *MockReportStore) LoadReport(path m.Path) (m.ScanReport, error) {
	ret := _m.Called(path)

	return ret.Get(0).(m.ScanReport), ret.Error(1)
}

// MockReportStore_LoadReport_Call wraps a LoadReport expectation.
type MockReportStore_LoadReport_Call struct {
	*mock.Call
}

// LoadReport sets an expectation.
func (_e *MockReportStore_Expecter) LoadReport(path interface{}) *MockReportStore_LoadReport_Call {
	return &MockReportStore_LoadReport_Call{Call: _e.mock.On("LoadReport", path)}
}

// Return sets the return values.
func (_c *MockReportStore_LoadReport_Call) Return(report m.ScanReport, err error) *MockReportStore_LoadReport_Call {
	_c.Call.Return(report, err)
	return _c
}

// NewMockReportStore creates a mock and asserts its expectations on cleanup.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	mockStore := &MockReportStore{}
	mockStore.Mock.Test(t)

	t.Cleanup(func() { mockStore.AssertExpectations(t) })

	return mockStore
}
