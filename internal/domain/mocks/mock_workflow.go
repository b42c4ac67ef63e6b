package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/mojifix/internal/domain"
	m "github.com/mouse-blink/mojifix/internal/model"
)

// MockWorkflow is a mock of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// MockWorkflow_Expecter records expectations with typed helpers.
type MockWorkflow_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter.
func (_m *MockWorkflow) EXPECT() *MockWorkflow_Expecter {
	return &MockWorkflow_Expecter{mock: &_m.Mock}
}

// Scan provides a mock function.
func (_m *MockWorkflow) Scan(ctx context.Context, args domain.ScanArgs) (m.ScanReport, error) {
	ret := _m.Called(ctx, args)

	return ret.Get(0).(m.ScanReport), ret.Error(1)
}

// MockWorkflow_Scan_Call wraps a Scan expectation.
type MockWorkflow_Scan_Call struct {
	*mock.Call
}

// Scan sets an expectation.
func (_e *MockWorkflow_Expecter) Scan(ctx interface{}, args interface{}) *MockWorkflow_Scan_Call {
	return &MockWorkflow_Scan_Call{Call: _e.mock.On("Scan", ctx, args)}
}

// Run sets a function to call with the arguments.
func (_c *MockWorkflow_Scan_Call) Run(run func(ctx context.Context, args domain.ScanArgs)) *MockWorkflow_Scan_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ScanArgs))
	})

	return _c
}

// Return sets the return values.
func (_c *MockWorkflow_Scan_Call) Return(report m.ScanReport, err error) *MockWorkflow_Scan_Call {
	_c.Call.Return(report, err)
	return _c
}

// Check provides a mock function.
func (_m *MockWorkflow) Check(ctx context.Context, args domain.CheckArgs) (m.ScanReport, error) {
	ret := _m.Called(ctx, args)

	return ret.Get(0).(m.ScanReport), ret.Error(1)
}

// MockWorkflow_Check_Call wraps a Check expectation.
type MockWorkflow_Check_Call struct {
	*mock.Call
}

// Check sets an expectation.
func (_e *MockWorkflow_Expecter) Check(ctx interface{}, args interface{}) *MockWorkflow_Check_Call {
	return &MockWorkflow_Check_Call{Call: _e.mock.On("Check", ctx, args)}
}

// Return sets the return values.
func (_c *MockWorkflow_Check_Call) Return(report m.ScanReport, err error) *MockWorkflow_Check_Call {
	_c.Call.Return(report, err)
	return _c
}

// Watch provides a mock function.
func (_m *MockWorkflow) Watch(ctx context.Context, args domain.WatchArgs) error {
	ret := _m.Called(ctx, args)

	return ret.Error(0)
}

// MockWorkflow_Watch_Call wraps a Watch expectation.
type MockWorkflow_Watch_Call struct {
	*mock.Call
}

// Watch sets an expectation.
func (_e *MockWorkflow_Expecter) Watch(ctx interface{}, args interface{}) *MockWorkflow_Watch_Call {
	return &MockWorkflow_Watch_Call{Call: _e.mock.On("Watch", ctx, args)}
}

// Run sets a function to call with the arguments.
func (_c *MockWorkflow_Watch_Call) Run(run func(ctx context.Context, args domain.WatchArgs)) *MockWorkflow_Watch_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.WatchArgs))
	})

	return _c
}

// Return sets the return values.
func (_c *MockWorkflow_Watch_Call) Return(err error) *MockWorkflow_Watch_Call {
	_c.Call.Return(err)
	return _c
}

// LoadReport provides a mock function.
func (_m *MockWorkflow) LoadReport(path m.Path) (m.ScanReport, error) {
	ret := _m.Called(path)

	return ret.Get(0).(m.ScanReport), ret.Error(1)
}

// MockWorkflow_LoadReport_Call wraps a LoadReport expectation.
type MockWorkflow_LoadReport_Call struct {
	*mock.Call
}

// LoadReport sets an expectation.
func (_e *MockWorkflow_Expecter) LoadReport(path interface{}) *MockWorkflow_LoadReport_Call {
	return &MockWorkflow_LoadReport_Call{Call: _e.mock.On("LoadReport", path)}
}

// Return sets the return values.
func (_c *MockWorkflow_LoadReport_Call) Return(report m.ScanReport, err error) *MockWorkflow_LoadReport_Call {
	_c.Call.Return(report, err)
	return _c
}

// NewMockWorkflow creates a mock and asserts its expectations on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Mock.Test(t)

	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}
