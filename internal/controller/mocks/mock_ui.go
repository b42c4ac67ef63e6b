package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/mojifix/internal/controller"
	m "github.com/mouse-blink/mojifix/internal/model"
)

// MockUI is a mock of controller.UI.
type MockUI struct {
	mock.Mock
}

// MockUI_Expecter records expectations with typed helpers.
type MockUI_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter.
func (_m *MockUI) EXPECT() *MockUI_Expecter {
	return &MockUI_Expecter{mock: &_m.Mock}
}

// Start provides a mock function.
func (_m *MockUI) Start(options ...controller.StartOption) error {
	args := make([]interface{}, 0, len(options))
	for _, opt := range options {
		args = append(args, opt)
	}

	ret := _m.Called(args...)

	return ret.Error(0)
}

// MockUI_Start_Call wraps a Start expectation.
type MockUI_Start_Call struct {
	*mock.Call
}

// Start sets an expectation. Options are functions, so match them with
// mock.Anything.
func (_e *MockUI_Expecter) Start(options ...interface{}) *MockUI_Start_Call {
	return &MockUI_Start_Call{Call: _e.mock.On("Start", options...)}
}

// Return sets the return values.
func (_c *MockUI_Start_Call) Return(err error) *MockUI_Start_Call {
	_c.Call.Return(err)
	return _c
}

// Close provides a mock function.
func (_m *MockUI) Close() {
	_m.Called()
}

// MockUI_Close_Call wraps a Close expectation.
type MockUI_Close_Call struct {
	*mock.Call
}

// Close sets an expectation.
func (_e *MockUI_Expecter) Close() *MockUI_Close_Call {
	return &MockUI_Close_Call{Call: _e.mock.On("Close")}
}

// Return sets the return values.
func (_c *MockUI_Close_Call) Return() *MockUI_Close_Call {
	_c.Call.Return()
	return _c
}

// Wait provides a mock function.
func (_m *MockUI) Wait() {
	_m.Called()
}

// MockUI_Wait_Call wraps a Wait expectation.
type MockUI_Wait_Call struct {
	*mock.Call
}

// Wait sets an expectation.
func (_e *MockUI_Expecter) Wait() *MockUI_Wait_Call {
	return &MockUI_Wait_Call{Call: _e.mock.On("Wait")}
}

// Return sets the return values.
func (_c *MockUI_Wait_Call) Return() *MockUI_Wait_Call {
	_c.Call.Return()
	return _c
}

// DisplayReport provides a mock function.
func (_m *MockUI) DisplayReport(report m.ScanReport) error {
	ret := _m.Called(report)

	return ret.Error(0)
}

// MockUI_DisplayReport_Call wraps a DisplayReport expectation.
type MockUI_DisplayReport_Call struct {
	*mock.Call
}

// DisplayReport sets an expectation.
func (_e *MockUI_Expecter) DisplayReport(report interface{}) *MockUI_DisplayReport_Call {
	return &MockUI_DisplayReport_Call{Call: _e.mock.On("DisplayReport", report)}
}

// Return sets the return values.
func (_c *MockUI_DisplayReport_Call) Return(err error) *MockUI_DisplayReport_Call {
	_c.Call.Return(err)
	return _c
}

// DisplayFileResult provides a mock function.
func (_m *MockUI) DisplayFileResult(res m.FileResult) {
	_m.Called(res)
}

// MockUI_DisplayFileResult_Call wraps a DisplayFileResult expectation.
type MockUI_DisplayFileResult_Call struct {
	*mock.Call
}

// DisplayFileResult sets an expectation.
func (_e *MockUI_Expecter) DisplayFileResult(res interface{}) *MockUI_DisplayFileResult_Call {
	return &MockUI_DisplayFileResult_Call{Call: _e.mock.On("DisplayFileResult", res)}
}

// Return sets the return values.
func (_c *MockUI_DisplayFileResult_Call) Return() *MockUI_DisplayFileResult_Call {
	_c.Call.Return()
	return _c
}

// DisplayWatching provides a mock function.
func (_m *MockUI) DisplayWatching(roots []m.Path, debounce time.Duration) {
	_m.Called(roots, debounce)
}

// MockUI_DisplayWatching_Call wraps a DisplayWatching expectation.
type MockUI_DisplayWatching_Call struct {
	*mock.Call
}

// DisplayWatching sets an expectation.
func (_e *MockUI_Expecter) DisplayWatching(roots interface{}, debounce interface{}) *MockUI_DisplayWatching_Call {
	return &MockUI_DisplayWatching_Call{Call: _e.mock.On("DisplayWatching", roots, debounce)}
}

// Return sets the return values.
func (_c *MockUI_DisplayWatching_Call) Return() *MockUI_DisplayWatching_Call {
	_c.Call.Return()
	return _c
}

// NewMockUI creates a mock and asserts its expectations on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}
