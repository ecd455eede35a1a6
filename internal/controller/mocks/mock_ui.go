// Package mocks provides testify mocks for the controller package.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	m "dupes.dev/pkg/dupes/internal/model"
)

// MockUI is a mock type for the UI type.
type MockUI struct {
	mock.Mock
}

// DisplayScanStart provides a mock function with given fields: ctx, root.
func (_m *MockUI) DisplayScanStart(ctx context.Context, root m.Path) {
	_m.Called(ctx, root)
}

// DisplayAccessError provides a mock function with given fields: ctx, path, err.
func (_m *MockUI) DisplayAccessError(ctx context.Context, path m.Path, err error) {
	_m.Called(ctx, path, err)
}

// DisplayScanSummary provides a mock function with given fields: ctx, scanned.
func (_m *MockUI) DisplayScanSummary(ctx context.Context, scanned int) {
	_m.Called(ctx, scanned)
}

// DisplayDuplicateSets provides a mock function with given fields: ctx, sets.
func (_m *MockUI) DisplayDuplicateSets(ctx context.Context, sets []m.DuplicateSet) {
	_m.Called(ctx, sets)
}

// DisplayNoDuplicates provides a mock function with given fields: ctx.
func (_m *MockUI) DisplayNoDuplicates(ctx context.Context) {
	_m.Called(ctx)
}

// DisplayResolution provides a mock function with given fields: ctx, resolution.
func (_m *MockUI) DisplayResolution(ctx context.Context, resolution m.Resolution) {
	_m.Called(ctx, resolution)
}

// DisplayAction provides a mock function with given fields: ctx, action.
func (_m *MockUI) DisplayAction(ctx context.Context, action m.Action) {
	_m.Called(ctx, action)
}

// DisplayRemovalSummary provides a mock function with given fields: ctx, summary.
func (_m *MockUI) DisplayRemovalSummary(ctx context.Context, summary m.RemovalSummary) {
	_m.Called(ctx, summary)
}

// NewMockUI creates a new instance of MockUI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}
