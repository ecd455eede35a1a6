// Package mocks provides testify mocks for the domain package.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	"dupes.dev/pkg/dupes/internal/domain"
)

// MockWorkflow is a mock type for the Workflow type.
type MockWorkflow struct {
	mock.Mock
}

// Scan provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Scan(ctx context.Context, args domain.ScanArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Scan")
	}

	return ret.Error(0)
}

// Remove provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Remove(ctx context.Context, args domain.RemoveArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Remove")
	}

	return ret.Error(0)
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mock := &MockWorkflow{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
