// Package mocks provides hand-written testify doubles for the domain
// repository contracts.
package mocks

import (
	"context"

	"webshop/internal/domain/repository"
	"webshop/internal/domain/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify double for repository.Repository[E].
type MockRepository[E any] struct {
	mock.Mock
}

func (m *MockRepository[E]) Get(ctx context.Context, spec specification.Specification) (*E, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*E), args.Error(1)
}

func (m *MockRepository[E]) Exists(ctx context.Context, spec specification.Specification) (bool, error) {
	args := m.Called(ctx, spec)

	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[E]) GetPage(ctx context.Context, pagination repository.Pagination, spec specification.Specification) (*repository.Page[E], error) {
	args := m.Called(ctx, pagination, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*repository.Page[E]), args.Error(1)
}

func (m *MockRepository[E]) Add(ctx context.Context, e *E) error {
	args := m.Called(ctx, e)

	return args.Error(0)
}

func (m *MockRepository[E]) Update(ctx context.Context, e *E) error {
	args := m.Called(ctx, e)

	return args.Error(0)
}

func (m *MockRepository[E]) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
