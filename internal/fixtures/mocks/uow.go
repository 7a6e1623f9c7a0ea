package mocks

import (
	"context"

	"github.com/amirasaad/causehive/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// Passthrough makes Do run its callback against the mock itself.
func (_m *MockUnitOfWork) Passthrough() *MockUnitOfWork {
	_m.On("Do", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(_m)
		},
	).Maybe()
	return _m
}

// Provide answers GetRepository(key) with repo.
func (_m *MockUnitOfWork) Provide(key, repo any) *MockUnitOfWork {
	_m.On("GetRepository", key).Return(repo, nil).Maybe()
	return _m
}
