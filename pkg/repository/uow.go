package repository

import (
	"context"
	"fmt"
)

// UnitOfWork defines the contract for transactional work and type-safe
// repository access.
//
// Do runs fn inside a transaction boundary; fn receives a UnitOfWork whose
// repositories share that transaction. Returning an error rolls back.
//
// GetRepository is keyed by a nil pointer to the repository interface:
//
//	repoAny, err := uow.GetRepository((*userrepo.Repository)(nil))
//	repo := repoAny.(userrepo.Repository)
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	GetRepository(repoType any) (any, error)
}

// Resolve fetches repository R from uow.
func Resolve[R any](uow UnitOfWork) (R, error) {
	var zero R
	repoAny, err := uow.GetRepository((*R)(nil))
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(R)
	if !ok {
		return zero, fmt.Errorf("unexpected repository type %T", repoAny)
	}
	return repo, nil
}
