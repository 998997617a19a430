package mocks

import (
	"context"

	"gestione-turni/internal/repository"
)

// Transactor runs the callback against a caller-supplied repository set
// instead of opening a database transaction.
type Transactor struct {
	Repos *repository.Repositories
	Err   error
}

func (t *Transactor) Transact(ctx context.Context, fn func(*repository.Repositories) error) error {
	if t.Err != nil {
		return t.Err
	}
	return fn(t.Repos)
}
