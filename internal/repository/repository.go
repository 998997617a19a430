package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

// DBTX is the slice of sqlx shared by *sqlx.DB and *sqlx.Tx, so every
// repository can run either directly against the pool or inside a
// transaction started by Transact.
type DBTX interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Transactor is what services depend on to group repository calls into one
// atomic unit; *Repositories implements it.
type Transactor interface {
	Transact(ctx context.Context, fn func(*Repositories) error) error
}

type Repositories struct {
	Worker       WorkerRepository
	Machine      MachineRepository
	Department   DepartmentRepository
	Shift        ShiftRepository
	Notification NotificationRepository
	User         UserRepository
	Session      SessionRepository

	db *sqlx.DB
}

func NewRepositories(db *sqlx.DB) *Repositories {
	repos := build(db)
	repos.db = db
	return repos
}

func build(db DBTX) *Repositories {
	return &Repositories{
		Worker:       NewWorkerRepository(db),
		Machine:      NewMachineRepository(db),
		Department:   NewDepartmentRepository(db),
		Shift:        NewShiftRepository(db),
		Notification: NewNotificationRepository(db),
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
	}
}

// Transact runs fn against a repository set bound to a single transaction.
// Any error from fn rolls the whole transaction back, so multi-step swap
// transitions and cascade deletes are all-or-nothing.
func (r *Repositories) Transact(ctx context.Context, fn func(*Repositories) error) error {
	if r.db == nil {
		return errors.New("repository: nested transaction")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(build(tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
