package repository

import (
	"context"
	"database/sql"
	"errors"

	"gestione-turni/internal/domain"
)

type WorkerRepository interface {
	Create(ctx context.Context, worker *domain.Worker) error
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context) ([]domain.Worker, error)
	Update(ctx context.Context, worker *domain.Worker) error
	Delete(ctx context.Context, id string) (bool, error)
}

type workerRepository struct {
	db DBTX
}

func NewWorkerRepository(db DBTX) WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	query := `
		INSERT INTO workers (id, name, avatar_url, email)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, worker.ID, worker.Name, worker.AvatarURL, worker.Email)
	return err
}

func (r *workerRepository) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	var worker domain.Worker
	query := `SELECT * FROM workers WHERE id = $1`

	err := r.db.GetContext(ctx, &worker, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepository) List(ctx context.Context) ([]domain.Worker, error) {
	workers := []domain.Worker{}
	query := `SELECT * FROM workers ORDER BY name`

	err := r.db.SelectContext(ctx, &workers, query)
	return workers, err
}

func (r *workerRepository) Update(ctx context.Context, worker *domain.Worker) error {
	query := `
		UPDATE workers
		SET name = $2, avatar_url = $3, email = $4
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, worker.ID, worker.Name, worker.AvatarURL, worker.Email)
	return err
}

// Delete removes a worker together with every shift they own and the swap
// notifications pointing at those shifts. Callers run it inside Transact so
// the cascade is atomic.
func (r *workerRepository) Delete(ctx context.Context, id string) (bool, error) {
	notifQuery := `
		DELETE FROM notifications
		WHERE metadata->>'shiftId' IN (SELECT id FROM shifts WHERE worker_id = $1)`
	if _, err := r.db.ExecContext(ctx, notifQuery, id); err != nil {
		return false, err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE worker_id = $1`, id); err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
