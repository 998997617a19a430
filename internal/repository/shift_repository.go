package repository

import (
	"context"
	"database/sql"
	"errors"

	"gestione-turni/internal/domain"
)

type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	GetByID(ctx context.Context, id string) (*domain.Shift, error)
	List(ctx context.Context) ([]domain.Shift, error)
	// ListByWorkerAndDate returns the worker's shifts on one calendar day,
	// excluding excludeID when non-empty. Same contract for machines below.
	ListByWorkerAndDate(ctx context.Context, workerID, date, excludeID string) ([]domain.Shift, error)
	ListByMachineAndDate(ctx context.Context, machineID, date, excludeID string) ([]domain.Shift, error)
	Update(ctx context.Context, shift *domain.Shift) error
	Delete(ctx context.Context, id string) (bool, error)
	SetSwapState(ctx context.Context, id string, status domain.SwapStatus, targetWorkerID *string) error
	ReassignWorker(ctx context.Context, id, workerID string) error
}

type shiftRepository struct {
	db DBTX
}

func NewShiftRepository(db DBTX) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	query := `
		INSERT INTO shifts (id, worker_id, date, start_time, end_time,
			department_id, machine_id, notes, swap_status, swap_target_worker_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		shift.ID, shift.WorkerID, shift.Date, shift.StartTime, shift.EndTime,
		shift.DepartmentID, shift.MachineID, shift.Notes,
		shift.SwapStatus, shift.SwapTargetWorkerID,
	)
	return err
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	var shift domain.Shift
	err := r.db.GetContext(ctx, &shift, `SELECT * FROM shifts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	shift.SyncSwapRequest()
	return &shift, nil
}

func (r *shiftRepository) List(ctx context.Context) ([]domain.Shift, error) {
	shifts := []domain.Shift{}
	query := `SELECT * FROM shifts ORDER BY date, start_time`

	if err := r.db.SelectContext(ctx, &shifts, query); err != nil {
		return nil, err
	}
	for i := range shifts {
		shifts[i].SyncSwapRequest()
	}
	return shifts, nil
}

func (r *shiftRepository) ListByWorkerAndDate(ctx context.Context, workerID, date, excludeID string) ([]domain.Shift, error) {
	shifts := []domain.Shift{}
	query := `
		SELECT * FROM shifts
		WHERE worker_id = $1 AND date = $2 AND id <> $3
		ORDER BY start_time`

	if err := r.db.SelectContext(ctx, &shifts, query, workerID, date, excludeID); err != nil {
		return nil, err
	}
	for i := range shifts {
		shifts[i].SyncSwapRequest()
	}
	return shifts, nil
}

func (r *shiftRepository) ListByMachineAndDate(ctx context.Context, machineID, date, excludeID string) ([]domain.Shift, error) {
	shifts := []domain.Shift{}
	query := `
		SELECT * FROM shifts
		WHERE machine_id = $1 AND date = $2 AND id <> $3
		ORDER BY start_time`

	if err := r.db.SelectContext(ctx, &shifts, query, machineID, date, excludeID); err != nil {
		return nil, err
	}
	for i := range shifts {
		shifts[i].SyncSwapRequest()
	}
	return shifts, nil
}

func (r *shiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	query := `
		UPDATE shifts
		SET worker_id = $2, date = $3, start_time = $4, end_time = $5,
			department_id = $6, machine_id = $7, notes = $8
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query,
		shift.ID, shift.WorkerID, shift.Date, shift.StartTime, shift.EndTime,
		shift.DepartmentID, shift.MachineID, shift.Notes,
	)
	return err
}

// Delete removes the shift and every notification whose swap metadata points
// at it. Callers run it inside Transact so the cascade is atomic.
func (r *shiftRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE metadata->>'shiftId' = $1`, id); err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *shiftRepository) SetSwapState(ctx context.Context, id string, status domain.SwapStatus, targetWorkerID *string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE shifts SET swap_status = $2, swap_target_worker_id = $3 WHERE id = $1`,
		id, status, targetWorkerID)
	return err
}

func (r *shiftRepository) ReassignWorker(ctx context.Context, id, workerID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE shifts SET worker_id = $2 WHERE id = $1`,
		id, workerID)
	return err
}
