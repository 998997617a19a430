package repository

import (
	"context"
	"database/sql"
	"errors"

	"gestione-turni/internal/domain"
)

type MachineRepository interface {
	Create(ctx context.Context, machine *domain.Machine) error
	GetByID(ctx context.Context, id string) (*domain.Machine, error)
	List(ctx context.Context) ([]domain.Machine, error)
	Update(ctx context.Context, machine *domain.Machine) error
	Delete(ctx context.Context, id string) (bool, error)
}

type machineRepository struct {
	db DBTX
}

func NewMachineRepository(db DBTX) MachineRepository {
	return &machineRepository{db: db}
}

func (r *machineRepository) Create(ctx context.Context, machine *domain.Machine) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO machines (id, name) VALUES ($1, $2)`,
		machine.ID, machine.Name)
	return err
}

func (r *machineRepository) GetByID(ctx context.Context, id string) (*domain.Machine, error) {
	var machine domain.Machine
	err := r.db.GetContext(ctx, &machine, `SELECT * FROM machines WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &machine, nil
}

func (r *machineRepository) List(ctx context.Context) ([]domain.Machine, error) {
	machines := []domain.Machine{}
	err := r.db.SelectContext(ctx, &machines, `SELECT * FROM machines ORDER BY name`)
	return machines, err
}

func (r *machineRepository) Update(ctx context.Context, machine *domain.Machine) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE machines SET name = $2 WHERE id = $1`,
		machine.ID, machine.Name)
	return err
}

// Delete detaches the machine from any shift that references it; the shifts
// themselves survive.
func (r *machineRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE shifts SET machine_id = NULL WHERE machine_id = $1`, id); err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
