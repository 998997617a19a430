package repository

import (
	"context"
	"database/sql"
	"errors"

	"gestione-turni/internal/domain"
)

type DepartmentRepository interface {
	Create(ctx context.Context, department *domain.Department) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Update(ctx context.Context, department *domain.Department) error
	Delete(ctx context.Context, id string) (bool, error)
}

type departmentRepository struct {
	db DBTX
}

func NewDepartmentRepository(db DBTX) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(ctx context.Context, department *domain.Department) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO departments (id, name) VALUES ($1, $2)`,
		department.ID, department.Name)
	return err
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	var department domain.Department
	err := r.db.GetContext(ctx, &department, `SELECT * FROM departments WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	departments := []domain.Department{}
	err := r.db.SelectContext(ctx, &departments, `SELECT * FROM departments ORDER BY name`)
	return departments, err
}

func (r *departmentRepository) Update(ctx context.Context, department *domain.Department) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE departments SET name = $2 WHERE id = $1`,
		department.ID, department.Name)
	return err
}

// Delete detaches the department from any shift that references it; the
// shifts themselves survive.
func (r *departmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE shifts SET department_id = NULL WHERE department_id = $1`, id); err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
