package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gestione-turni/internal/domain"
)

type DepartmentRepository struct {
	mock.Mock
}

func (m *DepartmentRepository) Create(ctx context.Context, department *domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *DepartmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *DepartmentRepository) Update(ctx context.Context, department *domain.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *DepartmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
