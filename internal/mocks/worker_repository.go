package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gestione-turni/internal/domain"
)

type WorkerRepository struct {
	mock.Mock
}

func (m *WorkerRepository) Create(ctx context.Context, worker *domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *WorkerRepository) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *WorkerRepository) List(ctx context.Context) ([]domain.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *WorkerRepository) Update(ctx context.Context, worker *domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *WorkerRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
