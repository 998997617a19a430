package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gestione-turni/internal/domain"
)

type ShiftRepository struct {
	mock.Mock
}

func (m *ShiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *ShiftRepository) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *ShiftRepository) List(ctx context.Context) ([]domain.Shift, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *ShiftRepository) ListByWorkerAndDate(ctx context.Context, workerID, date, excludeID string) ([]domain.Shift, error) {
	args := m.Called(ctx, workerID, date, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *ShiftRepository) ListByMachineAndDate(ctx context.Context, machineID, date, excludeID string) ([]domain.Shift, error) {
	args := m.Called(ctx, machineID, date, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shift), args.Error(1)
}

func (m *ShiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *ShiftRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *ShiftRepository) SetSwapState(ctx context.Context, id string, status domain.SwapStatus, targetWorkerID *string) error {
	args := m.Called(ctx, id, status, targetWorkerID)
	return args.Error(0)
}

func (m *ShiftRepository) ReassignWorker(ctx context.Context, id, workerID string) error {
	args := m.Called(ctx, id, workerID)
	return args.Error(0)
}
