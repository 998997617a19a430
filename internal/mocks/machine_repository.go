package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gestione-turni/internal/domain"
)

type MachineRepository struct {
	mock.Mock
}

func (m *MachineRepository) Create(ctx context.Context, machine *domain.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}

func (m *MachineRepository) GetByID(ctx context.Context, id string) (*domain.Machine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Machine), args.Error(1)
}

func (m *MachineRepository) List(ctx context.Context) ([]domain.Machine, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Machine), args.Error(1)
}

func (m *MachineRepository) Update(ctx context.Context, machine *domain.Machine) error {
	args := m.Called(ctx, machine)
	return args.Error(0)
}

func (m *MachineRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
