package machine

import (
	"context"
	"fmt"
	"strings"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/repository"
	"gestione-turni/internal/service/export"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateMachineInput) (*domain.Machine, error)
	GetByID(ctx context.Context, id string) (*domain.Machine, error)
	List(ctx context.Context) ([]domain.Machine, error)
	Update(ctx context.Context, id string, input domain.UpdateMachineInput) (*domain.Machine, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	machineRepo repository.MachineRepository
	txer        repository.Transactor
	boardCache  export.Cache
}

func NewService(machineRepo repository.MachineRepository, txer repository.Transactor, boardCache export.Cache) Service {
	return &service{
		machineRepo: machineRepo,
		txer:        txer,
		boardCache:  boardCache,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateMachineInput) (*domain.Machine, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("machine name is required")
	}

	machine := &domain.Machine{
		ID:   domain.NewMachineID(),
		Name: input.Name,
	}
	if err := s.machineRepo.Create(ctx, machine); err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	return machine, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.Machine, error) {
	machine, err := s.machineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, domain.ErrMachineNotFound
	}
	return machine, nil
}

func (s *service) List(ctx context.Context) ([]domain.Machine, error) {
	return s.machineRepo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, input domain.UpdateMachineInput) (*domain.Machine, error) {
	machine, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		machine.Name = *input.Name
	}

	if err := s.machineRepo.Update(ctx, machine); err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	return machine, nil
}

// Delete detaches the machine from its shifts before removing it; shifts are
// never deleted on a machine's account.
func (s *service) Delete(ctx context.Context, id string) error {
	err := s.txer.Transact(ctx, func(txr *repository.Repositories) error {
		deleted, err := txr.Machine.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrMachineNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateBoard(ctx)
	return nil
}

func (s *service) invalidateBoard(ctx context.Context) {
	if s.boardCache != nil {
		s.boardCache.Invalidate(ctx)
	}
}
