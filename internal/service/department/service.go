package department

import (
	"context"
	"fmt"
	"strings"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/repository"
	"gestione-turni/internal/service/export"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateDepartmentInput) (*domain.Department, error)
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Update(ctx context.Context, id string, input domain.UpdateDepartmentInput) (*domain.Department, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	departmentRepo repository.DepartmentRepository
	txer           repository.Transactor
	boardCache     export.Cache
}

func NewService(departmentRepo repository.DepartmentRepository, txer repository.Transactor, boardCache export.Cache) Service {
	return &service{
		departmentRepo: departmentRepo,
		txer:           txer,
		boardCache:     boardCache,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateDepartmentInput) (*domain.Department, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("department name is required")
	}

	department := &domain.Department{
		ID:   domain.NewDepartmentID(),
		Name: input.Name,
	}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	return department, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, domain.ErrDepartmentNotFound
	}
	return department, nil
}

func (s *service) List(ctx context.Context) ([]domain.Department, error) {
	return s.departmentRepo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, input domain.UpdateDepartmentInput) (*domain.Department, error) {
	department, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		department.Name = *input.Name
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	return department, nil
}

// Delete detaches the department from its shifts before removing it; shifts
// survive with a null department reference.
func (s *service) Delete(ctx context.Context, id string) error {
	err := s.txer.Transact(ctx, func(txr *repository.Repositories) error {
		deleted, err := txr.Department.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrDepartmentNotFound
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
