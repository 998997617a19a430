package shift

import (
	"context"
	"fmt"
	"time"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/repository"
	"gestione-turni/internal/service/conflict"
	"gestione-turni/internal/service/export"
	"gestione-turni/internal/service/notification"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateShiftInput) (*domain.Shift, error)
	GetByID(ctx context.Context, id string) (*domain.Shift, error)
	List(ctx context.Context) ([]domain.Shift, error)
	Update(ctx context.Context, id string, input domain.UpdateShiftInput) (*domain.Shift, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	shiftRepo   repository.ShiftRepository
	txer        repository.Transactor
	conflictSvc conflict.Service
	notifSvc    notification.Service
	boardCache  export.Cache
}

func NewService(
	shiftRepo repository.ShiftRepository,
	txer repository.Transactor,
	conflictSvc conflict.Service,
	notifSvc notification.Service,
	boardCache export.Cache,
) Service {
	return &service{
		shiftRepo:   shiftRepo,
		txer:        txer,
		conflictSvc: conflictSvc,
		notifSvc:    notifSvc,
		boardCache:  boardCache,
	}
}

// Create validates the interval, refuses candidates the conflict detector
// rejects, and persists the shift in the idle swap state.
func (s *service) Create(ctx context.Context, input domain.CreateShiftInput) (*domain.Shift, error) {
	if err := validateInterval(input.Date, input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	result, err := s.conflictSvc.Check(ctx, conflict.Candidate{
		WorkerID:  input.WorkerID,
		MachineID: input.MachineID,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	})
	if err != nil {
		return nil, err
	}
	if result.HasConflict {
		return nil, fmt.Errorf("%w: %s", domain.ErrShiftConflict, result.Message)
	}

	shift := &domain.Shift{
		ID:           domain.NewShiftID(),
		WorkerID:     input.WorkerID,
		Date:         input.Date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		DepartmentID: input.DepartmentID,
		MachineID:    input.MachineID,
		Notes:        input.Notes,
		SwapStatus:   domain.SwapIdle,
	}
	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	return shift, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrShiftNotFound
	}
	return shift, nil
}

func (s *service) List(ctx context.Context) ([]domain.Shift, error) {
	return s.shiftRepo.List(ctx)
}

// Update patches the shift, re-validates the interval and re-runs the
// conflict check with the shift's own id excluded so it never conflicts with
// itself.
func (s *service) Update(ctx context.Context, id string, input domain.UpdateShiftInput) (*domain.Shift, error) {
	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrShiftNotFound
	}

	if input.WorkerID != nil {
		shift.WorkerID = *input.WorkerID
	}
	if input.Date != nil {
		shift.Date = *input.Date
	}
	if input.StartTime != nil {
		shift.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		shift.EndTime = *input.EndTime
	}
	if input.DepartmentID != nil {
		shift.DepartmentID = input.DepartmentID
	}
	if input.MachineID != nil {
		shift.MachineID = input.MachineID
	}
	if input.Notes != nil {
		shift.Notes = input.Notes
	}

	if err := validateInterval(shift.Date, shift.StartTime, shift.EndTime); err != nil {
		return nil, err
	}

	result, err := s.conflictSvc.Check(ctx, conflict.Candidate{
		WorkerID:       shift.WorkerID,
		MachineID:      shift.MachineID,
		Date:           shift.Date,
		StartTime:      shift.StartTime,
		EndTime:        shift.EndTime,
		ExcludeShiftID: shift.ID,
	})
	if err != nil {
		return nil, err
	}
	if result.HasConflict {
		return nil, fmt.Errorf("%w: %s", domain.ErrShiftConflict, result.Message)
	}

	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	return shift, nil
}

// Delete removes the shift and cascades its swap notifications in one
// transaction.
func (s *service) Delete(ctx context.Context, id string) error {
	err := s.txer.Transact(ctx, func(txr *repository.Repositories) error {
		deleted, err := txr.Shift.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrShiftNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateBoard(ctx)
	if s.notifSvc != nil {
		s.notifSvc.InvalidateUnreadCount(ctx)
	}
	return nil
}

func (s *service) invalidateBoard(ctx context.Context) {
	if s.boardCache != nil {
		s.boardCache.Invalidate(ctx)
	}
}

// validateInterval enforces well-formed dates and StartTime < EndTime for
// stored shifts. The conflict detector itself stays permissive; this is the
// single place inverted intervals are rejected.
func validateInterval(date, startTime, endTime string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: invalid date %q", domain.ErrInvalidInterval, date)
	}
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return fmt.Errorf("%w: invalid start time %q", domain.ErrInvalidInterval, startTime)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return fmt.Errorf("%w: invalid end time %q", domain.ErrInvalidInterval, endTime)
	}
	if !start.Before(end) {
		return domain.ErrInvalidInterval
	}
	return nil
}
