package conflict

import (
	"context"
	"fmt"
	"time"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/repository"
)

// Candidate is a shift proposal to test against the existing schedule.
// ExcludeShiftID carries the candidate's own id when an existing shift is
// being edited, so it is never reported as conflicting with itself.
type Candidate struct {
	WorkerID       string  `json:"workerId"`
	MachineID      *string `json:"machineId,omitempty"`
	Date           string  `json:"date"`
	StartTime      string  `json:"startTime"`
	EndTime        string  `json:"endTime"`
	ExcludeShiftID string  `json:"shiftIdToIgnore,omitempty"`
}

type Result struct {
	HasConflict bool   `json:"hasConflict"`
	Message     string `json:"message"`
}

var ErrMalformedCandidate = fmt.Errorf("malformed candidate interval")

type Service interface {
	Check(ctx context.Context, candidate Candidate) (Result, error)
}

type service struct {
	shiftRepo   repository.ShiftRepository
	workerRepo  repository.WorkerRepository
	machineRepo repository.MachineRepository
}

func NewService(shiftRepo repository.ShiftRepository, workerRepo repository.WorkerRepository, machineRepo repository.MachineRepository) Service {
	return &service{
		shiftRepo:   shiftRepo,
		workerRepo:  workerRepo,
		machineRepo: machineRepo,
	}
}

// Check is a pure read-only query: it reports whether the candidate interval
// strictly overlaps another shift for the same worker, or failing that, the
// same machine, on the same calendar day. Intervals are half-open, so shifts
// that merely touch (08:00-12:00 and 12:00-16:00) do not conflict. The worker
// check takes precedence: when both would conflict only the worker message is
// reported.
//
// Inverted or zero-length candidate intervals are not rejected here; the
// overlap math simply never matches them. Interval validation is the shift
// service's concern.
func (s *service) Check(ctx context.Context, candidate Candidate) (Result, error) {
	start, end, err := composeInterval(candidate.Date, candidate.StartTime, candidate.EndTime)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedCandidate, err)
	}

	workerShifts, err := s.shiftRepo.ListByWorkerAndDate(ctx, candidate.WorkerID, candidate.Date, candidate.ExcludeShiftID)
	if err != nil {
		return Result{}, fmt.Errorf("list worker shifts: %w", err)
	}
	if other := firstOverlap(workerShifts, start, end); other != nil {
		return Result{HasConflict: true, Message: s.workerMessage(ctx, candidate.WorkerID)}, nil
	}

	if candidate.MachineID != nil && *candidate.MachineID != "" {
		machineShifts, err := s.shiftRepo.ListByMachineAndDate(ctx, *candidate.MachineID, candidate.Date, candidate.ExcludeShiftID)
		if err != nil {
			return Result{}, fmt.Errorf("list machine shifts: %w", err)
		}
		if other := firstOverlap(machineShifts, start, end); other != nil {
			return Result{HasConflict: true, Message: s.machineMessage(ctx, *candidate.MachineID)}, nil
		}
	}

	return Result{}, nil
}

// firstOverlap returns the first shift whose [start, end) interval strictly
// overlaps the candidate's. Stored rows with unparseable times are skipped
// rather than failing the whole check.
func firstOverlap(shifts []domain.Shift, start, end time.Time) *domain.Shift {
	for i := range shifts {
		otherStart, otherEnd, err := composeInterval(shifts[i].Date, shifts[i].StartTime, shifts[i].EndTime)
		if err != nil {
			continue
		}
		if start.Before(otherEnd) && end.After(otherStart) {
			return &shifts[i]
		}
	}
	return nil
}

func composeInterval(date, startTime, endTime string) (time.Time, time.Time, error) {
	const layout = "2006-01-02 15:04"

	start, err := time.Parse(layout, date+" "+startTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(layout, date+" "+endTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func (s *service) workerMessage(ctx context.Context, workerID string) string {
	name := "This worker"
	if worker, err := s.workerRepo.GetByID(ctx, workerID); err == nil && worker != nil {
		name = worker.Name
	}
	return fmt.Sprintf("%s is already busy with an overlapping shift.", name)
}

func (s *service) machineMessage(ctx context.Context, machineID string) string {
	label := "The machine"
	if machine, err := s.machineRepo.GetByID(ctx, machineID); err == nil && machine != nil {
		label = fmt.Sprintf("The machine %s", machine.Name)
	}
	return fmt.Sprintf("%s is already in use during an overlapping shift.", label)
}
