package conflict_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/mocks"
	"gestione-turni/internal/service/conflict"
)

func newConflictService() (conflict.Service, *mocks.ShiftRepository, *mocks.WorkerRepository, *mocks.MachineRepository) {
	shiftRepo := new(mocks.ShiftRepository)
	workerRepo := new(mocks.WorkerRepository)
	machineRepo := new(mocks.MachineRepository)
	svc := conflict.NewService(shiftRepo, workerRepo, machineRepo)
	return svc, shiftRepo, workerRepo, machineRepo
}

func TestConflictService_WorkerOverlap(t *testing.T) {
	svc, shiftRepo, workerRepo, _ := newConflictService()
	ctx := context.Background()

	existing := []domain.Shift{{
		ID:        "s1",
		WorkerID:  "w1",
		Date:      "2024-06-10",
		StartTime: "08:00",
		EndTime:   "16:00",
	}}

	shiftRepo.On("ListByWorkerAndDate", ctx, "w1", "2024-06-10", "").Return(existing, nil).Once()
	workerRepo.On("GetByID", ctx, "w1").Return(&domain.Worker{ID: "w1", Name: "Mario Rossi"}, nil).Once()

	result, err := svc.Check(ctx, conflict.Candidate{
		WorkerID:  "w1",
		Date:      "2024-06-10",
		StartTime: "14:00",
		EndTime:   "22:00",
	})

	assert.NoError(t, err)
	assert.True(t, result.HasConflict)
	assert.Equal(t, "Mario Rossi is already busy with an overlapping shift.", result.Message)
	shiftRepo.AssertExpectations(t)
}

func TestConflictService_TouchingIntervalsDoNotConflict(t *testing.T) {
	svc, shiftRepo, _, _ := newConflictService()
	ctx := context.Background()

	existing := []domain.Shift{{
		ID:        "s1",
		WorkerID:  "w1",
		Date:      "2024-06-10",
		StartTime: "08:00",
		EndTime:   "12:00",
	}}

	shiftRepo.On("ListByWorkerAndDate", ctx, "w1", "2024-06-10", "").Return(existing, nil).Once()

	result, err := svc.Check(ctx, conflict.Candidate{
		WorkerID:  "w1",
		Date:      "2024-06-10",
		StartTime: "12:00",
		EndTime:   "16:00",
	})

	assert.NoError(t, err)
	assert.False(t, result.HasConflict)
	assert.Empty(t, result.Message)
}

func TestConflictService_ExcludesOwnShift(t *testing.T) {
	svc, shiftRepo, _, _ := newConflictService()
	ctx := context.Background()

	// The repository filters the excluded id out, so an edited shift never
	// collides with its own stored row.
	shiftRepo.On("ListByWorkerAndDate", ctx, "w1", "2024-06-10", "s1").Return([]domain.Shift{}, nil).Once()

	result, err := svc.Check(ctx, conflict.Candidate{
		WorkerID:       "w1",
		Date:           "2024-06-10",
		StartTime:      "08:00",
		EndTime:        "16:00",
		ExcludeShiftID: "s1",
	})

	assert.NoError(t, err)
	assert.False(t, result.HasConflict)
	shiftRepo.AssertExpectations(t)
}

func TestConflictService_WorkerCheckTakesPrecedence(t *testing.T) {
	svc, shiftRepo, workerRepo, _ := newConflictService()
	ctx := context.Background()
	machineID := "m1"

	overlapping := []domain.Shift{{
		ID:        "s1",
		WorkerID:  "w1",
		MachineID: &machineID,
		Date:      "2024-06-10",
		StartTime: "09:00",
		EndTime:   "17:00",
	}}

	shiftRepo.On("ListByWorkerAndDate", ctx, "w1", "2024-06-10", "").Return(overlapping, nil).Once()
	workerRepo.On("GetByID", ctx, "w1").Return(&domain.Worker{ID: "w1", Name: "Anna"}, nil).Once()

	result, err := svc.Check(ctx, conflict.Candidate{
		WorkerID:  "w1",
		MachineID: &machineID,
		Date:      "2024-06-10",
		StartTime: "10:00",
		EndTime:   "12:00",
	})

	assert.NoError(t, err)
	assert.True(t, result.HasConflict)
	assert.Contains(t, result.Message, "Anna")
	shiftRepo.AssertNotCalled(t, "ListByMachineAndDate", ctx, machineID, "2024-06-10", "")
}

func TestConflictService_MachineOverlap(t *testing.T) {
	svc, shiftRepo, _, machineRepo := newConflictService()
	ctx := context.Background()
	machineID := "m1"

	shiftRepo.On("ListByWorkerAndDate", ctx, "w2", "2024-06-10", "").Return([]domain.Shift{}, nil).Once()
	shiftRepo.On("ListByMachineAndDate", ctx, machineID, "2024-06-10", "").Return([]domain.Shift{{
		ID:        "s1",
		WorkerID:  "w1",
		MachineID: &machineID,
		Date:      "2024-06-10",
		StartTime: "08:00",
		EndTime:   "16:00",
	}}, nil).Once()
	machineRepo.On("GetByID", ctx, machineID).Return(&domain.Machine{ID: machineID, Name: "Press 4"}, nil).Once()

	result, err := svc.Check(ctx, conflict.Candidate{
		WorkerID:  "w2",
		MachineID: &machineID,
		Date:      "2024-06-10",
		StartTime: "10:00",
		EndTime:   "18:00",
	})

	assert.NoError(t, err)
	assert.True(t, result.HasConflict)
	assert.Equal(t, "The machine Press 4 is already in use during an overlapping shift.", result.Message)
}

func TestConflictService_GenericNameFallback(t *testing.T) {
	svc, shiftRepo, workerRepo, _ := newConflictService()
	ctx := context.Background()

	shiftRepo.On("ListByWorkerAndDate", ctx, "w9", "2024-06-10", "").Return([]domain.Shift{{
		ID:        "s1",
		WorkerID:  "w9",
		Date:      "2024-06-10",
		StartTime: "08:00",
		EndTime:   "16:00",
	}}, nil).Once()
	workerRepo.On("GetByID", ctx, "w9").Return(nil, nil).Once()

	result, err := svc.Check(ctx, conflict.Candidate{
		WorkerID:  "w9",
		Date:      "2024-06-10",
		StartTime: "08:00",
		EndTime:   "10:00",
	})

	assert.NoError(t, err)
	assert.True(t, result.HasConflict)
	assert.Equal(t, "This worker is already busy with an overlapping shift.", result.Message)
}

func TestConflictService_DifferentDaysNeverConflict(t *testing.T) {
	svc, shiftRepo, _, _ := newConflictService()
	ctx := context.Background()

	// The repository only returns same-day rows, so a free day comes back
	// empty regardless of what other days hold.
	shiftRepo.On("ListByWorkerAndDate", ctx, "w1", "2024-06-11", "").Return([]domain.Shift{}, nil).Once()

	result, err := svc.Check(ctx, conflict.Candidate{
		WorkerID:  "w1",
		Date:      "2024-06-11",
		StartTime: "08:00",
		EndTime:   "16:00",
	})

	assert.NoError(t, err)
	assert.False(t, result.HasConflict)
}

func TestConflictService_MalformedCandidate(t *testing.T) {
	svc, _, _, _ := newConflictService()

	_, err := svc.Check(context.Background(), conflict.Candidate{
		WorkerID:  "w1",
		Date:      "not-a-date",
		StartTime: "08:00",
		EndTime:   "16:00",
	})

	assert.ErrorIs(t, err, conflict.ErrMalformedCandidate)
}

func TestConflictService_SkipsUnparseableStoredRows(t *testing.T) {
	svc, shiftRepo, _, _ := newConflictService()
	ctx := context.Background()

	shiftRepo.On("ListByWorkerAndDate", ctx, "w1", "2024-06-10", "").Return([]domain.Shift{{
		ID:        "s1",
		WorkerID:  "w1",
		Date:      "2024-06-10",
		StartTime: "garbage",
		EndTime:   "16:00",
	}}, nil).Once()

	result, err := svc.Check(ctx, conflict.Candidate{
		WorkerID:  "w1",
		Date:      "2024-06-10",
		StartTime: "08:00",
		EndTime:   "16:00",
	})

	assert.NoError(t, err)
	assert.False(t, result.HasConflict)
}
