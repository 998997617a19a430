package shift_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/mocks"
	"gestione-turni/internal/repository"
	"gestione-turni/internal/service/conflict"
	"gestione-turni/internal/service/shift"
)

type shiftFixture struct {
	svc         shift.Service
	shiftRepo   *mocks.ShiftRepository
	conflictSvc *mocks.ConflictService
	notifSvc    *mocks.NotificationService
	board       *mocks.BoardCache
}

func newShiftFixture() *shiftFixture {
	f := &shiftFixture{
		shiftRepo:   new(mocks.ShiftRepository),
		conflictSvc: new(mocks.ConflictService),
		notifSvc:    new(mocks.NotificationService),
		board:       new(mocks.BoardCache),
	}
	txer := &mocks.Transactor{Repos: &repository.Repositories{Shift: f.shiftRepo}}
	f.svc = shift.NewService(f.shiftRepo, txer, f.conflictSvc, f.notifSvc, f.board)
	return f
}

func TestShiftService_Create(t *testing.T) {
	f := newShiftFixture()
	ctx := context.Background()

	input := domain.CreateShiftInput{
		WorkerID:  "w1",
		Date:      "2024-06-10",
		StartTime: "08:00",
		EndTime:   "16:00",
	}

	f.conflictSvc.On("Check", ctx, mock.MatchedBy(func(c conflict.Candidate) bool {
		return c.WorkerID == "w1" && c.ExcludeShiftID == ""
	})).Return(conflict.Result{}, nil).Once()
	f.shiftRepo.On("Create", ctx, mock.MatchedBy(func(s *domain.Shift) bool {
		return s.ID != "" && s.WorkerID == "w1" && s.SwapStatus == domain.SwapIdle
	})).Return(nil).Once()

	created, err := f.svc.Create(ctx, input)

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "w1", created.WorkerID)
	assert.EqualValues(t, 1, f.board.Invalidations())
	f.shiftRepo.AssertExpectations(t)
}

func TestShiftService_CreateInvalidInterval(t *testing.T) {
	f := newShiftFixture()

	cases := []struct {
		name  string
		input domain.CreateShiftInput
	}{
		{"inverted", domain.CreateShiftInput{WorkerID: "w1", Date: "2024-06-10", StartTime: "16:00", EndTime: "08:00"}},
		{"zero length", domain.CreateShiftInput{WorkerID: "w1", Date: "2024-06-10", StartTime: "08:00", EndTime: "08:00"}},
		{"bad date", domain.CreateShiftInput{WorkerID: "w1", Date: "June 10th", StartTime: "08:00", EndTime: "16:00"}},
		{"bad time", domain.CreateShiftInput{WorkerID: "w1", Date: "2024-06-10", StartTime: "8am", EndTime: "16:00"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInterval)
		})
	}

	f.shiftRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.conflictSvc.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestShiftService_CreateRefusesConflicts(t *testing.T) {
	f := newShiftFixture()
	ctx := context.Background()

	f.conflictSvc.On("Check", ctx, mock.Anything).Return(conflict.Result{
		HasConflict: true,
		Message:     "Mario Rossi is already busy with an overlapping shift.",
	}, nil).Once()

	_, err := f.svc.Create(ctx, domain.CreateShiftInput{
		WorkerID:  "w1",
		Date:      "2024-06-10",
		StartTime: "08:00",
		EndTime:   "16:00",
	})

	assert.ErrorIs(t, err, domain.ErrShiftConflict)
	assert.Contains(t, err.Error(), "Mario Rossi")
	f.shiftRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestShiftService_UpdateExcludesOwnShift(t *testing.T) {
	f := newShiftFixture()
	ctx := context.Background()

	existing := &domain.Shift{
		ID:        "s1",
		WorkerID:  "w1",
		Date:      "2024-06-10",
		StartTime: "08:00",
		EndTime:   "16:00",
	}
	newEnd := "17:00"

	f.shiftRepo.On("GetByID", ctx, "s1").Return(existing, nil).Once()
	f.conflictSvc.On("Check", ctx, mock.MatchedBy(func(c conflict.Candidate) bool {
		return c.ExcludeShiftID == "s1" && c.EndTime == "17:00"
	})).Return(conflict.Result{}, nil).Once()
	f.shiftRepo.On("Update", ctx, mock.MatchedBy(func(s *domain.Shift) bool {
		return s.ID == "s1" && s.EndTime == "17:00"
	})).Return(nil).Once()

	updated, err := f.svc.Update(ctx, "s1", domain.UpdateShiftInput{EndTime: &newEnd})

	assert.NoError(t, err)
	assert.Equal(t, "17:00", updated.EndTime)
	f.conflictSvc.AssertExpectations(t)
}

func TestShiftService_UpdateNotFound(t *testing.T) {
	f := newShiftFixture()
	ctx := context.Background()

	f.shiftRepo.On("GetByID", ctx, "missing").Return(nil, nil).Once()

	_, err := f.svc.Update(ctx, "missing", domain.UpdateShiftInput{})

	assert.ErrorIs(t, err, domain.ErrShiftNotFound)
}

func TestShiftService_Delete(t *testing.T) {
	f := newShiftFixture()
	ctx := context.Background()

	f.shiftRepo.On("Delete", ctx, "s1").Return(true, nil).Once()
	f.notifSvc.On("InvalidateUnreadCount", ctx).Return().Once()

	err := f.svc.Delete(ctx, "s1")

	assert.NoError(t, err)
	assert.EqualValues(t, 1, f.board.Invalidations())
	f.notifSvc.AssertExpectations(t)
}

func TestShiftService_DeleteNotFound(t *testing.T) {
	f := newShiftFixture()
	ctx := context.Background()

	f.shiftRepo.On("Delete", ctx, "missing").Return(false, nil).Once()

	err := f.svc.Delete(ctx, "missing")

	assert.ErrorIs(t, err, domain.ErrShiftNotFound)
	assert.EqualValues(t, 0, f.board.Invalidations())
}

func TestShiftService_GetByID(t *testing.T) {
	f := newShiftFixture()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		f.shiftRepo.On("GetByID", ctx, "s1").Return(&domain.Shift{ID: "s1"}, nil).Once()

		found, err := f.svc.GetByID(ctx, "s1")

		assert.NoError(t, err)
		assert.Equal(t, "s1", found.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f.shiftRepo.On("GetByID", ctx, "missing").Return(nil, nil).Once()

		_, err := f.svc.GetByID(ctx, "missing")

		assert.ErrorIs(t, err, domain.ErrShiftNotFound)
	})

	t.Run("repo error", func(t *testing.T) {
		f.shiftRepo.On("GetByID", ctx, "s2").Return(nil, errors.New("db error")).Once()

		_, err := f.svc.GetByID(ctx, "s2")

		assert.Error(t, err)
	})
}
