package worker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/mocks"
	"gestione-turni/internal/repository"
	"gestione-turni/internal/service/worker"
)

func newWorkerService() (worker.Service, *mocks.WorkerRepository, *mocks.BoardCache) {
	workerRepo := new(mocks.WorkerRepository)
	board := new(mocks.BoardCache)
	txer := &mocks.Transactor{Repos: &repository.Repositories{Worker: workerRepo}}
	svc := worker.NewService(workerRepo, txer, nil, nil, board)
	return svc, workerRepo, board
}

func TestWorkerService_Create(t *testing.T) {
	svc, workerRepo, board := newWorkerService()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		workerRepo.On("Create", ctx, mock.MatchedBy(func(w *domain.Worker) bool {
			return w.ID != "" && w.Name == "Mario Rossi"
		})).Return(nil).Once()

		created, err := svc.Create(ctx, domain.CreateWorkerInput{Name: "Mario Rossi"})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.EqualValues(t, 1, board.Invalidations())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateWorkerInput{Name: "   "})

		assert.Error(t, err)
		workerRepo.AssertNotCalled(t, "Create", ctx, mock.MatchedBy(func(w *domain.Worker) bool {
			return w.Name == "   "
		}))
	})
}

func TestWorkerService_Update(t *testing.T) {
	svc, workerRepo, _ := newWorkerService()
	ctx := context.Background()
	newName := "Maria Verdi"

	workerRepo.On("GetByID", ctx, "w1").Return(&domain.Worker{ID: "w1", Name: "Mario"}, nil).Once()
	workerRepo.On("Update", ctx, mock.MatchedBy(func(w *domain.Worker) bool {
		return w.ID == "w1" && w.Name == "Maria Verdi"
	})).Return(nil).Once()

	updated, err := svc.Update(ctx, "w1", domain.UpdateWorkerInput{Name: &newName})

	assert.NoError(t, err)
	assert.Equal(t, "Maria Verdi", updated.Name)
}

func TestWorkerService_Delete(t *testing.T) {
	svc, workerRepo, board := newWorkerService()
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		workerRepo.On("Delete", ctx, "w1").Return(true, nil).Once()

		assert.NoError(t, svc.Delete(ctx, "w1"))
		assert.EqualValues(t, 1, board.Invalidations())
	})

	t.Run("not found", func(t *testing.T) {
		workerRepo.On("Delete", ctx, "ghost").Return(false, nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, "ghost"), domain.ErrWorkerNotFound)
	})
}

func TestWorkerService_GetByIDNotFound(t *testing.T) {
	svc, workerRepo, _ := newWorkerService()
	ctx := context.Background()

	workerRepo.On("GetByID", ctx, "ghost").Return(nil, nil).Once()

	_, err := svc.GetByID(ctx, "ghost")

	assert.ErrorIs(t, err, domain.ErrWorkerNotFound)
}
