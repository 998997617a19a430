package swap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/mocks"
	"gestione-turni/internal/repository"
	"gestione-turni/internal/service/swap"
)

type swapFixture struct {
	svc       swap.Service
	shiftRepo *mocks.ShiftRepository
	workers   *mocks.WorkerRepository
	notifs    *mocks.NotificationRepository
	notifSvc  *mocks.NotificationService
	board     *mocks.BoardCache
}

func newSwapFixture() *swapFixture {
	f := &swapFixture{
		shiftRepo: new(mocks.ShiftRepository),
		workers:   new(mocks.WorkerRepository),
		notifs:    new(mocks.NotificationRepository),
		notifSvc:  new(mocks.NotificationService),
		board:     new(mocks.BoardCache),
	}
	txer := &mocks.Transactor{Repos: &repository.Repositories{
		Shift:        f.shiftRepo,
		Worker:       f.workers,
		Notification: f.notifs,
	}}
	f.svc = swap.NewService(txer, f.notifSvc, nil, f.board)
	return f
}

func pendingShift(target string) *domain.Shift {
	s := &domain.Shift{
		ID:                 "s1",
		WorkerID:           "w1",
		Date:               "2024-06-10",
		StartTime:          "08:00",
		EndTime:            "16:00",
		SwapStatus:         domain.SwapPending,
		SwapTargetWorkerID: &target,
	}
	s.SyncSwapRequest()
	return s
}

func TestSwapService_Propose(t *testing.T) {
	f := newSwapFixture()
	ctx := context.Background()

	idle := &domain.Shift{
		ID:        "s1",
		WorkerID:  "w1",
		Date:      "2024-06-10",
		StartTime: "08:00",
		EndTime:   "16:00",
	}
	target := "w2"

	f.shiftRepo.On("GetByID", ctx, "s1").Return(idle, nil).Once()
	f.workers.On("GetByID", ctx, "w1").Return(&domain.Worker{ID: "w1", Name: "Mario"}, nil).Once()
	f.workers.On("GetByID", ctx, "w2").Return(&domain.Worker{ID: "w2", Name: "Anna"}, nil).Once()
	f.shiftRepo.On("SetSwapState", ctx, "s1", domain.SwapPending, &target).Return(nil).Once()
	f.notifs.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotifSwapRequest &&
			n.Metadata != nil &&
			n.Metadata.ShiftID == "s1" &&
			n.Metadata.OriginalWorkerID == "w1" &&
			n.Metadata.TargetWorkerID == "w2"
	})).Return(nil).Once()
	f.notifSvc.On("InvalidateUnreadCount", ctx).Return().Once()

	updated, notif, err := f.svc.Propose(ctx, "s1", "w2")

	assert.NoError(t, err)
	assert.Equal(t, domain.SwapPending, updated.SwapStatus)
	assert.NotNil(t, updated.SwapRequest)
	assert.Equal(t, "w2", updated.SwapRequest.TargetWorkerID)
	assert.Equal(t, "pending", string(updated.SwapRequest.Status))
	assert.Equal(t, "Mario proposed a shift swap to Anna", notif.Message)
	assert.False(t, notif.Read)
	assert.EqualValues(t, 1, f.board.Invalidations())
	f.shiftRepo.AssertExpectations(t)
	f.notifs.AssertExpectations(t)
}

func TestSwapService_ProposeAlreadyPending(t *testing.T) {
	f := newSwapFixture()
	ctx := context.Background()

	f.shiftRepo.On("GetByID", ctx, "s1").Return(pendingShift("w3"), nil).Once()

	_, _, err := f.svc.Propose(ctx, "s1", "w2")

	assert.ErrorIs(t, err, domain.ErrSwapAlreadyPending)
	f.shiftRepo.AssertNotCalled(t, "SetSwapState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.notifs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSwapService_ProposeShiftNotFound(t *testing.T) {
	f := newSwapFixture()
	ctx := context.Background()

	f.shiftRepo.On("GetByID", ctx, "missing").Return(nil, nil).Once()

	_, _, err := f.svc.Propose(ctx, "missing", "w2")

	assert.ErrorIs(t, err, domain.ErrShiftNotFound)
}

func TestSwapService_ProposeTargetWorkerNotFound(t *testing.T) {
	f := newSwapFixture()
	ctx := context.Background()

	f.shiftRepo.On("GetByID", ctx, "s1").Return(&domain.Shift{ID: "s1", WorkerID: "w1"}, nil).Once()
	f.workers.On("GetByID", ctx, "w1").Return(&domain.Worker{ID: "w1", Name: "Mario"}, nil).Once()
	f.workers.On("GetByID", ctx, "ghost").Return(nil, nil).Once()

	_, _, err := f.svc.Propose(ctx, "s1", "ghost")

	assert.ErrorIs(t, err, domain.ErrWorkerNotFound)
	f.shiftRepo.AssertNotCalled(t, "SetSwapState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func swapRequestNotification(read bool) *domain.Notification {
	return &domain.Notification{
		ID:      "n1",
		Message: "Mario proposed a shift swap to Anna",
		Type:    domain.NotifSwapRequest,
		Read:    read,
		Metadata: &domain.SwapMetadata{
			ShiftID:          "s1",
			OriginalWorkerID: "w1",
			TargetWorkerID:   "w2",
		},
	}
}

func TestSwapService_RespondApproved(t *testing.T) {
	f := newSwapFixture()
	ctx := context.Background()

	f.notifs.On("GetByID", ctx, "n1").Return(swapRequestNotification(false), nil).Once()
	f.shiftRepo.On("GetByID", ctx, "s1").Return(pendingShift("w2"), nil).Once()
	f.workers.On("GetByID", ctx, "w1").Return(&domain.Worker{ID: "w1", Name: "Mario"}, nil).Once()
	f.workers.On("GetByID", ctx, "w2").Return(&domain.Worker{ID: "w2", Name: "Anna"}, nil).Once()

	resolved := *swapRequestNotification(true)
	f.notifs.On("MarkRead", ctx, []string{"n1"}).Return([]domain.Notification{resolved}, nil).Once()
	f.shiftRepo.On("SetSwapState", ctx, "s1", domain.SwapIdle, (*string)(nil)).Return(nil).Once()
	f.shiftRepo.On("ReassignWorker", ctx, "s1", "w2").Return(nil).Once()
	f.notifs.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotifSwapApproved
	})).Return(nil).Twice()
	f.notifSvc.On("InvalidateUnreadCount", ctx).Return().Once()

	updated, touched, err := f.svc.Respond(ctx, "n1", swap.DecisionApproved)

	assert.NoError(t, err)
	assert.Equal(t, "w2", updated.WorkerID)
	assert.Equal(t, domain.SwapIdle, updated.SwapStatus)
	assert.Nil(t, updated.SwapRequest)
	assert.Len(t, touched, 3)
	assert.True(t, touched[0].Read)
	assert.Equal(t, "Your swap request to Anna was approved.", touched[1].Message)
	assert.Equal(t, "You accepted the swap with Mario. The shift is now yours.", touched[2].Message)
	assert.EqualValues(t, 1, f.board.Invalidations())
	f.shiftRepo.AssertExpectations(t)
	f.notifs.AssertExpectations(t)
}

func TestSwapService_RespondRejected(t *testing.T) {
	f := newSwapFixture()
	ctx := context.Background()

	f.notifs.On("GetByID", ctx, "n1").Return(swapRequestNotification(false), nil).Once()
	f.shiftRepo.On("GetByID", ctx, "s1").Return(pendingShift("w2"), nil).Once()
	f.workers.On("GetByID", ctx, "w1").Return(&domain.Worker{ID: "w1", Name: "Mario"}, nil).Once()
	f.workers.On("GetByID", ctx, "w2").Return(&domain.Worker{ID: "w2", Name: "Anna"}, nil).Once()
	f.notifs.On("MarkRead", ctx, []string{"n1"}).Return([]domain.Notification{*swapRequestNotification(true)}, nil).Once()
	f.shiftRepo.On("SetSwapState", ctx, "s1", domain.SwapIdle, (*string)(nil)).Return(nil).Once()
	f.notifs.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotifSwapRejected
	})).Return(nil).Once()
	f.notifSvc.On("InvalidateUnreadCount", ctx).Return().Once()

	updated, touched, err := f.svc.Respond(ctx, "n1", swap.DecisionRejected)

	assert.NoError(t, err)
	assert.Equal(t, "w1", updated.WorkerID)
	assert.Equal(t, domain.SwapIdle, updated.SwapStatus)
	assert.Len(t, touched, 2)
	assert.Equal(t, "Your swap request to Anna was rejected.", touched[1].Message)
	f.shiftRepo.AssertNotCalled(t, "ReassignWorker", mock.Anything, mock.Anything, mock.Anything)
}

func TestSwapService_RespondTwice(t *testing.T) {
	f := newSwapFixture()
	ctx := context.Background()

	f.notifs.On("GetByID", ctx, "n1").Return(swapRequestNotification(true), nil).Once()

	_, _, err := f.svc.Respond(ctx, "n1", swap.DecisionApproved)

	assert.ErrorIs(t, err, domain.ErrSwapAlreadyResolved)
	f.shiftRepo.AssertNotCalled(t, "SetSwapState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSwapService_RespondInvalidDecision(t *testing.T) {
	f := newSwapFixture()

	_, _, err := f.svc.Respond(context.Background(), "n1", swap.Decision("maybe"))

	assert.ErrorIs(t, err, domain.ErrInvalidDecision)
	f.notifs.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestSwapService_RespondWrongNotificationType(t *testing.T) {
	f := newSwapFixture()
	ctx := context.Background()

	f.notifs.On("GetByID", ctx, "n1").Return(&domain.Notification{
		ID:   "n1",
		Type: domain.NotifInfo,
	}, nil).Once()

	_, _, err := f.svc.Respond(ctx, "n1", swap.DecisionApproved)

	assert.ErrorIs(t, err, domain.ErrInvalidNotification)
}

func TestSwapService_RespondNotificationNotFound(t *testing.T) {
	f := newSwapFixture()
	ctx := context.Background()

	f.notifs.On("GetByID", ctx, "missing").Return(nil, nil).Once()

	_, _, err := f.svc.Respond(ctx, "missing", swap.DecisionRejected)

	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}
