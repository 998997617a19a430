package swap

import (
	"context"
	"fmt"
	"log"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/repository"
	"gestione-turni/internal/service/email"
	"gestione-turni/internal/service/export"
	"gestione-turni/internal/service/notification"
)

// Decision is the target worker's answer to a swap proposal.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) IsValid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// Service drives the shift-swap state machine: Idle -> PendingSwap -> Idle.
// Approval reassigns the shift to the target worker; both outcomes detach the
// pending request and leave a notification trail. Every transition runs in a
// single transaction, so no partial mutation is ever visible.
type Service interface {
	Propose(ctx context.Context, shiftID, targetWorkerID string) (*domain.Shift, *domain.Notification, error)
	Respond(ctx context.Context, notificationID string, decision Decision) (*domain.Shift, []domain.Notification, error)
}

type service struct {
	txer       repository.Transactor
	notifSvc   notification.Service
	emailSvc   email.Service
	boardCache export.Cache
}

func NewService(txer repository.Transactor, notifSvc notification.Service, emailSvc email.Service, boardCache export.Cache) Service {
	return &service{
		txer:       txer,
		notifSvc:   notifSvc,
		emailSvc:   emailSvc,
		boardCache: boardCache,
	}
}

// Propose attaches a pending swap to the shift and creates the swap_request
// notification carrying the metadata Respond will need. A shift with a swap
// already outstanding is refused.
func (s *service) Propose(ctx context.Context, shiftID, targetWorkerID string) (*domain.Shift, *domain.Notification, error) {
	var (
		updated *domain.Shift
		created *domain.Notification
		target  *domain.Worker
	)

	err := s.txer.Transact(ctx, func(txr *repository.Repositories) error {
		shift, err := txr.Shift.GetByID(ctx, shiftID)
		if err != nil {
			return fmt.Errorf("get shift: %w", err)
		}
		if shift == nil {
			return domain.ErrShiftNotFound
		}
		if shift.SwapIsPending() {
			return domain.ErrSwapAlreadyPending
		}

		original, err := txr.Worker.GetByID(ctx, shift.WorkerID)
		if err != nil {
			return fmt.Errorf("get original worker: %w", err)
		}
		target, err = txr.Worker.GetByID(ctx, targetWorkerID)
		if err != nil {
			return fmt.Errorf("get target worker: %w", err)
		}
		if original == nil || target == nil {
			return domain.ErrWorkerNotFound
		}

		if err := txr.Shift.SetSwapState(ctx, shiftID, domain.SwapPending, &targetWorkerID); err != nil {
			return fmt.Errorf("set swap state: %w", err)
		}

		notif := &domain.Notification{
			ID:      domain.NewNotificationID(),
			Message: fmt.Sprintf("%s proposed a shift swap to %s", original.Name, target.Name),
			Type:    domain.NotifSwapRequest,
			Metadata: &domain.SwapMetadata{
				ShiftID:          shiftID,
				OriginalWorkerID: original.ID,
				TargetWorkerID:   targetWorkerID,
			},
		}
		if err := txr.Notification.Create(ctx, notif); err != nil {
			return fmt.Errorf("create swap notification: %w", err)
		}

		shift.SwapStatus = domain.SwapPending
		shift.SwapTargetWorkerID = &targetWorkerID
		shift.SyncSwapRequest()

		updated = shift
		created = notif
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.notifSvc.InvalidateUnreadCount(ctx)
	s.invalidateBoard(ctx)
	s.notifySwapProposed(target, created.Message)

	return updated, created, nil
}

// Respond resolves a pending swap via its swap_request notification. The
// notification's read flag doubles as the resolution marker: responding a
// second time fails as already resolved. All preconditions are validated
// before any mutation is applied.
func (s *service) Respond(ctx context.Context, notificationID string, decision Decision) (*domain.Shift, []domain.Notification, error) {
	if !decision.IsValid() {
		return nil, nil, domain.ErrInvalidDecision
	}

	var (
		updated  *domain.Shift
		touched  []domain.Notification
		original *domain.Worker
	)

	err := s.txer.Transact(ctx, func(txr *repository.Repositories) error {
		notif, err := txr.Notification.GetByID(ctx, notificationID)
		if err != nil {
			return fmt.Errorf("get notification: %w", err)
		}
		if notif == nil {
			return domain.ErrNotificationNotFound
		}
		if notif.Type != domain.NotifSwapRequest || notif.Metadata == nil {
			return domain.ErrInvalidNotification
		}
		if notif.Read {
			return domain.ErrSwapAlreadyResolved
		}
		meta := *notif.Metadata

		shift, err := txr.Shift.GetByID(ctx, meta.ShiftID)
		if err != nil {
			return fmt.Errorf("get shift: %w", err)
		}
		if shift == nil {
			return domain.ErrShiftNotFound
		}

		originalName, targetName := "a colleague", "a colleague"
		if original, err = txr.Worker.GetByID(ctx, meta.OriginalWorkerID); err == nil && original != nil {
			originalName = original.Name
		}
		if target, err := txr.Worker.GetByID(ctx, meta.TargetWorkerID); err == nil && target != nil {
			targetName = target.Name
		}

		resolved, err := txr.Notification.MarkRead(ctx, []string{notificationID})
		if err != nil {
			return fmt.Errorf("mark request read: %w", err)
		}
		touched = append(touched, resolved...)

		if err := txr.Shift.SetSwapState(ctx, shift.ID, domain.SwapIdle, nil); err != nil {
			return fmt.Errorf("clear swap state: %w", err)
		}
		shift.SwapStatus = domain.SwapIdle
		shift.SwapTargetWorkerID = nil
		shift.SyncSwapRequest()

		if decision == DecisionApproved {
			if err := txr.Shift.ReassignWorker(ctx, shift.ID, meta.TargetWorkerID); err != nil {
				return fmt.Errorf("reassign shift: %w", err)
			}
			shift.WorkerID = meta.TargetWorkerID

			approval := &domain.Notification{
				ID:      domain.NewNotificationID(),
				Message: fmt.Sprintf("Your swap request to %s was approved.", targetName),
				Type:    domain.NotifSwapApproved,
			}
			confirmation := &domain.Notification{
				ID:      domain.NewNotificationID(),
				Message: fmt.Sprintf("You accepted the swap with %s. The shift is now yours.", originalName),
				Type:    domain.NotifSwapApproved,
			}
			for _, n := range []*domain.Notification{approval, confirmation} {
				if err := txr.Notification.Create(ctx, n); err != nil {
					return fmt.Errorf("create resolution notification: %w", err)
				}
				touched = append(touched, *n)
			}
		} else {
			rejection := &domain.Notification{
				ID:      domain.NewNotificationID(),
				Message: fmt.Sprintf("Your swap request to %s was rejected.", targetName),
				Type:    domain.NotifSwapRejected,
			}
			if err := txr.Notification.Create(ctx, rejection); err != nil {
				return fmt.Errorf("create resolution notification: %w", err)
			}
			touched = append(touched, *rejection)
		}

		updated = shift
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.notifSvc.InvalidateUnreadCount(ctx)
	s.invalidateBoard(ctx)
	s.notifySwapResolved(original, decision)

	return updated, touched, nil
}

func (s *service) invalidateBoard(ctx context.Context) {
	if s.boardCache != nil {
		s.boardCache.Invalidate(ctx)
	}
}

func (s *service) notifySwapProposed(target *domain.Worker, message string) {
	if s.emailSvc == nil || target == nil || target.Email == nil {
		return
	}
	go func(to, name, message string) {
		if err := s.emailSvc.SendSwapProposed(context.Background(), to, name, message); err != nil {
			log.Printf("swap: failed to send proposal email: %v", err)
		}
	}(*target.Email, target.Name, message)
}

func (s *service) notifySwapResolved(original *domain.Worker, decision Decision) {
	if s.emailSvc == nil || original == nil || original.Email == nil {
		return
	}
	go func(to, name string, approved bool) {
		if err := s.emailSvc.SendSwapResolved(context.Background(), to, name, approved); err != nil {
			log.Printf("swap: failed to send resolution email: %v", err)
		}
	}(*original.Email, original.Name, decision == DecisionApproved)
}
