package notification

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/repository"
)

const (
	unreadCountKey = "notifications:unread_count"
	unreadCountTTL = 30 * time.Second
)

type Service interface {
	List(ctx context.Context, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	GetUnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, ids []string) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
	InvalidateUnreadCount(ctx context.Context)
}

type service struct {
	notifRepo repository.NotificationRepository
	redis     *redis.Client
}

func NewService(notifRepo repository.NotificationRepository, redis *redis.Client) Service {
	return &service{
		notifRepo: notifRepo,
		redis:     redis,
	}
}

func (s *service) List(ctx context.Context, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifications, total, err := s.notifRepo.ListPage(ctx, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}
	return domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total), nil
}

func (s *service) GetUnreadCount(ctx context.Context) (int64, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, unreadCountKey).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := s.notifRepo.CountUnread(ctx)
	if err != nil {
		return 0, err
	}

	if s.redis != nil {
		_ = s.redis.Set(ctx, unreadCountKey, strconv.FormatInt(count, 10), unreadCountTTL).Err()
	}
	return count, nil
}

// MarkRead bulk-sets the read flag; ids that match nothing are silently
// ignored and only the notifications that exist come back.
func (s *service) MarkRead(ctx context.Context, ids []string) ([]domain.Notification, error) {
	if len(ids) == 0 {
		return []domain.Notification{}, nil
	}

	updated, err := s.notifRepo.MarkRead(ctx, ids)
	if err != nil {
		return nil, err
	}
	s.InvalidateUnreadCount(ctx)
	return updated, nil
}

func (s *service) MarkAllRead(ctx context.Context) error {
	if err := s.notifRepo.MarkAllRead(ctx); err != nil {
		return err
	}
	s.InvalidateUnreadCount(ctx)
	return nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	deleted, err := s.notifRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotificationNotFound
	}
	s.InvalidateUnreadCount(ctx)
	return nil
}

func (s *service) InvalidateUnreadCount(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, unreadCountKey).Err()
	}
}
