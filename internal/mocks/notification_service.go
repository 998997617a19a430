package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gestione-turni/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) List(ctx context.Context, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	args := m.Called(ctx, unreadOnly, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Notification]), args.Error(1)
}

func (m *NotificationService) GetUnreadCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) MarkRead(ctx context.Context, ids []string) ([]domain.Notification, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationService) MarkAllRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *NotificationService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NotificationService) InvalidateUnreadCount(ctx context.Context) {
	m.Called(ctx)
}
