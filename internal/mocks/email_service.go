package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendSwapProposed(ctx context.Context, toEmail, recipientName, message string) error {
	args := m.Called(ctx, toEmail, recipientName, message)
	return args.Error(0)
}

func (m *EmailService) SendSwapResolved(ctx context.Context, toEmail, recipientName string, approved bool) error {
	args := m.Called(ctx, toEmail, recipientName, approved)
	return args.Error(0)
}
