package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gestione-turni/internal/service/conflict"
)

type ConflictService struct {
	mock.Mock
}

func (m *ConflictService) Check(ctx context.Context, candidate conflict.Candidate) (conflict.Result, error) {
	args := m.Called(ctx, candidate)
	return args.Get(0).(conflict.Result), args.Error(1)
}
