package export_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/mocks"
	"gestione-turni/internal/service/export"
)

func TestExportService_Document(t *testing.T) {
	workerRepo := new(mocks.WorkerRepository)
	machineRepo := new(mocks.MachineRepository)
	departmentRepo := new(mocks.DepartmentRepository)
	shiftRepo := new(mocks.ShiftRepository)
	notifRepo := new(mocks.NotificationRepository)

	svc := export.NewService(workerRepo, machineRepo, departmentRepo, shiftRepo, notifRepo, nil)
	ctx := context.Background()

	workerRepo.On("List", ctx).Return([]domain.Worker{{ID: "w1", Name: "Mario"}}, nil).Once()
	machineRepo.On("List", ctx).Return([]domain.Machine{{ID: "m1", Name: "Press 4"}}, nil).Once()
	departmentRepo.On("List", ctx).Return([]domain.Department{{ID: "d1", Name: "Assembly"}}, nil).Once()
	shiftRepo.On("List", ctx).Return([]domain.Shift{{ID: "s1", WorkerID: "w1"}}, nil).Once()
	notifRepo.On("List", ctx).Return([]domain.Notification{{ID: "n1"}}, nil).Once()

	doc, err := svc.Document(ctx)

	assert.NoError(t, err)
	assert.Len(t, doc.Workers, 1)
	assert.Len(t, doc.Machines, 1)
	assert.Len(t, doc.Departments, 1)
	assert.Len(t, doc.Shifts, 1)
	assert.Len(t, doc.Notifications, 1)
}

func TestExportService_DocumentPropagatesErrors(t *testing.T) {
	workerRepo := new(mocks.WorkerRepository)
	machineRepo := new(mocks.MachineRepository)
	departmentRepo := new(mocks.DepartmentRepository)
	shiftRepo := new(mocks.ShiftRepository)
	notifRepo := new(mocks.NotificationRepository)

	svc := export.NewService(workerRepo, machineRepo, departmentRepo, shiftRepo, notifRepo, nil)
	ctx := context.Background()

	workerRepo.On("List", ctx).Return(nil, errors.New("db error")).Once()

	_, err := svc.Document(ctx)

	assert.Error(t, err)
	machineRepo.AssertNotCalled(t, "List", ctx)
}
