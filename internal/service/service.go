package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"gestione-turni/internal/config"
	"gestione-turni/internal/repository"
	"gestione-turni/internal/service/auth"
	"gestione-turni/internal/service/conflict"
	"gestione-turni/internal/service/department"
	"gestione-turni/internal/service/email"
	"gestione-turni/internal/service/export"
	"gestione-turni/internal/service/machine"
	"gestione-turni/internal/service/notification"
	"gestione-turni/internal/service/shift"
	"gestione-turni/internal/service/swap"
	"gestione-turni/internal/service/worker"
)

type Services struct {
	Auth         auth.Service
	Conflict     conflict.Service
	Shift        shift.Service
	Swap         swap.Service
	Worker       worker.Service
	Machine      machine.Service
	Department   department.Service
	Notification notification.Service
	Export       export.Service
	Email        email.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, repos.Session, cfg)
	notificationService := notification.NewService(repos.Notification, redis)
	exportService := export.NewService(repos.Worker, repos.Machine, repos.Department, repos.Shift, repos.Notification, redis)
	conflictService := conflict.NewService(repos.Shift, repos.Worker, repos.Machine)
	shiftService := shift.NewService(repos.Shift, repos, conflictService, notificationService, exportService)
	swapService := swap.NewService(repos, notificationService, emailService, exportService)
	workerService := worker.NewService(repos.Worker, repos, minioClient, cfg, exportService)
	machineService := machine.NewService(repos.Machine, repos, exportService)
	departmentService := department.NewService(repos.Department, repos, exportService)

	return &Services{
		Auth:         authService,
		Conflict:     conflictService,
		Shift:        shiftService,
		Swap:         swapService,
		Worker:       workerService,
		Machine:      machineService,
		Department:   departmentService,
		Notification: notificationService,
		Export:       exportService,
		Email:        emailService,
	}
}
