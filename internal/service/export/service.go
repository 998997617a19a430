package export

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"gestione-turni/internal/domain"
	"gestione-turni/internal/repository"
)

const (
	documentKey = "board:document"
	documentTTL = time.Minute
)

// Cache is the invalidation hook the mutating services depend on; the export
// service implements it.
type Cache interface {
	Invalidate(ctx context.Context)
}

// Service assembles the whole board as the five-collection document the
// original flat-file backend persisted: workers, machines, departments,
// shifts, notifications.
type Service interface {
	Cache
	Document(ctx context.Context) (domain.Document, error)
}

type service struct {
	workerRepo     repository.WorkerRepository
	machineRepo    repository.MachineRepository
	departmentRepo repository.DepartmentRepository
	shiftRepo      repository.ShiftRepository
	notifRepo      repository.NotificationRepository
	redis          *redis.Client
}

func NewService(
	workerRepo repository.WorkerRepository,
	machineRepo repository.MachineRepository,
	departmentRepo repository.DepartmentRepository,
	shiftRepo repository.ShiftRepository,
	notifRepo repository.NotificationRepository,
	redis *redis.Client,
) Service {
	return &service{
		workerRepo:     workerRepo,
		machineRepo:    machineRepo,
		departmentRepo: departmentRepo,
		shiftRepo:      shiftRepo,
		notifRepo:      notifRepo,
		redis:          redis,
	}
}

func (s *service) Document(ctx context.Context) (domain.Document, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, documentKey).Result(); err == nil {
			var doc domain.Document
			if err := json.Unmarshal([]byte(cached), &doc); err == nil {
				return doc, nil
			}
		}
	}

	var doc domain.Document
	var err error

	if doc.Workers, err = s.workerRepo.List(ctx); err != nil {
		return domain.Document{}, err
	}
	if doc.Machines, err = s.machineRepo.List(ctx); err != nil {
		return domain.Document{}, err
	}
	if doc.Departments, err = s.departmentRepo.List(ctx); err != nil {
		return domain.Document{}, err
	}
	if doc.Shifts, err = s.shiftRepo.List(ctx); err != nil {
		return domain.Document{}, err
	}
	if doc.Notifications, err = s.notifRepo.List(ctx); err != nil {
		return domain.Document{}, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(doc); err == nil {
			_ = s.redis.Set(ctx, documentKey, payload, documentTTL).Err()
		}
	}
	return doc, nil
}

func (s *service) Invalidate(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, documentKey).Err()
	}
}
