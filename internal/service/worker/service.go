package worker

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"

	"gestione-turni/internal/config"
	"gestione-turni/internal/domain"
	"gestione-turni/internal/repository"
	"gestione-turni/internal/service/export"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateWorkerInput) (*domain.Worker, error)
	GetByID(ctx context.Context, id string) (*domain.Worker, error)
	List(ctx context.Context) ([]domain.Worker, error)
	Update(ctx context.Context, id string, input domain.UpdateWorkerInput) (*domain.Worker, error)
	Delete(ctx context.Context, id string) error
	UploadAvatar(ctx context.Context, id, fileName, mimeType string, fileSize int64, reader io.Reader) (*domain.Worker, error)
}

type service struct {
	workerRepo  repository.WorkerRepository
	txer        repository.Transactor
	minioClient *minio.Client
	cfg         *config.Config
	boardCache  export.Cache
}

func NewService(
	workerRepo repository.WorkerRepository,
	txer repository.Transactor,
	minioClient *minio.Client,
	cfg *config.Config,
	boardCache export.Cache,
) Service {
	return &service{
		workerRepo:  workerRepo,
		txer:        txer,
		minioClient: minioClient,
		cfg:         cfg,
		boardCache:  boardCache,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateWorkerInput) (*domain.Worker, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("worker name is required")
	}

	worker := &domain.Worker{
		ID:        domain.NewWorkerID(),
		Name:      input.Name,
		AvatarURL: input.AvatarURL,
		Email:     input.Email,
	}
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	return worker, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	worker, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrWorkerNotFound
	}
	return worker, nil
}

func (s *service) List(ctx context.Context) ([]domain.Worker, error) {
	return s.workerRepo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, input domain.UpdateWorkerInput) (*domain.Worker, error) {
	worker, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		worker.Name = *input.Name
	}
	if input.AvatarURL != nil {
		worker.AvatarURL = *input.AvatarURL
	}
	if input.Email != nil {
		worker.Email = input.Email
	}

	if err := s.workerRepo.Update(ctx, worker); err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	return worker, nil
}

// Delete removes the worker, their shifts, and the swap notifications
// pointing at those shifts, all in one transaction.
func (s *service) Delete(ctx context.Context, id string) error {
	err := s.txer.Transact(ctx, func(txr *repository.Repositories) error {
		deleted, err := txr.Worker.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.ErrWorkerNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateBoard(ctx)
	return nil
}

// UploadAvatar stores the image in MinIO and points the worker's avatar URL
// at the public object. The previous avatar object is removed when it lives
// in our bucket.
func (s *service) UploadAvatar(ctx context.Context, id, fileName, mimeType string, fileSize int64, reader io.Reader) (*domain.Worker, error) {
	if s.minioClient == nil {
		return nil, fmt.Errorf("avatar storage is not configured")
	}

	worker, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	storagePath := fmt.Sprintf("avatars/%s/%s", worker.ID, fileName)
	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	oldPath := s.storagePathFromURL(worker.AvatarURL)
	worker.AvatarURL = s.publicURL(storagePath)

	if err := s.workerRepo.Update(ctx, worker); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	if oldPath != "" && oldPath != storagePath {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, oldPath, minio.RemoveObjectOptions{})
	}

	s.invalidateBoard(ctx)
	return worker, nil
}

func (s *service) publicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}

// storagePathFromURL recovers the object path from an avatar URL we issued;
// external URLs yield "".
func (s *service) storagePathFromURL(avatarURL string) string {
	if avatarURL == "" {
		return ""
	}
	parsed, err := url.Parse(avatarURL)
	if err != nil || parsed.Host != s.cfg.MinIOPublicEndpoint {
		return ""
	}
	prefix := "/" + s.cfg.MinIOBucket + "/"
	if !strings.HasPrefix(parsed.Path, prefix) {
		return ""
	}
	unescaped, err := url.PathUnescape(strings.TrimPrefix(parsed.Path, prefix))
	if err != nil {
		return ""
	}
	return unescaped
}

func (s *service) invalidateBoard(ctx context.Context) {
	if s.boardCache != nil {
		s.boardCache.Invalidate(ctx)
	}
}
