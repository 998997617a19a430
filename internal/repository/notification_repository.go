package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"gestione-turni/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	List(ctx context.Context) ([]domain.Notification, error)
	ListPage(ctx context.Context, unreadOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error)
	MarkRead(ctx context.Context, ids []string) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context) error
	CountUnread(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type notificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	if err := notif.EncodeMetadata(); err != nil {
		return err
	}

	query := `
		INSERT INTO notifications (id, message, type, is_read, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.Message, notif.Type, notif.Read, notif.MetadataRaw,
	).Scan(&notif.Timestamp)
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	var notif domain.Notification
	err := r.db.GetContext(ctx, &notif, `SELECT * FROM notifications WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := notif.DecodeMetadata(); err != nil {
		return nil, err
	}
	return &notif, nil
}

func (r *notificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	notifs := []domain.Notification{}
	query := `SELECT * FROM notifications ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &notifs, query); err != nil {
		return nil, err
	}
	for i := range notifs {
		if err := notifs[i].DecodeMetadata(); err != nil {
			return nil, err
		}
	}
	return notifs, nil
}

func (r *notificationRepository) ListPage(ctx context.Context, unreadOnly bool, params domain.PaginationParams) ([]domain.Notification, int64, error) {
	params.Validate()

	where := ``
	if unreadOnly {
		where = `WHERE is_read = false`
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM notifications `+where); err != nil {
		return nil, 0, err
	}

	notifs := []domain.Notification{}
	query := `
		SELECT * FROM notifications ` + where + `
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	if err := r.db.SelectContext(ctx, &notifs, query, params.PageSize, params.Offset()); err != nil {
		return nil, 0, err
	}
	for i := range notifs {
		if err := notifs[i].DecodeMetadata(); err != nil {
			return nil, 0, err
		}
	}
	return notifs, total, nil
}

// MarkRead flips the read flag on every matching notification and returns the
// subset that actually exists; unknown ids are silently skipped.
func (r *notificationRepository) MarkRead(ctx context.Context, ids []string) ([]domain.Notification, error) {
	if len(ids) == 0 {
		return []domain.Notification{}, nil
	}

	query := `
		UPDATE notifications SET is_read = true
		WHERE id = ANY($1)
		RETURNING *`

	rows, err := r.db.QueryxContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifs := []domain.Notification{}
	for rows.Next() {
		var notif domain.Notification
		if err := rows.StructScan(&notif); err != nil {
			return nil, err
		}
		if err := notif.DecodeMetadata(); err != nil {
			return nil, err
		}
		notifs = append(notifs, notif)
	}
	return notifs, rows.Err()
}

func (r *notificationRepository) MarkAllRead(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = true WHERE is_read = false`)
	return err
}

func (r *notificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM notifications WHERE is_read = false`)
	return count, err
}

func (r *notificationRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
