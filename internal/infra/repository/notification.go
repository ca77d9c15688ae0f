package repository

import (
	"context"

	"course-enrollment/internal/domain/notification"
	"course-enrollment/internal/infra"
	"course-enrollment/internal/infra/sqlc"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) error
	SetNotificationRead(ctx context.Context, db sqlc.DBTX, arg sqlc.SetNotificationReadParams) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) error {
	err := r.queries.CreateNotification(ctx, tx, sqlc.CreateNotificationParams{
		ID:     n.ID(),
		UserID: n.UserID(),
		Title:  n.Title(),
		Body:   n.Body(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

// SetRead only touches notifications addressed to userID.
func (r *NotificationRepository) SetRead(ctx context.Context, db sqlc.DBTX, userID, notificationID uuid.UUID, read bool) error {
	n, err := r.queries.SetNotificationRead(ctx, db, sqlc.SetNotificationReadParams{
		ID:     notificationID,
		UserID: userID,
		IsRead: read,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update notification read state", err)
	}
	if n == 0 {
		return infra.NotFound("notification not found")
	}
	return nil
}
