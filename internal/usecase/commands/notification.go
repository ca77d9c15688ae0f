package commands

import (
	"context"

	"course-enrollment/internal/infra"
	"course-enrollment/internal/infra/sqlc"
	"course-enrollment/internal/pkg/errs"
	"course-enrollment/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	SetRead(ctx context.Context, userID, notificationID uuid.UUID, read bool) error
}

type NotificationStateStore interface {
	SetRead(ctx context.Context, db sqlc.DBTX, userID, notificationID uuid.UUID, read bool) error
}

type notificationCommandsImpl struct {
	uow   shared.UnitOfWork
	store NotificationStateStore
}

func NewNotificationCommands(uow shared.UnitOfWork, store NotificationStateStore) NotificationCommands {
	return &notificationCommandsImpl{uow: uow, store: store}
}

func (c *notificationCommandsImpl) SetRead(ctx context.Context, userID, notificationID uuid.UUID, read bool) error {
	err := c.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		return c.store.SetRead(ctx, db, userID, notificationID, read)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrNotificationNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
