package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationQueries interface {
	// List returns the user's notifications, newest first. A nil read filter
	// returns both read and unread entries.
	List(ctx context.Context, userID uuid.UUID, read *bool) ([]*NotificationView, error)
}

type NotificationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, read *bool) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) List(ctx context.Context, userID uuid.UUID, read *bool) ([]*NotificationView, error) {
	return q.readStore.ListByUser(ctx, userID, read)
}
