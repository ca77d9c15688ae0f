package readstore

import (
	"context"

	"github.com/google/uuid"

	"course-enrollment/internal/infra"
	"course-enrollment/internal/infra/sqlc"
	"course-enrollment/internal/pkg/pgconv"
	"course-enrollment/internal/usecase/queries"
)

type NotificationReadQueries interface {
	ListNotificationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsByUserParams) ([]sqlc.Notification, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, read *bool) ([]*queries.NotificationView, error) {
	rows, err := s.queries.ListNotificationsByUser(ctx, s.db, sqlc.ListNotificationsByUserParams{
		UserID: userID,
		IsRead: pgconv.BoolPtrToPgtype(read),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	result := make([]*queries.NotificationView, len(rows))
	for i, row := range rows {
		result[i] = toNotificationView(row)
	}

	return result, nil
}

func toNotificationView(row sqlc.Notification) *queries.NotificationView {
	return &queries.NotificationView{
		ID:        row.ID,
		Title:     row.Title,
		Body:      row.Body,
		IsRead:    row.IsRead,
		CreatedAt: row.CreatedAt.Time,
	}
}
