package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createNotification = `-- name: CreateNotification :exec
INSERT INTO notifications (id, user_id, title, body, is_read)
VALUES ($1, $2, $3, $4, false)
`

type CreateNotificationParams struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
}

func (q *Queries) CreateNotification(ctx context.Context, db DBTX, arg CreateNotificationParams) error {
	_, err := db.Exec(ctx, createNotification,
		arg.ID,
		arg.UserID,
		arg.Title,
		arg.Body,
	)
	return err
}

const listNotificationsByUser = `-- name: ListNotificationsByUser :many
SELECT id, user_id, title, body, is_read, created_at
FROM notifications
WHERE user_id = $1
  AND ($2::boolean IS NULL OR is_read = $2::boolean)
ORDER BY created_at DESC, id
`

type ListNotificationsByUserParams struct {
	UserID uuid.UUID   `json:"user_id"`
	IsRead pgtype.Bool `json:"is_read"`
}

func (q *Queries) ListNotificationsByUser(ctx context.Context, db DBTX, arg ListNotificationsByUserParams) ([]Notification, error) {
	rows, err := db.Query(ctx, listNotificationsByUser, arg.UserID, arg.IsRead)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Notification{}
	for rows.Next() {
		var i Notification
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Title,
			&i.Body,
			&i.IsRead,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const setNotificationRead = `-- name: SetNotificationRead :execrows
UPDATE notifications
SET is_read = $3
WHERE id = $1 AND user_id = $2
`

type SetNotificationReadParams struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	IsRead bool      `json:"is_read"`
}

func (q *Queries) SetNotificationRead(ctx context.Context, db DBTX, arg SetNotificationReadParams) (int64, error) {
	result, err := db.Exec(ctx, setNotificationRead, arg.ID, arg.UserID, arg.IsRead)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const countNotificationsByUser = `-- name: CountNotificationsByUser :one
SELECT COUNT(*) FROM notifications WHERE user_id = $1
`

func (q *Queries) CountNotificationsByUser(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	row := db.QueryRow(ctx, countNotificationsByUser, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
