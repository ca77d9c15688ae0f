package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const lockCourseSnapshot = `-- name: LockCourseSnapshot :one
SELECT
    c.id,
    c.instructor_id,
    c.name,
    c.capacity,
    c.start_date,
    c.status,
    (
        SELECT COUNT(*)
        FROM enrollments e
        WHERE e.course_id = c.id AND e.status = 'ACCEPTED'
    )::int AS accepted_count
FROM courses c
WHERE c.id = $1
FOR UPDATE OF c
`

type LockCourseSnapshotRow struct {
	ID            uuid.UUID          `json:"id"`
	InstructorID  uuid.UUID          `json:"instructor_id"`
	Name          string             `json:"name"`
	Capacity      int32              `json:"capacity"`
	StartDate     pgtype.Timestamptz `json:"start_date"`
	Status        string             `json:"status"`
	AcceptedCount int32              `json:"accepted_count"`
}

// LockCourseSnapshot reads a course with its ACCEPTED count and locks the
// course row until the surrounding transaction ends.
func (q *Queries) LockCourseSnapshot(ctx context.Context, db DBTX, id uuid.UUID) (LockCourseSnapshotRow, error) {
	row := db.QueryRow(ctx, lockCourseSnapshot, id)
	var i LockCourseSnapshotRow
	err := row.Scan(
		&i.ID,
		&i.InstructorID,
		&i.Name,
		&i.Capacity,
		&i.StartDate,
		&i.Status,
		&i.AcceptedCount,
	)
	return i, err
}

const findCourseByID = `-- name: FindCourseByID :one
SELECT id, instructor_id, name, capacity, start_date, status
FROM courses
WHERE id = $1
`

func (q *Queries) FindCourseByID(ctx context.Context, db DBTX, id uuid.UUID) (Course, error) {
	row := db.QueryRow(ctx, findCourseByID, id)
	var i Course
	err := row.Scan(
		&i.ID,
		&i.InstructorID,
		&i.Name,
		&i.Capacity,
		&i.StartDate,
		&i.Status,
	)
	return i, err
}

const createCourse = `-- name: CreateCourse :one
INSERT INTO courses (instructor_id, name, capacity, start_date, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

type CreateCourseParams struct {
	InstructorID uuid.UUID          `json:"instructor_id"`
	Name         string             `json:"name"`
	Capacity     int32              `json:"capacity"`
	StartDate    pgtype.Timestamptz `json:"start_date"`
	Status       string             `json:"status"`
}

func (q *Queries) CreateCourse(ctx context.Context, db DBTX, arg CreateCourseParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createCourse,
		arg.InstructorID,
		arg.Name,
		arg.Capacity,
		arg.StartDate,
		arg.Status,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}
