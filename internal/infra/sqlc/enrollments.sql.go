package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const hasActiveEnrollment = `-- name: HasActiveEnrollment :one
SELECT EXISTS (
    SELECT 1
    FROM enrollments
    WHERE student_id = $1
      AND course_id = $2
      AND status IN ('PENDING', 'ACCEPTED')
)
`

type HasActiveEnrollmentParams struct {
	StudentID uuid.UUID `json:"student_id"`
	CourseID  uuid.UUID `json:"course_id"`
}

func (q *Queries) HasActiveEnrollment(ctx context.Context, db DBTX, arg HasActiveEnrollmentParams) (bool, error) {
	row := db.QueryRow(ctx, hasActiveEnrollment, arg.StudentID, arg.CourseID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const findPendingEnrollmentForUpdate = `-- name: FindPendingEnrollmentForUpdate :one
SELECT id, student_id, course_id, status, created_at, updated_at
FROM enrollments
WHERE id = $1 AND status = 'PENDING'
FOR UPDATE
`

func (q *Queries) FindPendingEnrollmentForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Enrollment, error) {
	row := db.QueryRow(ctx, findPendingEnrollmentForUpdate, id)
	var i Enrollment
	err := row.Scan(
		&i.ID,
		&i.StudentID,
		&i.CourseID,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createEnrollment = `-- name: CreateEnrollment :exec
INSERT INTO enrollments (id, student_id, course_id, status)
VALUES ($1, $2, $3, $4)
`

type CreateEnrollmentParams struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	CourseID  uuid.UUID `json:"course_id"`
	Status    string    `json:"status"`
}

func (q *Queries) CreateEnrollment(ctx context.Context, db DBTX, arg CreateEnrollmentParams) error {
	_, err := db.Exec(ctx, createEnrollment,
		arg.ID,
		arg.StudentID,
		arg.CourseID,
		arg.Status,
	)
	return err
}

const updatePendingEnrollmentStatus = `-- name: UpdatePendingEnrollmentStatus :execrows
UPDATE enrollments
SET status = $2, updated_at = NOW()
WHERE id = $1 AND status = 'PENDING'
`

type UpdatePendingEnrollmentStatusParams struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func (q *Queries) UpdatePendingEnrollmentStatus(ctx context.Context, db DBTX, arg UpdatePendingEnrollmentStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updatePendingEnrollmentStatus, arg.ID, arg.Status)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteStudentEnrollment = `-- name: DeleteStudentEnrollment :execrows
DELETE FROM enrollments
WHERE id = $1 AND student_id = $2
`

type DeleteStudentEnrollmentParams struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
}

func (q *Queries) DeleteStudentEnrollment(ctx context.Context, db DBTX, arg DeleteStudentEnrollmentParams) (int64, error) {
	result, err := db.Exec(ctx, deleteStudentEnrollment, arg.ID, arg.StudentID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listEnrollmentsByStudent = `-- name: ListEnrollmentsByStudent :many
SELECT
    e.id,
    e.course_id,
    c.name AS course_name,
    e.status,
    e.created_at,
    e.updated_at
FROM enrollments e
JOIN courses c ON c.id = e.course_id
WHERE e.student_id = $1
ORDER BY e.created_at DESC, e.id
`

type ListEnrollmentsByStudentRow struct {
	ID         uuid.UUID          `json:"id"`
	CourseID   uuid.UUID          `json:"course_id"`
	CourseName string             `json:"course_name"`
	Status     string             `json:"status"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
	UpdatedAt  pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) ListEnrollmentsByStudent(ctx context.Context, db DBTX, studentID uuid.UUID) ([]ListEnrollmentsByStudentRow, error) {
	rows, err := db.Query(ctx, listEnrollmentsByStudent, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListEnrollmentsByStudentRow{}
	for rows.Next() {
		var i ListEnrollmentsByStudentRow
		if err := rows.Scan(
			&i.ID,
			&i.CourseID,
			&i.CourseName,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const listEnrollmentsByCourse = `-- name: ListEnrollmentsByCourse :many
SELECT
    e.id,
    e.student_id,
    u.name AS student_name,
    u.email AS student_email,
    e.status,
    e.created_at,
    e.updated_at
FROM enrollments e
JOIN app_users u ON u.id = e.student_id
WHERE e.course_id = $1
ORDER BY e.created_at, e.id
`

type ListEnrollmentsByCourseRow struct {
	ID           uuid.UUID          `json:"id"`
	StudentID    uuid.UUID          `json:"student_id"`
	StudentName  string             `json:"student_name"`
	StudentEmail string             `json:"student_email"`
	Status       string             `json:"status"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) ListEnrollmentsByCourse(ctx context.Context, db DBTX, courseID uuid.UUID) ([]ListEnrollmentsByCourseRow, error) {
	rows, err := db.Query(ctx, listEnrollmentsByCourse, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListEnrollmentsByCourseRow{}
	for rows.Next() {
		var i ListEnrollmentsByCourseRow
		if err := rows.Scan(
			&i.ID,
			&i.StudentID,
			&i.StudentName,
			&i.StudentEmail,
			&i.Status,
			&i.CreatedAt,
			&i.UpdatedAt,
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
