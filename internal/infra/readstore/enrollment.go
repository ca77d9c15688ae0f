package readstore

import (
	"context"

	"github.com/google/uuid"

	"course-enrollment/internal/infra"
	"course-enrollment/internal/infra/sqlc"
	"course-enrollment/internal/usecase/queries"
)

type EnrollmentReadQueries interface {
	ListEnrollmentsByStudent(ctx context.Context, db sqlc.DBTX, studentID uuid.UUID) ([]sqlc.ListEnrollmentsByStudentRow, error)
	ListEnrollmentsByCourse(ctx context.Context, db sqlc.DBTX, courseID uuid.UUID) ([]sqlc.ListEnrollmentsByCourseRow, error)
}

type EnrollmentReadStore struct {
	queries EnrollmentReadQueries
	db      sqlc.DBTX
}

func NewEnrollmentReadStore(queries EnrollmentReadQueries, db sqlc.DBTX) *EnrollmentReadStore {
	return &EnrollmentReadStore{queries: queries, db: db}
}

func (s *EnrollmentReadStore) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*queries.StudentEnrollmentView, error) {
	rows, err := s.queries.ListEnrollmentsByStudent(ctx, s.db, studentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list student enrollments", err)
	}

	result := make([]*queries.StudentEnrollmentView, len(rows))
	for i, row := range rows {
		result[i] = &queries.StudentEnrollmentView{
			ID:         row.ID,
			CourseID:   row.CourseID,
			CourseName: row.CourseName,
			Status:     row.Status,
			CreatedAt:  row.CreatedAt.Time,
			UpdatedAt:  row.UpdatedAt.Time,
		}
	}
	return result, nil
}

func (s *EnrollmentReadStore) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*queries.CourseEnrollmentView, error) {
	rows, err := s.queries.ListEnrollmentsByCourse(ctx, s.db, courseID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list course enrollments", err)
	}

	result := make([]*queries.CourseEnrollmentView, len(rows))
	for i, row := range rows {
		result[i] = &queries.CourseEnrollmentView{
			ID:           row.ID,
			StudentID:    row.StudentID,
			StudentName:  row.StudentName,
			StudentEmail: row.StudentEmail,
			Status:       row.Status,
			CreatedAt:    row.CreatedAt.Time,
			UpdatedAt:    row.UpdatedAt.Time,
		}
	}
	return result, nil
}
