package readstore

import (
	"context"

	"github.com/google/uuid"

	"course-enrollment/internal/infra"
	"course-enrollment/internal/infra/sqlc"
	"course-enrollment/internal/pkg/pgconv"
	"course-enrollment/internal/usecase/queries"
)

type CourseReadQueries interface {
	FindCourseByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Course, error)
}

type CourseReadStore struct {
	queries CourseReadQueries
	db      sqlc.DBTX
}

func NewCourseReadStore(queries CourseReadQueries, db sqlc.DBTX) *CourseReadStore {
	return &CourseReadStore{queries: queries, db: db}
}

func (s *CourseReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CourseView, error) {
	row, err := s.queries.FindCourseByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find course", err)
	}
	return &queries.CourseView{
		ID:           row.ID,
		InstructorID: row.InstructorID,
		Name:         row.Name,
		Capacity:     row.Capacity,
		StartDate:    row.StartDate.Time,
		Status:       row.Status,
	}, nil
}
