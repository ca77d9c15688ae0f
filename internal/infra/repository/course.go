package repository

import (
	"context"

	"course-enrollment/internal/domain/course"
	"course-enrollment/internal/infra"
	"course-enrollment/internal/infra/sqlc"
	"course-enrollment/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CourseWriteQueries interface {
	LockCourseSnapshot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LockCourseSnapshotRow, error)
}

type CourseRepository struct {
	queries CourseWriteQueries
}

func NewCourseRepository(queries CourseWriteQueries) *CourseRepository {
	return &CourseRepository{queries: queries}
}

func (r *CourseRepository) LockSnapshot(ctx context.Context, tx sqlc.DBTX, courseID uuid.UUID) (*course.Snapshot, error) {
	row, err := r.queries.LockCourseSnapshot(ctx, tx, courseID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load course snapshot", err)
	}
	return &course.Snapshot{
		ID:            row.ID,
		InstructorID:  row.InstructorID,
		Name:          row.Name,
		Capacity:      int(row.Capacity),
		StartDate:     pgconv.TimeFromPgtype(row.StartDate),
		Status:        course.Status(row.Status),
		AcceptedCount: int(row.AcceptedCount),
	}, nil
}
