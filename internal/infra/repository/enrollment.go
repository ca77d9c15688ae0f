package repository

import (
	"context"

	"course-enrollment/internal/domain/enrollment"
	"course-enrollment/internal/infra"
	"course-enrollment/internal/infra/sqlc"
	"course-enrollment/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type EnrollmentWriteQueries interface {
	HasActiveEnrollment(ctx context.Context, db sqlc.DBTX, arg sqlc.HasActiveEnrollmentParams) (bool, error)
	FindPendingEnrollmentForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Enrollment, error)
	CreateEnrollment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEnrollmentParams) error
	UpdatePendingEnrollmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePendingEnrollmentStatusParams) (int64, error)
	DeleteStudentEnrollment(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteStudentEnrollmentParams) (int64, error)
}

type EnrollmentRepository struct {
	queries EnrollmentWriteQueries
}

func NewEnrollmentRepository(queries EnrollmentWriteQueries) *EnrollmentRepository {
	return &EnrollmentRepository{queries: queries}
}

func (r *EnrollmentRepository) HasActive(ctx context.Context, tx sqlc.DBTX, studentID, courseID uuid.UUID) (bool, error) {
	exists, err := r.queries.HasActiveEnrollment(ctx, tx, sqlc.HasActiveEnrollmentParams{
		StudentID: studentID,
		CourseID:  courseID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check active enrollment", err)
	}
	return exists, nil
}

func (r *EnrollmentRepository) FindPendingForUpdate(ctx context.Context, tx sqlc.DBTX, enrollmentID uuid.UUID) (*enrollment.Snapshot, error) {
	row, err := r.queries.FindPendingEnrollmentForUpdate(ctx, tx, enrollmentID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pending enrollment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pending enrollment", err)
	}
	return &enrollment.Snapshot{
		ID:        row.ID,
		StudentID: row.StudentID,
		CourseID:  row.CourseID,
		Status:    enrollment.Status(row.Status),
	}, nil
}

func (r *EnrollmentRepository) Create(ctx context.Context, tx sqlc.DBTX, e *enrollment.Enrollment) error {
	err := r.queries.CreateEnrollment(ctx, tx, sqlc.CreateEnrollmentParams{
		ID:        e.ID(),
		StudentID: e.StudentID(),
		CourseID:  e.CourseID(),
		Status:    e.Status().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create enrollment", err)
	}
	return nil
}

// UpdateStatus persists a decided enrollment. Only PENDING rows are touched.
func (r *EnrollmentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, e *enrollment.Enrollment) error {
	n, err := r.queries.UpdatePendingEnrollmentStatus(ctx, tx, sqlc.UpdatePendingEnrollmentStatusParams{
		ID:     e.ID(),
		Status: e.Status().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update enrollment status", err)
	}
	if n == 0 {
		return infra.NotFound("pending enrollment vanished during update")
	}
	return nil
}

func (r *EnrollmentRepository) DeleteOwned(ctx context.Context, tx sqlc.DBTX, studentID, enrollmentID uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteStudentEnrollment(ctx, tx, sqlc.DeleteStudentEnrollmentParams{
		ID:        enrollmentID,
		StudentID: studentID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete enrollment", err)
	}
	return n > 0, nil
}
