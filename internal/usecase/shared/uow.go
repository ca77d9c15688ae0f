package shared

import (
	"context"

	"course-enrollment/internal/domain/course"
	"course-enrollment/internal/domain/enrollment"
	"course-enrollment/internal/domain/notification"
	"course-enrollment/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations; rolled back on any error
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Enrollments() EnrollmentRepository
	Courses() CourseRepository
	Notifications() NotificationRepository
	DB() sqlc.DBTX
}

// EnrollmentRepository is the write side used by the command processor.
// Lookups that find nothing return an infra NOT_FOUND error.
type EnrollmentRepository interface {
	HasActive(ctx context.Context, tx sqlc.DBTX, studentID, courseID uuid.UUID) (bool, error)
	FindPendingForUpdate(ctx context.Context, tx sqlc.DBTX, enrollmentID uuid.UUID) (*enrollment.Snapshot, error)
	Create(ctx context.Context, tx sqlc.DBTX, e *enrollment.Enrollment) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, e *enrollment.Enrollment) error
	DeleteOwned(ctx context.Context, tx sqlc.DBTX, studentID, enrollmentID uuid.UUID) (bool, error)
}

type CourseRepository interface {
	// LockSnapshot returns the course with its ACCEPTED count, holding a row lock.
	LockSnapshot(ctx context.Context, tx sqlc.DBTX, courseID uuid.UUID) (*course.Snapshot, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) error
}
