package queries

import (
	"context"

	"course-enrollment/internal/infra"
	"course-enrollment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrCourseNotFound also covers courses owned by another instructor so the
// gateway does not reveal which ids exist.
var ErrCourseNotFound = errs.New("course not found")

type EnrollmentQueries interface {
	ListForStudent(ctx context.Context, studentID uuid.UUID) ([]*StudentEnrollmentView, error)
	ListForCourse(ctx context.Context, instructorID, courseID uuid.UUID) ([]*CourseEnrollmentView, error)
}

type EnrollmentReadStore interface {
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*StudentEnrollmentView, error)
	ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*CourseEnrollmentView, error)
}

type CourseReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CourseView, error)
}

type enrollmentQueriesImpl struct {
	enrollments EnrollmentReadStore
	courses     CourseReadStore
}

func NewEnrollmentQueries(enrollments EnrollmentReadStore, courses CourseReadStore) EnrollmentQueries {
	return &enrollmentQueriesImpl{
		enrollments: enrollments,
		courses:     courses,
	}
}

func (q *enrollmentQueriesImpl) ListForStudent(ctx context.Context, studentID uuid.UUID) ([]*StudentEnrollmentView, error) {
	return q.enrollments.ListByStudent(ctx, studentID)
}

func (q *enrollmentQueriesImpl) ListForCourse(ctx context.Context, instructorID, courseID uuid.UUID) ([]*CourseEnrollmentView, error) {
	c, err := q.courses.FindByID(ctx, courseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if c.InstructorID != instructorID {
		return nil, ErrCourseNotFound
	}
	return q.enrollments.ListByCourse(ctx, courseID)
}
