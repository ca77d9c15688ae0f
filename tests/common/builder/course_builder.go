//go:build unit || e2e

package builder

import (
	"time"

	"course-enrollment/internal/domain/course"
	"course-enrollment/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourseBuilder struct {
	ID           uuid.UUID
	InstructorID uuid.UUID
	Name         string
	Capacity     int
	StartDate    time.Time
	Status       course.Status
}

// NewCourseBuilder defaults to an accepted course starting a month from now
// with two seats.
func NewCourseBuilder() *CourseBuilder {
	return &CourseBuilder{
		ID:           uuid.New(),
		InstructorID: uuid.New(),
		Name:         "Distributed Systems",
		Capacity:     2,
		StartDate:    time.Now().Add(30 * 24 * time.Hour).UTC().Truncate(time.Second),
		Status:       course.StatusAccepted,
	}
}

func (b *CourseBuilder) WithInstructor(id uuid.UUID) *CourseBuilder {
	b.InstructorID = id
	return b
}

func (b *CourseBuilder) WithName(name string) *CourseBuilder {
	b.Name = name
	return b
}

func (b *CourseBuilder) BuildView() *queries.CourseView {
	return &queries.CourseView{
		ID:           b.ID,
		InstructorID: b.InstructorID,
		Name:         b.Name,
		Capacity:     int32(b.Capacity),
		StartDate:    b.StartDate,
		Status:       string(b.Status),
	}
}
