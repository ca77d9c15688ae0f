package response

import (
	"time"

	"course-enrollment/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// AcceptedResponse acknowledges a queued command. The outcome arrives later
// as a notification.
type AcceptedResponse struct {
	Status string `json:"status"`
}

func Queued() AcceptedResponse {
	return AcceptedResponse{Status: "queued"}
}

type StudentEnrollmentResponse struct {
	ID         uuid.UUID `json:"id"`
	CourseID   uuid.UUID `json:"course_id"`
	CourseName string    `json:"course_name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CourseEnrollmentResponse struct {
	ID           uuid.UUID `json:"id"`
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromStudentEnrollments(views []*queries.StudentEnrollmentView) ([]StudentEnrollmentResponse, error) {
	return copyEach[StudentEnrollmentResponse](views)
}

func FromCourseEnrollments(views []*queries.CourseEnrollmentView) ([]CourseEnrollmentResponse, error) {
	return copyEach[CourseEnrollmentResponse](views)
}

func copyEach[R any, V any](views []*V) ([]R, error) {
	res := make([]R, len(views))
	for i, v := range views {
		if err := copier.Copy(&res[i], v); err != nil {
			return nil, err
		}
	}
	return res, nil
}
