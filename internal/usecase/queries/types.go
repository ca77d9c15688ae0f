package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type CourseView struct {
	ID           uuid.UUID `json:"id"`
	InstructorID uuid.UUID `json:"instructor_id"`
	Name         string    `json:"name"`
	Capacity     int32     `json:"capacity"`
	StartDate    time.Time `json:"start_date"`
	Status       string    `json:"status"`
}

// StudentEnrollmentView is one row of a student's own enrollment list
type StudentEnrollmentView struct {
	ID         uuid.UUID `json:"id"`
	CourseID   uuid.UUID `json:"course_id"`
	CourseName string    `json:"course_name"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CourseEnrollmentView is one row of the instructor's per-course list
type CourseEnrollmentView struct {
	ID           uuid.UUID `json:"id"`
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// UsageView counts users by role, courses by status and enrollments by status.
// Statuses with no rows are zero.
type UsageView struct {
	Students            int64 `json:"students"`
	Instructors         int64 `json:"instructors"`
	Admins              int64 `json:"admins"`
	PendingCourses      int64 `json:"pending_courses"`
	AcceptedCourses     int64 `json:"accepted_courses"`
	PendingEnrollments  int64 `json:"pending_enrollments"`
	AcceptedEnrollments int64 `json:"accepted_enrollments"`
	RejectedEnrollments int64 `json:"rejected_enrollments"`
}
