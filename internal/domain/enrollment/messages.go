package enrollment

import (
	"fmt"

	"github.com/google/uuid"
)

func MessageSubmitted(courseName string) string {
	return fmt.Sprintf("Submitted an enrollment request for: '%s', we will get back to you once it is accepted.", courseName)
}

func MessageAlreadyEnrolled(courseID uuid.UUID) string {
	return fmt.Sprintf("Can't enroll in course with id: %s since you already had an enrollment request in it", courseID)
}

func MessageCourseUnavailable(courseID uuid.UUID) string {
	return fmt.Sprintf("Can't enroll in course with id: %s since it was not found in future non-full courses.", courseID)
}

func MessageCourseFull(courseName string) string {
	return fmt.Sprintf("Can't enroll in '%s' since it is full", courseName)
}

func MessageNoPendingEnrollment(enrollmentID uuid.UUID) string {
	return fmt.Sprintf("Could not find a pending enrollment with id: %s that was sent to one of your non-full courses", enrollmentID)
}

func MessageDecided(courseName string, status Status) string {
	verdict := "rejected."
	if status == StatusAccepted {
		verdict = "accepted."
	}
	return fmt.Sprintf("Your enrollment for %s has been %s", courseName, verdict)
}

func MessageEnrollmentNotFound(enrollmentID uuid.UUID) string {
	return fmt.Sprintf("Could not find an enrollment with id: %s in your enrollments", enrollmentID)
}

func MessageCancelled(enrollmentID uuid.UUID) string {
	return fmt.Sprintf("Your enrollment with id: %s has been cancelled.", enrollmentID)
}
