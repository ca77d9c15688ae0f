package enrollment

import (
	"time"

	"course-enrollment/internal/domain/course"

	"github.com/google/uuid"
)

type Reason string

const (
	ReasonNone                 Reason = ""
	ReasonAlreadyEnrolled      Reason = "already_enrolled"
	ReasonCourseUnavailable    Reason = "course_unavailable"
	ReasonCourseFull           Reason = "course_full"
	ReasonEnrollmentNotPending Reason = "enrollment_not_pending"
	ReasonNotCourseOwner       Reason = "not_course_owner"
	ReasonCourseNotAccepted    Reason = "course_not_accepted"
	ReasonCourseStarted        Reason = "course_started"
	ReasonEnrollmentNotFound   Reason = "enrollment_not_found"
)

// Decision is the outcome of checking a command against a snapshot.
// Exactly one notification goes to Recipient with Message as its body.
type Decision struct {
	Admitted  bool
	Reason    Reason
	Recipient uuid.UUID
	Message   string
}

func admit(recipient uuid.UUID, msg string) Decision {
	return Decision{Admitted: true, Recipient: recipient, Message: msg}
}

func reject(reason Reason, recipient uuid.UUID, msg string) Decision {
	return Decision{Reason: reason, Recipient: recipient, Message: msg}
}

// CheckCreate decides a CREATE. alreadyActive is whether the student holds a
// PENDING or ACCEPTED enrollment for the course; c is nil when the course
// does not exist.
func CheckCreate(now time.Time, cmd CreateCommand, alreadyActive bool, c *course.Snapshot) Decision {
	if alreadyActive {
		return reject(ReasonAlreadyEnrolled, cmd.StudentID, MessageAlreadyEnrolled(cmd.CourseID))
	}
	if c == nil || !c.OpenForRequests(now) {
		return reject(ReasonCourseUnavailable, cmd.StudentID, MessageCourseUnavailable(cmd.CourseID))
	}
	if !c.HasSeat() {
		return reject(ReasonCourseFull, cmd.StudentID, MessageCourseFull(c.Name))
	}
	return admit(cmd.StudentID, MessageSubmitted(c.Name))
}

// CheckUpdate decides an UPDATE. e is the PENDING enrollment with the
// command's id (nil if none), c its course (nil if missing).
// Rejections are addressed to the instructor, acceptance notices to the student.
func CheckUpdate(now time.Time, cmd UpdateCommand, e *Snapshot, c *course.Snapshot) Decision {
	notPending := MessageNoPendingEnrollment(cmd.EnrollmentID)

	if e == nil || e.Status != StatusPending {
		return reject(ReasonEnrollmentNotPending, cmd.InstructorID, notPending)
	}
	if c == nil || !c.OwnedBy(cmd.InstructorID) {
		return reject(ReasonNotCourseOwner, cmd.InstructorID, notPending)
	}
	if !c.IsAccepted() {
		return reject(ReasonCourseNotAccepted, cmd.InstructorID, notPending)
	}
	if cmd.Status == StatusAccepted {
		if c.HasStarted(now) {
			return reject(ReasonCourseStarted, cmd.InstructorID, notPending)
		}
		if !c.HasSeat() {
			return reject(ReasonCourseFull, cmd.InstructorID, notPending)
		}
	}
	return admit(e.StudentID, MessageDecided(c.Name, cmd.Status))
}

// CheckDelete decides a DELETE after the scoped delete ran.
func CheckDelete(cmd DeleteCommand, deleted bool) Decision {
	if !deleted {
		return reject(ReasonEnrollmentNotFound, cmd.StudentID, MessageEnrollmentNotFound(cmd.EnrollmentID))
	}
	return admit(cmd.StudentID, MessageCancelled(cmd.EnrollmentID))
}
