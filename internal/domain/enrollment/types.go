package enrollment

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrIllegalTransition = errors.New("illegal enrollment status transition")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

// IsActive reports whether the status blocks another request for the same course.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusAccepted
}

// IsDecision reports whether the status is a valid instructor decision.
func (s Status) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}

func NewDecisionStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsDecision() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Enrollment struct {
	id        uuid.UUID
	studentID uuid.UUID
	courseID  uuid.UUID
	status    Status
}

// NewEnrollment creates a fresh PENDING request.
func NewEnrollment(studentID, courseID uuid.UUID) *Enrollment {
	return &Enrollment{
		id:        uuid.New(),
		studentID: studentID,
		courseID:  courseID,
		status:    StatusPending,
	}
}

func Reconstruct(id, studentID, courseID uuid.UUID, status Status) *Enrollment {
	return &Enrollment{
		id:        id,
		studentID: studentID,
		courseID:  courseID,
		status:    status,
	}
}

func (e *Enrollment) ID() uuid.UUID        { return e.id }
func (e *Enrollment) StudentID() uuid.UUID { return e.studentID }
func (e *Enrollment) CourseID() uuid.UUID  { return e.courseID }
func (e *Enrollment) Status() Status       { return e.status }

// Transition moves a PENDING enrollment to a decision status.
func (e *Enrollment) Transition(to Status) error {
	if e.status != StatusPending || !to.IsDecision() {
		return ErrIllegalTransition
	}
	e.status = to
	return nil
}

// Snapshot is the minimal enrollment view the policy needs.
type Snapshot struct {
	ID        uuid.UUID
	StudentID uuid.UUID
	CourseID  uuid.UUID
	Status    Status
}
