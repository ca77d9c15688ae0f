package course

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
)

func (s Status) String() string {
	return string(s)
}

// Snapshot is a course as seen from inside an enrollment transaction.
// AcceptedCount is the number of ACCEPTED enrollments at read time.
type Snapshot struct {
	ID            uuid.UUID
	InstructorID  uuid.UUID
	Name          string
	Capacity      int
	StartDate     time.Time
	Status        Status
	AcceptedCount int
}

func (s *Snapshot) IsAccepted() bool {
	return s.Status == StatusAccepted
}

// HasStarted reports whether now is at or past the start date.
func (s *Snapshot) HasStarted(now time.Time) bool {
	return !s.StartDate.After(now)
}

// HasSeat applies the exclusive capacity rule.
func (s *Snapshot) HasSeat() bool {
	return s.AcceptedCount < s.Capacity
}

func (s *Snapshot) OwnedBy(instructorID uuid.UUID) bool {
	return s.InstructorID == instructorID
}

// OpenForRequests is true for approved courses that have not started yet.
func (s *Snapshot) OpenForRequests(now time.Time) bool {
	return s.IsAccepted() && !s.HasStarted(now)
}
