package enrollment

import "github.com/google/uuid"

type Verb string

const (
	VerbCreate Verb = "CREATE"
	VerbUpdate Verb = "UPDATE"
	VerbDelete Verb = "DELETE"
)

// Command is one enrollment mutation travelling through the queue.
type Command interface {
	Verb() Verb
}

type CreateCommand struct {
	StudentID uuid.UUID
	CourseID  uuid.UUID
}

func (CreateCommand) Verb() Verb { return VerbCreate }

type UpdateCommand struct {
	InstructorID uuid.UUID
	EnrollmentID uuid.UUID
	Status       Status
}

func (UpdateCommand) Verb() Verb { return VerbUpdate }

type DeleteCommand struct {
	StudentID    uuid.UUID
	EnrollmentID uuid.UUID
}

func (DeleteCommand) Verb() Verb { return VerbDelete }
