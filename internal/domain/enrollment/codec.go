package enrollment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMalformedCommand = errors.New("malformed enrollment command")
	ErrUnknownVerb      = errors.New("unknown enrollment command verb")
	ErrInvalidStatus    = errors.New("invalid enrollment decision status")
)

const fieldSep = ":"

// Encode renders a command in its wire form, e.g. CREATE:<studentId>:<courseId>.
func Encode(cmd Command) string {
	switch c := cmd.(type) {
	case CreateCommand:
		return join(VerbCreate, c.StudentID.String(), c.CourseID.String())
	case UpdateCommand:
		return join(VerbUpdate, c.InstructorID.String(), c.EnrollmentID.String(), c.Status.String())
	case DeleteCommand:
		return join(VerbDelete, c.StudentID.String(), c.EnrollmentID.String())
	case *CreateCommand:
		return Encode(*c)
	case *UpdateCommand:
		return Encode(*c)
	case *DeleteCommand:
		return Encode(*c)
	default:
		panic(fmt.Sprintf("enrollment: unsupported command type %T", cmd))
	}
}

func join(verb Verb, fields ...string) string {
	return string(verb) + fieldSep + strings.Join(fields, fieldSep)
}

// Decode parses a wire payload. Every error is a protocol error and the
// payload must be dropped without touching the store.
func Decode(raw string) (Command, error) {
	parts := strings.Split(raw, fieldSep)
	verb := Verb(parts[0])

	switch verb {
	case VerbCreate:
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %s expects 2 fields, got %d", ErrMalformedCommand, verb, len(parts)-1)
		}
		ids, err := parseIDs(parts[1:])
		if err != nil {
			return nil, err
		}
		return CreateCommand{StudentID: ids[0], CourseID: ids[1]}, nil

	case VerbUpdate:
		if len(parts) != 4 {
			return nil, fmt.Errorf("%w: %s expects 3 fields, got %d", ErrMalformedCommand, verb, len(parts)-1)
		}
		ids, err := parseIDs(parts[1:3])
		if err != nil {
			return nil, err
		}
		status, err := NewDecisionStatus(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, parts[3])
		}
		return UpdateCommand{InstructorID: ids[0], EnrollmentID: ids[1], Status: status}, nil

	case VerbDelete:
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: %s expects 2 fields, got %d", ErrMalformedCommand, verb, len(parts)-1)
		}
		ids, err := parseIDs(parts[1:])
		if err != nil {
			return nil, err
		}
		return DeleteCommand{StudentID: ids[0], EnrollmentID: ids[1]}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVerb, parts[0])
	}
}

// Only the canonical 36-char form is accepted; uuid.Parse alone also takes
// urn and braced variants.
func parseIDs(fields []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(fields))
	for i, f := range fields {
		if len(f) != 36 {
			return nil, fmt.Errorf("%w: invalid id %q", ErrMalformedCommand, f)
		}
		id, err := uuid.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid id %q", ErrMalformedCommand, f)
		}
		ids[i] = id
	}
	return ids, nil
}

// IsProtocolError reports whether err came from decoding a payload.
func IsProtocolError(err error) bool {
	return errors.Is(err, ErrMalformedCommand) ||
		errors.Is(err, ErrUnknownVerb) ||
		errors.Is(err, ErrInvalidStatus)
}
