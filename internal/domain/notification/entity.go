package notification

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Title carried by every notification the enrollment engine produces.
const Title = "Course enrollment status"

var ErrEmptyBody = errors.New("notification body must not be empty")

type Notification struct {
	id     uuid.UUID
	userID uuid.UUID
	title  string
	body   string
	isRead bool
}

func NewEnrollmentNotification(userID uuid.UUID, body string) (*Notification, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}
	return &Notification{
		id:     uuid.New(),
		userID: userID,
		title:  Title,
		body:   body,
	}, nil
}

func (n *Notification) ID() uuid.UUID     { return n.id }
func (n *Notification) UserID() uuid.UUID { return n.userID }
func (n *Notification) Title() string     { return n.title }
func (n *Notification) Body() string      { return n.body }
func (n *Notification) IsRead() bool      { return n.isRead }
