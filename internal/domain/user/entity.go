package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the caller identity behind the gateway. Students request
// enrollments, instructors decide them.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	name         string
	isActive     bool
	createdAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role, name string) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		name:         name,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Name() string         { return u.name }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) Deactivate() {
	u.isActive = false
}
