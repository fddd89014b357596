package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleVisitor UserRole = "visitor" // anonymous identity, read access only
	UserRoleAdmin   UserRole = "admin"
)

// User is a session identity: either an ephemeral anonymous visitor created on
// first load, or an administrator with email/password credentials. Admin
// rights come from the Role column, never from "has an email".
type User struct {
	Id           uuid.UUID
	Email        *string
	PasswordHash *string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
