package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to the scheduling board. Accounts are
// separate from Workers: a worker is a schedulable resource, a user is whoever
// operates the board (planners, supervisors, the workers themselves).
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Role         string    `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type CreateUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserRole string

const (
	RoleMember  UserRole = "member"
	RolePlanner UserRole = "planner"
	RoleAdmin   UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleMember, RolePlanner, RoleAdmin:
		return true
	default:
		return false
	}
}

func (u *User) HasRole(requiredRole string) bool {
	switch requiredRole {
	case "admin":
		return u.Role == "admin"
	case "planner":
		return u.Role == "planner" || u.Role == "admin"
	case "member":
		return u.Role == "member" || u.Role == "planner" || u.Role == "admin"
	default:
		return false
	}
}
