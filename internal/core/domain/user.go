package domain

import (
	"errors"
	"time"
)

// Role is the closed set of authorization roles. The wire and storage
// representation stays a plain string; conversion happens at the boundary
// via ParseRole.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var ErrInvalidRole = errors.New("invalid role")

// ParseRole converts a stored or transmitted role string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string { return string(r) }

// User models a registered account. ID is immutable once assigned and is
// the sole trust anchor for a token's subject claim.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Auth rejection taxonomy. All four collapse to the same unauthorized
// response at the API edge; they stay distinct internally for diagnostics.
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidSubject = errors.New("invalid token subject")
	ErrLookupFailed   = errors.New("user lookup failed")
	ErrForbidden      = errors.New("access forbidden")
)
