package domain

import (
	"strings"
	"time"
)

// Role enumerates supported account roles.
type Role string

const (
	RoleNGO   Role = "ngo"
	RoleDonor Role = "donor"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	return r == RoleNGO || r == RoleDonor
}

// Principal is the resolved identity attached to a request by the auth
// layer. Core operations receive it explicitly; it is never read from
// package-level state.
type Principal struct {
	ID   string
	Role Role
}

// User represents a registered account. PasswordHash is a bcrypt hash and
// never leaves the server; RefreshToken holds the currently valid refresh
// token reference, empty after logout.
type User struct {
	ID           string
	Username     string
	Email        string
	FullName     string
	PasswordHash string
	Role         Role
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate enforces schema-level invariants before persistence.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" ||
		strings.TrimSpace(u.Email) == "" ||
		strings.TrimSpace(u.FullName) == "" ||
		strings.TrimSpace(u.PasswordHash) == "" {
		return NewValidation("all fields (username, email, fullName, password) are required")
	}
	if !u.Role.Valid() {
		return NewValidation("invalid role, must be either 'ngo' or 'donor'")
	}
	return nil
}

// UserRef is the denormalized display info attached to donations and
// campaigns (creator, donor).
type UserRef struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
}
