// Package auth implements the local account store: registered users with
// demo-grade password digests, a single persisted session with a selectable
// lifetime, and per-account profile-completion flags.
//
// Everything lives in key-value stores behind the storage.Store interface,
// so the package works the same over SQLite and over the in-memory fake.
package auth

import (
	"strings"
	"time"
)

// Role distinguishes the two account kinds on the platform.
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleRecruiter
}

// User is the public shape of an account: everything except the password
// digest. Email is stored normalized and, together with Role, acts as the
// natural key.
type User struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// storedUser is the persisted shape. The digest never leaves this package.
type storedUser struct {
	User
	PasswordHash string `json:"passwordHash"`
}

func (u storedUser) public() User {
	return u.User
}

// Session is the currently authenticated user plus its creation time.
// At most one session exists at a time.
type Session struct {
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credentials is an email/password pair as entered by the user.
type Credentials struct {
	Email    string
	Password string
}

// NormalizeEmail lowercases and trims an email so it can act as a key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
