package users

import "time"

// User is a backend account. PasswordHash is a bcrypt hash; unlike the
// client's local store, the backend hashes properly.
type User struct {
	ID           string
	Name         string
	Email        string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}
