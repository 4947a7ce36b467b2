package domain

import "time"

// User is the domain entity for a registered account. ID is an opaque UUID
// assigned at signup; login always looks up by username. Token is the
// standing bearer credential, assigned exactly once at creation.
type User struct {
	ID           string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string
	Token        string
	CreatedAt    time.Time
}
