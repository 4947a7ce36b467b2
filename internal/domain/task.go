package domain

import "time"

// Task is a single entry in the per-user task log provisioned at signup.
type Task struct {
	ID        int64
	UserID    string
	Title     string
	IsDone    bool
	CreatedAt time.Time
}
