package dto

import "time"

// AddTaskRequest is the JSON body for POST /tasks.
type AddTaskRequest struct {
	Title string `json:"title" binding:"required,min=1,max=120"`
}

// TaskResponse is a single task log entry.
type TaskResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	IsDone    bool      `json:"is_done"`
	CreatedAt time.Time `json:"created_at"`
}

// ListTasksResponse wraps the user's task log.
type ListTasksResponse struct {
	Items []TaskResponse `json:"items"`
}
