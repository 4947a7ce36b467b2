package repo

import (
	"context"

	dom "github.com/vijitdua/TaskUp/internal/domain"
)

// TaskLogRepo provides per-user task log persistence. InitByToken is the
// storage side of signup provisioning.
type TaskLogRepo interface {
	InitByToken(ctx context.Context, token string) error
	List(ctx context.Context, userID string) ([]dom.Task, error)
	Add(ctx context.Context, userID, title string) (dom.Task, error)
}

// PGTaskLogRepo implements TaskLogRepo with Postgres.
type PGTaskLogRepo struct {
	db DB
}

// NewPGTaskLogRepo returns a new PGTaskLogRepo.
func NewPGTaskLogRepo(db DB) *PGTaskLogRepo {
	return &PGTaskLogRepo{db: db}
}

// InitByToken creates the task log for the user holding the given bearer
// token. Re-provisioning an existing log is a no-op rather than an error.
func (r *PGTaskLogRepo) InitByToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO task_logs (user_id)
		 SELECT id FROM users WHERE token = $1
		 ON CONFLICT (user_id) DO NOTHING`,
		token,
	)
	return err
}

// List returns the user's tasks, newest first.
func (r *PGTaskLogRepo) List(ctx context.Context, userID string) ([]dom.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, is_done, created_at
		 FROM tasks WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.IsDone, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Add inserts a task into the user's log and returns it.
func (r *PGTaskLogRepo) Add(ctx context.Context, userID, title string) (dom.Task, error) {
	var t dom.Task
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (user_id, title)
		 VALUES ($1, $2)
		 RETURNING id, user_id, title, is_done, created_at`,
		userID, title,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.IsDone, &t.CreatedAt)
	return t, err
}
