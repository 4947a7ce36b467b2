package repo

import (
	"context"

	dom "github.com/vijitdua/TaskUp/internal/domain"
)

// UserRepo provides user persistence. Absence is reported as pgx.ErrNoRows;
// a duplicate username surfaces as a unique-violation PgError from Create.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	GetByToken(ctx context.Context, token string) (dom.User, error)
	Create(ctx context.Context, user dom.User) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db DB
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db DB) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// GetByUsername returns the user by username. Lookup is case-sensitive.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, first_name, last_name, password_hash, token, created_at
		 FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Token, &u.CreatedAt)
	return u, err
}

// GetByToken returns the user holding exactly the given bearer token.
func (r *PGUserRepo) GetByToken(ctx context.Context, token string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, first_name, last_name, password_hash, token, created_at
		 FROM users WHERE token = $1`,
		token,
	).Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Token, &u.CreatedAt)
	return u, err
}

// Create inserts a new user and returns it. The UNIQUE constraint on
// username makes concurrent inserts of the same name resolve to one winner.
func (r *PGUserRepo) Create(ctx context.Context, user dom.User) (dom.User, error) {
	query := `
		INSERT INTO users (id, username, first_name, last_name, password_hash, token)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, username, first_name, last_name, password_hash, token, created_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.FirstName, user.LastName, user.PasswordHash, user.Token,
	).Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.PasswordHash, &u.Token, &u.CreatedAt)
	return u, err
}
