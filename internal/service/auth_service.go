package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/vijitdua/TaskUp/internal/auth"
	"github.com/vijitdua/TaskUp/internal/cache"
	dom "github.com/vijitdua/TaskUp/internal/domain"
	"github.com/vijitdua/TaskUp/internal/repo"
	"github.com/vijitdua/TaskUp/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrIncompleteData     = errors.New("data incomplete")
	ErrUsernameTaken      = errors.New("username taken")
	ErrInvalidCredentials = errors.New("incorrect data")
)

// Provisioner initializes per-user auxiliary storage (the task log) after a
// successful signup. Failure is logged and never surfaced to the caller.
type Provisioner interface {
	ProvisionUserStorage(ctx context.Context, token string) error
}

// AuthService handles signup, login and bearer-token validation. It holds no
// state of its own; all consistency is enforced in the user store.
type AuthService struct {
	repo        repo.UserRepo
	hasher      auth.PasswordHasher
	tokens      auth.TokenIssuer
	provisioner Provisioner
	cache       *cache.TokenCache
}

// NewAuthService returns a new AuthService. provisioner and cache may be nil
// to disable provisioning and token caching.
func NewAuthService(r repo.UserRepo, h auth.PasswordHasher, t auth.TokenIssuer, p Provisioner, c *cache.TokenCache) *AuthService {
	return &AuthService{repo: r, hasher: h, tokens: t, provisioner: p, cache: c}
}

// SignUp registers a new account and provisions its task log. The user row
// is durable before SignUp returns. The unique constraint on username is the
// arbiter when two signups race past the existence check.
func (s *AuthService) SignUp(ctx context.Context, firstName, lastName, username, password string) (dom.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	username = strings.TrimSpace(username)
	if firstName == "" || lastName == "" || username == "" || password == "" {
		return dom.User{}, ErrIncompleteData
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return dom.User{}, ErrUsernameTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return dom.User{}, err
	}
	token, err := s.tokens.Issue()
	if err != nil {
		return dom.User{}, err
	}

	u, err := s.repo.Create(ctx, dom.User{
		ID:           uuid.NewString(),
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
		Token:        token,
	})
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrUsernameTaken
		}
		return dom.User{}, err
	}

	if s.provisioner != nil {
		if err := s.provisioner.ProvisionUserStorage(ctx, u.Token); err != nil {
			log.Printf("provisioning storage for user %q failed: %v", u.Username, err)
		}
	}

	log.Printf("a new user signed up: %s", u.Username)
	return u, nil
}

// Login verifies credentials and returns the stored user, including the
// bearer token assigned at signup. Unknown usernames and wrong passwords
// produce the same error so usernames cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrIncompleteData
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("login failed for %q: unknown username", username)
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		log.Printf("login failed for %q: wrong password", username)
		return dom.User{}, ErrInvalidCredentials
	}
	log.Printf("a user logged in: %s", u.Username)
	return u, nil
}

// ValidateToken reports whether a user with exactly this token exists. An
// unknown token is a normal false, not an error.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (bool, error) {
	_, ok, err := s.UserByToken(ctx, token)
	return ok, err
}

// UserByToken resolves a bearer token to its user. Positive lookups are
// cached; tokens never rotate, so cached hits cannot go stale.
func (s *AuthService) UserByToken(ctx context.Context, token string) (dom.User, bool, error) {
	if token == "" {
		return dom.User{}, false, nil
	}
	if s.cache != nil {
		if u, ok, err := s.cache.Get(ctx, token); err == nil && ok {
			return u, true, nil
		}
	}
	u, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, false, nil
		}
		return dom.User{}, false, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, token, u)
	}
	return u, true, nil
}
