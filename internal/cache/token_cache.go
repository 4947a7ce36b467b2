package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/vijitdua/TaskUp/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyToken = "auth:token:"

// cachedUser is the subset of a user stored against a token. The password
// hash never enters the cache.
type cachedUser struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// TokenCache caches positive token lookups in Redis. Tokens are immutable
// and users are never deleted, so a cached hit cannot go stale; the TTL just
// bounds memory.
type TokenCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTokenCache returns a new TokenCache.
func NewTokenCache(rdb *redis.Client, ttl time.Duration) *TokenCache {
	return &TokenCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached user for token, or ok=false on miss.
func (c *TokenCache) Get(ctx context.Context, token string) (dom.User, bool, error) {
	b, err := c.rdb.Get(ctx, keyToken+token).Bytes()
	if err == redis.Nil {
		return dom.User{}, false, nil
	}
	if err != nil {
		return dom.User{}, false, err
	}
	var cu cachedUser
	if err := json.Unmarshal(b, &cu); err != nil {
		return dom.User{}, false, err
	}
	return dom.User{
		ID:        cu.ID,
		Username:  cu.Username,
		FirstName: cu.FirstName,
		LastName:  cu.LastName,
		Token:     token,
	}, true, nil
}

// Set stores the user against its token.
func (c *TokenCache) Set(ctx context.Context, token string, u dom.User) error {
	b, err := json.Marshal(cachedUser{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyToken+token, b, c.ttl).Err()
}
