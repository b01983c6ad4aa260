// Package cache wraps github.com/redis/go-redis/v9 with the key-value
// and distributed-locking primitives the recommendation core needs:
// binary-safe GET/SET, short-lived result caches, and the
// compare-and-delete locks spec §5 requires for phase detection and
// list generation.
package cache

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store wraps a redis.Client. All methods are thin, context-aware
// wrappers so callers never touch go-redis directly.
type Store struct {
	rdb *redis.Client
}

// New builds a Store from the given connection settings.
func New(addr, password string, db int) *Store {
	return &Store{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Ping verifies connectivity, used by health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// SetBytes stores raw bytes under key with a TTL, binary-safe per spec
// §9 — used for preference vectors, which are not valid UTF-8.
func (s *Store) SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

// GetBytes retrieves raw bytes, returning (nil, false, nil) on a cache
// miss rather than an error, since a miss is a normal, expected outcome
// for every cache call site in this core.
func (s *Store) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// SetString stores a UTF-8 string under key with a TTL, used for JSON
// result caches (intent, search results, profile).
func (s *Store) SetString(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

// GetString mirrors GetBytes for string payloads.
func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Delete removes one or more keys, used for user-initiated cache
// invalidation (profile/phase refresh, per spec §5).
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

// Incr atomically increments a counter key, used for rate/usage
// tracking.
func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	return s.rdb.Incr(ctx, key).Result()
}

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`)

// Lock is a held distributed lock: a token this holder alone can use to
// release the key, so a crashed or late holder can never release
// someone else's lease.
type Lock struct {
	store *Store
	key   string
	token string
}

// TryAcquireLock attempts a non-blocking `SET key token NX EX ttl`, the
// pattern spec §5 names for `phase_detect_lock:<user>` (600s) and
// `ai_list_lock:<list_id>` (3600s). Returns (nil, false, nil) if the
// lock is already held by someone else.
func (s *Store) TryAcquireLock(ctx context.Context, key string, ttl time.Duration) (*Lock, bool, error) {
	token, err := randomToken()
	if err != nil {
		return nil, false, err
	}
	ok, err := s.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	return &Lock{store: s, key: key, token: token}, true, nil
}

// Release deletes the lock key only if it still holds this Lock's
// token, via a small Lua script so the check-then-delete is atomic.
func (l *Lock) Release(ctx context.Context) error {
	return releaseScript.Run(ctx, l.store.rdb, []string{l.key}, l.token).Err()
}

func randomToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
