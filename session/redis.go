package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable is an exported constant or variable used by the session store.
var ErrRedisUnavailable = errors.New("redis unavailable")

const issueSessionScript = `
if redis.call("EXISTS", KEYS[2]) == 1 then
  return 0
end
redis.call("SET", KEYS[1], ARGV[1])
redis.call("SET", KEYS[2], ARGV[2])
return 1
`

const revokeSessionScript = `
local existed = redis.call("EXISTS", KEYS[1])
if existed == 1 then
  redis.call("DEL", KEYS[1])
  if redis.call("GET", KEYS[2]) == ARGV[1] then
    redis.call("DEL", KEYS[2])
  end
end
return existed
`

var (
	issueSessionLua  = redis.NewScript(issueSessionScript)
	revokeSessionLua = redis.NewScript(revokeSessionScript)
)

// RedisStore is a Redis-backed [Store] for deployments that share sessions
// across replicas. The single-session invariant is enforced inside a Lua script
// so two racing logins for the same email resolve to exactly one winner.
//
// RedisStore instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
}

// NewRedisStore creates a session [RedisStore] backed by the given Redis client.
// prefix sets the Redis key namespace.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{
		redis:  client,
		prefix: prefix,
	}
}

func (s *RedisStore) tokenKey(token string) string {
	return s.prefix + ":t:" + token
}

func (s *RedisStore) emailKey(email string) string {
	return s.prefix + ":e:" + email
}

// Issue describes the issue operation and its observable behavior.
//
// Issue may return an error when input validation, dependency calls, or security checks fail.
// Issue does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) Issue(ctx context.Context, ident Identity) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}

	blob, err := Encode(ident)
	if err != nil {
		return "", err
	}

	created, err := issueSessionLua.Run(
		ctx,
		s.redis,
		[]string{s.tokenKey(token), s.emailKey(ident.Email)},
		blob,
		token,
	).Int64()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if created == 0 {
		return "", ErrActiveSession
	}

	return token, nil
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) Validate(ctx context.Context, token string) (Identity, error) {
	if CheckToken(token) != nil {
		// Malformed tokens cannot exist in the store; skip the round-trip.
		return Identity{}, ErrTokenNotFound
	}

	data, err := s.redis.Get(ctx, s.tokenKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Identity{}, ErrTokenNotFound
		}
		return Identity{}, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return Decode(data)
}

// Revoke describes the revoke operation and its observable behavior.
//
// Revoke may return an error when input validation, dependency calls, or security checks fail.
// Revoke does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	ident, err := s.Validate(ctx, token)
	if err != nil {
		return err
	}

	existed, err := revokeSessionLua.Run(
		ctx,
		s.redis,
		[]string{s.tokenKey(token), s.emailKey(ident.Email)},
		token,
	).Int64()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if existed == 0 {
		return ErrTokenNotFound
	}

	return nil
}

// RevokeAllFor describes the revokeallfor operation and its observable behavior.
//
// RevokeAllFor may return an error when input validation, dependency calls, or security checks fail.
// RevokeAllFor does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *RedisStore) RevokeAllFor(ctx context.Context, email string) error {
	token, err := s.redis.Get(ctx, s.emailKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	if _, err := revokeSessionLua.Run(
		ctx,
		s.redis,
		[]string{s.tokenKey(token), s.emailKey(email)},
		token,
	).Result(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	return nil
}

// Ping returns a point-in-time Redis availability check.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
