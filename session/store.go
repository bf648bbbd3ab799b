package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable is returned when the backing Redis store cannot be reached.
var ErrUnavailable = errors.New("session store unavailable")

// ErrNoSession is returned by [Store.Load] when no token is persisted.
var ErrNoSession = errors.New("no persisted session")

// Persisted key names. These are a wire-level contract with the portal
// frontend and must not change.
const (
	KeyToken     = "token"
	KeyEmail     = "loggedInUserEmail"
	KeyRole      = "loggedInUserRole"
	KeySubjectID = "loggedInDoctorId"
)

// State is a snapshot of the persisted session. Role and SubjectID are empty
// while only the partial (pre-directory-verification) write has happened.
type State struct {
	Token     string
	UserEmail string
	Role      string
	SubjectID string
}

// Partial reports whether the session has been written but not yet augmented
// with a role claim.
func (s State) Partial() bool {
	return s.Token != "" && s.Role == ""
}

// Store is a Redis-backed session store.
//
// Store instances are intended to be configured during initialization and then
// treated as immutable.
type Store struct {
	redis  redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewStore creates a session Store. ttl bounds the lifetime of every write;
// zero disables expiry and sessions persist until cleared.
func NewStore(redisClient redis.UniversalClient, prefix string, ttl time.Duration) *Store {
	return &Store{
		redis:  redisClient,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *Store) key(name string) string {
	return s.prefix + ":" + name
}

// SavePartial persists the freshly issued token and the submitted email.
// This write deliberately happens before directory verification.
func (s *Store) SavePartial(ctx context.Context, tokenStr, email string) error {
	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, s.key(KeyToken), tokenStr, s.ttl)
	pipe.Set(ctx, s.key(KeyEmail), email, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// SaveAuthorized overwrites the persisted token with its role-augmented form
// and records the role and the matched directory record id alongside.
func (s *Store) SaveAuthorized(ctx context.Context, tokenStr, role, subjectID string) error {
	pipe := s.redis.TxPipeline()
	pipe.Set(ctx, s.key(KeyToken), tokenStr, s.ttl)
	pipe.Set(ctx, s.key(KeyRole), role, s.ttl)
	pipe.Set(ctx, s.key(KeySubjectID), subjectID, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Load reads the current session snapshot. Missing keys other than the token
// load as empty strings.
func (s *Store) Load(ctx context.Context) (State, error) {
	vals, err := s.redis.MGet(ctx,
		s.key(KeyToken), s.key(KeyEmail), s.key(KeyRole), s.key(KeySubjectID)).Result()
	if err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	str := func(v any) string {
		out, _ := v.(string)
		return out
	}

	state := State{
		Token:     str(vals[0]),
		UserEmail: str(vals[1]),
		Role:      str(vals[2]),
		SubjectID: str(vals[3]),
	}
	if state.Token == "" {
		return State{}, ErrNoSession
	}
	return state, nil
}

// Clear removes every persisted session key. This is the explicit logout
// path.
func (s *Store) Clear(ctx context.Context) error {
	err := s.redis.Del(ctx,
		s.key(KeyToken), s.key(KeyEmail), s.key(KeyRole), s.key(KeySubjectID)).Err()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
