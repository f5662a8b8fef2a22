package session

import (
	"context"
	"time"
)

const (
	// DefaultTTL is the resume window: records older than this are treated
	// as absent at read time. Nothing deletes them eagerly.
	DefaultTTL = 24 * time.Hour

	// FormNamespace prefixes form session keys, giving "formkey:{tradeId}".
	FormNamespace = "formkey"

	// CalcNamespace prefixes the calculator's side-channel snapshot.
	CalcNamespace = "calc"
)

type sessionKeyContext struct{}

const defaultSessionKey = "default"

// WithSessionKey routes store reads and writes to a per-trade/per-session
// record via the context.
func WithSessionKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, sessionKeyContext{}, key)
}

// SessionKeyFromContext returns the routing key set by WithSessionKey.
func SessionKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(sessionKeyContext{}).(string)
	return key, ok && key != ""
}

func sessionKeyOrDefault(ctx context.Context) string {
	if key, ok := SessionKeyFromContext(ctx); ok {
		return key
	}
	return defaultSessionKey
}

// Record wraps a stored value with its save time so expiry can be enforced
// when it is read back.
type Record[S any] struct {
	Value   S         `json:"value"`
	SavedAt time.Time `json:"savedAt"`
}

// Store namespaces a cache, stamps saves with the current time and treats
// stale records as absent.
type Store[S any] struct {
	core      Cache[Record[S]]
	namespace string
	ttl       time.Duration
	now       func() time.Time
}

func NewStore[S any](core Cache[Record[S]], namespace string, ttl time.Duration) *Store[S] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store[S]{
		core:      core,
		namespace: namespace,
		ttl:       ttl,
		now:       time.Now,
	}
}

// WithClock swaps the time source. Tests use it to age records.
func (s *Store[S]) WithClock(now func() time.Time) *Store[S] {
	s.now = now
	return s
}

func (s *Store[S]) key(ctx context.Context) string {
	return s.namespace + ":" + sessionKeyOrDefault(ctx)
}

// Set saves val under the context's session key, stamped with the current
// time.
func (s *Store[S]) Set(ctx context.Context, val S) error {
	return s.core.Set(ctx, s.key(ctx), Record[S]{Value: val, SavedAt: s.now()})
}

// Get loads the value for the context's session key. A record older than
// the TTL is a miss, identical to one that never existed.
func (s *Store[S]) Get(ctx context.Context) (S, bool, error) {
	var zero S
	rec, ok, err := s.core.Get(ctx, s.key(ctx))
	if err != nil || !ok {
		return zero, false, err
	}
	if s.now().Sub(rec.SavedAt) >= s.ttl {
		return zero, false, nil
	}
	return rec.Value, true, nil
}

// Del removes the record for the context's session key.
func (s *Store[S]) Del(ctx context.Context) error {
	return s.core.Del(ctx, s.key(ctx))
}
