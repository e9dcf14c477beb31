package cache

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Store memoizes query results for the process lifetime. There is no
// expiration and no eviction: the key space is driven by UI filter
// combinations, so cardinality stays low and recomputing multi-second
// aggregations is the expensive side of the trade.
type Store struct {
	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]any
}

func New() *Store {
	return &Store{entries: make(map[string]any)}
}

// GetOrCompute returns the stored value for key, computing it with fn
// on the first request. Concurrent callers for the same key share one
// in-flight computation. Errors are not stored; a later request runs
// fn again.
func GetOrCompute[T any](s *Store, key string, fn func() (T, error)) (T, error) {
	if v, ok := s.get(key); ok {
		return v.(T), nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		// A previous flight may have stored the value between our
		// lookup and joining the group.
		if v, ok := s.get(key); ok {
			return v, nil
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		s.set(key, v)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (s *Store) get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *Store) set(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = v
}

// Len reports the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Key builds a stable cache key from query parameters and an optional
// categorical filter. The filter is sorted on a copy so equal filter
// sets key identically regardless of selection order.
func Key(parts []string, filter []string) string {
	key := strings.Join(parts, "|")
	if len(filter) == 0 {
		return key
	}
	sorted := make([]string, len(filter))
	copy(sorted, filter)
	sort.Strings(sorted)
	return key + "|" + strings.Join(sorted, ",")
}
