// Package storage provides the key-value persistence medium backing watch
// progress and user lists. Keys are namespaced strings; values are opaque
// serialized records. The medium is interchangeable: the SQLite store is
// used by the application, the memory store by tests.
package storage

// KV is a flat string key-value store.
type KV interface {
	// Get returns the value for key, or ok=false if absent.
	Get(key string) (value string, ok bool, err error)

	// Set writes key unconditionally, replacing any previous value.
	Set(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys returns all keys starting with prefix.
	Keys(prefix string) ([]string, error)

	Close() error
}

// Memory is an in-process KV used by tests and as a degraded fallback when
// the on-disk store cannot be opened.
type Memory struct {
	m map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(key, value string) error {
	s.m[key] = value
	return nil
}

func (s *Memory) Delete(key string) error {
	delete(s.m, key)
	return nil
}

func (s *Memory) Keys(prefix string) ([]string, error) {
	var keys []string
	for k := range s.m {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *Memory) Close() error { return nil }

// Discard is a KV that retains nothing: writes are dropped and reads are
// absent. It backs the progress layer when history is disabled, so no watch
// position is ever recorded.
type Discard struct{}

func (Discard) Get(key string) (string, bool, error) { return "", false, nil }
func (Discard) Set(key, value string) error          { return nil }
func (Discard) Delete(key string) error              { return nil }
func (Discard) Keys(prefix string) ([]string, error) { return nil, nil }
func (Discard) Close() error                         { return nil }
