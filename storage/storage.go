// Package storage abstracts the browser's local/session storage behind a
// small key-value port so drafts, favorite overrides and UI preferences can
// be tested without a real storage backend. Every read is fallible and
// falls back to a default on missing or corrupt values.
package storage

// Store is the key-value port backing persisted client state.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// MemStore is an in-memory Store. Client state is single-threaded
// cooperative, so MemStore does no locking.
type MemStore struct {
	values map[string]string
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (m *MemStore) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *MemStore) Set(key, value string) {
	m.values[key] = value
}

func (m *MemStore) Delete(key string) {
	delete(m.values, key)
}
