package localstore

import "sync"

// MemStore is an in-memory Storage for tests and fresh-tab scenarios.
type MemStore struct {
	sync.RWMutex
	values map[string]string
}

var _ Storage = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (st *MemStore) Get(key string) (string, bool) {
	st.RLock()
	defer st.RUnlock()
	val, ok := st.values[key]
	return val, ok
}

func (st *MemStore) Set(key, val string) error {
	st.Lock()
	defer st.Unlock()
	st.values[key] = val
	return nil
}

func (st *MemStore) Delete(key string) error {
	st.Lock()
	defer st.Unlock()
	delete(st.values, key)
	return nil
}
