package localstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

type (
	// FileStore is the durable Storage implementation: a single JSON file
	// rewritten on every mutation.
	FileStore struct {
		sync.RWMutex
		path   string
		values map[string]string
	}
)

var _ Storage = (*FileStore)(nil)

// Open loads the store at path, creating parent directories as needed.
// A missing file is an empty store; a corrupt file is discarded.
func Open(path string) (*FileStore, error) {
	st := &FileStore{
		path:   path,
		values: make(map[string]string),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return nil, errors.Wrap(err, "reading storage file")
	}
	if err := json.Unmarshal(data, &st.values); err != nil {
		st.values = make(map[string]string)
	}
	return st, nil
}

func (st *FileStore) Get(key string) (string, bool) {
	st.RLock()
	defer st.RUnlock()
	val, ok := st.values[key]
	return val, ok
}

func (st *FileStore) Set(key, val string) error {
	st.Lock()
	defer st.Unlock()
	st.values[key] = val
	return st.save()
}

func (st *FileStore) Delete(key string) error {
	st.Lock()
	defer st.Unlock()
	if _, ok := st.values[key]; !ok {
		return nil
	}
	delete(st.values, key)
	return st.save()
}

func (st *FileStore) save() error {
	data, err := json.Marshal(st.values)
	if err != nil {
		return errors.Wrap(err, "encoding storage values")
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return errors.Wrap(err, "creating storage dir")
	}
	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return errors.Wrap(err, "writing storage file")
	}
	return nil
}
