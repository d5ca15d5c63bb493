package memory

import (
	"context"
	"sync"
)

// Memory keeps preferences in process memory only.
// Values are lost on restart.
type Memory struct {
	lock   sync.RWMutex      // rw lock guards values
	values map[string]string // stored preferences
}

func New() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements storage.Preferences.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements storage.Preferences.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.lock.Lock()
	m.values[key] = value
	m.lock.Unlock()

	return nil
}

// Close implements storage.Preferences.
func (m *Memory) Close() error {
	return nil
}
