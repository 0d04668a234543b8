package config

import "sync"

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu       sync.Mutex
	settings *Settings
	saves    int
	// SaveErr, when set, is returned by Save.
	SaveErr error
	// LoadErr, when set, is returned by Load.
	LoadErr error
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns a store holding s.
func NewMemoryStore(s Settings) *MemoryStore {
	return &MemoryStore{settings: &s}
}

// Exists reports whether settings were saved.
func (m *MemoryStore) Exists() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings != nil
}

// Load returns the saved settings after validating them.
func (m *MemoryStore) Load() (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return Settings{}, m.LoadErr
	}
	if m.settings == nil {
		return Settings{}, ErrNotExist
	}
	if err := m.settings.Validate(); err != nil {
		return Settings{}, err
	}
	return *m.settings, nil
}

// Save stores s.
func (m *MemoryStore) Save(s Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.settings = &s
	m.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
