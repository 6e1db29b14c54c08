package settings

import (
	"encoding/json"
	"sync"

	"github.com/guilgui51/keyhub"
)

// MemoryStore is a thread-safe in-memory settings store. Load returns a deep
// copy so callers can mutate the snapshot before saving it back.
type MemoryStore struct {
	mu       sync.Mutex
	settings *keyhub.Settings
	saves    int
}

// NewMemoryStore creates an in-memory store seeded with the given settings.
// A nil seed starts from zero-value settings with defaults applied.
func NewMemoryStore(seed *keyhub.Settings) *MemoryStore {
	if seed == nil {
		seed = &keyhub.Settings{}
	}
	return &MemoryStore{settings: withDefaults(seed)}
}

// Load returns a deep copy of the current settings.
func (s *MemoryStore) Load() (*keyhub.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSettings(s.settings)
}

// Save replaces the stored settings with a deep copy of the given document.
func (s *MemoryStore) Save(settings *keyhub.Settings) error {
	copied, err := cloneSettings(settings)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = copied
	s.saves++
	return nil
}

// Saves returns the number of Save calls, for tests asserting persistence
// behavior.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func cloneSettings(in *keyhub.Settings) (*keyhub.Settings, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, &keyhub.StoreError{Message: "cloning settings", Cause: err}
	}
	var out keyhub.Settings
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &keyhub.StoreError{Message: "cloning settings", Cause: err}
	}
	return &out, nil
}

// Verify MemoryStore implements SettingsStore
var _ keyhub.SettingsStore = (*MemoryStore)(nil)
