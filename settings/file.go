package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/guilgui51/keyhub"
)

// FileStore persists the settings document as a JSON file. A missing file
// loads as zero-value settings with defaults applied, so first run needs no
// setup.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at path. An empty path selects the
// default location under the user's configuration directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, &keyhub.StoreError{Message: "resolving config directory", Cause: err}
		}
		path = filepath.Join(base, keyhub.Name, "settings.json")
	}
	return &FileStore{path: path}, nil
}

// Path returns the store's file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the settings document from disk.
func (s *FileStore) Load() (*keyhub.Settings, error) {
	data, err := os.ReadFile(s.path) // #nosec G304 - path is chosen by the user
	if os.IsNotExist(err) {
		return withDefaults(&keyhub.Settings{}), nil
	}
	if err != nil {
		return nil, &keyhub.StoreError{Message: "reading " + s.path, Cause: err}
	}

	var settings keyhub.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, &keyhub.StoreError{Message: "parsing " + s.path, Cause: err}
	}
	return withDefaults(&settings), nil
}

// Save writes the settings document to disk, creating parent directories as
// needed.
func (s *FileStore) Save(settings *keyhub.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return &keyhub.StoreError{Message: "encoding settings", Cause: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &keyhub.StoreError{Message: "creating directory for " + s.path, Cause: err}
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o600); err != nil {
		return &keyhub.StoreError{Message: "writing " + s.path, Cause: err}
	}
	return nil
}

// Verify FileStore implements SettingsStore
var _ keyhub.SettingsStore = (*FileStore)(nil)
