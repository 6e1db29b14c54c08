// Package settings provides SettingsStore implementations for the catalog
// engine: a JSON file store for the desktop tool and an in-memory store for
// tests and embedding.
package settings

import "github.com/guilgui51/keyhub"

// Store is an alias to the engine's store interface for convenience.
type Store = keyhub.SettingsStore

// withDefaults fills zero-value fields with their defaults.
func withDefaults(s *keyhub.Settings) *keyhub.Settings {
	if s.FolderStructure == "" {
		s.FolderStructure = keyhub.StructureNamespaced
	}
	if s.ServerPort == 0 {
		s.ServerPort = keyhub.DefaultServerPort
	}
	return s
}
