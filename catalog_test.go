package keyhub

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// memStore is a simple in-memory settings store for testing.
type memStore struct {
	mu       sync.Mutex
	settings *Settings
	saves    int
}

func newMemStore(s *Settings) *memStore {
	if s == nil {
		s = &Settings{FolderStructure: StructureNamespaced, ServerPort: DefaultServerPort}
	}
	return &memStore{settings: s}
}

func (m *memStore) Load() (*Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(m.settings)
	if err != nil {
		return nil, err
	}
	var out Settings
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *memStore) Save(s *Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	var copied Settings
	if err := json.Unmarshal(data, &copied); err != nil {
		return err
	}
	m.settings = &copied
	m.saves++
	return nil
}

// newTestCatalog builds a catalog over a fresh root folder with the given
// languages configured in namespaced mode.
func newTestCatalog(t *testing.T, codes ...string) (*Catalog, *memStore, string) {
	t.Helper()
	root := t.TempDir()

	s := &Settings{
		RootFolder:      root,
		FolderStructure: StructureNamespaced,
		ServerPort:      DefaultServerPort,
	}
	for _, code := range codes {
		s.Languages = append(s.Languages, Language{Code: code})
	}

	store := newMemStore(s)
	return NewCatalog(store), store, root
}

// seedFile writes a translation file and registers it on the language.
func seedFile(t *testing.T, store *memStore, root, code, namespace string, doc map[string]any) string {
	t.Helper()
	path := filepath.Join(root, code, namespace+".json")
	if err := WriteDocument(path, doc); err != nil {
		t.Fatalf("seeding %s: %v", path, err)
	}

	s, err := store.Load()
	if err != nil {
		t.Fatalf("loading settings: %v", err)
	}
	lang := s.LanguageFor(code)
	if lang == nil {
		t.Fatalf("language %s not configured", code)
	}
	lang.Files = append(lang.Files, File{AbsolutePath: path, Namespace: namespace})
	if err := store.Save(s); err != nil {
		t.Fatalf("saving settings: %v", err)
	}
	return path
}

func readRaw(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return doc
}

func strptr(s string) *string {
	return &s
}

func TestNewCatalogDefaults(t *testing.T) {
	store := newMemStore(nil)
	c := NewCatalog(store)

	if c.Events() == nil {
		t.Fatal("catalog should always carry an event hub")
	}

	s, err := c.Settings()
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if s.FolderStructure != StructureNamespaced {
		t.Errorf("default structure = %q, want %q", s.FolderStructure, StructureNamespaced)
	}
}
