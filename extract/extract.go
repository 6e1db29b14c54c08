// Package extract discovers translation keys referenced by application
// sources: data-i18n attributes in HTML templates and T("...") calls in Go
// code. Discovered keys feed the catalog's add-key path so the files stay in
// sync with the code that consumes them.
package extract

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/guilgui51/keyhub"
)

// Key is one discovered translation key with its namespace.
type Key struct {
	Namespace string
	Key       string
}

// Extractor discovers keys in one source format.
type Extractor interface {
	// Extract parses content and returns the keys it references.
	Extract(content string) ([]Key, error)
	// Extensions returns the file extensions the extractor handles.
	Extensions() []string
}

// splitKey parses the i18next "ns:key" reference syntax; a reference without
// a namespace belongs to the default namespace.
func splitKey(ref string) (Key, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Key{}, false
	}
	if ns, key, found := strings.Cut(ref, ":"); found {
		if ns == "" || key == "" {
			return Key{}, false
		}
		return Key{Namespace: ns, Key: key}, true
	}
	return Key{Namespace: keyhub.DefaultNamespace, Key: ref}, true
}

// Dir walks a directory tree and runs every extractor against the files it
// handles. Unreadable or unparsable files are skipped; extraction is a
// discovery aid, not a validator.
func Dir(root string, extractors ...Extractor) ([]Key, error) {
	byExt := make(map[string]Extractor)
	for _, e := range extractors {
		for _, ext := range e.Extensions() {
			byExt[ext] = e
		}
	}

	seen := make(map[Key]bool)
	var keys []Key

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		extractor, ok := byExt[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}
		data, err := os.ReadFile(path) // #nosec G304 - scan root is user-provided
		if err != nil {
			return nil
		}
		found, err := extractor.Extract(string(data))
		if err != nil {
			return nil
		}
		for _, k := range found {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
