package keyhub

import (
	"os"
	"path/filepath"
	"strings"
)

// filePathFor synthesizes the expected on-disk path for a (language,
// namespace) pair according to the configured folder structure.
func filePathFor(s *Settings, langCode, namespace string) string {
	if s.FolderStructure == StructureFlat {
		return filepath.Join(s.RootFolder, langCode+".json")
	}
	return filepath.Join(s.RootFolder, langCode, namespace+".json")
}

// ensureFile resolves the file for a (language, namespace) pair, creating it
// on demand. It returns nil when the language is not configured or no root
// folder is set; callers treat that as a no-op write target. The second
// return value reports whether the settings document changed (a new file
// record was appended) and must be persisted.
func (c *Catalog) ensureFile(s *Settings, langCode, namespace string) (*File, bool, error) {
	if s.RootFolder == "" {
		return nil, false, nil
	}
	lang := s.LanguageFor(langCode)
	if lang == nil {
		return nil, false, nil
	}
	if f := lang.FileFor(namespace); f != nil {
		return f, false, nil
	}

	path := filePathFor(s, langCode, namespace)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, false, &CatalogError{Message: "creating directory for " + path, Cause: err}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := WriteDocument(path, map[string]any{}); err != nil {
			return nil, false, err
		}
	}

	lang.Files = append(lang.Files, File{AbsolutePath: path, Namespace: namespace})
	return &lang.Files[len(lang.Files)-1], true, nil
}

// ImportFolder scans a root directory, detects the folder structure, and
// replaces the entire prior language configuration with the scan result.
//
// Namespaced detection runs first: subdirectories named like a locale, each
// containing JSON files (one per namespace). When none qualify the scan
// falls back to flat detection: top-level <locale>.json files forming
// single-namespace languages. An empty scan yields namespaced mode with zero
// languages.
func (c *Catalog) ImportFolder(path string) (*Settings, error) {
	c.settingsMu.Lock()
	defer c.settingsMu.Unlock()

	s, err := c.Settings()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &CatalogError{Message: "resolving import folder", Cause: err}
	}

	structure, languages := scanRoot(abs)
	s.RootFolder = abs
	s.FolderStructure = structure
	s.Languages = languages

	if err := c.store.Save(s); err != nil {
		return nil, &StoreError{Message: "saving settings", Cause: err}
	}

	c.infof("imported root folder", "path", abs, "structure", string(structure), "languages", len(languages))
	c.events.emitChanged()
	return s, nil
}

// scanRoot performs folder-structure detection over a root directory.
func scanRoot(root string) (FolderStructure, []Language) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return StructureNamespaced, nil
	}

	var languages []Language

	// Namespaced: locale-named directories holding one JSON file per namespace.
	for _, entry := range entries {
		if !entry.IsDir() || !IsLocale(entry.Name()) {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		files, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		lang := Language{Code: entry.Name()}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
				continue
			}
			lang.Files = append(lang.Files, File{
				AbsolutePath: filepath.Join(dir, f.Name()),
				Namespace:    strings.TrimSuffix(f.Name(), ".json"),
			})
		}
		if len(lang.Files) > 0 {
			languages = append(languages, lang)
		}
	}
	if len(languages) > 0 {
		sortLanguages(languages)
		return StructureNamespaced, languages
	}

	// Flat: top-level <locale>.json files, single implicit namespace.
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		code := strings.TrimSuffix(entry.Name(), ".json")
		if !IsLocale(code) {
			continue
		}
		languages = append(languages, Language{
			Code: code,
			Files: []File{{
				AbsolutePath: filepath.Join(root, entry.Name()),
				Namespace:    DefaultNamespace,
			}},
		})
	}
	if len(languages) > 0 {
		sortLanguages(languages)
		return StructureFlat, languages
	}

	return StructureNamespaced, nil
}

func sortLanguages(languages []Language) {
	codes := make([]string, len(languages))
	for i, l := range languages {
		codes[i] = l.Code
	}
	SortKeys(codes)
	byCode := make(map[string]Language, len(languages))
	for _, l := range languages {
		byCode[l.Code] = l
	}
	for i, code := range codes {
		languages[i] = byCode[code]
	}
}
