package keyhub

// UpdateKey writes a single translation value for one language, creating the
// (language, namespace) file on demand. Unknown languages and an unset root
// folder degrade to a no-op.
func (c *Catalog) UpdateKey(namespace, key, langCode, value string) error {
	c.settingsMu.Lock()
	defer c.settingsMu.Unlock()

	s, err := c.Settings()
	if err != nil {
		return err
	}

	f, changed, err := c.ensureFile(s, langCode, namespace)
	if err != nil {
		return err
	}
	if f == nil {
		c.debugf("update skipped: no file target", "lang", langCode, "namespace", namespace)
		return nil
	}
	if changed {
		if err := c.store.Save(s); err != nil {
			return &StoreError{Message: "saving settings", Cause: err}
		}
	}

	err = c.mutateFile(f.AbsolutePath, func(doc map[string]any) bool {
		SetNestedValue(doc, key, value)
		return true
	})
	if err != nil {
		return err
	}

	c.events.emitChanged()
	return nil
}

// AddKey registers a key in every configured language's file for the
// namespace, creating files on demand. The add is idempotent: a language that
// already carries the key keeps its existing value untouched.
func (c *Catalog) AddKey(namespace, key string) error {
	c.settingsMu.Lock()
	defer c.settingsMu.Unlock()

	s, err := c.Settings()
	if err != nil {
		return err
	}

	if _, err := c.addKeyLocked(s, namespace, key); err != nil {
		return err
	}

	c.events.emitChanged()
	return nil
}

// addKeyLocked adds the key to every language lacking it and reports whether
// any file gained the key. Caller holds settingsMu.
func (c *Catalog) addKeyLocked(s *Settings, namespace, key string) (bool, error) {
	added := false
	settingsChanged := false

	for _, lang := range s.Languages {
		f, changed, err := c.ensureFile(s, lang.Code, namespace)
		if err != nil {
			return added, err
		}
		if f == nil {
			continue
		}
		settingsChanged = settingsChanged || changed

		err = c.mutateFile(f.AbsolutePath, func(doc map[string]any) bool {
			if HasKey(doc, key) {
				return false
			}
			SetNestedValue(doc, key, "")
			added = true
			return true
		})
		if err != nil {
			return added, err
		}
	}

	if settingsChanged {
		if err := c.store.Save(s); err != nil {
			return added, &StoreError{Message: "saving settings", Cause: err}
		}
	}
	return added, nil
}

// RemoveKey deletes a key from every language that has a file for the
// namespace, pruning ancestor objects left empty. Languages without the file
// are skipped, not created.
func (c *Catalog) RemoveKey(namespace, key string) error {
	c.settingsMu.Lock()
	defer c.settingsMu.Unlock()

	s, err := c.Settings()
	if err != nil {
		return err
	}

	for _, lang := range s.Languages {
		f := lang.FileFor(namespace)
		if f == nil {
			continue
		}
		err := c.mutateFile(f.AbsolutePath, func(doc map[string]any) bool {
			RemoveNestedKey(doc, key)
			return true
		})
		if err != nil {
			return err
		}
	}

	c.events.emitChanged()
	return nil
}

// AddLanguage configures a new language and creates its files: one per known
// namespace in namespaced mode, a single default-namespace file in flat mode.
// An already-configured code or an unset root folder is a no-op.
func (c *Catalog) AddLanguage(code string) (*Settings, error) {
	c.settingsMu.Lock()
	defer c.settingsMu.Unlock()

	s, err := c.Settings()
	if err != nil {
		return nil, err
	}
	if s.RootFolder == "" || s.LanguageFor(code) != nil {
		return s, nil
	}

	namespaces := s.Namespaces()
	if s.FolderStructure == StructureFlat || len(namespaces) == 0 {
		namespaces = []string{DefaultNamespace}
	}

	s.Languages = append(s.Languages, Language{Code: code})
	for _, ns := range namespaces {
		if _, _, err := c.ensureFile(s, code, ns); err != nil {
			return nil, err
		}
	}

	if err := c.store.Save(s); err != nil {
		return nil, &StoreError{Message: "saving settings", Cause: err}
	}
	c.infof("language added", "code", code, "namespaces", len(namespaces))
	c.events.emitChanged()
	return s, nil
}

// RemoveLanguage drops a language from the configuration. The physical files
// stay on disk; only the references are removed.
func (c *Catalog) RemoveLanguage(code string) (*Settings, error) {
	c.settingsMu.Lock()
	defer c.settingsMu.Unlock()

	s, err := c.Settings()
	if err != nil {
		return nil, err
	}

	kept := s.Languages[:0]
	for _, lang := range s.Languages {
		if lang.Code != code {
			kept = append(kept, lang)
		}
	}
	s.Languages = kept

	if err := c.store.Save(s); err != nil {
		return nil, &StoreError{Message: "saving settings", Cause: err}
	}
	c.events.emitChanged()
	return s, nil
}

// RemoveFile drops one file reference from a language. A language whose file
// list becomes empty is removed entirely. The physical file stays on disk.
func (c *Catalog) RemoveFile(code, absolutePath string) (*Settings, error) {
	c.settingsMu.Lock()
	defer c.settingsMu.Unlock()

	s, err := c.Settings()
	if err != nil {
		return nil, err
	}

	keptLangs := s.Languages[:0]
	for _, lang := range s.Languages {
		if lang.Code != code {
			keptLangs = append(keptLangs, lang)
			continue
		}
		keptFiles := lang.Files[:0]
		for _, f := range lang.Files {
			if f.AbsolutePath != absolutePath {
				keptFiles = append(keptFiles, f)
			}
		}
		lang.Files = keptFiles
		if len(lang.Files) > 0 {
			keptLangs = append(keptLangs, lang)
		}
	}
	s.Languages = keptLangs

	if err := c.store.Save(s); err != nil {
		return nil, &StoreError{Message: "saving settings", Cause: err}
	}
	c.events.emitChanged()
	return s, nil
}

// RegisterKey is the key-intake path used by the HTTP endpoint. The key is
// added with an empty value to every configured language lacking it; when
// defaultValue is non-empty it is then written into the requesting language's
// file, so that language ends up with the real value while the others carry a
// placeholder. Newly added keys fire an asynchronous keys-received event and
// are returned to the caller.
func (c *Catalog) RegisterKey(namespace, key, langCode, defaultValue string) ([]string, error) {
	c.settingsMu.Lock()
	defer c.settingsMu.Unlock()

	s, err := c.Settings()
	if err != nil {
		return nil, err
	}

	added, err := c.addKeyLocked(s, namespace, key)
	if err != nil {
		return nil, err
	}

	if defaultValue != "" {
		f, changed, err := c.ensureFile(s, langCode, namespace)
		if err != nil {
			return nil, err
		}
		if f != nil {
			if changed {
				if err := c.store.Save(s); err != nil {
					return nil, &StoreError{Message: "saving settings", Cause: err}
				}
			}
			err = c.mutateFile(f.AbsolutePath, func(doc map[string]any) bool {
				SetNestedValue(doc, key, defaultValue)
				return true
			})
			if err != nil {
				return nil, err
			}
		}
	}

	var newKeys []string
	if added {
		newKeys = []string{key}
		c.events.emitKeysReceived(namespace, newKeys)
	}
	c.events.emitChanged()
	return newKeys, nil
}
