package keyhub

import "sync"

// ReadAll merges every language's file for every known namespace into a
// per-namespace aggregate where each key carries one value slot per
// configured language. Read failures on individual files degrade to empty
// maps and never abort the whole read; only a settings-store failure is an
// error.
func (c *Catalog) ReadAll() ([]NamespaceData, error) {
	s, err := c.Settings()
	if err != nil {
		return nil, err
	}

	namespaces := s.Namespaces()
	data := make([]NamespaceData, 0, len(namespaces))
	for _, ns := range namespaces {
		data = append(data, c.readNamespace(s, ns))
	}
	return data, nil
}

// readNamespace builds the aggregate for one namespace. The per-language file
// reads are independent and lenient, so they run concurrently.
func (c *Catalog) readNamespace(s *Settings, namespace string) NamespaceData {
	type langMap struct {
		code string
		flat map[string]string // nil when the language has no file
	}

	results := make([]langMap, len(s.Languages))
	var wg sync.WaitGroup
	for i, lang := range s.Languages {
		wg.Add(1)
		go func(i int, lang Language) {
			defer wg.Done()
			results[i] = langMap{code: lang.Code}
			if f := lang.FileFor(namespace); f != nil {
				results[i].flat = Flatten(ReadDocument(f.AbsolutePath), "")
			}
		}(i, lang)
	}
	wg.Wait()

	// Union of keys seen across languages.
	seen := make(map[string]bool)
	var keys []string
	for _, r := range results {
		for k := range r.flat {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	SortKeys(keys)

	data := NamespaceData{Namespace: namespace, Keys: make([]KeyValues, 0, len(keys))}
	for _, key := range keys {
		values := make(map[string]*string, len(results))
		for _, r := range results {
			if r.flat == nil {
				values[r.code] = nil
				continue
			}
			if v, ok := r.flat[key]; ok {
				value := v
				values[r.code] = &value
			} else {
				values[r.code] = nil
			}
		}
		data.Keys = append(data.Keys, KeyValues{Key: key, Values: values})
	}
	return data
}

// ReadNamespace returns the aggregate for a single namespace.
func (c *Catalog) ReadNamespace(namespace string) (NamespaceData, error) {
	s, err := c.Settings()
	if err != nil {
		return NamespaceData{}, err
	}
	return c.readNamespace(s, namespace), nil
}
