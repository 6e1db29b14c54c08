package keyhub

// LanguageReport summarizes one language's completeness across the catalog.
type LanguageReport struct {
	Code        string   `json:"code"`
	Total       int      `json:"total"`
	Completed   int      `json:"completed"`
	MissingKeys []string `json:"missingKeys,omitempty"` // namespace-qualified, "<ns>:<key>"
}

// Missing returns the number of keys the language lacks or leaves empty.
func (r LanguageReport) Missing() int {
	return r.Total - r.Completed
}

// CatalogReport is a per-language completeness summary across all
// namespaces, used by the CLI status view.
type CatalogReport struct {
	Namespaces int              `json:"namespaces"`
	Keys       int              `json:"keys"`
	Languages  []LanguageReport `json:"languages"`
}

// HasMissing reports whether any language is incomplete.
func (r *CatalogReport) HasMissing() bool {
	for _, lang := range r.Languages {
		if lang.Missing() > 0 {
			return true
		}
	}
	return false
}

// BuildReport computes per-language completeness over a merged catalog view.
// A key counts as completed for a language when its value slot is non-nil and
// non-empty. The language order follows the given code list.
func BuildReport(data []NamespaceData, codes []string) *CatalogReport {
	report := &CatalogReport{Namespaces: len(data)}
	perLang := make(map[string]*LanguageReport, len(codes))
	for _, code := range codes {
		perLang[code] = &LanguageReport{Code: code}
	}

	for _, ns := range data {
		report.Keys += len(ns.Keys)
		for _, kv := range ns.Keys {
			for _, code := range codes {
				lr := perLang[code]
				lr.Total++
				if v := kv.Values[code]; v != nil && *v != "" {
					lr.Completed++
				} else {
					lr.MissingKeys = append(lr.MissingKeys, ns.Namespace+":"+kv.Key)
				}
			}
		}
	}

	for _, code := range codes {
		report.Languages = append(report.Languages, *perLang[code])
	}
	return report
}
