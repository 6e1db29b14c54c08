// Package keyhub implements the KeyHub translation catalog engine.
package keyhub

// FolderStructure selects how translation files are laid out under the root
// folder.
type FolderStructure string

const (
	// StructureNamespaced stores one subdirectory per locale with one JSON
	// file per namespace: <root>/<lang>/<namespace>.json.
	StructureNamespaced FolderStructure = "namespaced"
	// StructureFlat stores one JSON file per locale at the top level with a
	// single implicit namespace: <root>/<lang>.json.
	StructureFlat FolderStructure = "flat"
)

// DefaultNamespace is the implicit namespace used in flat folder structures.
const DefaultNamespace = "default"

// DefaultServerPort is the key-intake server port used when settings carry none.
const DefaultServerPort = 8765

// File is one JSON document on disk holding the keys of exactly one
// (language, namespace) pair.
type File struct {
	AbsolutePath string `json:"absolutePath"`
	Namespace    string `json:"namespace"`
}

// Language is a configured target language and the set of namespace files it
// owns. A language may lack a file for a namespace other languages have.
type Language struct {
	Code  string `json:"code"`
	Files []File `json:"files"`
}

// FileFor returns the language's file for the given namespace, or nil.
func (l *Language) FileFor(namespace string) *File {
	for i := range l.Files {
		if l.Files[i].Namespace == namespace {
			return &l.Files[i]
		}
	}
	return nil
}

// Settings is the persisted process-wide configuration document.
type Settings struct {
	RootFolder      string          `json:"rootFolder"`
	FolderStructure FolderStructure `json:"folderStructure"`
	Languages       []Language      `json:"languages"`
	ServerPort      int             `json:"serverPort"`
	ServerAutoStart bool            `json:"serverAutoStart"`
	DeepLAPIKey     string          `json:"deeplApiKey"`
}

// LanguageFor returns the configured language with the given code, or nil.
func (s *Settings) LanguageFor(code string) *Language {
	for i := range s.Languages {
		if s.Languages[i].Code == code {
			return &s.Languages[i]
		}
	}
	return nil
}

// Namespaces returns the union of all namespaces across all configured
// languages, sorted canonically.
func (s *Settings) Namespaces() []string {
	seen := make(map[string]bool)
	var names []string
	for _, lang := range s.Languages {
		for _, f := range lang.Files {
			if !seen[f.Namespace] {
				seen[f.Namespace] = true
				names = append(names, f.Namespace)
			}
		}
	}
	SortKeys(names)
	return names
}

// SettingsStore loads and persists the settings document. The engine reads
// settings fresh at the start of each mutation and saves immediately after
// each structural change.
type SettingsStore interface {
	Load() (*Settings, error)
	Save(*Settings) error
}

// KeyValues is one flattened translation key with one value slot per
// configured language. A nil pointer means the language has no file for the
// namespace or the file lacks the key.
type KeyValues struct {
	Key    string             `json:"key"`
	Values map[string]*string `json:"values"`
}

// NamespaceData is the merged per-namespace view across all configured
// languages. It is recomputed on demand and never persisted.
type NamespaceData struct {
	Namespace string      `json:"namespace"`
	Keys      []KeyValues `json:"keys"`
}

// TreeNode is one node of the UI-facing key tree. A node with Values set and
// no children is a leaf (an actual translation key); a node with children and
// nil Values is a branch (a shared path prefix).
type TreeNode struct {
	Segment  string             `json:"segment"`
	FullKey  string             `json:"fullKey"`
	Children []*TreeNode        `json:"children,omitempty"`
	Values   map[string]*string `json:"values,omitempty"`
}

// IsLeaf reports whether the node carries translation values.
func (n *TreeNode) IsLeaf() bool {
	return n.Values != nil
}

// KeyCount holds completeness accounting for a subtree. A leaf counts as
// missing when any configured language's value is nil or empty.
type KeyCount struct {
	Completed int `json:"completed"`
	Missing   int `json:"missing"`
}

// Total returns the number of leaves counted.
func (c KeyCount) Total() int {
	return c.Completed + c.Missing
}
