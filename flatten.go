package keyhub

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// KeySeparator joins path segments into flattened key names.
const KeySeparator = "."

// collator performs locale-aware, case-insensitive string comparison. The
// collator buffers internally, so access is serialized.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Und, collate.IgnoreCase)
)

// CompareKeys compares two key names in canonical catalog order
// (locale-aware, case-insensitive).
func CompareKeys(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// SortKeys sorts key names in place into canonical catalog order.
func SortKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		return CompareKeys(keys[i], keys[j]) < 0
	})
}

// Flatten converts a nested JSON document into dot-notated key/value pairs.
// Only plain objects are descended into; arrays and primitives are leaf
// values coerced to string.
func Flatten(doc map[string]any, prefix string) map[string]string {
	flat := make(map[string]string)
	flattenInto(flat, doc, prefix)
	return flat
}

func flattenInto(flat map[string]string, doc map[string]any, prefix string) {
	for key, value := range doc {
		full := key
		if prefix != "" {
			full = prefix + KeySeparator + key
		}
		if child, ok := value.(map[string]any); ok {
			flattenInto(flat, child, full)
			continue
		}
		flat[full] = coerceString(value)
	}
}

// Nest rebuilds a nested document from a flattened key map. It is the inverse
// of Flatten modulo value coercion and key order.
func Nest(flat map[string]string) map[string]any {
	doc := make(map[string]any)
	for key, value := range flat {
		SetNestedValue(doc, key, value)
	}
	return doc
}

// SetNestedValue writes value at the dotted key path, creating intermediate
// objects as needed. Non-object ancestors conflicting with the path are
// replaced with fresh objects; the last structural intent wins.
func SetNestedValue(doc map[string]any, dottedKey, value string) {
	segments := strings.Split(dottedKey, KeySeparator)
	node := doc
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[seg] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value
}

// RemoveNestedKey deletes the leaf at the dotted key path, then prunes any
// ancestor object left empty, stopping at the first ancestor that still has
// other children.
func RemoveNestedKey(doc map[string]any, dottedKey string) {
	segments := strings.Split(dottedKey, KeySeparator)

	// Collect the ancestor chain down to the leaf's parent.
	chain := make([]map[string]any, 0, len(segments))
	node := doc
	chain = append(chain, node)
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			return // path does not exist
		}
		node = child
		chain = append(chain, node)
	}

	delete(node, segments[len(segments)-1])

	// Prune empty ancestors from the leaf's parent upward.
	for i := len(chain) - 1; i > 0; i-- {
		if len(chain[i]) > 0 {
			break
		}
		delete(chain[i-1], segments[i-1])
	}
}

// HasKey reports whether the flattened form of doc contains the dotted key.
func HasKey(doc map[string]any, dottedKey string) bool {
	segments := strings.Split(dottedKey, KeySeparator)
	node := doc
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			return false
		}
		node = child
	}
	value, ok := node[segments[len(segments)-1]]
	if !ok {
		return false
	}
	_, isObject := value.(map[string]any)
	return !isObject
}

// MarshalCanonical serializes a document with every object's keys ordered
// canonically (locale-aware, case-insensitive) at every depth, 2-space
// indentation, and a trailing newline. The canonical form keeps the physical
// files diff-friendly under version control.
func MarshalCanonical(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, doc, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, doc map[string]any, depth int) error {
	if len(doc) == 0 {
		buf.WriteString("{}")
		return nil
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	SortKeys(keys)

	indent := strings.Repeat("  ", depth+1)
	buf.WriteString("{\n")
	for i, key := range keys {
		buf.WriteString(indent)
		name, err := json.Marshal(key)
		if err != nil {
			return err
		}
		buf.Write(name)
		buf.WriteString(": ")

		if child, ok := doc[key].(map[string]any); ok {
			if err := writeCanonical(buf, child, depth+1); err != nil {
				return err
			}
		} else {
			leaf, err := json.Marshal(doc[key])
			if err != nil {
				return err
			}
			buf.Write(leaf)
		}

		if i < len(keys)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(strings.Repeat("  ", depth))
	buf.WriteByte('}')
	return nil
}

// ReadDocument reads and parses a JSON translation file. A missing or
// malformed file yields an empty document rather than an error: an unreadable
// namespace file is treated as "exists but is empty" so a partially broken
// catalog stays editable.
func ReadDocument(path string) map[string]any {
	data, err := os.ReadFile(path) // #nosec G304 - catalog files are user-configured
	if err != nil {
		return make(map[string]any)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return make(map[string]any)
	}
	return doc
}

// WriteDocument persists a document to disk in canonical form, creating
// parent directories as needed.
func WriteDocument(path string, doc map[string]any) error {
	data, err := MarshalCanonical(doc)
	if err != nil {
		return &CatalogError{Message: "encoding " + path, Cause: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &CatalogError{Message: "creating directory for " + path, Cause: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &CatalogError{Message: "writing " + path, Cause: err}
	}
	return nil
}

// coerceString converts a JSON leaf value to its string form. Null becomes
// the empty string; arrays and other non-primitives keep their JSON encoding.
func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
