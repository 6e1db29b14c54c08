// Package cache provides suggestion caching implementations. Machine
// translation suggestions are cached by text hash and language pair so the
// remote service is only called once per distinct source text.
package cache

// SuggestionCache is the interface for suggestion caching.
type SuggestionCache interface {
	// Get retrieves a cached suggestion. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a suggestion in the cache.
	Set(key string, value string) error
}
