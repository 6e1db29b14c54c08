// Package suggest provides machine-translation suggestions for the KeyHub
// editor. A Suggester wraps a remote Provider (DeepL, OpenAI) with a local
// cache and a running character-usage counter; the remote service is called
// at least once per distinct (text, source, target) triple and the cache
// gates every further request.
package suggest

import (
	"context"
	"sync/atomic"

	"github.com/guilgui51/keyhub"
	"github.com/guilgui51/keyhub/cache"
)

// Request contains the parameters for one suggestion request.
type Request struct {
	Text       string // Source text to translate
	SourceLang string // Source locale code (e.g. "en-US")
	TargetLang string // Target locale code (e.g. "fr-FR")
}

// Provider is the interface for machine-translation backends.
type Provider interface {
	Translate(ctx context.Context, req Request) (string, error)
}

// Suggester is the suggestion engine.
type Suggester struct {
	provider Provider
	cache    cache.SuggestionCache
	usage    atomic.Int64 // characters sent to the remote service
}

// SuggesterOption is a functional option for configuring the Suggester.
type SuggesterOption func(*Suggester)

// WithCache sets the suggestion cache.
func WithCache(c cache.SuggestionCache) SuggesterOption {
	return func(s *Suggester) {
		s.cache = c
	}
}

// NewSuggester creates a suggestion engine backed by the given provider.
func NewSuggester(provider Provider, opts ...SuggesterOption) *Suggester {
	s := &Suggester{provider: provider}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Suggest returns a translation suggestion for text, consulting the cache
// first. Failures surface to the caller so the UI can degrade to showing no
// suggestion; the catalog state is never touched.
func (s *Suggester) Suggest(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	key := keyhub.CacheKey(keyhub.HashText(text), sourceLang, targetLang)

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached, nil
		}
	}

	if s.provider == nil {
		return "", &keyhub.ProviderError{Message: "no provider configured"}
	}

	s.usage.Add(int64(len([]rune(text))))
	result, err := s.provider.Translate(ctx, Request{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		_ = s.cache.Set(key, result) // Ignore cache set errors
	}
	return result, nil
}

// Usage returns the running count of characters sent to the remote service.
func (s *Suggester) Usage() int64 {
	return s.usage.Load()
}
