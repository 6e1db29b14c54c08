package keyhub

import (
	"sync"

	glog "github.com/goliatone/go-logger/glog"
)

// Catalog is the translation catalog engine. All reads and mutations of the
// on-disk file tree and of the settings document go through it; the UI layer
// and the key-intake HTTP server share one instance.
type Catalog struct {
	store  SettingsStore
	logger glog.Logger
	events *Events

	// settingsMu serializes load -> mutate -> persist sequences so concurrent
	// operations observe a monotonically updated configuration.
	settingsMu sync.Mutex
	locks      *pathLocks
}

// CatalogOption is a functional option for configuring the Catalog.
type CatalogOption func(*Catalog)

// WithLogger sets the logger used for degraded-read and mutation diagnostics.
// Without one the engine stays silent.
func WithLogger(logger glog.Logger) CatalogOption {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithEvents sets the event hub notified after mutations.
func WithEvents(events *Events) CatalogOption {
	return func(c *Catalog) {
		c.events = events
	}
}

// NewCatalog creates a catalog engine backed by the given settings store.
func NewCatalog(store SettingsStore, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		store:  store,
		events: NewEvents(),
		locks:  newPathLocks(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Events returns the catalog's event hub so callers can subscribe.
func (c *Catalog) Events() *Events {
	return c.events
}

// Settings returns the current settings snapshot.
func (c *Catalog) Settings() (*Settings, error) {
	s, err := c.store.Load()
	if err != nil {
		return nil, &StoreError{Message: "loading settings", Cause: err}
	}
	return s, nil
}

func (c *Catalog) debugf(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Catalog) warnf(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}

func (c *Catalog) infof(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Info(msg, args...)
	}
}
