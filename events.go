package keyhub

import "sync"

// KeysReceived carries the payload of a key-intake notification: the
// namespace and the keys newly registered by an external application.
type KeysReceived struct {
	Namespace string   `json:"namespace"`
	Keys      []string `json:"keys"`
}

// Events dispatches catalog notifications to subscribed listeners. The
// keys-received event fires asynchronously so the HTTP intake handler never
// blocks on UI listeners; the translations-changed signal fires after any
// structural mutation so consumers can refresh their projection.
type Events struct {
	mu           sync.RWMutex
	keysReceived []func(KeysReceived)
	changed      []func()
}

// NewEvents creates an empty event hub.
func NewEvents() *Events {
	return &Events{}
}

// OnKeysReceived subscribes to key-intake notifications.
func (e *Events) OnKeysReceived(fn func(KeysReceived)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.keysReceived = append(e.keysReceived, fn)
}

// OnTranslationsChanged subscribes to the generic change signal.
func (e *Events) OnTranslationsChanged(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.changed = append(e.changed, fn)
}

func (e *Events) emitKeysReceived(namespace string, keys []string) {
	if e == nil || len(keys) == 0 {
		return
	}
	e.mu.RLock()
	listeners := make([]func(KeysReceived), len(e.keysReceived))
	copy(listeners, e.keysReceived)
	e.mu.RUnlock()

	payload := KeysReceived{Namespace: namespace, Keys: keys}
	go func() {
		for _, fn := range listeners {
			fn(payload)
		}
	}()
}

func (e *Events) emitChanged() {
	if e == nil {
		return
	}
	e.mu.RLock()
	listeners := make([]func(), len(e.changed))
	copy(listeners, e.changed)
	e.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
