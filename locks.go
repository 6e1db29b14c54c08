package keyhub

import "sync"

// pathLocks serializes read-modify-write sequences against individual file
// paths. The key-intake HTTP handler and UI-triggered mutations may target
// the same physical file concurrently; at most one writer per path may run at
// a time or one writer's change could be lost.
type pathLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPathLocks() *pathLocks {
	return &pathLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for path and returns its release function.
func (p *pathLocks) acquire(path string) func() {
	p.mu.Lock()
	lock, ok := p.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[path] = lock
	}
	p.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// mutateFile runs fn against the parsed document at path under the path's
// lock and writes the document back when fn reports a change.
func (c *Catalog) mutateFile(path string, fn func(doc map[string]any) bool) error {
	release := c.locks.acquire(path)
	defer release()

	doc := ReadDocument(path)
	if !fn(doc) {
		return nil
	}
	return WriteDocument(path, doc)
}
