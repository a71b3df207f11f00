package booking

import "sync"

// resourceLocker serializes check-then-write per resource so two concurrent
// creates against the same resource cannot both pass the availability check.
// Cross-resource operations never contend; no coordination beyond a single
// resource is needed.
type resourceLocker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newResourceLocker() *resourceLocker {
	return &resourceLocker{locks: make(map[int64]*sync.Mutex)}
}

func (l *resourceLocker) lock(resourceID int64) func() {
	l.mu.Lock()
	m, ok := l.locks[resourceID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[resourceID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
