package console

import "sync"

// keyedInflight marks mutations that are currently running, keyed by
// resource+row. A double-click on an approve button must not issue the
// upstream request twice; the second attempt gets a 409 instead.
type keyedInflight struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newKeyedInflight() *keyedInflight {
	return &keyedInflight{keys: make(map[string]struct{})}
}

// TryAcquire reserves the key. Returns false when the same mutation is
// already running.
func (k *keyedInflight) TryAcquire(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	if _, busy := k.keys[key]; busy {
		return false
	}
	k.keys[key] = struct{}{}
	return true
}

func (k *keyedInflight) Release(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.keys, key)
}
