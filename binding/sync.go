package binding

import "sync"

// syncMap holds compiled field plans per struct type, written once per type and read on every Bind/Render
type syncMap[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

func (m *syncMap[K, V]) get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

func (m *syncMap[K, V]) put(k K, v V) {
	m.mux.Lock()
	m.m[k] = v
	m.mux.Unlock()
}

func newSyncMap[K comparable, V any]() *syncMap[K, V] {
	return &syncMap[K, V]{m: make(map[K]V)}
}
