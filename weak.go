package validatorjs

import (
	"runtime"
	"sync"
	"weak"
)

// WeakSet holds Objects without keeping them alive.  Membership is by
// identity only and the set cannot be enumerated; an entry vanishes once
// its Object has been collected.
//
// A WeakSet is safe for concurrent use.  The zero value is empty.
type WeakSet struct {
	mu    sync.Mutex
	items map[weak.Pointer[Object]]runtime.Cleanup
}

// NewWeakSet creates an empty WeakSet.
func NewWeakSet() *WeakSet {
	return &WeakSet{}
}

// Add inserts o.  A nil Object is ignored.
func (s *WeakSet) Add(o *Object) {
	if o == nil {
		return
	}
	p := weak.Make(o)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[p]; ok {
		return
	}
	if s.items == nil {
		s.items = make(map[weak.Pointer[Object]]runtime.Cleanup)
	}
	s.items[p] = runtime.AddCleanup(o, s.evict, p)
}

// Has reports whether o is a member.
func (s *WeakSet) Has(o *Object) bool {
	if s == nil || o == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[weak.Make(o)]
	return ok
}

// Delete removes o and reports whether it was a member.
func (s *WeakSet) Delete(o *Object) bool {
	if s == nil || o == nil {
		return false
	}
	p := weak.Make(o)
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.items[p]
	if !ok {
		return false
	}
	c.Stop()
	delete(s.items, p)
	return true
}

func (s *WeakSet) evict(p weak.Pointer[Object]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, p)
}

type weakEntry struct {
	value   Value
	cleanup runtime.Cleanup
}

// WeakMap associates Values with Objects without keeping the Objects
// alive.  Values are held strongly: a value that references its own key
// keeps that entry forever.
//
// A WeakMap is safe for concurrent use.  The zero value is empty.
type WeakMap struct {
	mu      sync.Mutex
	entries map[weak.Pointer[Object]]weakEntry
}

// NewWeakMap creates an empty WeakMap.
func NewWeakMap() *WeakMap {
	return &WeakMap{}
}

// Set stores value under key.  A nil key is ignored.
func (m *WeakMap) Set(key *Object, value Value) {
	if key == nil {
		return
	}
	p := weak.Make(key)
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[p]; ok {
		e.value = value
		m.entries[p] = e
		return
	}
	if m.entries == nil {
		m.entries = make(map[weak.Pointer[Object]]weakEntry)
	}
	m.entries[p] = weakEntry{value: value, cleanup: runtime.AddCleanup(key, m.evict, p)}
}

// Get returns the value stored under key.
func (m *WeakMap) Get(key *Object) (Value, bool) {
	if m == nil || key == nil {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[weak.Make(key)]
	return e.value, ok
}

// Has reports whether key is present.
func (m *WeakMap) Has(key *Object) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and reports whether it was present.
func (m *WeakMap) Delete(key *Object) bool {
	if m == nil || key == nil {
		return false
	}
	p := weak.Make(key)
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[p]
	if !ok {
		return false
	}
	e.cleanup.Stop()
	delete(m.entries, p)
	return true
}

func (m *WeakMap) evict(p weak.Pointer[Object]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, p)
}
