package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/jardinverde/gardenia/internal/common"
)

// Mirror keeps the local typed copy of one remote collection. Every
// snapshot replaces the contents wholesale; snapshots are applied in
// delivery order and never coalesced.
type Mirror[T any] struct {
	name string

	mu    sync.RWMutex
	items []T
}

// NewMirror creates an empty mirror for the named collection.
func NewMirror[T any](name string) *Mirror[T] {
	return &Mirror[T]{name: name}
}

// Apply replaces the mirror contents with the given snapshot. Documents
// that fail to decode are logged and skipped; the rest of the snapshot
// still applies, so a malformed record renders as absent rather than
// wedging the whole collection.
func (m *Mirror[T]) Apply(docs []Document) {
	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := Decode(doc.Data, &v); err != nil {
			common.Logger().Warn("skipping undecodable document",
				zap.String("collection", m.name), zap.String("id", doc.ID), zap.Error(err))
			continue
		}
		items = append(items, v)
	}

	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
}

// Items returns a copy of the mirrored collection in arrival order.
func (m *Mirror[T]) Items() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// Len reports the number of mirrored records.
func (m *Mirror[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Clear empties the mirror. Used when a protected collection loses its
// session; a stale protected mirror surviving past logout is a bug.
func (m *Mirror[T]) Clear() {
	m.mu.Lock()
	m.items = nil
	m.mu.Unlock()
}

// Find returns the first record matching pred.
func (m *Mirror[T]) Find(pred func(T) bool) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, it := range m.items {
		if pred(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Singleton mirrors one configuration document, falling back to a default
// value while the document is absent.
type Singleton[T any] struct {
	name string

	mu    sync.RWMutex
	value T
}

// NewSingleton creates a singleton mirror seeded with def.
func NewSingleton[T any](name string, def T) *Singleton[T] {
	return &Singleton[T]{name: name, value: def}
}

// Apply decodes the document onto the current value. A missing document
// keeps the current value; partial documents only overwrite the fields
// they carry.
func (s *Singleton[T]) Apply(doc Document, exists bool) {
	if !exists {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.value
	if err := s.decode(doc, &v); err != nil {
		common.Logger().Warn("skipping undecodable config document",
			zap.String("doc", s.name), zap.Error(err))
		return
	}
	s.value = v
}

func (s *Singleton[T]) decode(doc Document, out *T) error {
	return Decode(doc.Data, out)
}

// Get returns the current value.
func (s *Singleton[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the current value. Only used to reset between tests.
func (s *Singleton[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
}
