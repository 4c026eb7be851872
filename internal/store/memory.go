package store

import (
	"context"
	"sync"
)

// MemoryRemote implements Remote entirely in memory with synchronous
// snapshot fanout. It backs unit tests and preserves arrival order so
// mirrors observe the same ordering Firestore listeners provide.
type MemoryRemote struct {
	mu          sync.Mutex
	collections map[string][]*memoryDoc
	subs        map[string]map[int]SnapshotFunc
	docSubs     map[string]map[int]DocSnapshotFunc
	nextSub     int

	// WriteErr, when set, is returned by Set and Delete to simulate a
	// remote write failure.
	WriteErr error
}

type memoryDoc struct {
	id   string
	data map[string]any
}

// NewMemoryRemote creates an empty in-memory remote store.
func NewMemoryRemote() *MemoryRemote {
	return &MemoryRemote{
		collections: make(map[string][]*memoryDoc),
		subs:        make(map[string]map[int]SnapshotFunc),
		docSubs:     make(map[string]map[int]DocSnapshotFunc),
	}
}

func (m *MemoryRemote) Subscribe(ctx context.Context, collection string, fn SnapshotFunc) (CancelFunc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.subs[collection] == nil {
		m.subs[collection] = make(map[int]SnapshotFunc)
	}
	id := m.nextSub
	m.nextSub++
	m.subs[collection][id] = fn

	// Initial snapshot, like a Firestore listener.
	fn(m.snapshotLocked(collection))

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs[collection], id)
	}, nil
}

func (m *MemoryRemote) SubscribeDoc(ctx context.Context, collection, id string, fn DocSnapshotFunc) (CancelFunc, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := collection + "/" + id
	if m.docSubs[key] == nil {
		m.docSubs[key] = make(map[int]DocSnapshotFunc)
	}
	subID := m.nextSub
	m.nextSub++
	m.docSubs[key][subID] = fn

	if d := m.findLocked(collection, id); d != nil {
		fn(Document{ID: d.id, Data: d.data}, true)
	} else {
		fn(Document{ID: id}, false)
	}

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.docSubs[key], subID)
	}, nil
}

func (m *MemoryRemote) Set(ctx context.Context, collection, id string, record any) error {
	data, err := Encode(record)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}

	if d := m.findLocked(collection, id); d != nil {
		d.data = data
	} else {
		m.collections[collection] = append(m.collections[collection], &memoryDoc{id: id, data: data})
	}
	m.notifyLocked(collection, id)
	return nil
}

func (m *MemoryRemote) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}

	docs := m.collections[collection]
	for i, d := range docs {
		if d.id == id {
			m.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			break
		}
	}
	m.notifyLocked(collection, id)
	return nil
}

func (m *MemoryRemote) Read(ctx context.Context, collection, id string) (Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d := m.findLocked(collection, id); d != nil {
		return Document{ID: d.id, Data: d.data}, nil
	}
	return Document{}, ErrNotFound
}

func (m *MemoryRemote) Query(ctx context.Context, collection, field, op string, value any) ([]Document, error) {
	if op != "==" {
		return m.List(ctx, collection)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Document
	for _, d := range m.collections[collection] {
		if d.data[field] == value {
			out = append(out, Document{ID: d.id, Data: d.data})
		}
	}
	return out, nil
}

func (m *MemoryRemote) List(ctx context.Context, collection string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked(collection), nil
}

func (m *MemoryRemote) findLocked(collection, id string) *memoryDoc {
	for _, d := range m.collections[collection] {
		if d.id == id {
			return d
		}
	}
	return nil
}

func (m *MemoryRemote) snapshotLocked(collection string) []Document {
	docs := m.collections[collection]
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, Document{ID: d.id, Data: d.data})
	}
	return out
}

// notifyLocked fans the new authoritative state out to every subscriber,
// synchronously and under the store lock so delivery order matches write
// order and a cancelled subscription can never receive a late snapshot.
func (m *MemoryRemote) notifyLocked(collection, id string) {
	snap := m.snapshotLocked(collection)
	for _, fn := range m.subs[collection] {
		fn(snap)
	}
	key := collection + "/" + id
	if len(m.docSubs[key]) > 0 {
		if d := m.findLocked(collection, id); d != nil {
			for _, fn := range m.docSubs[key] {
				fn(Document{ID: d.id, Data: d.data}, true)
			}
		} else {
			for _, fn := range m.docSubs[key] {
				fn(Document{ID: id}, false)
			}
		}
	}
}

// Compile-time interface check
var _ Remote = (*MemoryRemote)(nil)
