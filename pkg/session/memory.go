package session

import (
	"container/list"
	"context"
	"maps"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory.
// Expired sessions are removed by a background janitor. When a capacity is
// set, the least recently used session is evicted to make room.
type MemoryStore struct {
	items   map[string]*list.Element
	order   *list.List
	done    chan struct{}
	maxSize int
	mu      sync.Mutex
	closed  bool
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*memoryConfig)

type memoryConfig struct {
	cleanupInterval time.Duration
	maxSize         int
}

// WithCleanupInterval sets how often expired sessions are swept.
// Zero disables the janitor. Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(c *memoryConfig) { c.cleanupInterval = d }
}

// WithMaxSessions caps the number of stored sessions. Zero means unlimited.
func WithMaxSessions(n int) MemoryOption {
	return func(c *memoryConfig) { c.maxSize = n }
}

// NewMemoryStore creates an in-memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	cfg := memoryConfig{cleanupInterval: time.Minute}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &MemoryStore{
		items:   make(map[string]*list.Element),
		order:   list.New(),
		done:    make(chan struct{}),
		maxSize: cfg.maxSize,
	}
	if cfg.cleanupInterval > 0 {
		go m.janitor(cfg.cleanupInterval)
	}
	return m
}

// Load returns a copy of the stored session so callers cannot mutate the store.
func (m *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	elem, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	s := elem.Value.(*Session)
	if s.IsExpired() {
		m.remove(elem)
		return nil, ErrNotFound
	}

	m.order.MoveToFront(elem)
	return clone(s), nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	stored := clone(s)
	if elem, ok := m.items[s.ID]; ok {
		elem.Value = stored
		m.order.MoveToFront(elem)
		return nil
	}

	if m.maxSize > 0 && len(m.items) >= m.maxSize {
		if oldest := m.order.Back(); oldest != nil {
			m.remove(oldest)
		}
	}
	m.items[s.ID] = m.order.PushFront(stored)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if elem, ok := m.items[id]; ok {
		m.remove(elem)
	}
	return nil
}

// Len returns the number of stored sessions, expired ones included until swept.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops the janitor. It is safe to call more than once.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	close(m.done)
	return nil
}

func (m *MemoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *MemoryStore) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for elem := m.order.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*Session).IsExpired() {
			m.remove(elem)
		}
		elem = prev
	}
}

// remove must be called with the mutex held.
func (m *MemoryStore) remove(elem *list.Element) {
	m.order.Remove(elem)
	delete(m.items, elem.Value.(*Session).ID)
}

// clone copies s as a persisted session: stored and loaded copies are never new or dirty.
func clone(s *Session) *Session {
	c := *s
	c.dirty = false
	c.isNew = false
	c.Values = maps.Clone(s.Values)
	if c.Values == nil {
		c.Values = make(map[string]string)
	}
	return &c
}

var _ Store = (*MemoryStore)(nil)
