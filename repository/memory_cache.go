package repository

import (
	"context"
	"sync"
	"time"
)

const memoryCleanupInterval = 1 * time.Minute

type memoryEntry struct {
	value   string
	expires time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && now.After(e.expires)
}

// MemoryCache is an in-process CacheRepository used when no Redis address is configured.
type MemoryCache struct {
	mu          sync.RWMutex
	data        map[string]memoryEntry
	ttl         time.Duration
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

// NewMemoryCache creates a cache whose entries expire after ttl. A zero ttl keeps
// entries forever. With a positive ttl a background loop purges expired entries
// until Close is called.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	m := &MemoryCache{
		data:        make(map[string]memoryEntry),
		ttl:         ttl,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	if ttl > 0 {
		go m.cleanupLoop()
	}
	return m
}

func (m *MemoryCache) cleanupLoop() {
	ticker := time.NewTicker(memoryCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.purge()
		case <-m.stopCleanup:
			return
		}
	}
}

func (m *MemoryCache) purge() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !entry.expired(m.now()) {
		return entry.value, true
	}

	m.mu.Lock()
	// A Set may have replaced the entry since the read lock was released.
	if current, ok := m.data[key]; ok && current.expired(m.now()) {
		delete(m.data, key)
	}
	m.mu.Unlock()
	return "", false
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expires = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.data[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) Ping(context.Context) error {
	return nil
}

func (m *MemoryCache) Name() string {
	return "memory"
}

// Len reports the number of stored entries, expired or not.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Close ends the cleanup goroutine. It is safe to call more than once.
func (m *MemoryCache) Close() error {
	m.stopOnce.Do(func() { close(m.stopCleanup) })
	return nil
}
