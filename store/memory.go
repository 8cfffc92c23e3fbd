package store

import (
	"context"
	"sync"
	"time"

	"github.com/rushteam/prodkit/core"
)

// MemoryStore 是内存实现的 Store，用于测试/开发/单副本部署。
// 支持 TTL（过期时间），进程重启后数据丢失。
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]*entry
	clean *time.Ticker
	stop  chan struct{}
}

type entry struct {
	value  []byte
	expire *time.Time
}

func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{
		data:  make(map[string]*entry),
		clean: time.NewTicker(10 * time.Second),
		stop:  make(chan struct{}),
	}
	go ms.cleanup()
	return ms
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.data[key]
	if !ok {
		return nil, core.ErrStoreNotFound
	}
	if e.expire != nil && time.Now().After(*e.expire) {
		return nil, core.ErrStoreNotFound
	}
	return e.value, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl ...int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &entry{value: value}
	if len(ttl) > 0 && ttl[0] > 0 {
		expire := time.Now().Add(time.Duration(ttl[0]) * time.Second)
		e.expire = &expire
	}
	m.data[key] = e
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *MemoryStore) BatchGet(_ context.Context, keys []string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	now := time.Now()
	result := make(map[string][]byte, len(keys))
	for _, key := range keys {
		e, ok := m.data[key]
		if !ok {
			continue
		}
		if e.expire != nil && now.After(*e.expire) {
			continue
		}
		result[key] = e.value
	}
	return result, nil
}

func (m *MemoryStore) BatchSet(ctx context.Context, kvs map[string][]byte, ttl ...int) error {
	for k, v := range kvs {
		if err := m.Set(ctx, k, v, ttl...); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryStore) Close() error {
	close(m.stop)
	m.clean.Stop()
	return nil
}

// cleanup 周期性清理过期条目，避免内存无限增长。
func (m *MemoryStore) cleanup() {
	for {
		select {
		case <-m.clean.C:
			m.removeExpired()
		case <-m.stop:
			return
		}
	}
}

func (m *MemoryStore) removeExpired() {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, e := range m.data {
		if e.expire != nil && now.After(*e.expire) {
			delete(m.data, key)
		}
	}
}
