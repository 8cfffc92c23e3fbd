package embedding

import (
	"context"
	"sync"

	"github.com/rushteam/prodkit/core"
)

// Cache 是商品向量缓存接口。
//
// 只缓存商品向量：EmbedProduct 是纯函数，按商品 ID 记忆化对进程生命周期
// 安全；用户向量依赖请求内交互历史，绝不进入缓存。
type Cache interface {
	Get(ctx context.Context, productID string) ([]float64, bool)
	Set(ctx context.Context, productID string, vec []float64)
}

// MemoryCache 是进程内的商品向量缓存。
//
// 并发约定：生成函数纯且确定，同一 key 的并发写入彼此等价，
// 这里加锁只为避免 map 并发写崩溃与重复计算的浪费，不承担正确性职责。
type MemoryCache struct {
	mu   sync.RWMutex
	vecs map[string][]float64
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{vecs: make(map[string][]float64)}
}

func (c *MemoryCache) Get(_ context.Context, productID string) ([]float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	vec, ok := c.vecs[productID]
	return vec, ok
}

func (c *MemoryCache) Set(_ context.Context, productID string, vec []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vecs[productID] = vec
}

// Len 返回已缓存的商品数（用于测试/观测）。
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.vecs)
}

// CachedGenerator 是 Generator 的记忆化装饰器。
// 商品向量按 ID 走缓存；用户向量直接透传底层生成器。
type CachedGenerator struct {
	Inner Generator
	Cache Cache
}

// NewCachedGenerator 包装生成器；cache 为 nil 时使用进程内缓存。
func NewCachedGenerator(inner Generator, cache Cache) *CachedGenerator {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &CachedGenerator{Inner: inner, Cache: cache}
}

func (g *CachedGenerator) Dim() int { return g.Inner.Dim() }

func (g *CachedGenerator) EmbedProduct(ctx context.Context, p *core.Product) ([]float64, error) {
	if p == nil || p.ID == "" {
		return g.Inner.EmbedProduct(ctx, p)
	}
	if vec, ok := g.Cache.Get(ctx, p.ID); ok {
		return vec, nil
	}
	vec, err := g.Inner.EmbedProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	g.Cache.Set(ctx, p.ID, vec)
	return vec, nil
}

func (g *CachedGenerator) EmbedUser(ctx context.Context, profile *core.UserProfile, interactions []core.Interaction) ([]float64, error) {
	return g.Inner.EmbedUser(ctx, profile, interactions)
}
