package embedding

import (
	"context"
	"encoding/json"

	"github.com/rushteam/prodkit/core"
)

// StoreCache 是基于 core.Store 的商品向量缓存，
// 多副本部署时可用 store.RedisStore 让各副本共享一份缓存。
//
// 读写失败一律降级为 cache miss：缓存只是避免重复计算的优化，
// 不允许影响评分链路的可用性。
type StoreCache struct {
	Store core.Store

	// KeyPrefix 缓存 key 前缀，默认 "prodkit:emb:"
	KeyPrefix string

	// TTL 过期秒数，0 表示不过期
	TTL int
}

func NewStoreCache(s core.Store) *StoreCache {
	return &StoreCache{Store: s, KeyPrefix: "prodkit:emb:"}
}

func (c *StoreCache) key(productID string) string {
	prefix := c.KeyPrefix
	if prefix == "" {
		prefix = "prodkit:emb:"
	}
	return prefix + productID
}

func (c *StoreCache) Get(ctx context.Context, productID string) ([]float64, bool) {
	data, err := c.Store.Get(ctx, c.key(productID))
	if err != nil {
		return nil, false
	}
	var vec []float64
	if err := json.Unmarshal(data, &vec); err != nil {
		return nil, false
	}
	return vec, true
}

func (c *StoreCache) Set(ctx context.Context, productID string, vec []float64) {
	data, err := json.Marshal(vec)
	if err != nil {
		return
	}
	if c.TTL > 0 {
		_ = c.Store.Set(ctx, c.key(productID), data, c.TTL)
		return
	}
	_ = c.Store.Set(ctx, c.key(productID), data)
}
