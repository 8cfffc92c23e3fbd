package store

// 注意：此包只包含实现，接口定义在 core 包（core.Store）。
//
// 典型用法：给商品向量缓存换一个进程外后端。
//
//	cache := embedding.NewStoreCache(store.NewMemoryStore())
//	// 或多副本共享：
//	rs, _ := store.NewRedisStore("localhost:6379", 0)
//	cache := embedding.NewStoreCache(rs)
