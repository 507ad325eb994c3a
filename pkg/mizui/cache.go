package mizui

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

// 缓存 key 前缀，模板原文与编译结果共用同一个 [Cache]。
const (
	templateKeyPrefix = "template:"
	compiledKeyPrefix = "compiled:"
)

// Cache 模板原文与编译结果的存储。
//
// 实现需自行保证并发安全；淘汰策略由实现决定。
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// MapCache 无界、永不淘汰的缓存。
//
// 条目一旦写入不会因文件变化而失效。
type MapCache struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewMapCache 创建空的 MapCache。
func NewMapCache() *MapCache {
	return &MapCache{entries: make(map[string]any)}
}

// Get 实现 [Cache]。
func (c *MapCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]

	return v, ok
}

// Set 实现 [Cache]。
func (c *MapCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Len 返回条目数。
func (c *MapCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// LRUCache 按最近最少使用淘汰的有界缓存。
type LRUCache struct {
	cache *lru.Cache
}

// NewLRUCache 创建最多保存 size 个条目的 LRUCache。
func NewLRUCache(size int) (*LRUCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("mizui: create lru cache: %w", err)
	}

	return &LRUCache{cache: c}, nil
}

// Get 实现 [Cache]。
func (c *LRUCache) Get(key string) (any, bool) {
	return c.cache.Get(key)
}

// Set 实现 [Cache]。
func (c *LRUCache) Set(key string, value any) {
	c.cache.Add(key, value)
}

// Len 返回条目数。
func (c *LRUCache) Len() int {
	return c.cache.Len()
}
