package history

import (
	"context"
	"sync"
)

// TokenInfoCache keeps token metadata so that it is queried once per contract.
type TokenInfoCache interface {
	// LoadTokenInfo returns the cached metadata for the contract on the chain.
	//
	// Returns ErrTokenInfoNotCached on a cache miss.
	LoadTokenInfo(ctx context.Context, chainID, contractAddress string) (TokenInfo, error)

	// SaveTokenInfo stores the metadata for the contract on the chain.
	SaveTokenInfo(ctx context.Context, chainID, contractAddress string, info TokenInfo) error
}

// memoryTokenInfoCache is the process-local TokenInfoCache used by default.
type memoryTokenInfoCache struct {
	mu      sync.RWMutex
	entries map[string]TokenInfo
}

var _ TokenInfoCache = (*memoryTokenInfoCache)(nil)

// NewMemoryTokenInfoCache returns an empty in-memory TokenInfoCache.
func NewMemoryTokenInfoCache() *memoryTokenInfoCache {
	return &memoryTokenInfoCache{
		entries: make(map[string]TokenInfo),
	}
}

func memoryCacheKey(chainID, contractAddress string) string {
	return chainID + "/" + contractAddress
}

func (c *memoryTokenInfoCache) LoadTokenInfo(_ context.Context, chainID, contractAddress string) (TokenInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.entries[memoryCacheKey(chainID, contractAddress)]
	if !ok {
		return TokenInfo{}, ErrTokenInfoNotCached
	}

	return info, nil
}

func (c *memoryTokenInfoCache) SaveTokenInfo(_ context.Context, chainID, contractAddress string, info TokenInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[memoryCacheKey(chainID, contractAddress)] = info
	return nil
}
