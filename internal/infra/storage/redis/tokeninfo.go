package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gabapcia/snip20history/internal/history"

	"github.com/redis/go-redis/v9"
)

// historyKeyPrefix is the Redis key namespace of the history cache.
const historyKeyPrefix = "history"

// Hash fields of a cached token.
const (
	tokenFieldName     = "name"
	tokenFieldSymbol   = "symbol"
	tokenFieldDecimals = "decimals"
)

// tokenInfoKey returns the hash holding the metadata of a token.
//
// Format: "history:token:{chain}:{contract}"
func tokenInfoKey(chainID, contractAddress string) string {
	return fmt.Sprintf("%s:token:%s:%s", historyKeyPrefix, chainID, contractAddress)
}

// LoadTokenInfo implements history.TokenInfoCache.
//
// A hash without the decimals field counts as a miss.
func (c *client) LoadTokenInfo(ctx context.Context, chainID, contractAddress string) (history.TokenInfo, error) {
	fields, err := c.conn.HGetAll(ctx, tokenInfoKey(chainID, contractAddress)).Result()
	if err != nil {
		return history.TokenInfo{}, err
	}

	rawDecimals, ok := fields[tokenFieldDecimals]
	if !ok {
		return history.TokenInfo{}, history.ErrTokenInfoNotCached
	}

	decimals, err := strconv.ParseUint(rawDecimals, 10, 8)
	if err != nil {
		return history.TokenInfo{}, fmt.Errorf("invalid cached decimals %q: %w", rawDecimals, err)
	}

	return history.TokenInfo{
		Name:     fields[tokenFieldName],
		Symbol:   fields[tokenFieldSymbol],
		Decimals: uint8(decimals),
	}, nil
}

// SaveTokenInfo implements history.TokenInfoCache.
func (c *client) SaveTokenInfo(ctx context.Context, chainID, contractAddress string, info history.TokenInfo) error {
	key := tokenInfoKey(chainID, contractAddress)

	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			tokenFieldName, info.Name,
			tokenFieldSymbol, info.Symbol,
			tokenFieldDecimals, strconv.FormatUint(uint64(info.Decimals), 10),
		)
		if c.tokenInfoTTL > 0 {
			pipe.Expire(ctx, key, c.tokenInfoTTL)
		}
		return nil
	})

	return err
}

// Compile-time assertion to ensure *client satisfies the history.TokenInfoCache interface
var _ history.TokenInfoCache = new(client)
