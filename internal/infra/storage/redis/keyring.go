package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gabapcia/snip20history/internal/keyring"

	"github.com/redis/go-redis/v9"
)

// keyringKeyPrefix is the Redis key namespace of the keyring.
const keyringKeyPrefix = "keyring"

// keyringAccountKey returns the key holding the account of a chain.
//
// Format: "keyring:account:{chain}"
func keyringAccountKey(chainID string) string {
	return fmt.Sprintf("%s:account:%s", keyringKeyPrefix, chainID)
}

// keyringViewingKeyKey returns the key holding the viewing key of a token.
//
// Format: "keyring:viewingkey:{chain}:{contract}"
func keyringViewingKeyKey(id keyring.TokenID) string {
	return fmt.Sprintf("%s:viewingkey:%s:%s", keyringKeyPrefix, id.ChainID, id.Contract)
}

// keyringSuggestedKey returns the set of tokens waiting for a viewing key on a chain.
//
// Format: "keyring:suggested:{chain}"
func keyringSuggestedKey(chainID string) string {
	return fmt.Sprintf("%s:suggested:%s", keyringKeyPrefix, chainID)
}

// SaveAccount implements keyring.Storage.
func (c *client) SaveAccount(ctx context.Context, id keyring.AccountID) error {
	return c.conn.Set(ctx, keyringAccountKey(id.ChainID), id.Address, 0).Err()
}

// LoadAccount implements keyring.Storage.
func (c *client) LoadAccount(ctx context.Context, chainID string) (string, error) {
	address, err := c.conn.Get(ctx, keyringAccountKey(chainID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", keyring.ErrAccountNotFound
	}

	return address, err
}

// SaveViewingKey implements keyring.Storage. The key is stored and the token
// leaves the suggested set in a single transaction.
func (c *client) SaveViewingKey(ctx context.Context, id keyring.TokenID, key string) error {
	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, keyringViewingKeyKey(id), key, 0)
		pipe.SRem(ctx, keyringSuggestedKey(id.ChainID), id.Contract)
		return nil
	})

	return err
}

// LoadViewingKey implements keyring.Storage.
func (c *client) LoadViewingKey(ctx context.Context, id keyring.TokenID) (string, error) {
	key, err := c.conn.Get(ctx, keyringViewingKeyKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", keyring.ErrViewingKeyNotFound
	}

	return key, err
}

// DeleteViewingKey implements keyring.Storage.
func (c *client) DeleteViewingKey(ctx context.Context, id keyring.TokenID) error {
	return c.conn.Del(ctx, keyringViewingKeyKey(id)).Err()
}

// AddSuggestedToken implements keyring.Storage.
func (c *client) AddSuggestedToken(ctx context.Context, id keyring.TokenID) error {
	return c.conn.SAdd(ctx, keyringSuggestedKey(id.ChainID), id.Contract).Err()
}

// ListSuggestedTokens implements keyring.Storage.
func (c *client) ListSuggestedTokens(ctx context.Context, chainID string) ([]string, error) {
	contracts, err := c.conn.SMembers(ctx, keyringSuggestedKey(chainID)).Result()
	if err != nil {
		return nil, err
	}

	slices.Sort(contracts)
	return contracts, nil
}

// Compile-time assertion to ensure *client satisfies the keyring.Storage interface
var _ keyring.Storage = new(client)
