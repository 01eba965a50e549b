// Package keyring stores the credentials a history fetch needs: the account
// registered for each chain and the viewing keys of the tokens it reads.
//
// It stands in for a browser wallet extension. Tokens suggested during a fetch
// are kept in a pending list until the operator adds their viewing key.
package keyring

import (
	"context"
	"errors"

	"github.com/gabapcia/snip20history/internal/history"
	"github.com/gabapcia/snip20history/internal/pkg/validator"
)

var (
	// ErrAccountNotFound is returned when no account is registered for a chain.
	ErrAccountNotFound = errors.New("no account registered for this chain")

	// ErrViewingKeyNotFound is returned when no viewing key is stored for a token.
	// It is the same error history.Wallet implementations must report.
	ErrViewingKeyNotFound = history.ErrViewingKeyNotFound
)

// AccountID identifies the account used on a chain.
type AccountID struct {
	ChainID string `name:"chain" validate:"required"`
	Address string `name:"address" validate:"required,min=16"`
}

// TokenID identifies a SNIP-20 token contract on a chain.
type TokenID struct {
	ChainID  string `name:"chain" validate:"required"`
	Contract string `name:"contract" validate:"required,min=16"`
}

// viewingKeyInput is the validated input of AddViewingKey.
type viewingKeyInput struct {
	TokenID
	Key string `name:"key" validate:"required"`
}

// Storage defines the persistence interface of the keyring.
type Storage interface {
	// SaveAccount sets the account used on id.ChainID, replacing any previous one.
	SaveAccount(ctx context.Context, id AccountID) error

	// LoadAccount returns the account address registered for the chain.
	//
	// Returns ErrAccountNotFound when none is registered.
	LoadAccount(ctx context.Context, chainID string) (string, error)

	// SaveViewingKey stores the viewing key of the token and clears any pending
	// suggestion for it.
	SaveViewingKey(ctx context.Context, id TokenID, key string) error

	// LoadViewingKey returns the viewing key stored for the token.
	//
	// Returns ErrViewingKeyNotFound when none is stored.
	LoadViewingKey(ctx context.Context, id TokenID) (string, error)

	// DeleteViewingKey removes the viewing key of the token. It is idempotent.
	DeleteViewingKey(ctx context.Context, id TokenID) error

	// AddSuggestedToken records the token as waiting for a viewing key. It is idempotent.
	AddSuggestedToken(ctx context.Context, id TokenID) error

	// ListSuggestedTokens returns the contracts waiting for a viewing key on the chain,
	// sorted by address.
	ListSuggestedTokens(ctx context.Context, chainID string) ([]string, error)
}

// buildTokenID constructs and validates a TokenID.
func buildTokenID(chainID, contract string) (TokenID, error) {
	id := TokenID{
		ChainID:  chainID,
		Contract: contract,
	}

	return id, validator.Validate(id)
}

// buildAccountID constructs and validates an AccountID.
func buildAccountID(chainID, address string) (AccountID, error) {
	id := AccountID{
		ChainID: chainID,
		Address: address,
	}

	return id, validator.Validate(id)
}
