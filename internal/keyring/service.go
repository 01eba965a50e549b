package keyring

import (
	"context"

	"github.com/gabapcia/snip20history/internal/pkg/validator"
)

// Service defines the operator-facing management of the keyring.
//
// Implementations validate their input and delegate persistence to the
// configured Storage.
type Service interface {
	// RegisterAccount sets the account whose history is fetched on the chain.
	RegisterAccount(ctx context.Context, chainID, address string) error

	// AddViewingKey stores the viewing key of a token. The token leaves the
	// pending list if it was suggested.
	AddViewingKey(ctx context.Context, chainID, contract, key string) error

	// RemoveViewingKey deletes the viewing key of a token.
	RemoveViewingKey(ctx context.Context, chainID, contract string) error

	// PendingTokens lists the tokens suggested during a fetch that still have
	// no viewing key.
	PendingTokens(ctx context.Context, chainID string) ([]string, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage Storage
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a keyring service backed by storage.
func New(storage Storage) *service {
	return &service{
		storage: storage,
	}
}

func (s *service) RegisterAccount(ctx context.Context, chainID, address string) error {
	id, err := buildAccountID(chainID, address)
	if err != nil {
		return err
	}

	return s.storage.SaveAccount(ctx, id)
}

func (s *service) AddViewingKey(ctx context.Context, chainID, contract, key string) error {
	in := viewingKeyInput{
		TokenID: TokenID{ChainID: chainID, Contract: contract},
		Key:     key,
	}
	if err := validator.Validate(in); err != nil {
		return err
	}

	return s.storage.SaveViewingKey(ctx, in.TokenID, in.Key)
}

func (s *service) RemoveViewingKey(ctx context.Context, chainID, contract string) error {
	id, err := buildTokenID(chainID, contract)
	if err != nil {
		return err
	}

	return s.storage.DeleteViewingKey(ctx, id)
}

func (s *service) PendingTokens(ctx context.Context, chainID string) ([]string, error) {
	return s.storage.ListSuggestedTokens(ctx, chainID)
}
