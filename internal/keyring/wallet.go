package keyring

import (
	"context"

	"github.com/gabapcia/snip20history/internal/history"
)

// Wallet exposes the keyring as a history.Wallet.
type Wallet struct {
	storage Storage
}

var _ history.Wallet = (*Wallet)(nil)

// NewWallet returns a Wallet reading credentials from storage.
func NewWallet(storage Storage) *Wallet {
	return &Wallet{
		storage: storage,
	}
}

// Enable fails with ErrAccountNotFound when no account is registered for the chain.
func (w *Wallet) Enable(ctx context.Context, chainID string) error {
	_, err := w.storage.LoadAccount(ctx, chainID)
	return err
}

func (w *Wallet) Account(ctx context.Context, chainID string) (string, error) {
	return w.storage.LoadAccount(ctx, chainID)
}

func (w *Wallet) ViewingKey(ctx context.Context, chainID, contractAddress string) (string, error) {
	id, err := buildTokenID(chainID, contractAddress)
	if err != nil {
		return "", err
	}

	return w.storage.LoadViewingKey(ctx, id)
}

// SuggestToken adds the token to the pending list shown by Service.PendingTokens.
func (w *Wallet) SuggestToken(ctx context.Context, chainID, contractAddress string) error {
	id, err := buildTokenID(chainID, contractAddress)
	if err != nil {
		return err
	}

	return w.storage.AddSuggestedToken(ctx, id)
}
