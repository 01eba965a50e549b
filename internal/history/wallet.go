package history

import "context"

// Wallet is the capability used to authenticate the user and resolve the
// credentials needed to read private token data. Every method is keyed by the
// network chain id.
//
// Signing and query encryption stay inside the wallet implementation.
type Wallet interface {
	// Enable asks the wallet to expose its accounts for the given chain.
	Enable(ctx context.Context, chainID string) error

	// Account returns the address of the active account on the chain.
	Account(ctx context.Context, chainID string) (string, error)

	// ViewingKey returns the viewing key stored for the contract.
	//
	// Returns ErrViewingKeyNotFound when the wallet does not know the token.
	ViewingKey(ctx context.Context, chainID, contractAddress string) (string, error)

	// SuggestToken asks the wallet to add the token so that a viewing key can
	// be created for it.
	SuggestToken(ctx context.Context, chainID, contractAddress string) error
}
