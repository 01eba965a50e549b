package history

import (
	"context"
	"encoding/json"
)

// QueryClient reads contract state from the chain.
type QueryClient interface {
	// ContractCodeHash returns the code hash of the contract deployed at the address.
	ContractCodeHash(ctx context.Context, contractAddress string) (string, error)

	// QueryContract sends a smart query to the contract and returns its raw answer.
	QueryContract(ctx context.Context, contract Contract, query any) (json.RawMessage, error)

	// TransactionHistory returns one page of the rich transaction history.
	//
	// Returns ErrHistoryUnavailable when the contract does not support the query
	// and ErrViewingKeyRejected when the viewing key is refused.
	TransactionHistory(ctx context.Context, req HistoryRequest) ([]Transaction, error)

	// TransferHistory returns one page of the legacy transfer history.
	// It follows the same contract as TransactionHistory.
	TransferHistory(ctx context.Context, req HistoryRequest) ([]Transaction, error)
}
