// Package history retrieves the complete transaction history of a SNIP-20
// token for the account held by a wallet, and derives filtered views of it.
//
// A fetch authenticates through a Wallet, resolves the contract code hash and
// the viewing key, reads the token metadata once per contract, and then walks
// the paged history queries of a QueryClient until a short or empty page is
// returned. Any failure aborts the fetch and discards partial results.
package history

import (
	"encoding/json"
	"errors"

	"github.com/gabapcia/snip20history/internal/pkg/types"
)

// DefaultPageSize is the number of records requested per history page.
const DefaultPageSize uint32 = 1000

var (
	// ErrInvalidContractAddress is returned when the contract address fails validation.
	// No wallet or network call is made in that case.
	ErrInvalidContractAddress = errors.New("invalid contract address")

	// ErrCodeHashUnavailable is returned when the contract code hash cannot be resolved.
	ErrCodeHashUnavailable = errors.New("contract code hash unavailable")

	// ErrViewingKeyNotFound is returned by a Wallet when it holds no viewing key for a contract.
	ErrViewingKeyNotFound = errors.New("viewing key not found")

	// ErrTokenSuggested is returned after a missing viewing key led to the token
	// being suggested to the wallet. The fetch can be retried once the key exists.
	ErrTokenSuggested = errors.New("token suggested to wallet, viewing key pending")

	// ErrTokenInfoUnavailable is returned when the contract does not answer the token_info query.
	ErrTokenInfoUnavailable = errors.New("token info unavailable")

	// ErrTokenInfoNotCached is returned by a TokenInfoCache on a cache miss.
	ErrTokenInfoNotCached = errors.New("token info not cached")

	// ErrHistoryUnavailable is returned by a paged history query whose response
	// carries no structured result.
	ErrHistoryUnavailable = errors.New("history query returned no result")

	// ErrViewingKeyRejected is returned when the contract refuses the viewing key.
	ErrViewingKeyRejected = errors.New("viewing key rejected")

	// ErrMalformedResponse is returned by a QueryClient when an answer cannot
	// be decoded. Asking again yields the same answer.
	ErrMalformedResponse = errors.New("malformed query response")
)

// Contract identifies a deployed SNIP-20 contract.
type Contract struct {
	Address  string // Bech32 contract address
	CodeHash string // Hash of the deployed code, required by encrypted queries
}

// TokenInfo holds the token metadata used for display and export scaling.
type TokenInfo struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// Transaction is a single history record.
//
// Sender and Receiver are normalized across the primary (rich transaction)
// and fallback (legacy transfer) history formats. Raw keeps the record exactly
// as the provider returned it.
type Transaction struct {
	ID          uint64
	Action      string // transfer, mint, burn, deposit or redeem
	From        string // owner of the moved funds, when the provider reports it
	Sender      string
	Receiver    string
	Amount      types.Amount
	Denom       string
	Memo        string
	BlockTime   int64
	BlockHeight int64
	Raw         json.RawMessage
}

// History is the outcome of a successful fetch.
type History struct {
	Contract     Contract
	Token        TokenInfo
	Transactions []Transaction
}

// HistoryRequest describes one call to a paged history query.
type HistoryRequest struct {
	Contract   Contract
	Address    string // account whose history is requested
	ViewingKey string
	Page       uint32
	PageSize   uint32
}

// fetchRequest carries the user input validated before any call is made.
type fetchRequest struct {
	ContractAddress string `name:"contract" validate:"required,min=16"`
}
