// Package secret implements history.QueryClient for Secret Network using a
// JSON-RPC query gateway.
//
// The gateway owns query encryption: it receives plain SNIP-20 queries together
// with the contract code hash and returns decrypted answers.
package secret

import (
	"github.com/gabapcia/snip20history/internal/history"
	"github.com/gabapcia/snip20history/internal/pkg/transport/jsonrpc"
)

// Gateway methods.
const (
	methodContractCodeHash   = "compute_contractCodeHash"
	methodQueryContract      = "compute_queryContract"
	methodTransactionHistory = "snip20_transactionHistory"
	methodTransferHistory    = "snip20_transferHistory"
)

// client implements the history.QueryClient interface for Secret Network.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to reach the gateway
}

// Ensure client implements the history.QueryClient interface at compile time.
var _ history.QueryClient = (*client)(nil)

// NewClient creates a Secret Network query client using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
