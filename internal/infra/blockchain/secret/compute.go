package secret

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/snip20history/internal/history"
)

// ErrEmptyCodeHash is returned when the gateway answers a code hash lookup with an empty value.
var ErrEmptyCodeHash = errors.New("empty code hash")

type (
	// codeHashParams are the parameters of compute_contractCodeHash.
	codeHashParams struct {
		ContractAddress string `json:"contract_address"`
	}

	// queryContractParams are the parameters of compute_queryContract.
	queryContractParams struct {
		ContractAddress string `json:"contract_address"`
		CodeHash        string `json:"code_hash"`
		Query           any    `json:"query"`
	}
)

// ContractCodeHash returns the code hash of the contract deployed at contractAddress.
func (c *client) ContractCodeHash(ctx context.Context, contractAddress string) (string, error) {
	data, err := c.conn.Fetch(ctx, methodContractCodeHash, codeHashParams{ContractAddress: contractAddress})
	if err != nil {
		return "", err
	}

	var codeHash string
	if err := json.Unmarshal(data, &codeHash); err != nil {
		return "", fmt.Errorf("%w: decode code hash: %w", history.ErrMalformedResponse, err)
	}

	if codeHash == "" {
		return "", fmt.Errorf("%w: %w", history.ErrMalformedResponse, ErrEmptyCodeHash)
	}

	return codeHash, nil
}

// QueryContract sends query to the contract and returns the decrypted answer as is.
func (c *client) QueryContract(ctx context.Context, contract history.Contract, query any) (json.RawMessage, error) {
	return c.conn.Fetch(ctx, methodQueryContract, queryContractParams{
		ContractAddress: contract.Address,
		CodeHash:        contract.CodeHash,
		Query:           query,
	})
}
