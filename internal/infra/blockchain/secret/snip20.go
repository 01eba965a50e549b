package secret

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/snip20history/internal/history"
	"github.com/gabapcia/snip20history/internal/pkg/types"
)

// Rich transaction actions.
const (
	actionTransfer = "transfer"
	actionMint     = "mint"
	actionBurn     = "burn"
	actionDeposit  = "deposit"
	actionRedeem   = "redeem"
)

type (
	// contractParams identifies the queried contract.
	contractParams struct {
		Address  string `json:"address"`
		CodeHash string `json:"code_hash"`
	}

	// authParams carries the viewing key of the queried account.
	authParams struct {
		Key string `json:"key"`
	}

	// historyParams are the parameters of both paged history methods.
	historyParams struct {
		Contract contractParams `json:"contract"`
		Address  string         `json:"address"`
		Auth     authParams     `json:"auth"`
		Page     uint32         `json:"page"`
		PageSize uint32         `json:"page_size"`
	}

	// CoinResponse is an amount of a SNIP-20 token.
	CoinResponse struct {
		Denom  string       `json:"denom"`
		Amount types.Amount `json:"amount"`
	}

	// RichTxActionResponse holds exactly one of its fields, naming the kind of transaction.
	RichTxActionResponse struct {
		Transfer *struct {
			From      string `json:"from"`
			Sender    string `json:"sender"`
			Recipient string `json:"recipient"`
		} `json:"transfer"`
		Mint *struct {
			Minter    string `json:"minter"`
			Recipient string `json:"recipient"`
		} `json:"mint"`
		Burn *struct {
			Burner string `json:"burner"`
			Owner  string `json:"owner"`
		} `json:"burn"`
		Deposit *struct{} `json:"deposit"`
		Redeem  *struct{} `json:"redeem"`
	}

	// RichTxResponse is a record of the transaction_history query.
	RichTxResponse struct {
		ID          uint64               `json:"id"`
		Action      RichTxActionResponse `json:"action"`
		Coins       CoinResponse         `json:"coins"`
		Memo        *string              `json:"memo"`
		BlockTime   int64                `json:"block_time"`
		BlockHeight int64                `json:"block_height"`
	}

	// TransferTxResponse is a record of the legacy transfer_history query.
	TransferTxResponse struct {
		ID          uint64       `json:"id"`
		From        string       `json:"from"`
		Sender      string       `json:"sender"`
		Receiver    string       `json:"receiver"`
		Coins       CoinResponse `json:"coins"`
		Memo        *string      `json:"memo"`
		BlockTime   int64        `json:"block_time"`
		BlockHeight int64        `json:"block_height"`
	}

	// txPageResponse is the body shared by both history answers.
	txPageResponse struct {
		Txs   []json.RawMessage `json:"txs"`
		Total *uint64           `json:"total"`
	}

	// historyResponse is the answer of either paged history method. At most
	// one of its fields is set.
	historyResponse struct {
		TransactionHistory *txPageResponse `json:"transaction_history"`
		TransferHistory    *txPageResponse `json:"transfer_history"`
		ViewingKeyError    *struct {
			Msg string `json:"msg"`
		} `json:"viewing_key_error"`
	}
)

func memo(m *string) string {
	if m == nil {
		return ""
	}

	return *m
}

// toHistoryTransaction converts a rich transaction. Deposits and redeems carry
// no counterparty, so the requesting account is reported on the moving side.
func (t RichTxResponse) toHistoryTransaction(account string) (history.Transaction, error) {
	tx := history.Transaction{
		ID:          t.ID,
		Amount:      t.Coins.Amount,
		Denom:       t.Coins.Denom,
		Memo:        memo(t.Memo),
		BlockTime:   t.BlockTime,
		BlockHeight: t.BlockHeight,
	}

	switch a := t.Action; {
	case a.Transfer != nil:
		tx.Action = actionTransfer
		tx.From = a.Transfer.From
		tx.Sender = a.Transfer.Sender
		tx.Receiver = a.Transfer.Recipient
	case a.Mint != nil:
		tx.Action = actionMint
		tx.Sender = a.Mint.Minter
		tx.Receiver = a.Mint.Recipient
	case a.Burn != nil:
		tx.Action = actionBurn
		tx.From = a.Burn.Owner
		tx.Sender = a.Burn.Burner
	case a.Deposit != nil:
		tx.Action = actionDeposit
		tx.Receiver = account
	case a.Redeem != nil:
		tx.Action = actionRedeem
		tx.Sender = account
	default:
		return history.Transaction{}, fmt.Errorf("%w: transaction %d: unknown action", history.ErrMalformedResponse, t.ID)
	}

	return tx, nil
}

// toHistoryTransaction converts a legacy transfer.
func (t TransferTxResponse) toHistoryTransaction() history.Transaction {
	return history.Transaction{
		ID:          t.ID,
		Action:      actionTransfer,
		From:        t.From,
		Sender:      t.Sender,
		Receiver:    t.Receiver,
		Amount:      t.Coins.Amount,
		Denom:       t.Coins.Denom,
		Memo:        memo(t.Memo),
		BlockTime:   t.BlockTime,
		BlockHeight: t.BlockHeight,
	}
}

// newHistoryParams builds the gateway parameters of a paged history call.
func newHistoryParams(req history.HistoryRequest) historyParams {
	return historyParams{
		Contract: contractParams{
			Address:  req.Contract.Address,
			CodeHash: req.Contract.CodeHash,
		},
		Address:  req.Address,
		Auth:     authParams{Key: req.ViewingKey},
		Page:     req.Page,
		PageSize: req.PageSize,
	}
}

// fetchHistory calls a paged history method and decodes the answer. An
// absent or null result is reported as ErrHistoryUnavailable.
func (c *client) fetchHistory(ctx context.Context, method string, req history.HistoryRequest) (historyResponse, error) {
	data, err := c.conn.Fetch(ctx, method, newHistoryParams(req))
	if err != nil {
		return historyResponse{}, err
	}

	if len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return historyResponse{}, history.ErrHistoryUnavailable
	}

	var res historyResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return historyResponse{}, fmt.Errorf("%w: decode %s: %w", history.ErrMalformedResponse, method, err)
	}

	if res.ViewingKeyError != nil {
		return historyResponse{}, fmt.Errorf("%w: %s", history.ErrViewingKeyRejected, res.ViewingKeyError.Msg)
	}

	return res, nil
}

// TransactionHistory returns one page of the rich transaction history.
func (c *client) TransactionHistory(ctx context.Context, req history.HistoryRequest) ([]history.Transaction, error) {
	res, err := c.fetchHistory(ctx, methodTransactionHistory, req)
	if err != nil {
		return nil, err
	}

	if res.TransactionHistory == nil || res.TransactionHistory.Txs == nil {
		return nil, history.ErrHistoryUnavailable
	}

	txs := make([]history.Transaction, 0, len(res.TransactionHistory.Txs))
	for _, raw := range res.TransactionHistory.Txs {
		var r RichTxResponse
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: decode transaction: %w", history.ErrMalformedResponse, err)
		}

		tx, err := r.toHistoryTransaction(req.Address)
		if err != nil {
			return nil, err
		}

		tx.Raw = raw
		txs = append(txs, tx)
	}

	return txs, nil
}

// TransferHistory returns one page of the legacy transfer history.
func (c *client) TransferHistory(ctx context.Context, req history.HistoryRequest) ([]history.Transaction, error) {
	res, err := c.fetchHistory(ctx, methodTransferHistory, req)
	if err != nil {
		return nil, err
	}

	if res.TransferHistory == nil || res.TransferHistory.Txs == nil {
		return nil, history.ErrHistoryUnavailable
	}

	txs := make([]history.Transaction, 0, len(res.TransferHistory.Txs))
	for _, raw := range res.TransferHistory.Txs {
		var r TransferTxResponse
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("%w: decode transfer: %w", history.ErrMalformedResponse, err)
		}

		tx := r.toHistoryTransaction()
		tx.Raw = raw
		txs = append(txs, tx)
	}

	return txs, nil
}
