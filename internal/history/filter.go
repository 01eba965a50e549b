package history

import "github.com/shopspring/decimal"

// Filter holds the user-entered predicates. A zero-valued field is inactive.
type Filter struct {
	// Sender keeps records whose Sender equals this address.
	Sender string
	// Receiver keeps records whose Receiver equals this address.
	Receiver string
	// MinAmount keeps records whose scaled amount is at least this value.
	// Active only when positive.
	MinAmount decimal.Decimal
}

// IsZero reports whether no predicate is active.
func (f Filter) IsZero() bool {
	return f.Sender == "" && f.Receiver == "" && !f.MinAmount.IsPositive()
}

// Match reports whether tx satisfies every active predicate.
func (f Filter) Match(tx Transaction, decimals uint8) bool {
	if f.MinAmount.IsPositive() && tx.Amount.Scale(decimals).LessThan(f.MinAmount) {
		return false
	}

	if f.Receiver != "" && tx.Receiver != f.Receiver {
		return false
	}

	if f.Sender != "" && tx.Sender != f.Sender {
		return false
	}

	return true
}

// Apply returns the transactions matching filter, in their original order.
// The input slice is never modified.
func Apply(txs []Transaction, decimals uint8, filter Filter) []Transaction {
	visible := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if filter.Match(tx, decimals) {
			visible = append(visible, tx)
		}
	}

	return visible
}
