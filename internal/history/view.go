package history

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

// View keeps the state of a single history screen: the last fetched history,
// the active filter and the transactions it leaves visible.
//
// The visible list is always recomputed from the full history, so changing a
// predicate never works on stale results.
type View struct {
	mu sync.RWMutex

	service Service
	history History
	filter  Filter
	visible []Transaction
}

// NewView returns an empty View that loads histories through s.
func NewView(s Service) *View {
	return &View{
		service: s,
		visible: make([]Transaction, 0),
	}
}

// Refresh fetches the history of contractAddress and replaces the view state
// with it. On failure the previous state is left untouched.
func (v *View) Refresh(ctx context.Context, contractAddress string) error {
	history, err := v.service.Fetch(ctx, contractAddress)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.history = history
	v.recompute()
	return nil
}

// SetFilter replaces every predicate at once.
func (v *View) SetFilter(f Filter) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.filter = f
	v.recompute()
}

// SetSender changes the sender predicate. An empty address disables it.
func (v *View) SetSender(address string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.filter.Sender = address
	v.recompute()
}

// SetReceiver changes the receiver predicate. An empty address disables it.
func (v *View) SetReceiver(address string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.filter.Receiver = address
	v.recompute()
}

// SetMinAmount changes the minimum scaled amount. Zero or negative disables it.
func (v *View) SetMinAmount(amount decimal.Decimal) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.filter.MinAmount = amount
	v.recompute()
}

// Filter returns the active filter.
func (v *View) Filter() Filter {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.filter
}

// History returns the full, unfiltered history last loaded.
func (v *View) History() History {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.history
}

// Decimals returns the decimal count of the loaded token.
func (v *View) Decimals() uint8 {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.history.Token.Decimals
}

// Visible returns a copy of the transactions passing the active filter.
func (v *View) Visible() []Transaction {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]Transaction, len(v.visible))
	copy(out, v.visible)
	return out
}

// recompute must be called with mu held.
func (v *View) recompute() {
	v.visible = Apply(v.history.Transactions, v.history.Token.Decimals, v.filter)
}
