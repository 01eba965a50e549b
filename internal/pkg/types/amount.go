package types

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative integer token amount in base units (a SNIP-20
// Uint128). It is encoded in JSON as a decimal string, the way CosmWasm
// contracts return it, and also accepts plain JSON numbers.
//
// The zero value represents 0.
type Amount struct {
	v *big.Int
}

// NewAmount returns an Amount holding n base units.
func NewAmount(n int64) Amount {
	return Amount{v: big.NewInt(n)}
}

// AmountFromString parses a base-10 integer string into an Amount.
func AmountFromString(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, fmt.Errorf("invalid amount %q", s)
	}

	if v.Sign() < 0 {
		return Amount{}, fmt.Errorf("amount must not be negative: %q", s)
	}

	return Amount{v: v}, nil
}

// BigInt returns a copy of the underlying integer.
func (a Amount) BigInt() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(a.v)
}

// String returns the amount in base units.
func (a Amount) String() string {
	return a.BigInt().String()
}

// Scale returns the amount divided by 10^decimals. The conversion is exact.
func (a Amount) Scale(decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(a.BigInt(), -int32(decimals))
}

// MarshalJSON encodes the Amount as a JSON string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts either a JSON string or a JSON number holding a
// non-negative integer.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		s = n.String()
	}

	parsed, err := AmountFromString(s)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}
