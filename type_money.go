package boutique

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in the shop's bookkeeping currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// Currency is the bookkeeping currency of the shop.
const Currency = money.EUR

// M wraps an amount into a Money in the shop currency.
func M(value decimal.Decimal) Money {
	return Money{value: value, cur: Currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	cur := m.cur
	if cur == "" {
		cur = Currency
	}
	return *money.New(0, cur).Currency()
}

// String returns the amount formatted with the currency's symbol and
// grouping, e.g. "€12.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) IsZero() bool      { return m.value.IsZero() }
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: m.cur} }
