package domain

import (
	"github.com/shopspring/decimal"
)

// Wallet holds the single in-memory balance for the session.
// The balance never goes negative: debits are clamped at zero and a
// transfer that would overdraw is rejected before it reaches the wallet.
type Wallet struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// CanCover returns true if the wallet balance covers the given amount.
func (w Wallet) CanCover(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}

// Debit returns a copy of the wallet with the amount subtracted,
// clamped at zero.
func (w Wallet) Debit(amount decimal.Decimal) Wallet {
	next := w.Balance.Sub(amount)
	if next.IsNegative() {
		next = decimal.Zero
	}
	w.Balance = next
	return w
}
