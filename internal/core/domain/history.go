package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction marks whether money left or entered the wallet.
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

// HistoryEntry is one row of the append-only transaction history,
// newest first. Entries are never mutated or removed.
type HistoryEntry struct {
	ID        uuid.UUID       `json:"id"`
	Recipient string          `json:"recipient"`
	Note      string          `json:"note"`
	Amount    decimal.Decimal `json:"amount"`
	Direction Direction       `json:"direction"`
	Timestamp time.Time       `json:"timestamp"`
}

// Matches reports whether the entry satisfies a free-text query:
// case-insensitive substring match against recipient or note,
// vacuously true when the query is empty.
func (e HistoryEntry) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Recipient), q) ||
		strings.Contains(strings.ToLower(e.Note), q)
}
