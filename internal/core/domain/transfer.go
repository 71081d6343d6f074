package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferDraft is the raw, unvalidated transfer input as the user typed
// it. Amount keeps grouping characters ("2,000") until validation parses it.
type TransferDraft struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Note      string `json:"note"`
}

// Empty returns true if nothing has been entered yet.
func (d TransferDraft) Empty() bool {
	return d.Recipient == "" && d.Amount == "" && d.Note == ""
}

// TransferDetail is a validated transfer awaiting biometric confirmation.
// Immutable once created; consumed exactly once by commit or discarded
// on cancellation.
type TransferDetail struct {
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note"`
	Reference string          `json:"reference"`
	Timestamp time.Time       `json:"timestamp"`
}
