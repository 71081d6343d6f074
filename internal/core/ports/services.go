package ports

import (
	"pocketpay/internal/core/domain"

	"github.com/shopspring/decimal"
)

// --- Service Ports (Business Logic) ---

// NavigationService owns the current screen and the session guards
// around it. Every method returns the screen actually shown, which may
// differ from the requested one when a guard rejects the transition.
type NavigationService interface {
	// Boot shows the login screen and starts the cosmetic splash timer.
	Boot()
	// Close cancels any outstanding timers.
	Close()
	LoginSubmit(name string) (domain.Screen, error)
	Logout() domain.Screen
	GoHome() (domain.Screen, error)
	GoTransfer() (domain.Screen, error)
	GoHistory() (domain.Screen, error)
	GoOffline() (domain.Screen, error)
	Back() domain.Screen
}

// TransferService drives the draft -> validate -> confirm -> commit
// workflow.
type TransferService interface {
	// ValidateDraft checks a draft against the given balance and, on
	// success, returns an immutable TransferDetail. No side effects.
	ValidateDraft(draft domain.TransferDraft, balance decimal.Decimal) (*domain.TransferDetail, error)
	// SetDraft replaces the working draft as the user types.
	SetDraft(draft domain.TransferDraft)
	// ContinueToConfirm validates the stored draft and stages the
	// pending transfer. On validation failure the screen stays put and
	// the error is surfaced inline.
	ContinueToConfirm() (domain.Screen, error)
	// Approve runs the simulated biometric confirmation and then
	// commits the pending transfer. Completes asynchronously.
	Approve() error
	// CancelConfirm discards the pending transfer and returns to the
	// transfer screen with the draft preserved.
	CancelConfirm() domain.Screen
	// Close abandons any in-flight biometric timers.
	Close()
}

// OfflineService drives the offline-QR payment capture.
type OfflineService interface {
	// StartScan acquires the camera and, after the scan delay, records
	// an offline payment. Rejected while a scan is already running.
	StartScan() error
	// Leave stops the camera and abandons a pending scan without error.
	Leave()
}

// HistoryService is a pure view over the transaction history.
type HistoryService interface {
	Filter(params HistoryFilterParams) []domain.HistoryEntry
}

// HistoryFilterParams holds the direction filter and free-text query
// for the history view. A nil Direction means all entries.
type HistoryFilterParams struct {
	Direction *domain.Direction
	Query     string
}
