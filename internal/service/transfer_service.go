package service

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"pocketpay/internal/core/domain"
	"pocketpay/internal/core/ports"
	"pocketpay/internal/store"
	"pocketpay/pkg/apperror"
	"pocketpay/pkg/format"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// groupingReplacer strips the separators users type into amounts:
// commas, underscores and regular/non-breaking/narrow spaces.
var groupingReplacer = strings.NewReplacer(",", "", "_", "", " ", "", " ", "", " ", "")

// TransferServiceImpl implements ports.TransferService: validate a
// draft, stage it, run the simulated biometric confirmation and commit
// it into history and the wallet balance.
type TransferServiceImpl struct {
	store       *store.Memory
	sched       ports.Scheduler
	rng         *rand.Rand
	verifyDelay time.Duration
	settleDelay time.Duration
	log         zerolog.Logger

	mu          sync.Mutex
	cancelStage func()
}

// NewTransferService creates a new TransferServiceImpl. verifyDelay and
// settleDelay pace the two biometric stages; they carry no security
// meaning.
func NewTransferService(
	st *store.Memory,
	sched ports.Scheduler,
	rng *rand.Rand,
	verifyDelay time.Duration,
	settleDelay time.Duration,
	log zerolog.Logger,
) *TransferServiceImpl {
	return &TransferServiceImpl{
		store:       st,
		sched:       sched,
		rng:         rng,
		verifyDelay: verifyDelay,
		settleDelay: settleDelay,
		log:         log,
	}
}

// SetDraft replaces the working draft as the user types.
func (s *TransferServiceImpl) SetDraft(draft domain.TransferDraft) {
	s.store.SetDraft(draft)
}

// ValidateDraft checks a draft against the given balance. On success it
// returns an immutable TransferDetail with the amount rounded to two
// decimal places (half away from zero), a fresh reference and the
// current timestamp. No state is touched.
func (s *TransferServiceImpl) ValidateDraft(draft domain.TransferDraft, balance decimal.Decimal) (*domain.TransferDetail, error) {
	recipient := strings.TrimSpace(draft.Recipient)
	if recipient == "" {
		return nil, apperror.ErrEmptyRecipient()
	}

	raw := groupingReplacer.Replace(strings.TrimSpace(draft.Amount))
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}

	if amount.GreaterThan(balance) {
		return nil, apperror.ErrInsufficientBalance()
	}
	amount = amount.Round(2)

	now := s.sched.Now()
	return &domain.TransferDetail{
		Recipient: recipient,
		Amount:    amount,
		Note:      draft.Note,
		Reference: format.TransferReference(now.Year(), s.rng),
		Timestamp: now,
	}, nil
}

// ContinueToConfirm validates the stored draft and stages the pending
// transfer. On a validation failure the screen stays put and the error
// is surfaced inline.
func (s *TransferServiceImpl) ContinueToConfirm() (domain.Screen, error) {
	ctx := s.store.NavContext()

	next, navErr := domain.NextScreen(ctx, domain.EventContinueToConfirm)
	if navErr != nil {
		s.store.SetLastError(navErr)
		s.store.SetScreen(domain.EnforceSession(ctx.LoggedIn, next))
		return s.store.Screen(), navErr
	}

	detail, err := s.ValidateDraft(s.store.Draft(), s.store.Wallet().Balance)
	if err != nil {
		appErr := err.(*apperror.AppError)
		s.store.SetLastError(appErr)
		s.log.Debug().Str("code", appErr.Code).Msg("draft rejected")
		return ctx.Current, err
	}

	s.store.SetPendingTransfer(*detail)
	s.store.ClearLastError()
	s.store.SetScreen(next)

	s.log.Info().
		Str("reference", detail.Reference).
		Str("recipient", detail.Recipient).
		Str("amount", detail.Amount.String()).
		Msg("transfer staged for confirmation")

	return next, nil
}

// Approve runs the simulated biometric confirmation: idle -> verifying
// -> verified, then commit. The stages are scheduled timers and the
// whole chain is cancellable; approving with nothing staged silently
// redirects to the transfer screen.
func (s *TransferServiceImpl) Approve() error {
	ctx := s.store.NavContext()

	next, navErr := domain.NextScreen(ctx, domain.EventApproveTransfer)
	if navErr != nil {
		s.store.SetLastError(navErr)
		return navErr
	}

	if !ctx.HasPendingTransfer {
		s.log.Warn().Msg("approve with no pending transfer, redirecting")
		s.store.SetScreen(domain.EnforceSession(ctx.LoggedIn, next))
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.BiometricStatus() != domain.BiometricIdle {
		// Confirmation already running; ignore the repeat tap.
		return nil
	}

	s.store.SetBiometricStatus(domain.BiometricVerifying)
	s.cancelStage = s.sched.After(s.verifyDelay, func() {
		s.store.SetBiometricStatus(domain.BiometricVerified)
		s.mu.Lock()
		s.cancelStage = s.sched.After(s.settleDelay, s.commitPending)
		s.mu.Unlock()
	})
	return nil
}

// commitPending applies the staged transfer: history entry, balance
// debit, lastTransfer, cleanup, success screen.
func (s *TransferServiceImpl) commitPending() {
	detail := s.store.PendingTransfer()
	if detail == nil {
		// Cancelled between the settle timer firing and now.
		s.store.SetBiometricStatus(domain.BiometricIdle)
		return
	}

	now := s.sched.Now()
	detail.Timestamp = now

	s.store.PrependHistory(domain.HistoryEntry{
		ID:        uuid.New(),
		Recipient: detail.Recipient,
		Note:      detail.Note,
		Amount:    detail.Amount,
		Direction: domain.DirectionSent,
		Timestamp: now,
	})
	wallet := s.store.DebitWallet(detail.Amount)
	s.store.SetLastTransfer(*detail)
	s.store.ClearDraft()
	s.store.ClearPendingTransfer()
	s.store.SetBiometricStatus(domain.BiometricIdle)
	s.store.SetScreen(domain.ScreenSuccess)

	s.mu.Lock()
	s.cancelStage = nil
	s.mu.Unlock()

	s.log.Info().
		Str("reference", detail.Reference).
		Str("recipient", detail.Recipient).
		Str("amount", detail.Amount.String()).
		Str("balance", wallet.Balance.String()).
		Msg("transfer committed")
}

// CancelConfirm discards the pending transfer and returns to the
// transfer screen. The draft is preserved for another attempt.
func (s *TransferServiceImpl) CancelConfirm() domain.Screen {
	s.Close()
	s.store.ClearPendingTransfer()

	ctx := s.store.NavContext()
	next, navErr := domain.NextScreen(ctx, domain.EventCancelConfirm)
	if navErr != nil {
		return ctx.Current
	}
	s.store.SetScreen(domain.EnforceSession(ctx.LoggedIn, next))

	s.log.Info().Msg("transfer confirmation cancelled")
	return s.store.Screen()
}

// Close abandons any in-flight biometric timers and resets the
// biometric status. Safe to call at any time.
func (s *TransferServiceImpl) Close() {
	s.mu.Lock()
	if s.cancelStage != nil {
		s.cancelStage()
		s.cancelStage = nil
	}
	s.mu.Unlock()
	s.store.SetBiometricStatus(domain.BiometricIdle)
}
