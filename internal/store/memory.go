package store

import (
	"sync"

	"pocketpay/internal/core/domain"
	"pocketpay/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Memory is the single session-scoped state store. All domain state
// lives here for the lifetime of the process; nothing is persisted.
//
// Timer callbacks fire on scheduler goroutines, so access is guarded by
// a mutex even though the app is logically single-user.
type Memory struct {
	mu sync.RWMutex

	session domain.Session
	wallet  domain.Wallet

	draft   domain.TransferDraft
	pending *domain.TransferDetail
	last    *domain.TransferDetail
	history []domain.HistoryEntry
	scans   []domain.OfflineScanRecord

	screen        domain.Screen
	biometric     domain.BiometricStatus
	camera        domain.CameraStatus
	cameraMessage string
	lastError     *apperror.AppError
}

// NewMemory creates a store with the given opening wallet, showing the
// login screen.
func NewMemory(wallet domain.Wallet) *Memory {
	return &Memory{
		wallet:    wallet,
		screen:    domain.ScreenLogin,
		biometric: domain.BiometricIdle,
		camera:    domain.CameraIdle,
	}
}

// --- Session ---

func (m *Memory) Session() domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

func (m *Memory) SetSession(userName string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = domain.Session{UserName: userName}
}

func (m *Memory) ClearSession() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = domain.Session{}
}

// --- Wallet ---

func (m *Memory) Wallet() domain.Wallet {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.wallet
}

// DebitWallet subtracts amount from the balance, clamped at zero, and
// returns the resulting wallet.
func (m *Memory) DebitWallet(amount decimal.Decimal) domain.Wallet {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallet = m.wallet.Debit(amount)
	return m.wallet
}

// --- Transfer draft & pending detail ---

func (m *Memory) Draft() domain.TransferDraft {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.draft
}

func (m *Memory) SetDraft(draft domain.TransferDraft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = draft
}

func (m *Memory) ClearDraft() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft = domain.TransferDraft{}
}

func (m *Memory) PendingTransfer() *domain.TransferDetail {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.pending == nil {
		return nil
	}
	detail := *m.pending
	return &detail
}

func (m *Memory) SetPendingTransfer(detail domain.TransferDetail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = &detail
}

func (m *Memory) ClearPendingTransfer() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = nil
}

func (m *Memory) LastTransfer() *domain.TransferDetail {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.last == nil {
		return nil
	}
	detail := *m.last
	return &detail
}

func (m *Memory) SetLastTransfer(detail domain.TransferDetail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = &detail
}

// --- History ---

// History returns a copy of the entries, newest first.
func (m *Memory) History() []domain.HistoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.HistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}

// PrependHistory inserts an entry at the front. The sequence is
// append-only; nothing is ever removed.
func (m *Memory) PrependHistory(entry domain.HistoryEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append([]domain.HistoryEntry{entry}, m.history...)
}

// SeedHistory replaces the history with fixture entries at startup.
func (m *Memory) SeedHistory(entries []domain.HistoryEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = append([]domain.HistoryEntry(nil), entries...)
}

// --- Offline scans ---

func (m *Memory) RecordScan(rec domain.OfflineScanRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scans = append(m.scans, rec)
}

// UnsyncedScans returns the offline payments captured so far. They stay
// out of the history sequence until a future sync drains them.
func (m *Memory) UnsyncedScans() []domain.OfflineScanRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.OfflineScanRecord, len(m.scans))
	copy(out, m.scans)
	return out
}

// --- Navigation & UI sub-states ---

func (m *Memory) Screen() domain.Screen {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.screen
}

func (m *Memory) SetScreen(s domain.Screen) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.screen = s
}

// NavContext snapshots the state the navigation reducer needs.
func (m *Memory) NavContext() domain.NavContext {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return domain.NavContext{
		Current:            m.screen,
		LoggedIn:           m.session.LoggedIn(),
		HasPendingTransfer: m.pending != nil,
	}
}

func (m *Memory) BiometricStatus() domain.BiometricStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.biometric
}

func (m *Memory) SetBiometricStatus(s domain.BiometricStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.biometric = s
}

// CameraState returns the camera status and its error message, if any.
func (m *Memory) CameraState() (domain.CameraStatus, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.camera, m.cameraMessage
}

func (m *Memory) SetCameraState(s domain.CameraStatus, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.camera = s
	m.cameraMessage = message
}

// --- Inline error surface ---

func (m *Memory) LastError() *apperror.AppError {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastError
}

func (m *Memory) SetLastError(err *apperror.AppError) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastError = err
}

func (m *Memory) ClearLastError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastError = nil
}
