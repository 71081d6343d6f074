package store

import (
	"testing"
	"time"

	"pocketpay/internal/core/domain"
	"pocketpay/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Memory {
	return NewMemory(domain.Wallet{
		Balance:  decimal.NewFromInt(125000),
		Currency: "IDR",
	})
}

func TestNewMemory_InitialState(t *testing.T) {
	m := newTestStore()

	assert.Equal(t, domain.ScreenLogin, m.Screen())
	assert.Equal(t, domain.BiometricIdle, m.BiometricStatus())
	camera, msg := m.CameraState()
	assert.Equal(t, domain.CameraIdle, camera)
	assert.Empty(t, msg)
	assert.False(t, m.Session().LoggedIn())
	assert.Empty(t, m.History())
	assert.Nil(t, m.PendingTransfer())
	assert.Nil(t, m.LastTransfer())
}

func TestMemory_SessionLifecycle(t *testing.T) {
	m := newTestStore()

	m.SetSession("Asha")
	assert.True(t, m.Session().LoggedIn())
	assert.Equal(t, "Asha", m.Session().UserName)

	m.ClearSession()
	assert.False(t, m.Session().LoggedIn())
}

func TestMemory_DebitWallet_Clamps(t *testing.T) {
	m := newTestStore()

	w := m.DebitWallet(decimal.NewFromInt(25000))
	assert.True(t, w.Balance.Equal(decimal.NewFromInt(100000)))

	w = m.DebitWallet(decimal.NewFromInt(999999))
	assert.True(t, w.Balance.IsZero(), "balance is clamped at zero")
}

func TestMemory_PendingTransferCopySemantics(t *testing.T) {
	m := newTestStore()

	detail := domain.TransferDetail{
		Recipient: "Asha",
		Amount:    decimal.NewFromInt(2000),
		Reference: "TP-2026-00042",
	}
	m.SetPendingTransfer(detail)

	got := m.PendingTransfer()
	require.NotNil(t, got)
	got.Recipient = "tampered"

	again := m.PendingTransfer()
	assert.Equal(t, "Asha", again.Recipient, "store hands out copies")

	m.ClearPendingTransfer()
	assert.Nil(t, m.PendingTransfer())
}

func TestMemory_PrependHistory_NewestFirst(t *testing.T) {
	m := newTestStore()
	m.SeedHistory(FixtureHistory(time.Now()))
	seeded := len(m.History())

	entry := domain.HistoryEntry{
		ID:        uuid.New(),
		Recipient: "Asha",
		Amount:    decimal.NewFromInt(2000),
		Direction: domain.DirectionSent,
	}
	m.PrependHistory(entry)

	history := m.History()
	require.Len(t, history, seeded+1)
	assert.Equal(t, entry.ID, history[0].ID, "new entry goes to the front")
}

func TestMemory_HistoryReturnsCopy(t *testing.T) {
	m := newTestStore()
	m.SeedHistory(FixtureHistory(time.Now()))

	history := m.History()
	history[0].Recipient = "tampered"

	assert.NotEqual(t, "tampered", m.History()[0].Recipient)
}

func TestMemory_ScansStayOutOfHistory(t *testing.T) {
	m := newTestStore()
	m.SeedHistory(FixtureHistory(time.Now()))
	before := len(m.History())

	m.RecordScan(domain.OfflineScanRecord{ResultCode: "QR-123456", RecordedAt: time.Now()})

	assert.Len(t, m.UnsyncedScans(), 1)
	assert.Len(t, m.History(), before, "offline scans are not merged into history")
}

func TestMemory_NavContext(t *testing.T) {
	m := newTestStore()
	m.SetSession("Asha")
	m.SetScreen(domain.ScreenConfirm)
	m.SetPendingTransfer(domain.TransferDetail{Recipient: "Bima"})

	ctx := m.NavContext()
	assert.Equal(t, domain.ScreenConfirm, ctx.Current)
	assert.True(t, ctx.LoggedIn)
	assert.True(t, ctx.HasPendingTransfer)
}

func TestMemory_LastError(t *testing.T) {
	m := newTestStore()

	m.SetLastError(apperror.ErrInvalidAmount())
	require.NotNil(t, m.LastError())
	assert.Equal(t, "VAL_002", m.LastError().Code)

	m.ClearLastError()
	assert.Nil(t, m.LastError())
}

func TestFixtureHistory_Shape(t *testing.T) {
	entries := FixtureHistory(time.Now())

	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i].Timestamp.Before(entries[i-1].Timestamp), "fixtures are newest first")
	}
}
