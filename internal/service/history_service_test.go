package service

import (
	"testing"
	"time"

	"pocketpay/internal/core/domain"
	"pocketpay/internal/core/ports"
	"pocketpay/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHistoryService(t *testing.T) (ports.HistoryService, *store.Memory) {
	t.Helper()
	st := store.NewMemory(domain.Wallet{Balance: decimal.NewFromInt(125000), Currency: "IDR"})
	now := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	st.SeedHistory([]domain.HistoryEntry{
		{ID: uuid.New(), Recipient: "Asha Rahman", Note: "Lunch split", Amount: decimal.NewFromInt(2000), Direction: domain.DirectionSent, Timestamp: now},
		{ID: uuid.New(), Recipient: "Bima Putra", Note: "Concert tickets", Amount: decimal.NewFromInt(45000), Direction: domain.DirectionSent, Timestamp: now.Add(-time.Hour)},
		{ID: uuid.New(), Recipient: "Citra Dewi", Note: "Freelance payout", Amount: decimal.NewFromInt(150000), Direction: domain.DirectionReceived, Timestamp: now.Add(-2 * time.Hour)},
		{ID: uuid.New(), Recipient: "Dani Setiawan", Note: "lunch again", Amount: decimal.NewFromInt(9000), Direction: domain.DirectionReceived, Timestamp: now.Add(-3 * time.Hour)},
	})
	return NewHistoryService(st), st
}

func direction(d domain.Direction) *domain.Direction {
	return &d
}

func TestFilter_AllReturnsEverythingInOrder(t *testing.T) {
	svc, st := setupHistoryService(t)

	got := svc.Filter(ports.HistoryFilterParams{})

	want := st.History()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID, "ordering preserved")
	}
}

func TestFilter_DirectionPartition(t *testing.T) {
	svc, st := setupHistoryService(t)

	sent := svc.Filter(ports.HistoryFilterParams{Direction: direction(domain.DirectionSent)})
	received := svc.Filter(ports.HistoryFilterParams{Direction: direction(domain.DirectionReceived)})
	all := svc.Filter(ports.HistoryFilterParams{})

	assert.Len(t, sent, 2)
	assert.Len(t, received, 2)
	assert.Len(t, all, len(st.History()),
		"cycling sent then received then all restores the full set")
	assert.Equal(t, len(all), len(sent)+len(received))

	for _, e := range sent {
		assert.Equal(t, domain.DirectionSent, e.Direction)
	}
	for _, e := range received {
		assert.Equal(t, domain.DirectionReceived, e.Direction)
	}
}

func TestFilter_Query(t *testing.T) {
	svc, _ := setupHistoryService(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"matches recipient", "asha", 1},
		{"matches note across entries", "lunch", 2},
		{"case insensitive", "FREELANCE", 1},
		{"no match", "groceries", 0},
		{"empty query matches all", "", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Filter(ports.HistoryFilterParams{Query: tt.query})
			assert.Len(t, got, tt.want)
		})
	}
}

func TestFilter_DirectionAndQueryCombined(t *testing.T) {
	svc, _ := setupHistoryService(t)

	got := svc.Filter(ports.HistoryFilterParams{
		Direction: direction(domain.DirectionReceived),
		Query:     "lunch",
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Dani Setiawan", got[0].Recipient)
}

func TestFilter_DoesNotMutateHistory(t *testing.T) {
	svc, st := setupHistoryService(t)
	before := st.History()

	svc.Filter(ports.HistoryFilterParams{Direction: direction(domain.DirectionSent), Query: "lunch"})

	after := st.History()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
}
