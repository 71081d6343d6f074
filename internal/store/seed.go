package store

import (
	"time"

	"pocketpay/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FixtureHistory returns the startup history entries, newest first.
// Timestamps are offset backwards from now so the list reads naturally
// in the demo.
func FixtureHistory(now time.Time) []domain.HistoryEntry {
	return []domain.HistoryEntry{
		{
			ID:        uuid.New(),
			Recipient: "Bima Putra",
			Note:      "Concert tickets",
			Amount:    decimal.NewFromInt(45000),
			Direction: domain.DirectionSent,
			Timestamp: now.Add(-26 * time.Hour),
		},
		{
			ID:        uuid.New(),
			Recipient: "Citra Dewi",
			Note:      "Freelance payout",
			Amount:    decimal.NewFromInt(150000),
			Direction: domain.DirectionReceived,
			Timestamp: now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:        uuid.New(),
			Recipient: "Dani Setiawan",
			Note:      "Split groceries",
			Amount:    decimal.NewFromInt(27500),
			Direction: domain.DirectionSent,
			Timestamp: now.Add(-5 * 24 * time.Hour),
		},
		{
			ID:        uuid.New(),
			Recipient: "Eka Lestari",
			Note:      "Birthday gift",
			Amount:    decimal.NewFromInt(60000),
			Direction: domain.DirectionReceived,
			Timestamp: now.Add(-9 * 24 * time.Hour),
		},
	}
}
