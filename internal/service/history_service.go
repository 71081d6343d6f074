package service

import (
	"pocketpay/internal/core/domain"
	"pocketpay/internal/core/ports"
	"pocketpay/internal/store"
)

// historyService implements ports.HistoryService.
type historyService struct {
	store *store.Memory
}

// NewHistoryService creates a new history view service.
func NewHistoryService(st *store.Memory) ports.HistoryService {
	return &historyService{store: st}
}

// Filter derives the visible history rows: direction filter AND
// case-insensitive substring match against recipient or note. The
// underlying newest-first ordering is preserved, never re-sorted, and
// the sequence itself is untouched.
func (s *historyService) Filter(params ports.HistoryFilterParams) []domain.HistoryEntry {
	entries := s.store.History()

	out := make([]domain.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if params.Direction != nil && entry.Direction != *params.Direction {
			continue
		}
		if !entry.Matches(params.Query) {
			continue
		}
		out = append(out, entry)
	}
	return out
}
