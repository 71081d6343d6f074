package domain

import "time"

// OfflineScanRecord is a locally captured offline payment, recorded
// without network confirmation. Records are kept in their own unsynced
// list and never merged into the transaction history; a future sync
// step is expected to drain them.
type OfflineScanRecord struct {
	ResultCode string    `json:"result_code"`
	RecordedAt time.Time `json:"recorded_at"`
}
