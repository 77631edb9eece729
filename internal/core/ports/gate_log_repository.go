package ports

import (
	"context"

	"yardgate/internal/core/domain/model/gate"
)

// GateLogRepository defines the persistence contract for the gate movement
// ledger. The ledger is append-only: entries are immutable once written and
// there is no update or delete operation.
type GateLogRepository interface {
	// Add appends a movement entry to the ledger.
	Add(ctx context.Context, entry *gate.LogEntry) error

	// GetByContainerNumber retrieves all movements recorded for a
	// container number, in chronological order.
	GetByContainerNumber(ctx context.Context, containerNumber string) ([]*gate.LogEntry, error)
}
