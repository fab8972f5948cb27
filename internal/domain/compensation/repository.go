package compensation

import (
	"context"
	"time"
)

// CompensationRepository persists the per-employee event ledger and the
// baseline cache. Implementations must honor a transaction carried by the
// context so the mutation manager can commit a ledger write and the baseline
// rewrite as one unit.
type CompensationRepository interface {
	// Baseline
	GetBaseline(ctx context.Context, employeeID string) (Baseline, error)
	PutBaseline(ctx context.Context, baseline Baseline) (Baseline, error)

	// Ledger
	CreateEvent(ctx context.Context, event Event) (Event, error)
	GetEvent(ctx context.Context, eventID string) (Event, error)
	ListEvents(ctx context.Context, employeeID string) ([]Event, error)
	UpdateEventStructure(ctx context.Context, eventID string, structure Snapshot) error
	DeleteEvent(ctx context.Context, eventID string) error
	HasEventOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
}

// TxManager runs fn inside a single all-or-nothing unit of work. The context
// passed to fn carries the transaction for repositories to pick up.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
