package compensation

import "context"

// CompensationService is the ledger mutation manager. Every mutation keeps
// the baseline cache consistent with the ledger inside one transaction.
type CompensationService interface {
	RecordEvent(ctx context.Context, req RecordEventRequest) (EventResponse, error)
	UpdateEvent(ctx context.Context, req UpdateEventRequest) (EventResponse, error)
	DeleteEvent(ctx context.Context, employeeID, eventID string) error
	ListEvents(ctx context.Context, employeeID string) ([]EventResponse, error)
	GetBaseline(ctx context.Context, employeeID string) (BaselineResponse, error)
}
