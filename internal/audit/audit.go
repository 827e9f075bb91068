package audit

import "context"

const (
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"
)

// Entry is the immutable trace of who performed what on which entity.
type Entry struct {
	EmployeeID   string
	PerformedBy  string
	Action       string
	Module       string
	EntityType   string
	EntityID     string
	Status       string
	PreviousData map[string]any
	NewData      map[string]any
	Metadata     map[string]any
}

// Logger persists audit entries. Implementations must never propagate
// failures to the caller: a lost audit entry is logged, not fatal.
type Logger interface {
	Log(ctx context.Context, entry Entry)
}
