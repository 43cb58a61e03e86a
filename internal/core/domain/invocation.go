package domain

import (
	"time"

	"github.com/google/uuid"
)

// Invocation outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Invocation is an audit record of a single tool call. It never holds the
// ids of objects created on the platform.
type Invocation struct {
	ID           uuid.UUID
	Tool         string
	AccountID    string
	Outcome      string
	ErrorKind    string
	ErrorMessage string
	Duration     time.Duration
	CreatedAt    time.Time
}
