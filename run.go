package execscout

import (
	"context"
	"time"
)

// RunMode identifies how a run was started.
type RunMode string

// Run modes.
const (
	RunModeScan RunMode = "scan"
	RunModeBulk RunMode = "bulk"
)

// Run is a stored set of records produced by one scan or bulk invocation.
type Run struct {
	ID          string    `json:"id"`
	Mode        RunMode   `json:"mode"`
	Label       string    `json:"label"` // company name for scans, dataset path for bulk runs
	RecordCount int       `json:"recordCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	switch r.Mode {
	case RunModeScan, RunModeBulk:
	default:
		return Errorf(EINVALID, "unknown run mode %q", r.Mode)
	}
	if r.Label == "" {
		return Errorf(EINVALID, "run label required")
	}
	return nil
}

// RunService persists runs and their records.
type RunService interface {
	// CreateRun stores run together with records. ID, RecordCount, and
	// CreatedAt are set on run.
	CreateRun(ctx context.Context, run *Run, records []PersonRecord) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// FindRecords retrieves a run's records in insertion order.
	// Returns ENOTFOUND if the run does not exist.
	FindRecords(ctx context.Context, runID string) ([]PersonRecord, error)

	// DeleteRun removes a run and its records.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Mode *RunMode `json:"mode"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
