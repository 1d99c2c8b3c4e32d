package mock

import (
	"context"

	"github.com/fwojciec/execscout"
)

var _ execscout.RunService = (*RunService)(nil)

// RunService is a mock implementation of execscout.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *execscout.Run, records []execscout.PersonRecord) error
	FindRunByIDFn func(ctx context.Context, id string) (*execscout.Run, error)
	FindRunsFn    func(ctx context.Context, filter execscout.RunFilter) ([]*execscout.Run, error)
	FindRecordsFn func(ctx context.Context, runID string) ([]execscout.PersonRecord, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *execscout.Run, records []execscout.PersonRecord) error {
	return s.CreateRunFn(ctx, run, records)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*execscout.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter execscout.RunFilter) ([]*execscout.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) FindRecords(ctx context.Context, runID string) ([]execscout.PersonRecord, error) {
	return s.FindRecordsFn(ctx, runID)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
