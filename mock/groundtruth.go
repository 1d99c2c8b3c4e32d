package mock

import (
	"context"

	"github.com/fwojciec/execscout"
)

var _ execscout.GroundTruthLoader = (*GroundTruthLoader)(nil)

// GroundTruthLoader is a mock implementation of execscout.GroundTruthLoader.
type GroundTruthLoader struct {
	LoadGroundTruthFn func(ctx context.Context, path string) ([]execscout.GroundTruthRow, error)
}

func (l *GroundTruthLoader) LoadGroundTruth(ctx context.Context, path string) ([]execscout.GroundTruthRow, error) {
	return l.LoadGroundTruthFn(ctx, path)
}
