package mock

import (
	"context"

	"github.com/fwojciec/execscout"
)

var _ execscout.NameClassifier = (*NameClassifier)(nil)

// NameClassifier is a mock implementation of execscout.NameClassifier.
type NameClassifier struct {
	IsPersonNameFn func(ctx context.Context, text string) (bool, error)
}

func (c *NameClassifier) IsPersonName(ctx context.Context, text string) (bool, error) {
	return c.IsPersonNameFn(ctx, text)
}
