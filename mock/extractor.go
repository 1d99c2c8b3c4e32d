package mock

import (
	"context"

	"github.com/fwojciec/execscout"
)

var _ execscout.PeopleExtractor = (*PeopleExtractor)(nil)

// PeopleExtractor is a mock implementation of execscout.PeopleExtractor.
type PeopleExtractor struct {
	ExtractFn func(ctx context.Context, markup, companyName string) ([]execscout.PersonRecord, error)
}

func (e *PeopleExtractor) Extract(ctx context.Context, markup, companyName string) ([]execscout.PersonRecord, error) {
	return e.ExtractFn(ctx, markup, companyName)
}
