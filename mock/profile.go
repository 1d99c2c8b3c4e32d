package mock

import (
	"context"

	"github.com/fwojciec/execscout"
)

var _ execscout.ProfileResolver = (*ProfileResolver)(nil)

// ProfileResolver is a mock implementation of execscout.ProfileResolver.
type ProfileResolver struct {
	ResolveProfileFn func(ctx context.Context, companyName, personName string) (string, error)
}

func (r *ProfileResolver) ResolveProfile(ctx context.Context, companyName, personName string) (string, error) {
	return r.ResolveProfileFn(ctx, companyName, personName)
}
