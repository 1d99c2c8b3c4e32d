package execscout

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the page markup at url. A non-success response is
	// returned as an error (ENOTFOUND for 404, EUNAVAILABLE otherwise), so
	// callers treat any error as the page being absent.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain rate limiting for page fetches.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}

// DefaultCandidatePaths are the relative paths tried on every company site,
// in order.
var DefaultCandidatePaths = []string{
	"/about",
	"/team",
	"/about-us",
	"/leadership",
	"/management",
	"/company",
	"/our-team",
	"/company/paraform",
	"/team.html",
	"/home/company/about",
	"/our-mission",
	"/about/leadership-team",
	"/about-actuate",
}
