package crawl

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/execscout"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"
)

var _ execscout.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to the same site using one token bucket
// per registrable domain, so acme.com, WWW.acme.com, and team.acme.com:8443
// share a bucket.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host with a burst of 1. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until a request to domain is allowed.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(domain).Wait(ctx)
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	key := siteKey(domain)

	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[key]
	if !ok {
		l = rate.NewLimiter(d.limit, 1)
		d.limiters[key] = l
	}
	return l
}

// siteKey reduces a host to its registrable domain. Hosts without a known
// public suffix are used as-is.
func siteKey(domain string) string {
	host := strings.ToLower(domain)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if etld1, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld1
	}
	return host
}
