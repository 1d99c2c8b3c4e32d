package crawl

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/execscout"
	"github.com/temoto/robotstxt"
)

// Robots answers whether a page may be fetched under its site's robots.txt.
// Each site's rules are fetched once. A site whose robots.txt cannot be
// fetched or parsed allows everything.
type Robots struct {
	// RateLimiter, when set, is waited on before each robots.txt request,
	// sharing the site's budget with page fetches.
	RateLimiter execscout.DomainLimiter

	fetcher execscout.Fetcher
	agent   string

	mu    sync.Mutex
	rules map[string]*robotstxt.RobotsData
}

// NewRobots creates a Robots that fetches rules with fetcher and matches
// them against agent.
func NewRobots(fetcher execscout.Fetcher, agent string) *Robots {
	return &Robots{
		fetcher: fetcher,
		agent:   agent,
		rules:   make(map[string]*robotstxt.RobotsData),
	}
}

// Allowed reports whether pageURL may be fetched.
func (r *Robots) Allowed(ctx context.Context, pageURL string) bool {
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return true
	}

	data := r.load(ctx, u)
	if data == nil {
		return true
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return data.TestAgent(path, r.agent)
}

func (r *Robots) load(ctx context.Context, u *url.URL) *robotstxt.RobotsData {
	site := u.Scheme + "://" + u.Host

	r.mu.Lock()
	data, ok := r.rules[site]
	r.mu.Unlock()
	if ok {
		return data
	}

	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil
		}
	}

	body, err := r.fetcher.Fetch(ctx, site+"/robots.txt")
	if err == nil {
		data, err = robotstxt.FromString(body)
	}
	if err != nil {
		data = nil
	}

	// An interrupted fetch says nothing about the site.
	if ctx.Err() != nil {
		return data
	}

	r.mu.Lock()
	r.rules[site] = data
	r.mu.Unlock()
	return data
}
