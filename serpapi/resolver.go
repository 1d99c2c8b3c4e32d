// Package serpapi implements execscout.ProfileResolver using the SerpApi
// Google search engine.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/execscout"
)

const defaultBaseURL = "https://serpapi.com"

// DefaultTimeout is the default timeout for search requests.
const DefaultTimeout = 10 * time.Second

// Ensure Resolver implements execscout.ProfileResolver at compile time.
var _ execscout.ProfileResolver = (*Resolver)(nil)

// Resolver finds profile URLs by taking the top organic search result for
// "<company> <person> LinkedIn" and accepting it only if it is a LinkedIn
// member profile.
type Resolver struct {
	apiKey  string
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(r *Resolver) {
		r.baseURL = u
	}
}

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.timeout = d
	}
}

// NewResolver creates a Resolver authenticated with apiKey.
func NewResolver(apiKey string, opts ...Option) *Resolver {
	r := &Resolver{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.client = &http.Client{
		Timeout: r.timeout,
	}

	return r
}

// searchResponse is the subset of the search.json response we read.
type searchResponse struct {
	Error          string `json:"error"`
	OrganicResults []struct {
		Link string `json:"link"`
	} `json:"organic_results"`
}

// ResolveProfile returns the top result's link if it is a profile URL.
// Returns "" with a nil error when there is no acceptable result.
func (r *Resolver) ResolveProfile(ctx context.Context, companyName, personName string) (string, error) {
	if r.apiKey == "" {
		return "", execscout.Errorf(execscout.EINVALID, "serpapi: API key required")
	}

	q := url.Values{}
	q.Set("engine", "google")
	q.Set("q", execscout.ProfileQuery(companyName, personName))
	q.Set("num", "1")
	q.Set("api_key", r.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/search.json?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("serpapi: create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("serpapi: send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("serpapi: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", execscout.Errorf(execscout.EUNAVAILABLE, "serpapi: HTTP %d: %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("serpapi: unmarshal response: %w", err)
	}
	if result.Error != "" {
		return "", execscout.Errorf(execscout.EUNAVAILABLE, "serpapi: %s", result.Error)
	}

	if len(result.OrganicResults) == 0 {
		return "", nil
	}
	link := result.OrganicResults[0].Link
	if !execscout.IsProfileURL(link) {
		return "", nil
	}
	return link, nil
}
