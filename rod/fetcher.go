// Package rod provides a browser-based implementation of execscout.Fetcher
// for company sites that render their team pages with JavaScript.
package rod

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/execscout"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// DefaultFetchTimeout is the default time allowed for one page load.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxPages is the default number of pages before browser recycling.
// Chrome's memory baseline grows with every page, so long bulk runs
// restart it periodically.
const DefaultMaxPages = 75

// Ensure Fetcher implements execscout.Fetcher at compile time.
var _ execscout.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is not safe for concurrent use; pages are fetched one at a time.
type Fetcher struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	pages    int
	maxPages int
	timeout  time.Duration
	stealth  bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-page load timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets the number of pages after which the browser is restarted.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// WithStealth toggles the evasion scripts injected into every page.
// Stealth is on by default; some team pages refuse obvious headless clients.
func WithStealth(enabled bool) Option {
	return func(f *Fetcher) {
		f.stealth = enabled
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		maxPages: DefaultMaxPages,
		timeout:  DefaultFetchTimeout,
		stealth:  true,
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.launch(); err != nil {
		return nil, err
	}
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
// The status of the main document response decides success: 404 yields
// ENOTFOUND and any other non-200 status EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.maxPages > 0 && f.pages >= f.maxPages {
		if err := f.recycle(); err != nil {
			return "", err
		}
	}
	f.pages++

	page, err := f.newPage()
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(f.timeout)

	if err := (proto.NetworkEnable{}).Call(page); err != nil {
		return "", err
	}

	var resp proto.NetworkResponseReceived
	wait := page.WaitEvent(&resp)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	wait()

	if resp.Response != nil {
		status := resp.Response.Status
		switch {
		case status == http.StatusNotFound:
			return "", execscout.Errorf(execscout.ENOTFOUND, "HTTP %d for %s", status, url)
		case status != http.StatusOK:
			return "", execscout.Errorf(execscout.EUNAVAILABLE, "HTTP %d for %s", status, url)
		}
	}

	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

func (f *Fetcher) newPage() (*rod.Page, error) {
	if f.stealth {
		return stealth.Page(f.browser)
	}
	return f.browser.Page(proto.TargetCreateTarget{})
}

func (f *Fetcher) launch() error {
	l := launcher.New().
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return fmt.Errorf("connecting to browser: %w", err)
	}

	f.launcher = l
	f.browser = browser
	f.pages = 0
	return nil
}

// recycle closes the current browser and starts a fresh one.
func (f *Fetcher) recycle() error {
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing browser: %w", err)
	}
	return f.launch()
}
