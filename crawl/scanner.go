// Package crawl walks the candidate pages of company sites and drives bulk
// scans over the labeled dataset.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/fwojciec/execscout"
)

// MaxBulkCompanies caps the number of dataset rows a bulk run scans,
// regardless of the requested limit.
const MaxBulkCompanies = 50

// Scanner fetches a company site's candidate pages and extracts executives
// from each page that loads.
type Scanner struct {
	Fetcher     execscout.Fetcher
	Extractor   execscout.PeopleExtractor
	RateLimiter execscout.DomainLimiter // optional
	Robots      *Robots                 // optional; nil fetches every path
	Paths       []string                // defaults to execscout.DefaultCandidatePaths
	Logger      *slog.Logger
}

// ProgressEvent reports progress during a bulk run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Company   string
	Records   int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting bulk run progress.
type ProgressFunc func(event ProgressEvent)

// BulkResult holds the outcome of a bulk run.
type BulkResult struct {
	Scanned    int // dataset rows scanned
	Records    []execscout.PersonRecord
	Evaluation *execscout.Evaluation
}

// Scan tries every candidate path on domain and returns the deduplicated
// records found for company. Pages that fail to load or extract are logged
// and skipped. The returned error is EINVALID for an unusable domain or the
// context's error when ctx is done; records gathered before cancellation
// are still returned.
func (s *Scanner) Scan(ctx context.Context, domain, company string) ([]execscout.PersonRecord, error) {
	base, err := BaseURL(domain)
	if err != nil {
		return nil, err
	}

	var found []execscout.PersonRecord
	for _, pageURL := range CandidateURLs(base, s.paths()) {
		if err := ctx.Err(); err != nil {
			return execscout.Dedupe(found), err
		}

		if s.Robots != nil && !s.Robots.Allowed(ctx, pageURL) {
			s.logger().Debug("page disallowed by robots.txt", "url", pageURL)
			continue
		}

		if s.RateLimiter != nil {
			if err := s.RateLimiter.Wait(ctx, base.Host); err != nil {
				return execscout.Dedupe(found), err
			}
		}

		html, err := s.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			s.logger().Debug("page skipped", "url", pageURL, "err", err)
			continue
		}

		records, err := s.Extractor.Extract(ctx, html, company)
		if err != nil {
			s.logger().Warn("extraction failed", "url", pageURL, "err", err)
			continue
		}
		found = append(found, records...)
	}

	return execscout.Dedupe(found), nil
}

// Bulk scans the first limit title-matching rows of the dataset, one row at
// a time, and evaluates everything found against all title-matching rows.
// A company listed on several rows is scanned once per row. Failures are
// isolated per row; only the context's error stops the run.
func (s *Scanner) Bulk(ctx context.Context, rows []execscout.GroundTruthRow, limit int, progress ProgressFunc) (*BulkResult, error) {
	filtered := execscout.FilterGroundTruth(rows)
	batch := filtered[:bulkSize(limit, len(filtered))]

	result := &BulkResult{}
	for i, row := range batch {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressStarted, Completed: i, Total: len(batch), Company: row.Company})
		}

		records, err := s.Scan(ctx, row.Domain, row.Company)
		result.Records = append(result.Records, records...)
		result.Scanned++

		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, ctxErr
		}
		if err != nil {
			s.logger().Warn("company skipped", "company", row.Company, "domain", row.Domain, "err", err)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: i + 1, Total: len(batch), Company: row.Company, Error: err})
			}
			continue
		}

		if progress != nil {
			progress(ProgressEvent{Type: ProgressCompleted, Completed: i + 1, Total: len(batch), Company: row.Company, Records: len(records)})
		}
	}

	result.Evaluation = execscout.Evaluate(result.Records, filtered)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(batch), Total: len(batch), Records: len(result.Records)})
	}

	return result, nil
}

// BaseURL parses a company domain or site URL. A bare domain is assumed to
// be served over https.
func BaseURL(domain string) (*url.URL, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil, execscout.Errorf(execscout.EINVALID, "domain required")
	}
	if !strings.Contains(domain, "://") {
		domain = "https://" + domain
	}

	u, err := url.Parse(domain)
	if err != nil {
		return nil, execscout.Errorf(execscout.EINVALID, "invalid domain %q: %v", domain, err)
	}
	if u.Host == "" {
		return nil, execscout.Errorf(execscout.EINVALID, "invalid domain %q: missing host", domain)
	}
	return u, nil
}

// CandidateURLs joins each path onto base. An absolute path replaces base's
// path. Paths that do not parse are dropped.
func CandidateURLs(base *url.URL, paths []string) []string {
	urls := make([]string, 0, len(paths))
	for _, p := range paths {
		ref, err := url.Parse(p)
		if err != nil {
			continue
		}
		urls = append(urls, base.ResolveReference(ref).String())
	}
	return urls
}

func bulkSize(limit, available int) int {
	if limit <= 0 {
		return 0
	}
	return min(limit, MaxBulkCompanies, available)
}

func (s *Scanner) paths() []string {
	if s.Paths != nil {
		return s.Paths
	}
	return execscout.DefaultCandidatePaths
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}
