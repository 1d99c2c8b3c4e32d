package main_test

import (
	"bytes"
	"context"

	"github.com/fwojciec/execscout"
	main "github.com/fwojciec/execscout/cmd/execscout"
	"github.com/fwojciec/execscout/crawl"
	"github.com/fwojciec/execscout/mock"
)

// testDeps returns dependencies backed by mocks. Pages load as their URL
// and extract pages through extract. Runs are stored as "run-1".
func testDeps(extract func(markup, company string) []execscout.PersonRecord) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer, *[]*execscout.Run) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	var saved []*execscout.Run
	runs := &mock.RunService{
		CreateRunFn: func(_ context.Context, run *execscout.Run, records []execscout.PersonRecord) error {
			run.ID = "run-1"
			run.RecordCount = len(records)
			saved = append(saved, run)
			return nil
		},
	}

	scanner := &crawl.Scanner{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return url, nil
			},
			CloseFn: func() error { return nil },
		},
		Extractor: &mock.PeopleExtractor{
			ExtractFn: func(_ context.Context, markup, company string) ([]execscout.PersonRecord, error) {
				return extract(markup, company), nil
			},
		},
		Paths: []string{"/about"},
	}

	deps := &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Runs:    runs,
		Scanner: scanner,
	}
	return deps, stdout, stderr, &saved
}
