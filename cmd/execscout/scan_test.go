package main_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/execscout"
	main "github.com/fwojciec/execscout/cmd/execscout"
	"github.com/fwojciec/execscout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints found people and saves the run", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr, saved := testDeps(func(markup, company string) []execscout.PersonRecord {
			assert.Equal(t, "https://acme.com/about", markup)
			return []execscout.PersonRecord{
				{Name: "Jane Doe", Title: execscout.TitleCEO, CompanyName: company, Context: "Jane Doe CEO", ProfileURL: "https://www.linkedin.com/in/janedoe"},
				{Name: "John Roe", Title: execscout.TitleCTO, CompanyName: company, Context: "John Roe CTO"},
			}
		})

		cmd := &main.ScanCmd{URL: "acme.com", Company: "Acme"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Found the following people at Acme:")
		assert.Contains(t, output, "Name: Jane Doe")
		assert.Contains(t, output, "Title: CEO")
		assert.Contains(t, output, "LinkedIn: https://www.linkedin.com/in/janedoe")
		assert.Contains(t, output, "LinkedIn: Not found")
		assert.Contains(t, output, "Context: Jane Doe CEO")
		assert.Contains(t, output, "Saved run run-1 (2 records)")
		assert.Empty(t, stderr.String())

		require.Len(t, *saved, 1)
		assert.Equal(t, execscout.RunModeScan, (*saved)[0].Mode)
		assert.Equal(t, "Acme", (*saved)[0].Label)
	})

	t.Run("shows only the first 100 characters of context", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 90) + " " + strings.Repeat("b", 30)
		deps, stdout, _, _ := testDeps(func(_, company string) []execscout.PersonRecord {
			return []execscout.PersonRecord{{Name: "Jane Doe", Title: execscout.TitleCEO, CompanyName: company, Context: long}}
		})

		cmd := &main.ScanCmd{URL: "acme.com", Company: "Acme", NoSave: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Context: "+long[:100]+"...\n")
	})

	t.Run("reports when nobody is found", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _, saved := testDeps(func(_, _ string) []execscout.PersonRecord { return nil })

		cmd := &main.ScanCmd{URL: "acme.com", Company: "Acme"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No executive information found.")
		require.Len(t, *saved, 1)
		assert.Zero(t, (*saved)[0].RecordCount)
	})

	t.Run("does not save with no-save", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _, saved := testDeps(func(_, _ string) []execscout.PersonRecord { return nil })

		cmd := &main.ScanCmd{URL: "acme.com", Company: "Acme", NoSave: true}
		require.NoError(t, cmd.Run(deps))

		assert.Empty(t, *saved)
		assert.NotContains(t, stdout.String(), "Saved run")
	})

	t.Run("returns error for invalid domain", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr, _ := testDeps(func(_, _ string) []execscout.PersonRecord { return nil })

		cmd := &main.ScanCmd{URL: " ", Company: "Acme"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, execscout.EINVALID, execscout.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: domain required")
	})

	t.Run("returns error when saving fails", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr, _ := testDeps(func(_, _ string) []execscout.PersonRecord { return nil })
		deps.Runs = &mock.RunService{
			CreateRunFn: func(_ context.Context, _ *execscout.Run, _ []execscout.PersonRecord) error {
				return errors.New("disk full")
			},
		}

		cmd := &main.ScanCmd{URL: "acme.com", Company: "Acme"}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("reports interruption", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr, saved := testDeps(func(_, _ string) []execscout.PersonRecord { return nil })
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		deps.Ctx = ctx

		cmd := &main.ScanCmd{URL: "acme.com", Company: "Acme"}
		err := cmd.Run(deps)
		require.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, stderr.String(), "error: interrupted")
		assert.Empty(t, *saved)
	})
}
