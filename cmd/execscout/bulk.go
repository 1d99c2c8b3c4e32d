package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/execscout"
	"github.com/fwojciec/execscout/crawl"
)

// Run executes the bulk command.
func (c *BulkCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Loading %s...\n", c.Dataset)
	rows, err := deps.Loader.LoadGroundTruth(deps.Ctx, c.Dataset)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", execscout.ErrorMessage(err))
		return err
	}

	filtered := execscout.FilterGroundTruth(rows)
	fmt.Fprintf(deps.Stdout, "\nFiltered dataset to %d rows matching titles: %s\n", len(filtered), titleList())

	if c.Limit > crawl.MaxBulkCompanies {
		fmt.Fprintf(deps.Stderr, "warning: limit %d exceeds %d, scanning %d rows\n", c.Limit, crawl.MaxBulkCompanies, crawl.MaxBulkCompanies)
	}

	result, err := deps.Scanner.Bulk(deps.Ctx, rows, c.Limit, c.progress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	if len(result.Records) == 0 {
		fmt.Fprintln(deps.Stdout, "\nNo executive information found for any company.")
	} else {
		writeEvaluation(deps.Stdout, result.Evaluation, result.Records)
	}

	if c.NoSave {
		return nil
	}
	return saveRun(deps, &execscout.Run{Mode: execscout.RunModeBulk, Label: c.Dataset}, result.Records)
}

func (c *BulkCmd) progress(deps *Dependencies) crawl.ProgressFunc {
	return func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "\nProcessing %s (%d/%d)...\n", e.Company, e.Completed+1, e.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "Error processing %s: %s\n", e.Company, execscout.ErrorMessage(e.Error))
		case crawl.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "\nScanned %d companies, found %d people\n", e.Completed, e.Records)
		}
	}
}

func titleList() string {
	names := make([]string, len(execscout.TitleKeywords))
	for i, k := range execscout.TitleKeywords {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
