package main

import (
	"fmt"

	"github.com/fwojciec/execscout"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	records, err := deps.Scanner.Scan(deps.Ctx, c.URL, c.Company)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "\nNo executive information found.")
	} else {
		fmt.Fprintf(deps.Stdout, "\nFound the following people at %s:\n", c.Company)
		fmt.Fprintln(deps.Stdout, ruleHeavy)
		writeRecords(deps.Stdout, records)
	}

	if c.NoSave {
		return nil
	}
	return saveRun(deps, &execscout.Run{Mode: execscout.RunModeScan, Label: c.Company}, records)
}

func saveRun(deps *Dependencies, run *execscout.Run, records []execscout.PersonRecord) error {
	if err := deps.Runs.CreateRun(deps.Ctx, run, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", execscout.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "\nSaved run %s (%d records)\n", run.ID, run.RecordCount)
	return nil
}
