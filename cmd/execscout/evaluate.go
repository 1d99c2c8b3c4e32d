package main

import (
	"fmt"

	"github.com/fwojciec/execscout"
)

// Run executes the evaluate command.
func (c *EvaluateCmd) Run(deps *Dependencies) error {
	records, err := deps.Runs.FindRecords(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", runError(err, c.ID))
		return err
	}

	rows, err := deps.Loader.LoadGroundTruth(deps.Ctx, c.Dataset)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", execscout.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "Run has no records to evaluate.")
		return nil
	}

	eval := execscout.Evaluate(records, execscout.FilterGroundTruth(rows))
	writeEvaluation(deps.Stdout, eval, records)
	return nil
}
