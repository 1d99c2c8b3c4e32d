package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/execscout"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := execscout.RunFilter{Limit: c.Limit}
	if c.Mode != "" {
		mode := execscout.RunMode(c.Mode)
		if mode != execscout.RunModeScan && mode != execscout.RunModeBulk {
			fmt.Fprintf(deps.Stderr, "error: unknown run mode %q (use scan or bulk)\n", c.Mode)
			return execscout.Errorf(execscout.EINVALID, "unknown run mode %q", c.Mode)
		}
		filter.Mode = &mode
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", execscout.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'execscout scan' or 'execscout bulk' to create one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-4s  %3d records  %s\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Mode, r.RecordCount, r.Label)
	}

	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", runError(err, c.ID))
		return err
	}

	records, err := deps.Runs.FindRecords(deps.Ctx, run.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", execscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Run %s (%s, %s)\n", run.ID, run.Mode, run.Label)
	fmt.Fprintln(deps.Stdout, ruleHeavy)
	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "\nNo executive information found.")
		return nil
	}
	writeRecords(deps.Stdout, records)
	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return execscout.Errorf(execscout.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", runError(err, c.ID))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.ID)
	return nil
}

// runError describes a failed run lookup, pointing at 'execscout runs'
// when the run does not exist.
func runError(err error, id string) string {
	if execscout.ErrorCode(err) == execscout.ENOTFOUND {
		return fmt.Sprintf("run %q not found. Use 'execscout runs' to see stored runs.", id)
	}
	return execscout.ErrorMessage(err)
}
