// Package csvutil loads the labeled executive dataset from CSV files.
package csvutil

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"slices"

	"github.com/fwojciec/execscout"
	"github.com/jszwec/csvutil"
)

// Compile-time interface verification.
var _ execscout.GroundTruthLoader = (*Loader)(nil)

// RequiredColumns are the header names a dataset must carry.
var RequiredColumns = []string{"Company", "Full Name", "Title", "LinkedIn Profile", "Domain"}

// Loader implements execscout.GroundTruthLoader over CSV files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadGroundTruth reads every row of the CSV file at path.
func (l *Loader) LoadGroundTruth(ctx context.Context, path string) ([]execscout.GroundTruthRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, execscout.Errorf(execscout.ENOTFOUND, "dataset not found: %s", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads ground truth rows from CSV data with a header line.
// Columns other than RequiredColumns are ignored.
func Decode(r io.Reader) ([]execscout.GroundTruthRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	dec, err := csvutil.NewDecoder(cr)
	if errors.Is(err, io.EOF) {
		return nil, execscout.Errorf(execscout.EINVALID, "dataset is empty")
	}
	if err != nil {
		return nil, execscout.Errorf(execscout.EINVALID, "invalid dataset header: %v", err)
	}

	header := dec.Header()
	for _, col := range RequiredColumns {
		if !slices.Contains(header, col) {
			return nil, execscout.Errorf(execscout.EINVALID, "dataset missing column %q", col)
		}
	}

	var rows []execscout.GroundTruthRow
	for {
		var row execscout.GroundTruthRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, execscout.Errorf(execscout.EINVALID, "invalid dataset row: %v", err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
