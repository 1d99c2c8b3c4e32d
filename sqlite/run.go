package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/execscout"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ execscout.RunService = (*RunService)(nil)

// RunService implements execscout.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores a run and its records in a single transaction.
func (s *RunService) CreateRun(ctx context.Context, run *execscout.Run, records []execscout.PersonRecord) error {
	if err := run.Validate(); err != nil {
		return err
	}
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return err
		}
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, mode, label, record_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, string(run.Mode), run.Label, len(records), createdAt.Format(time.RFC3339)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (run_id, position, name, title, company_name, context, profile_url)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, id, i, r.Name, string(r.Title), r.CompanyName, r.Context, r.ProfileURL); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	run.ID = id
	run.RecordCount = len(records)
	run.CreatedAt = createdAt
	return nil
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*execscout.Run, error) {
	run, err := scanRun(s.db.QueryRowContext(ctx, `
		SELECT id, mode, label, record_count, created_at
		FROM runs
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, execscout.Errorf(execscout.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter execscout.RunFilter) ([]*execscout.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, mode, label, record_count, created_at FROM runs WHERE 1=1")

	if filter.Mode != nil {
		query.WriteString(" AND mode = ?")
		args = append(args, string(*filter.Mode))
	}

	// Timestamps have second resolution, so rowid breaks ties.
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*execscout.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// FindRecords retrieves a run's records in the order they were stored.
func (s *RunService) FindRecords(ctx context.Context, runID string) ([]execscout.PersonRecord, error) {
	if _, err := s.FindRunByID(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, title, company_name, context, profile_url
		FROM records
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []execscout.PersonRecord
	for rows.Next() {
		var r execscout.PersonRecord
		var title string
		if err := rows.Scan(&r.Name, &title, &r.CompanyName, &r.Context, &r.ProfileURL); err != nil {
			return nil, err
		}
		r.Title = execscout.TitleKeyword(title)
		records = append(records, r)
	}

	return records, rows.Err()
}

// DeleteRun permanently removes a run. Its records go with it.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return execscout.Errorf(execscout.ENOTFOUND, "run not found")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*execscout.Run, error) {
	var run execscout.Run
	var mode, createdAt string

	if err := row.Scan(&run.ID, &mode, &run.Label, &run.RecordCount, &createdAt); err != nil {
		return nil, err
	}
	run.Mode = execscout.RunMode(mode)

	var err error
	run.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &run, nil
}
