// Package ingest loads a fetched snapshot into the SQLite jobs table.
//
// The loader is the sole writer of the table: every run drops and recreates
// it, so the query service always reads a complete snapshot, never a
// partial merge.
package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/roshanpost/jobsearch-mcp/internal/snapshot"
)

const createTableSQL = `
CREATE TABLE jobs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	company     TEXT NOT NULL,
	location    TEXT NOT NULL,
	description TEXT,
	salary_min  REAL,
	salary_max  REAL,
	url         TEXT,
	is_remote   INTEGER NOT NULL DEFAULT 0,
	skills      TEXT,
	posted_date TEXT,
	ingested_at TEXT NOT NULL
)`

const insertSQL = `
INSERT INTO jobs (
	title, company, location, description, salary_min, salary_max,
	url, is_remote, skills, posted_date, ingested_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Result summarises one ingestion run.
type Result struct {
	RunID    string
	Inserted int
	Rejected int
}

// Loader writes snapshots into the database at DBPath.
type Loader struct {
	dbPath string
}

// NewLoader returns a Loader targeting dbPath. The file is created on the
// first run if it does not exist.
func NewLoader(dbPath string) *Loader {
	return &Loader{dbPath: dbPath}
}

// Run replaces the jobs table with the given records. Records that fail
// schema validation are counted and skipped, not fatal. All inserts happen
// in one transaction so a failed run leaves no half-loaded table behind.
func (l *Loader) Run(ctx context.Context, records []snapshot.Record) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	ingestedAt := time.Now().UTC().Format(time.RFC3339)

	db, err := sql.Open("sqlite", l.dbPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.dbPath, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS jobs"); err != nil {
		return nil, fmt.Errorf("drop jobs table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("create jobs table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, raw := range records {
		rec, err := snapshot.Normalize(raw)
		if err != nil {
			log.WithField("run", res.RunID).Warnf("skipping record: %v", err)
			res.Rejected++
			continue
		}

		_, err = stmt.ExecContext(ctx,
			rec.Title, rec.Company, rec.Location, rec.Description,
			rec.SalaryMin, rec.SalaryMax, rec.URL,
			boolToInt(isRemote(rec)), rec.Skills, rec.PostedDate, ingestedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("insert %q: %w", rec.Title, err)
		}
		res.Inserted++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return res, nil
}

// isRemote derives the stored remote flag from the source flag or, failing
// that, the location text.
func isRemote(rec snapshot.Record) bool {
	return rec.Remote || strings.Contains(strings.ToLower(rec.Location), "remote")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Verify re-reads the freshly loaded table and logs the row count and top
// locations, mirroring what the statistics tool will later report.
func (l *Loader) Verify(ctx context.Context) error {
	db, err := sql.Open("sqlite", l.dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", l.dbPath, err)
	}
	defer db.Close()

	var total int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs").Scan(&total); err != nil {
		return fmt.Errorf("count jobs: %w", err)
	}
	log.Infof("jobs in database: %d", total)

	rows, err := db.QueryContext(ctx,
		"SELECT location, COUNT(*) AS count FROM jobs GROUP BY location ORDER BY count DESC, location ASC LIMIT 5")
	if err != nil {
		return fmt.Errorf("location counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			location string
			count    int64
		)
		if err := rows.Scan(&location, &count); err != nil {
			return fmt.Errorf("scan location count: %w", err)
		}
		log.Infof("  %s: %d jobs", location, count)
	}
	return rows.Err()
}
