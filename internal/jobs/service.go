// Package jobs contains the read-only job query service: three stateless
// lookups over the SQLite jobs table the ingester populates.
//
// Every call opens its own connection and releases it before returning.
// There is no shared state between calls, so concurrent invocations are
// independent; the table itself is a fixed snapshot the service never
// mutates.
package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/roshanpost/jobsearch-mcp/internal/model"
)

// Service executes the three query tools against the SQLite file at dbPath.
type Service struct {
	dbPath string
}

// NewService returns a Service reading the database at dbPath. The file is
// not touched until the first call.
func NewService(dbPath string) *Service {
	return &Service{dbPath: dbPath}
}

// open acquires a connection for a single call. A missing database file is
// reported as StorageUnavailable up front instead of letting the driver
// create an empty database and fail later with a confusing error.
func (s *Service) open() (*sql.DB, error) {
	if _, err := os.Stat(s.dbPath); err != nil {
		return nil, &StorageUnavailableError{Path: s.dbPath, Err: err}
	}
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return nil, &StorageUnavailableError{Path: s.dbPath, Err: err}
	}
	return db, nil
}

// SearchJobs returns up to q.Limit jobs matching the present filters,
// conjunctively combined, most recently ingested first. An empty result is
// success, not an error.
func (s *Service) SearchJobs(ctx context.Context, q SearchQuery) ([]model.Job, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query, args, err := searchSQL(q)
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.classify("search query", err)
	}
	defer rows.Close()

	result := make([]model.Job, 0, q.normalizedLimit())
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job row: %w", err)
		}
		result = append(result, job)
	}
	return result, rows.Err()
}

// GetJobByID returns the single job with the given id, or ErrNotFound.
// Ids are assigned from 1 at ingestion, so anything below 1 is rejected as
// an invalid argument before touching storage.
func (s *Service) GetJobByID(ctx context.Context, id int64) (*model.Job, error) {
	if id < 1 {
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("job_id must be a positive integer, got %d", id)}
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query, args, err := byIDSQL(id)
	if err != nil {
		return nil, fmt.Errorf("build lookup query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.classify("lookup query", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, s.classify("lookup query", err)
		}
		return nil, ErrNotFound
	}
	job, err := scanJob(rows)
	if err != nil {
		return nil, fmt.Errorf("scan job row: %w", err)
	}
	return &job, nil
}

// Statistics computes the summary fresh on every call: total and remote
// counts plus the top-N locations and companies. An empty table yields zero
// counts and empty rankings.
func (s *Service) Statistics(ctx context.Context) (*model.Statistics, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	stats := &model.Statistics{
		TopLocations: make([]model.LocationCount, 0, topN),
		TopCompanies: make([]model.CompanyCount, 0, topN),
	}

	if stats.TotalJobs, err = s.countQuery(ctx, db, totalSQL); err != nil {
		return nil, err
	}
	if stats.RemoteJobs, err = s.countQuery(ctx, db, remoteSQL); err != nil {
		return nil, err
	}

	query, args, err := groupedTopSQL("location")
	if err != nil {
		return nil, fmt.Errorf("build location ranking: %w", err)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.classify("location ranking", err)
	}
	defer rows.Close()
	for rows.Next() {
		var lc model.LocationCount
		if err := rows.Scan(&lc.Location, &lc.Count); err != nil {
			return nil, fmt.Errorf("scan location ranking: %w", err)
		}
		stats.TopLocations = append(stats.TopLocations, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, s.classify("location ranking", err)
	}

	query, args, err = groupedTopSQL("company")
	if err != nil {
		return nil, fmt.Errorf("build company ranking: %w", err)
	}
	companyRows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.classify("company ranking", err)
	}
	defer companyRows.Close()
	for companyRows.Next() {
		var cc model.CompanyCount
		if err := companyRows.Scan(&cc.Company, &cc.Count); err != nil {
			return nil, fmt.Errorf("scan company ranking: %w", err)
		}
		stats.TopCompanies = append(stats.TopCompanies, cc)
	}
	return stats, companyRows.Err()
}

// countQuery runs a single COUNT(*) statement built by build.
func (s *Service) countQuery(ctx context.Context, db *sql.DB, build func() (string, []interface{}, error)) (int64, error) {
	query, args, err := build()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	var n int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, s.classify("count query", err)
	}
	return n, nil
}

// scanJob maps the current row onto a Job. Column order must match
// jobColumns.
func scanJob(rows *sql.Rows) (model.Job, error) {
	var (
		j        model.Job
		isRemote int64
	)
	err := rows.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location,
		&j.Description, &j.SalaryMin, &j.SalaryMax,
		&j.URL, &isRemote, &j.Skills,
		&j.PostedDate, &j.IngestedAt,
	)
	if err != nil {
		return model.Job{}, err
	}
	j.IsRemote = isRemote != 0
	return j, nil
}
