package ingest_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/roshanpost/jobsearch-mcp/internal/ingest"
	"github.com/roshanpost/jobsearch-mcp/internal/snapshot"
)

func openDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRun_InsertsValidRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "jobs.db")
	records := []snapshot.Record{
		{Title: "Python Developer", Company: "Acme", Location: "Seattle",
			Description: "d", URL: "https://example.com/1", Skills: "Python"},
		{Title: "React Developer", Company: "Globex", Location: "Remote",
			Description: "d", URL: "https://example.com/2", Remote: true},
	}

	res, err := ingest.NewLoader(dbPath).Run(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Inserted)
	assert.Zero(t, res.Rejected)
	assert.NotEmpty(t, res.RunID)

	db := openDB(t, dbPath)
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM jobs").Scan(&count))
	assert.Equal(t, 2, count)

	var ingestedAt string
	require.NoError(t, db.QueryRow("SELECT ingested_at FROM jobs WHERE id = 1").Scan(&ingestedAt))
	assert.NotEmpty(t, ingestedAt)
}

func TestRun_RejectsUnidentifiableRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "jobs.db")
	records := []snapshot.Record{
		{Title: "", URL: "", Company: "Acme", Location: "Austin"}, // no identity
		{Title: "Kept", Company: "Acme", Location: "Austin", URL: "https://example.com/1"},
	}

	res, err := ingest.NewLoader(dbPath).Run(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 1, res.Rejected)
}

func TestRun_DefaultFillsMissingFields(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "jobs.db")
	records := []snapshot.Record{
		{Title: "Solo Title", Company: "", Location: "", URL: ""},
	}

	_, err := ingest.NewLoader(dbPath).Run(context.Background(), records)
	require.NoError(t, err)

	db := openDB(t, dbPath)
	var company, location string
	var salaryMin sql.NullFloat64
	require.NoError(t, db.QueryRow(
		"SELECT company, location, salary_min FROM jobs WHERE id = 1").
		Scan(&company, &location, &salaryMin))
	assert.Equal(t, "N/A", company)
	assert.Equal(t, "N/A", location)
	assert.False(t, salaryMin.Valid, "absent salary stays NULL")
}

func TestRun_DerivesRemoteFromLocation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "jobs.db")
	records := []snapshot.Record{
		{Title: "A", Company: "Acme", Location: "Remote (US)", URL: "u1"},
		{Title: "B", Company: "Acme", Location: "Austin", URL: "u2", Remote: true},
		{Title: "C", Company: "Acme", Location: "Austin", URL: "u3"},
	}

	_, err := ingest.NewLoader(dbPath).Run(context.Background(), records)
	require.NoError(t, err)

	db := openDB(t, dbPath)
	var remoteCount int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM jobs WHERE is_remote = 1").Scan(&remoteCount))
	assert.Equal(t, 2, remoteCount)
}

func TestRun_ReplacesPreviousLoad(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "jobs.db")
	loader := ingest.NewLoader(dbPath)
	ctx := context.Background()

	first := []snapshot.Record{
		{Title: "Old A", Company: "Acme", Location: "Austin", URL: "u1"},
		{Title: "Old B", Company: "Acme", Location: "Austin", URL: "u2"},
		{Title: "Old C", Company: "Acme", Location: "Austin", URL: "u3"},
	}
	_, err := loader.Run(ctx, first)
	require.NoError(t, err)

	second := []snapshot.Record{
		{Title: "New", Company: "Globex", Location: "Boston", URL: "u4"},
	}
	_, err = loader.Run(ctx, second)
	require.NoError(t, err)

	db := openDB(t, dbPath)
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM jobs").Scan(&count))
	assert.Equal(t, 1, count, "reload must fully replace the table")

	// Ids restart from 1 on a fresh table.
	var title string
	require.NoError(t, db.QueryRow("SELECT title FROM jobs WHERE id = 1").Scan(&title))
	assert.Equal(t, "New", title)
}

func TestVerify_RunsOverLoadedTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "jobs.db")
	loader := ingest.NewLoader(dbPath)
	_, err := loader.Run(context.Background(), []snapshot.Record{
		{Title: "A", Company: "Acme", Location: "Austin", URL: "u1"},
	})
	require.NoError(t, err)

	assert.NoError(t, loader.Verify(context.Background()))
}
