package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roshanpost/jobsearch-mcp/internal/config"
)

func TestLoadFetcher_RequiresCredentials(t *testing.T) {
	t.Setenv("ADZUNA_APP_ID", "")
	t.Setenv("ADZUNA_API_KEY", "")

	_, err := config.LoadFetcher()
	assert.Error(t, err)

	t.Setenv("ADZUNA_APP_ID", "app-id")
	_, err = config.LoadFetcher()
	assert.Error(t, err, "API key still missing")
}

func TestLoadFetcher_Defaults(t *testing.T) {
	t.Setenv("ADZUNA_APP_ID", "app-id")
	t.Setenv("ADZUNA_API_KEY", "api-key")
	t.Setenv("ADZUNA_COUNTRY", "")
	t.Setenv("ADZUNA_SNAPSHOT_PATH", "")
	t.Setenv("FETCH_CRON", "")

	cfg, err := config.LoadFetcher()
	require.NoError(t, err)
	assert.Equal(t, "app-id", cfg.AppID)
	assert.Equal(t, "api-key", cfg.APIKey)
	assert.Equal(t, "us", cfg.Country)
	assert.Equal(t, "adzuna_jobs.json", cfg.SnapshotPath)
	assert.Empty(t, cfg.CronSpec)
}

func TestLoadFetcher_Overrides(t *testing.T) {
	t.Setenv("ADZUNA_APP_ID", "app-id")
	t.Setenv("ADZUNA_API_KEY", "api-key")
	t.Setenv("ADZUNA_COUNTRY", "gb")
	t.Setenv("ADZUNA_SNAPSHOT_PATH", "/tmp/snap.json")
	t.Setenv("FETCH_CRON", "@every 6h")

	cfg, err := config.LoadFetcher()
	require.NoError(t, err)
	assert.Equal(t, "gb", cfg.Country)
	assert.Equal(t, "/tmp/snap.json", cfg.SnapshotPath)
	assert.Equal(t, "@every 6h", cfg.CronSpec)
}

func TestLoadIngesterAndServer_Defaults(t *testing.T) {
	t.Setenv("ADZUNA_SNAPSHOT_PATH", "")
	t.Setenv("JOBS_DB_PATH", "")

	ing, err := config.LoadIngester()
	require.NoError(t, err)
	assert.Equal(t, "adzuna_jobs.json", ing.SnapshotPath)
	assert.Equal(t, "jobs.db", ing.DBPath)

	srv, err := config.LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "jobs.db", srv.DBPath)

	t.Setenv("JOBS_DB_PATH", "/data/jobs.db")
	srv, err = config.LoadServer()
	require.NoError(t, err)
	assert.Equal(t, "/data/jobs.db", srv.DBPath)
}
