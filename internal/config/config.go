// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
//
// A .env file in the working directory is honoured when present, so local
// runs do not need to export credentials by hand.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultSnapshotPath = "adzuna_jobs.json"
	defaultDBPath       = "jobs.db"
	defaultCountry      = "us"
)

// FetcherConfig holds runtime configuration for the fetcher command.
type FetcherConfig struct {
	AppID        string
	APIKey       string
	Country      string // Adzuna market, e.g. "us", "gb"
	SnapshotPath string
	CronSpec     string // when non-empty the fetcher runs on this schedule
}

// IngesterConfig holds runtime configuration for the ingester command.
type IngesterConfig struct {
	SnapshotPath string
	DBPath       string
}

// ServerConfig holds runtime configuration for the MCP server command.
type ServerConfig struct {
	DBPath string
}

// LoadFetcher reads environment variables and returns a validated
// FetcherConfig. The Adzuna credentials are required.
func LoadFetcher() (*FetcherConfig, error) {
	loadDotenv()

	appID := os.Getenv("ADZUNA_APP_ID")
	if appID == "" {
		return nil, fmt.Errorf("ADZUNA_APP_ID is required")
	}
	apiKey := os.Getenv("ADZUNA_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ADZUNA_API_KEY is required")
	}

	country := os.Getenv("ADZUNA_COUNTRY")
	if country == "" {
		country = defaultCountry
	}

	return &FetcherConfig{
		AppID:        appID,
		APIKey:       apiKey,
		Country:      country,
		SnapshotPath: snapshotPath(),
		CronSpec:     os.Getenv("FETCH_CRON"),
	}, nil
}

// LoadIngester reads environment variables and returns an IngesterConfig.
// All values have defaults.
func LoadIngester() (*IngesterConfig, error) {
	loadDotenv()

	return &IngesterConfig{
		SnapshotPath: snapshotPath(),
		DBPath:       dbPath(),
	}, nil
}

// LoadServer reads environment variables and returns a ServerConfig.
func LoadServer() (*ServerConfig, error) {
	loadDotenv()

	return &ServerConfig{DBPath: dbPath()}, nil
}

// loadDotenv pulls in a .env file when one exists. Absence is not an error.
func loadDotenv() {
	_ = godotenv.Load()
}

func snapshotPath() string {
	if p := os.Getenv("ADZUNA_SNAPSHOT_PATH"); p != "" {
		return p
	}
	return defaultSnapshotPath
}

func dbPath() string {
	if p := os.Getenv("JOBS_DB_PATH"); p != "" {
		return p
	}
	return defaultDBPath
}
