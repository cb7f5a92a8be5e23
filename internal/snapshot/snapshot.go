// Package snapshot defines the JSON document the fetcher writes and the
// ingester reads: a flat array of normalized job records. The file on disk
// is the only contract between the two commands.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// placeholder fills fields the source omitted.
const placeholder = "N/A"

// Record is one job listing in the snapshot document.
type Record struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	SalaryMin   *float64 `json:"salary_min,omitempty"`
	SalaryMax   *float64 `json:"salary_max,omitempty"`
	URL         string   `json:"url"`
	Remote      bool     `json:"remote"`
	Skills      string   `json:"skills,omitempty"`
	PostedDate  string   `json:"posted_date,omitempty"`
}

// Normalize validates a decoded record and default-fills missing fields.
// A record carrying neither a title nor a URL has nothing to identify it
// and is rejected.
func Normalize(r Record) (Record, error) {
	if strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.URL) == "" {
		return Record{}, fmt.Errorf("record has neither title nor url")
	}
	if strings.TrimSpace(r.Title) == "" {
		r.Title = placeholder
	}
	if strings.TrimSpace(r.Company) == "" {
		r.Company = placeholder
	}
	if strings.TrimSpace(r.Location) == "" {
		r.Location = placeholder
	}
	if strings.TrimSpace(r.URL) == "" {
		r.URL = placeholder
	}
	return r, nil
}

// Write marshals records to path, replacing any existing snapshot.
func Write(path string, records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// Read loads and decodes the snapshot at path.
func Read(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	return records, nil
}
