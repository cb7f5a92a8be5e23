package snapshot_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roshanpost/jobsearch-mcp/internal/snapshot"
)

func TestNormalize_RejectsRecordWithoutIdentity(t *testing.T) {
	_, err := snapshot.Normalize(snapshot.Record{Company: "Acme", Location: "Austin"})
	assert.Error(t, err)

	_, err = snapshot.Normalize(snapshot.Record{Title: "   ", URL: "  "})
	assert.Error(t, err)
}

func TestNormalize_DefaultFillsBlanks(t *testing.T) {
	got, err := snapshot.Normalize(snapshot.Record{Title: "Engineer"})
	require.NoError(t, err)
	assert.Equal(t, "Engineer", got.Title)
	assert.Equal(t, "N/A", got.Company)
	assert.Equal(t, "N/A", got.Location)
	assert.Equal(t, "N/A", got.URL)
}

func TestNormalize_KeepsPresentFields(t *testing.T) {
	min := 90000.0
	in := snapshot.Record{
		Title:     "Engineer",
		Company:   "Acme",
		Location:  "Remote",
		URL:       "https://example.com/1",
		SalaryMin: &min,
		Remote:    true,
		Skills:    "Go, SQL",
	}
	got, err := snapshot.Normalize(in)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := snapshot.Read(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	records := []snapshot.Record{
		{Title: "A", Company: "Acme", Location: "Austin", URL: "u1"},
		{Title: "B", Company: "Globex", Location: "Remote", URL: "u2", Remote: true},
	}
	require.NoError(t, snapshot.Write(path, records))

	got, err := snapshot.Read(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
