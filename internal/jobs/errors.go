package jobs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by GetJobByID when no row has the requested id.
// It marks a valid lookup with no match, not a failure.
var ErrNotFound = errors.New("no such job")

// InvalidArgumentError wraps a user-facing parameter validation message.
type InvalidArgumentError struct{ Msg string }

func (e *InvalidArgumentError) Error() string { return e.Msg }

// StorageUnavailableError is returned when the database file or the jobs
// table is missing. The message tells the caller to run the ingester rather
// than leaking a raw driver error.
type StorageUnavailableError struct {
	Path string
	Err  error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("job database unavailable at %s (run the ingester to load a snapshot): %v", e.Path, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error { return e.Err }

// classify maps low-level storage errors onto the service taxonomy. A
// missing jobs table means the database was never ingested; anything else
// is surfaced wrapped as a plain query failure.
func (s *Service) classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "no such table") {
		return &StorageUnavailableError{Path: s.dbPath, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
