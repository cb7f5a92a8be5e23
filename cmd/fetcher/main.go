// jobsearch-fetcher — downloads job listings from the Adzuna API and writes
// them as a JSON snapshot for the ingester.
//
// Runs once by default. With FETCH_CRON set (e.g. "@every 6h") it keeps
// refreshing the snapshot on that schedule until interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/roshanpost/jobsearch-mcp/internal/adzuna"
	"github.com/roshanpost/jobsearch-mcp/internal/config"
	"github.com/roshanpost/jobsearch-mcp/internal/scheduler"
	"github.com/roshanpost/jobsearch-mcp/internal/snapshot"
)

// searchQuery is one entry of the fixed query matrix.
type searchQuery struct {
	Role       string
	Location   string
	NumResults int
}

// searchQueries is the fixed set of searches each run performs.
var searchQueries = []searchQuery{
	{"Software Engineer", "San Francisco", 8},
	{"Software Engineer", "New York", 7},
	{"Python Developer", "Seattle", 8},
	{"Python Developer", "Austin", 7},
	{"React Developer", "Remote", 10},
	{"Data Scientist", "Boston", 8},
	{"Data Scientist", "Chicago", 7},
	{"DevOps Engineer", "Denver", 8},
	{"DevOps Engineer", "Portland", 7},
}

func main() {
	cfg, err := config.LoadFetcher()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := adzuna.NewClient(cfg.AppID, cfg.APIKey, cfg.Country)

	if cfg.CronSpec == "" {
		if err := fetchAll(ctx, client, cfg.SnapshotPath); err != nil {
			log.Fatalf("fetch failed: %v", err)
		}
		return
	}

	// Scheduled mode: refresh the snapshot on the configured cron spec.
	sched := scheduler.New(cfg.CronSpec, func(ctx context.Context) {
		if err := fetchAll(ctx, client, cfg.SnapshotPath); err != nil {
			log.Errorf("scheduled fetch failed: %v", err)
		}
	})
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")
}

// fetchAll runs the full query matrix, deduplicates by (title, company),
// and replaces the snapshot on disk.
func fetchAll(ctx context.Context, client *adzuna.Client, path string) error {
	run := log.WithField("run", uuid.NewString())

	var all []snapshot.Record
	for _, q := range searchQueries {
		run.Infof("searching %q in %q", q.Role, q.Location)
		records, err := client.Search(ctx, q.Role, q.Location, q.NumResults)
		if err != nil {
			run.Warnf("search %q/%q failed: %v — continuing", q.Role, q.Location, err)
			continue
		}
		run.Infof("found %d jobs", len(records))
		all = append(all, records...)
	}

	unique := dedupe(all)
	run.Infof("total unique jobs: %d", len(unique))

	if err := snapshot.Write(path, unique); err != nil {
		return err
	}
	run.Infof("saved %d jobs to %s", len(unique), path)
	return nil
}

// dedupe drops records sharing (title, company) with an earlier one.
func dedupe(records []snapshot.Record) []snapshot.Record {
	seen := make(map[[2]string]struct{}, len(records))
	unique := make([]snapshot.Record, 0, len(records))
	for _, r := range records {
		key := [2]string{r.Title, r.Company}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}
