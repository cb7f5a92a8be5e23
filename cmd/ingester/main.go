// jobsearch-ingester — loads the fetched JSON snapshot into the SQLite
// jobs table, replacing whatever was there before.
package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/roshanpost/jobsearch-mcp/internal/config"
	"github.com/roshanpost/jobsearch-mcp/internal/ingest"
	"github.com/roshanpost/jobsearch-mcp/internal/snapshot"
)

func main() {
	cfg, err := config.LoadIngester()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()

	records, err := snapshot.Read(cfg.SnapshotPath)
	if err != nil {
		log.Fatalf("cannot read snapshot (run the fetcher first): %v", err)
	}
	log.Infof("found %d jobs in %s", len(records), cfg.SnapshotPath)

	loader := ingest.NewLoader(cfg.DBPath)
	res, err := loader.Run(ctx, records)
	if err != nil {
		log.Fatalf("ingestion failed: %v", err)
	}
	log.WithField("run", res.RunID).Infof("ingested %d jobs into %s (%d rejected)",
		res.Inserted, cfg.DBPath, res.Rejected)

	if err := loader.Verify(ctx); err != nil {
		log.Fatalf("verification failed: %v", err)
	}
}
