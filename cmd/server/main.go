// jobsearch-server — MCP stdio server exposing three read-only query tools
// over the ingested jobs database:
//
//	search_jobs        — keyword / location / company search
//	get_job_by_id      — single job lookup
//	get_job_statistics — totals and top locations / companies
//
// stdout is the MCP protocol channel; all logging goes to stderr.
package main

import (
	"context"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/roshanpost/jobsearch-mcp/internal/config"
	"github.com/roshanpost/jobsearch-mcp/internal/jobs"
	"github.com/roshanpost/jobsearch-mcp/internal/mcpserver"
)

const version = "1.0.0"

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := jobs.NewService(cfg.DBPath)

	log.Infof("v%s serving MCP over stdio (db: %s)", version, cfg.DBPath)
	if err := mcpserver.Run(ctx, svc, version); err != nil {
		log.Fatalf("server error: %v", err)
	}
	log.Info("stopped")
}
