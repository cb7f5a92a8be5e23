// Package scheduler wires up the cron job that periodically refreshes the
// job snapshot.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// Scheduler wraps robfig/cron around a single refresh function.
type Scheduler struct {
	cron *cron.Cron
	spec string // cron spec, e.g. "@every 6h"
	run  func(context.Context)
}

// New creates a Scheduler firing run on the given cron spec.
func New(spec string, run func(context.Context)) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
		spec: spec,
		run:  run,
	}
}

// Start registers the job and starts the scheduler. Also runs once
// immediately so a fresh snapshot exists without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Infof("cron started — spec: %s", s.spec)

	go s.run(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info("cron stopped")
}
