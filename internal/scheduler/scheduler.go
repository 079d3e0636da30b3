// Package scheduler runs the recurring near-target scan. The scan walks the
// aggregated portfolio and logs positions whose target date is approaching,
// grouped by urgency, so an operator sees upcoming deadlines without opening
// the frontend.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rmehta/stock-analysis-backend/internal/config"
	"github.com/rmehta/stock-analysis-backend/internal/portfolio"
	"github.com/rmehta/stock-analysis-backend/internal/service"
)

// scanTimeout bounds a single scan run.
const scanTimeout = 30 * time.Second

// Scheduler owns the cron runner for the near-target scan.
type Scheduler struct {
	cron             *cron.Cron
	portfolioService *service.PortfolioService
	cfg              config.TargetScanConfig
}

// New creates a Scheduler. Call Start to begin running the scan.
func New(portfolioService *service.PortfolioService, cfg config.TargetScanConfig) *Scheduler {
	return &Scheduler{
		cron:             cron.New(),
		portfolioService: portfolioService,
		cfg:              cfg,
	}
}

// Start registers the near-target scan and starts the cron runner.
// Returns an error if the configured schedule expression is invalid.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.runScan); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Near-target scan scheduled: %q (horizon %d days)", s.cfg.Schedule, s.cfg.HorizonDays)
	return nil
}

// Stop stops the cron runner and waits for a running scan to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runScan() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	positions, err := s.portfolioService.GetNearTarget(ctx, s.cfg.HorizonDays, time.Now().UTC())
	if err != nil {
		log.Printf("Near-target scan failed: %v", err)
		return
	}

	if len(positions) == 0 {
		log.Printf("Near-target scan: no targets within %d days", s.cfg.HorizonDays)
		return
	}

	counts := map[string]int{}
	for _, p := range positions {
		counts[p.Urgency]++
	}
	log.Printf(
		"Near-target scan: %d position(s) within %d days (critical=%d urgent=%d warning=%d normal=%d)",
		len(positions),
		s.cfg.HorizonDays,
		counts[portfolio.UrgencyCritical],
		counts[portfolio.UrgencyUrgent],
		counts[portfolio.UrgencyWarning],
		counts[portfolio.UrgencyNormal],
	)

	for _, p := range positions {
		name := p.StockID
		if p.Stock != nil {
			name = p.Stock.Name
		}
		log.Printf("  [%s] %s: target %.2f by %s (%d day(s) remaining)",
			p.Urgency, name, p.TargetPrice, p.TargetDate, p.DaysRemaining)
	}
}
