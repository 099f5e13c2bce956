package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/benchrate/slcsp/internal/contracts"
	"github.com/benchrate/slcsp/internal/emit"
	"github.com/benchrate/slcsp/internal/ingest"
	"github.com/benchrate/slcsp/internal/resolve"
	"github.com/benchrate/slcsp/pkg/config"
	"github.com/benchrate/slcsp/pkg/logger"
)

// Pipeline orchestrates one batch run: load the three tables, resolve each
// target zipcode, emit the output table. Stages hand data off by value and
// nothing is retained between runs, so repeated runs over the same inputs
// produce identical output.
type Pipeline struct {
	cfg    *config.Config
	rules  resolve.Rules
	logger *logger.Logger
}

// New creates a new Pipeline instance.
func New(cfg *config.Config, rules resolve.Rules, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		rules:  rules,
		logger: log.WithField("module", "pipeline"),
	}
}

// Summary describes one completed run.
type Summary struct {
	RunID      string            `json:"run_id"`
	Plans      int               `json:"plans"`
	TierPlans  int               `json:"tier_plans"`
	ZipAreas   int               `json:"zip_areas"`
	Targets    int               `json:"targets"`
	Resolved   int               `json:"resolved"`
	Unresolved int               `json:"unresolved"`
	Excluded   map[string]string `json:"excluded,omitempty"`
	OutputFile string            `json:"output_file"`
	Duration   time.Duration     `json:"duration"`
}

// Run executes one batch. It either completes fully or returns an error
// before the output file exists; a failed load never produces output.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := p.logger.WithField("run_id", runID)

	log.WithFields(map[string]interface{}{
		"plans_file":   p.cfg.Files.Plans,
		"zips_file":    p.cfg.Files.Zips,
		"targets_file": p.cfg.Files.Targets,
		"metal_level":  p.rules.MetalLevel,
		"rate_rank":    p.rules.RateRank,
	}).Info("Starting run")

	// 1. Load all three sources
	plans, err := ingest.LoadPlansFile(p.cfg.Files.Plans)
	if err != nil {
		return nil, fmt.Errorf("load plans: %w", err)
	}

	areas, err := ingest.LoadZipAreasFile(p.cfg.Files.Zips)
	if err != nil {
		return nil, fmt.Errorf("load zip areas: %w", err)
	}

	targets, err := ingest.LoadTargetsFile(p.cfg.Files.Targets)
	if err != nil {
		return nil, fmt.Errorf("load targets: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"plans":   len(plans),
		"zips":    len(areas),
		"targets": len(targets),
	}).Info("Load completed")

	// 2. Resolve every target zipcode
	resolver := resolve.NewResolver(p.rules, log)
	resolution := resolver.Resolve(ctx, plans, areas, targets)

	// 3. Emit the output table
	if err := emit.WriteFile(p.cfg.Files.Output, resolution.Results); err != nil {
		return nil, err
	}

	log.WithField("output", p.cfg.Files.Output).Info("Output written")

	return &Summary{
		RunID:      runID,
		Plans:      len(plans),
		TierPlans:  countTier(plans, p.rules.MetalLevel),
		ZipAreas:   len(areas),
		Targets:    len(targets),
		Resolved:   resolution.ResolvedCount(),
		Unresolved: len(targets) - resolution.ResolvedCount(),
		Excluded:   resolution.Excluded,
		OutputFile: p.cfg.Files.Output,
		Duration:   time.Since(start),
	}, nil
}

// countTier counts plans whose tier matches exactly.
func countTier(plans []contracts.Plan, level string) int {
	count := 0
	for _, plan := range plans {
		if plan.MetalLevel == level {
			count++
		}
	}
	return count
}
