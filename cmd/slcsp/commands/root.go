package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benchrate/slcsp/internal/pipeline"
	"github.com/benchrate/slcsp/internal/resolve"
	"github.com/benchrate/slcsp/pkg/config"
	"github.com/benchrate/slcsp/pkg/logger"
)

var (
	// Flags; empty string means "use config or default"
	plansFile   string
	zipsFile    string
	targetsFile string
	outputFile  string
	rulesFile   string
	verbose     bool
)

// rootCmd runs the whole batch: load, resolve, emit, exit.
var rootCmd = &cobra.Command{
	Use:   "slcsp",
	Short: "Resolve the second lowest cost Silver plan rate for each zipcode",
	Long: `slcsp joins a health plans table with a zipcode-to-rate-area table and
writes one benchmark rate per target zipcode.

All three inputs are plain CSV. The output table mirrors the target list
line for line; a zipcode whose candidate rates hold fewer than two distinct
price points keeps its line with an empty rate field.

Usage:
  slcsp

Examples:
  slcsp
  slcsp --plans data/plans.csv --zips data/zips.csv --targets data/slcsp.csv
  slcsp --output out/rates.csv --rules config/benchmark.yaml -v`,
	SilenceUsage: true,
	RunE:         runBatch,
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&plansFile, "plans", "", "plans table (default plans.csv, env SLCSP_PLANS_FILE)")
	rootCmd.Flags().StringVar(&zipsFile, "zips", "", "zipcode table (default zips.csv, env SLCSP_ZIPS_FILE)")
	rootCmd.Flags().StringVar(&targetsFile, "targets", "", "target zipcode list (default slcsp.csv, env SLCSP_TARGETS_FILE)")
	rootCmd.Flags().StringVar(&outputFile, "output", "", "output table (default slcsp_out.csv, env SLCSP_OUTPUT_FILE)")
	rootCmd.Flags().StringVar(&rulesFile, "rules", "", "benchmark rules YAML (default: Silver, rank 2)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func runBatch(cmd *cobra.Command, args []string) error {
	// 1. Config: defaults, then environment, then explicit flags
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	log := logger.New(cfg)

	// 2. Benchmark rules
	rules := resolve.DefaultRules()
	if cfg.Files.Rules != "" {
		rules, err = resolve.LoadRules(cfg.Files.Rules)
		if err != nil {
			log.WithError(err).Error("Invalid benchmark rules")
			return err
		}
	}

	// 3. Run the batch
	summary, err := pipeline.New(cfg, rules, log).Run(cmd.Context())
	if err != nil {
		log.WithError(err).Error("Run failed")
		return err
	}

	printSummary(summary, rules, cfg.ReportUnresolved)
	return nil
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("plans") {
		cfg.Files.Plans = plansFile
	}
	if cmd.Flags().Changed("zips") {
		cfg.Files.Zips = zipsFile
	}
	if cmd.Flags().Changed("targets") {
		cfg.Files.Targets = targetsFile
	}
	if cmd.Flags().Changed("output") {
		cfg.Files.Output = outputFile
	}
	if cmd.Flags().Changed("rules") {
		cfg.Files.Rules = rulesFile
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
}
