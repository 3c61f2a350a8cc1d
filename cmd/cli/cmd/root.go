// Package cmd provides the CLI commands for iops-calculator.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cataloghcl "iops-calculator/adapters/catalog/hcl"
	"iops-calculator/core/engine"
	"iops-calculator/internal/config"
	"iops-calculator/internal/logging"
)

// Version is set at build time with -ldflags "-X iops-calculator/cmd/cli/cmd.Version=..."
var Version = "0.1.0"

var (
	cfgFile     string
	catalogFile string
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "iops-calculator",
	Short: "Estimate monthly compute and disk costs",
	Long: `iops-calculator estimates the monthly cost of a compute tier with an
attached SSD volume, given disk size and provisioned IOPS.

Examples:
  iops-calculator estimate --tier Large --storage io2 --disk 100 --iops 40000
  iops-calculator estimate --tier XL --format json
  iops-calculator tiers
  iops-calculator storage --disk 500`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.iops-calculator.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "HCL catalog file (overrides catalog.path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(storageCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if catalogFile != "" {
		cfg.Catalog.Path = catalogFile
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// newEngine builds the engine over the configured catalog
func newEngine() (*engine.Engine, error) {
	cfg := config.Get()
	logger := logging.Named("engine")

	if cfg.Catalog.Path == "" {
		return engine.NewDefault(engine.WithLogger(logger)), nil
	}

	cat, err := cataloghcl.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	logging.Debug("loaded catalog", zap.String("path", cfg.Catalog.Path))
	return engine.New(cat, engine.WithLogger(logger)), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "iops-calculator version %s\n", Version)
	},
}
