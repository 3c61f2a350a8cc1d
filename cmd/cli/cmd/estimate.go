// Package cmd - estimate command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"iops-calculator/core/engine"
	"iops-calculator/core/output"
	"iops-calculator/core/types"
	"iops-calculator/internal/config"
	"iops-calculator/internal/logging"
)

var (
	tierName     string
	storageKey   string
	diskInput    string
	iopsInput    string
	outputFormat string
	showDetails  bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the monthly cost of a configuration",
	Long: `Apply tier, storage, disk and IOPS selections to the default configuration
and print the reconciled configuration, any warnings, and the monthly cost.

Selections are applied in the order tier, storage, disk, IOPS, exactly as if
they were made one after another in the calculator. Selecting a tier resets
disk and IOPS to that tier's defaults, so pass --disk and --iops to override.

Examples:
  iops-calculator estimate
  iops-calculator estimate --tier Large --storage io2
  iops-calculator estimate --tier Large --storage io2 --disk 100 --iops 40000
  iops-calculator estimate --tier XL --format markdown --details`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&tierName, "tier", "t", "", "compute tier (see 'tiers')")
	estimateCmd.Flags().StringVarP(&storageKey, "storage", "s", "", "storage class key (gp3, io2)")
	estimateCmd.Flags().StringVar(&diskInput, "disk", "", "disk size in GB")
	estimateCmd.Flags().StringVar(&iopsInput, "iops", "", "provisioned IOPS")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	estimateCmd.Flags().BoolVarP(&showDetails, "details", "d", false, "show detailed cost breakdown")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	format := outputFormat
	if !cmd.Flags().Changed("format") {
		format = cfg.Output.DefaultFormat
	}
	parsed, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	formatter, err := output.New(parsed)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	session := eng.NewSession(cfg.Defaults)
	if err := applySelections(cmd, session); err != nil {
		return err
	}

	state := session.Snapshot()
	logging.Debug("estimate",
		zap.String("tier", state.Configuration.SelectedTier),
		zap.String("storage", string(state.Configuration.StorageType)),
		zap.Float64("disk_gb", state.Configuration.DiskSizeGB),
		zap.Float64("iops", state.Configuration.Iops),
		zap.String("total", state.Pricing.TotalCost.String()))

	result := output.NewEstimationResult(eng, state, Version)
	result.ShowDetails = showDetails || (!cmd.Flags().Changed("details") && cfg.Output.ShowDetails)

	return formatter.Render(cmd.OutOrStdout(), result)
}

// applySelections replays the flags that were set as events, in field order
func applySelections(cmd *cobra.Command, session *engine.Session) error {
	flags := cmd.Flags()

	if flags.Changed("tier") {
		if err := session.SelectTier(tierName); err != nil {
			return err
		}
	}
	if flags.Changed("storage") {
		if err := session.SelectStorageType(types.StorageKey(storageKey)); err != nil {
			return err
		}
	}
	if flags.Changed("disk") {
		if _, err := session.SetDiskSize(diskInput); err != nil {
			return err
		}
	}
	if flags.Changed("iops") {
		if _, err := session.SetIops(iopsInput); err != nil {
			return err
		}
	}
	return nil
}
