// Package cmd - catalog listing commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"iops-calculator/core/engine"
	"iops-calculator/core/output"
	"iops-calculator/internal/config"
)

var (
	listFormat string
	listDiskGB float64
)

// tiersCmd lists compute tiers
var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List compute tiers with monthly price ranges",
	Long: `List every compute tier with memory, CPU, hourly price, the monthly
price range for 30 and 31 day months, disk and IOPS limits, and burst capacity.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter, eng, err := catalogSetup(cmd)
		if err != nil {
			return err
		}
		listing := output.NewCatalogListing(eng)
		listing.StorageClasses = nil
		return formatter.RenderCatalog(cmd.OutOrStdout(), listing)
	},
}

// storageCmd lists storage classes
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "List storage classes with IOPS bounds and pricing notes",
	Long: `List every storage class with its IOPS floor, per-GB IOPS allowance,
IOPS ceiling and pricing notes. With --disk, also print the IOPS range
each class allows at that disk size.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatter, eng, err := catalogSetup(cmd)
		if err != nil {
			return err
		}
		listing := output.NewCatalogListing(eng)
		listing.Tiers = nil
		if err := formatter.RenderCatalog(cmd.OutOrStdout(), listing); err != nil {
			return err
		}

		if !cmd.Flags().Changed("disk") || formatter.Format() == output.FormatJSON {
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nIOPS range at %g GB:\n", listDiskGB)
		for _, class := range eng.ListStorageClasses() {
			bounds := ioBounds(eng.IopsRange(listDiskGB, class.Key))
			fmt.Fprintf(cmd.OutOrStdout(), "  %-5s %s\n", class.Key, bounds.Hint())
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{tiersCmd, storageCmd} {
		c.Flags().StringVarP(&listFormat, "format", "f", "", "output format (cli, json, markdown)")
	}
	storageCmd.Flags().Float64Var(&listDiskGB, "disk", 0, "show IOPS bounds at this disk size in GB")
}

func catalogSetup(cmd *cobra.Command) (output.Formatter, *engine.Engine, error) {
	format := listFormat
	if !cmd.Flags().Changed("format") {
		format = config.Get().Output.DefaultFormat
	}
	parsed, err := output.ParseFormat(format)
	if err != nil {
		return nil, nil, err
	}
	formatter, err := output.New(parsed)
	if err != nil {
		return nil, nil, err
	}

	eng, err := newEngine()
	if err != nil {
		return nil, nil, err
	}
	return formatter, eng, nil
}

func ioBounds(floor, ceiling float64) output.IopsBounds {
	return output.IopsBounds{Min: floor, Max: ceiling}
}
