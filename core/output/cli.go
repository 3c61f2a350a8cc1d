package output

import (
	"fmt"
	"io"
	"text/tabwriter"
)

const (
	boxTop    = "┌─────────────────────────────────────────────────────────────────────────┐"
	boxRule   = "├─────────────────────────────────────────────────────────────────────────┤"
	boxBottom = "└─────────────────────────────────────────────────────────────────────────┘"
)

// CLIFormatter renders box tables for terminals
type CLIFormatter struct{}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter() *CLIFormatter {
	return &CLIFormatter{}
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the configuration, warnings and cost breakdown
func (f *CLIFormatter) Render(w io.Writer, result *EstimationResult) error {
	ew := &errWriter{w: w}
	cfg := result.Configuration
	p := result.Pricing

	ew.println(boxTop)
	ew.printf("│ %-71s │\n", "MONTHLY COST ESTIMATE")
	ew.println(boxRule)

	tierLine := cfg.SelectedTier
	if result.Tier != nil {
		tierLine = fmt.Sprintf("%s (%d GB, %s)", result.Tier.Name, result.Tier.MemoryGB, result.Tier.CPUShort())
	}
	storageLine := string(cfg.StorageType)
	if result.StorageClass != nil {
		storageLine = fmt.Sprintf("%s (%s)", result.StorageClass.Name, result.StorageClass.Key)
	}

	row(ew, "Compute", tierLine)
	row(ew, "Storage", storageLine)
	row(ew, "Disk size", fmt.Sprintf("%s GB (%s)", formatCount(cfg.DiskSizeGB), formatMoney(p.StorageCost)))
	row(ew, "IOPS", formatCount(cfg.Iops))
	ew.printf("│   %-69s │\n", truncate(result.IopsBounds.Hint(), 69))

	ew.println(boxRule)
	row(ew, "Instance", formatMoney(p.InstanceCost))
	row(ew, "Storage", formatMoney(p.StorageCost))
	row(ew, "IOPS", formatMoney(p.IopsCost))
	row(ew, "Throughput", formatMoney(p.ThroughputCost))

	if result.ShowDetails {
		for _, u := range p.Units {
			ew.printf("│   └─ %-45s %20s │\n", truncate(u.Label, 45), formatMoney(u.Amount))
			ew.printf("│      %-66s │\n", truncate(u.Lineage.Formula, 66))
		}
	}

	ew.println(boxRule)
	row(ew, "TOTAL MONTHLY ESTIMATE", formatMoney(p.TotalCost))
	ew.println(boxBottom)

	if result.Warnings.Any() {
		ew.println("")
		ew.println("Warnings:")
		for _, warning := range result.Warnings.List() {
			ew.printf("  - %s\n", warning.Message)
		}
	}

	if len(result.Notes) > 0 {
		ew.println("")
		ew.println("Notes:")
		for _, n := range result.Notes {
			ew.printf("  - %s\n", n)
		}
	}

	return ew.err
}

// RenderCatalog writes aligned tier and storage tables
func (f *CLIFormatter) RenderCatalog(w io.Writer, listing *CatalogListing) error {
	ew := &errWriter{w: w}

	if len(listing.Tiers) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		tew := &errWriter{w: tw}
		tew.printf("TIER\tMEMORY\tCPU\tHOURLY\tMONTHLY\tMAX DISK\tMAX IOPS\tBURST\n")
		tew.printf("----\t------\t---\t------\t-------\t--------\t--------\t-----\n")
		for _, t := range listing.Tiers {
			burst := "-"
			if t.BurstEnabled {
				burst = fmt.Sprintf("up to %s IOPS", formatCount(float64(t.BurstIops)))
			}
			tew.printf("%s\t%d GB\t%s\t%s\t$%s - $%s\t%s GB\t%s\t%s\n",
				t.Name, t.MemoryGB, t.CPUDescription, formatRate(t.HourlyPrice),
				t.MonthlyMin, t.MonthlyMax,
				formatCount(float64(t.MaxDiskSizeGB)), formatCount(float64(t.MaxIops)), burst)
		}
		if tew.err != nil {
			return tew.err
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	for i, s := range listing.StorageClasses {
		if i > 0 || len(listing.Tiers) > 0 {
			ew.println("")
		}
		ew.printf("%s (%s)\n", s.Name, s.Key)
		ew.printf("  %s\n", s.Description)
		ew.printf("  IOPS: %s minimum, %s per GB, %s maximum\n",
			formatCount(s.Rates.IopsFloor), formatCount(s.Rates.IopsPerGB), formatCount(s.Rates.IopsCeiling))
		for _, n := range s.Notes {
			ew.printf("  - %s\n", n)
		}
	}

	return ew.err
}

func row(ew *errWriter, label, value string) {
	ew.printf("│ %-30s %40s │\n", truncate(label, 30), truncate(value, 40))
}
