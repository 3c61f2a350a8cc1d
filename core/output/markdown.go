package output

import (
	"fmt"
	"io"
)

// MarkdownFormatter renders GitHub-flavoured markdown
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes the estimate as a markdown report
func (f *MarkdownFormatter) Render(w io.Writer, result *EstimationResult) error {
	ew := &errWriter{w: w}
	cfg := result.Configuration
	p := result.Pricing

	ew.println("### Monthly Cost Estimate")
	ew.println("")
	ew.printf("**%s / month**\n\n", formatMoney(p.TotalCost))

	ew.println("| Setting | Value |")
	ew.println("|---|---|")
	ew.printf("| Compute | %s |\n", cfg.SelectedTier)
	ew.printf("| Storage | %s |\n", cfg.StorageType)
	ew.printf("| Disk size | %s GB |\n", formatCount(cfg.DiskSizeGB))
	ew.printf("| IOPS | %s |\n", formatCount(cfg.Iops))
	ew.println("")

	ew.println("| Component | Monthly cost |")
	ew.println("|---|---:|")
	ew.printf("| Instance | %s |\n", formatMoney(p.InstanceCost))
	ew.printf("| Storage | %s |\n", formatMoney(p.StorageCost))
	ew.printf("| IOPS | %s |\n", formatMoney(p.IopsCost))
	ew.printf("| Throughput | %s |\n", formatMoney(p.ThroughputCost))
	ew.printf("| **Total** | **%s** |\n", formatMoney(p.TotalCost))

	if result.ShowDetails && len(p.Units) > 0 {
		ew.println("")
		ew.println("#### Line items")
		for _, u := range p.Units {
			ew.printf("- %s: %s (`%s`)\n", u.Label, formatMoney(u.Amount), u.Lineage.Formula)
		}
	}

	ew.println("")
	ew.printf("_%s._\n", result.IopsBounds.Hint())

	if result.Warnings.Any() {
		ew.println("")
		for _, warning := range result.Warnings.List() {
			ew.printf("> ⚠️ %s\n", warning.Message)
		}
	}

	return ew.err
}

// RenderCatalog writes the tiers and storage classes as markdown tables
func (f *MarkdownFormatter) RenderCatalog(w io.Writer, listing *CatalogListing) error {
	ew := &errWriter{w: w}

	if len(listing.Tiers) > 0 {
		ew.println("### Compute tiers")
		ew.println("")
		ew.println("| Tier | Memory | CPU | Monthly | Max disk | Max IOPS | Burst IOPS |")
		ew.println("|---|---:|---|---:|---:|---:|---:|")
		for _, t := range listing.Tiers {
			burst := "-"
			if t.BurstEnabled {
				burst = formatCount(float64(t.BurstIops))
			}
			ew.printf("| %s | %d GB | %s | $%s - $%s | %s GB | %s | %s |\n",
				t.Name, t.MemoryGB, t.CPUDescription, t.MonthlyMin, t.MonthlyMax,
				formatCount(float64(t.MaxDiskSizeGB)), formatCount(float64(t.MaxIops)), burst)
		}
	}

	if len(listing.StorageClasses) > 0 {
		if len(listing.Tiers) > 0 {
			ew.println("")
		}
		ew.println("### Storage classes")
		for _, s := range listing.StorageClasses {
			ew.println("")
			ew.println(fmt.Sprintf("**%s** (`%s`): %s", s.Name, s.Key, s.Description))
			ew.println("")
			for _, n := range s.Notes {
				ew.printf("- %s\n", n)
			}
		}
	}

	return ew.err
}
