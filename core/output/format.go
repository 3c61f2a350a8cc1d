package output

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// formatCount renders GB and IOPS with thousands separators (16,000; 8.5)
func formatCount(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// formatMoney renders a dollar amount at cents precision ($2,568.72)
func formatMoney(d decimal.Decimal) string {
	return "$" + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// formatRate renders a unit price at full precision ($0.01344)
func formatRate(d decimal.Decimal) string {
	return "$" + d.String()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
