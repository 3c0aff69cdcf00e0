package renderer

import (
	"fmt"
	"strings"

	"github.com/pfalcke/screener"
)

// AnomaliesMarkdown renders the price-to-sales anomaly report as a
// markdown table. Reports are expected already sorted by z-score; a
// positive top only renders the first rows.
func AnomaliesMarkdown(reports []screener.AnomalyReport, top int) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Price-to-Sales Anomalies\n\n")
	if len(reports) == 0 {
		fmt.Fprintln(&b, "No ticker to report on.")
		return b.String()
	}

	rows := reports
	if top > 0 && len(rows) > top {
		rows = rows[:top]
	}

	fmt.Fprintln(&b, "| Ticker | Count | Mean | Median | Std | Min | Max | P25 | P75 | IQR | Current | Z | Label |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|---:|---:|---:|---:|:---|")
	for _, r := range rows {
		if r.NoData() {
			fmt.Fprintf(&b, "| %s | - | - | - | - | - | - | - | - | - | - | - | no data |\n", r.Ticker)
			continue
		}
		fmt.Fprintf(&b, "| %s | %d | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %+.2f | %s |\n",
			r.Ticker, r.Count, r.Mean, r.Median, r.Std, r.Min, r.Max,
			r.P25, r.P75, r.IQR, r.Current, r.ZScore, r.Label)
	}
	if rest := len(reports) - len(rows); rest == 1 {
		fmt.Fprint(&b, "\n1 more row in the full report.\n")
	} else if rest > 1 {
		fmt.Fprintf(&b, "\n%d more rows in the full report.\n", rest)
	}
	return b.String()
}
