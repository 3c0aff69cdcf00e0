package screener

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/gocarina/gocsv"
)

// AnomalyReport is one row of the price-to-sales anomaly report. Its
// csv tags define the ps_ratio.csv output format; values are rounded
// to two decimals for the file, like the rest of the toolkit's output.
type AnomalyReport struct {
	Ticker  string  `csv:"ticker"`
	Count   int     `csv:"count"`
	Mean    float64 `csv:"mean"`
	Median  float64 `csv:"median"`
	Std     float64 `csv:"std"`
	Min     float64 `csv:"min"`
	Max     float64 `csv:"max"`
	Range   float64 `csv:"range"`
	P25     float64 `csv:"25th_percentile"`
	P75     float64 `csv:"75th_percentile"`
	IQR     float64 `csv:"iqr"`
	Current float64 `csv:"current"`
	ZScore  float64 `csv:"z_score_current"`
	Label   string  `csv:"label"`
}

// NoData reports whether this row is a missing-data marker rather than
// a computed result.
func (r AnomalyReport) NoData() bool { return r.Label == "no data" }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func newAnomalyReport(ticker string, a Anomaly) AnomalyReport {
	return AnomalyReport{
		Ticker:  ticker,
		Count:   a.Count,
		Mean:    round2(a.Mean),
		Median:  round2(a.Median),
		Std:     round2(a.Std),
		Min:     round2(a.Min),
		Max:     round2(a.Max),
		Range:   round2(a.Range),
		P25:     round2(a.P25),
		P75:     round2(a.P75),
		IQR:     round2(a.IQR),
		Current: round2(a.Current),
		ZScore:  round2(a.ZScore),
		Label:   string(a.Label),
	}
}

func noDataReport(ticker string) AnomalyReport {
	return AnomalyReport{Ticker: ticker, Label: "no data"}
}

// ScanAnomalies runs the anomaly detector for every watchlist ticker
// against the preloaded dataset. Tickers without observations produce
// a distinct "no data" row instead of statistics. The result is sorted
// by z-score ascending (most undervalued first), with no-data rows at
// the end.
func ScanAnomalies(ds *Dataset, watchlist Watchlist) []AnomalyReport {
	reports := make([]AnomalyReport, 0, len(watchlist))
	for _, ticker := range watchlist {
		series, ok := ds.PriceToSales(ticker)
		if !ok {
			reports = append(reports, noDataReport(ticker))
			continue
		}
		a, err := DetectAnomaly(series)
		if errors.Is(err, ErrNoData) {
			reports = append(reports, noDataReport(ticker))
			continue
		}
		reports = append(reports, newAnomalyReport(ticker, a))
	}

	slices.SortStableFunc(reports, func(a, b AnomalyReport) int {
		switch {
		case a.NoData() && b.NoData():
			return 0
		case a.NoData():
			return 1
		case b.NoData():
			return -1
		case a.ZScore < b.ZScore:
			return -1
		case a.ZScore > b.ZScore:
			return 1
		}
		return 0
	})
	return reports
}

// WriteAnomalyCSV writes the report rows as CSV.
func WriteAnomalyCSV(w io.Writer, reports []AnomalyReport) error {
	return gocsv.Marshal(&reports, w)
}

// SaveAnomalyCSV writes the report rows to a CSV file, ps_ratio.csv by
// convention.
func SaveAnomalyCSV(path string, reports []AnomalyReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create report file: %w", err)
	}
	defer f.Close()
	if err := WriteAnomalyCSV(f, reports); err != nil {
		return fmt.Errorf("cannot write report file %q: %w", path, err)
	}
	return nil
}
