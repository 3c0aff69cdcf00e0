package screener

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/pfalcke/screener/date"
)

// sharepriceRow maps one line of the SimFin daily derived shareprices
// dataset. The file is semicolon separated and carries many more
// columns; only the ones named here are read.
type sharepriceRow struct {
	Ticker       string    `csv:"Ticker"`
	Date         date.Date `csv:"Date"`
	Close        float64   `csv:"Close"`
	PriceToSales float64   `csv:"Price to Sales Ratio (ttm)"`
}

// Dataset holds per-ticker chronological price-to-sales series, loaded
// once per run from a daily shareprices snapshot.
type Dataset struct {
	ps map[string]*date.History[float64]
}

// LoadShareprices reads a SimFin-style daily shareprices CSV
// (semicolon separated) into per-ticker series. Rows without a
// price-to-sales observation are dropped; observations are rounded to
// two decimals, matching the dataset's own precision.
func LoadShareprices(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open shareprices dataset: %w", err)
	}
	defer f.Close()
	ds, err := ReadShareprices(f)
	if err != nil {
		return nil, fmt.Errorf("in shareprices dataset %q: %w", path, err)
	}
	return ds, nil
}

// ReadShareprices is LoadShareprices from an open reader.
func ReadShareprices(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'

	var rows []sharepriceRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse shareprices dataset: %w", err)
	}

	ds := &Dataset{ps: make(map[string]*date.History[float64])}
	for _, row := range rows {
		if row.Ticker == "" || row.Date.IsZero() {
			continue
		}
		if row.PriceToSales == 0 || math.IsNaN(row.PriceToSales) {
			// no observation that day
			continue
		}
		h, ok := ds.ps[row.Ticker]
		if !ok {
			h = &date.History[float64]{}
			ds.ps[row.Ticker] = h
		}
		h.Append(row.Date, math.Round(row.PriceToSales*100)/100)
	}
	return ds, nil
}

// PriceToSales returns the chronological price-to-sales series for a
// ticker, or false if the dataset has no observation for it.
func (d *Dataset) PriceToSales(ticker string) (*date.History[float64], bool) {
	h, ok := d.ps[ticker]
	return h, ok
}

// Tickers iterates the dataset's tickers in lexical order.
func (d *Dataset) Tickers() iter.Seq[string] {
	tickers := make([]string, 0, len(d.ps))
	for t := range d.ps {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return func(yield func(string) bool) {
		for _, t := range tickers {
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the number of tickers with at least one observation.
func (d *Dataset) Len() int { return len(d.ps) }
