package screener

import (
	"strings"
	"testing"
	"time"

	"github.com/pfalcke/screener/date"
)

// sample mirrors the SimFin daily derived shareprices format:
// semicolon separated, more columns than we read, rows out of
// chronological order, and a row without a P/S observation.
const sample = `Ticker;SimFinId;Date;Open;Close;Price to Sales Ratio (ttm)
AMD;1;2025-01-03;97;99.5;8.124
AMD;1;2025-01-02;95;98.1;7.896
AMD;1;2025-01-06;99;101.2;
NVDA;2;2025-01-02;130;131.1;25.4
`

func TestReadShareprices(t *testing.T) {
	ds, err := ReadShareprices(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ReadShareprices() failed: %v", err)
	}

	if got, want := ds.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	ps, ok := ds.PriceToSales("AMD")
	if !ok {
		t.Fatal("PriceToSales(AMD) not found")
	}
	// the missing observation row is dropped
	if got, want := ps.Len(), 2; got != want {
		t.Fatalf("AMD series Len() = %d, want %d", got, want)
	}
	// observations come back chronological even though the file is not,
	// and are rounded to two decimals
	obs := ps.Observations()
	assertFloat(t, "obs[0]", obs[0], 7.90)
	assertFloat(t, "obs[1]", obs[1], 8.12)

	on, current := ps.Latest()
	if on != date.New(2025, time.January, 3) {
		t.Errorf("Latest() day = %s, want 2025-01-03", on)
	}
	assertFloat(t, "current", current, 8.12)

	if _, ok := ds.PriceToSales("TSLA"); ok {
		t.Error("PriceToSales(TSLA) = found, want missing")
	}
}

func TestReadShareprices_Tickers(t *testing.T) {
	ds, err := ReadShareprices(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("ReadShareprices() failed: %v", err)
	}
	var got []string
	for ticker := range ds.Tickers() {
		got = append(got, ticker)
	}
	if len(got) != 2 || got[0] != "AMD" || got[1] != "NVDA" {
		t.Errorf("Tickers() = %v, want [AMD NVDA]", got)
	}
}

func TestReadShareprices_Malformed(t *testing.T) {
	if _, err := ReadShareprices(strings.NewReader("Ticker;Date\nAMD")); err == nil {
		t.Error("ReadShareprices() on a ragged file succeeded, want error")
	}
}
