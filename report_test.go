package screener

import (
	"strings"
	"testing"
)

// reportDataset builds a dataset with one overvalued, one undervalued
// and one normal ticker.
func reportDataset(t *testing.T) *Dataset {
	t.Helper()
	csv := `Ticker;Date;Close;Price to Sales Ratio (ttm)
HI;2025-01-01;1;10
HI;2025-01-02;1;12
HI;2025-01-03;1;11
HI;2025-01-04;1;13
HI;2025-01-05;1;50
LO;2025-01-01;1;10
LO;2025-01-02;1;10
LO;2025-01-03;1;10
LO;2025-01-04;1;10
LO;2025-01-05;1;4
MID;2025-01-01;1;10
MID;2025-01-02;1;12
MID;2025-01-03;1;11
`
	ds, err := ReadShareprices(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadShareprices() failed: %v", err)
	}
	return ds
}

func TestScanAnomalies(t *testing.T) {
	ds := reportDataset(t)
	reports := ScanAnomalies(ds, Watchlist{"HI", "LO", "MID", "GONE"})

	if got, want := len(reports), 4; got != want {
		t.Fatalf("got %d reports, want %d", got, want)
	}

	// sorted by z-score ascending, the missing ticker last
	if reports[0].Ticker != "LO" || reports[0].Label != string(Undervalued) {
		t.Errorf("reports[0] = %s %s, want LO undervalued", reports[0].Ticker, reports[0].Label)
	}
	if reports[1].Ticker != "MID" {
		t.Errorf("reports[1] = %s, want MID", reports[1].Ticker)
	}
	if reports[2].Ticker != "HI" || reports[2].Label != string(Overvalued) {
		t.Errorf("reports[2] = %s %s, want HI overvalued", reports[2].Ticker, reports[2].Label)
	}
	if reports[3].Ticker != "GONE" || !reports[3].NoData() {
		t.Errorf("reports[3] = %s %s, want GONE no data", reports[3].Ticker, reports[3].Label)
	}

	for i := 1; i < len(reports); i++ {
		if reports[i-1].NoData() && !reports[i].NoData() {
			t.Errorf("no-data row at %d before a computed row", i-1)
		}
		if !reports[i].NoData() && reports[i-1].ZScore > reports[i].ZScore {
			t.Errorf("z-scores not ascending at %d: %v > %v", i, reports[i-1].ZScore, reports[i].ZScore)
		}
	}
}

func TestWriteAnomalyCSV(t *testing.T) {
	ds := reportDataset(t)
	reports := ScanAnomalies(ds, Watchlist{"HI", "GONE"})

	var b strings.Builder
	if err := WriteAnomalyCSV(&b, reports); err != nil {
		t.Fatalf("WriteAnomalyCSV() failed: %v", err)
	}
	out := b.String()

	header := "ticker,count,mean,median,std,min,max,range,25th_percentile,75th_percentile,iqr,current,z_score_current,label"
	if !strings.HasPrefix(out, header) {
		t.Errorf("csv header = %q, want %q", strings.SplitN(out, "\n", 2)[0], header)
	}
	if !strings.Contains(out, "HI,5,19.2,12,17.25,10,50,40,11,13,2,50,1.79,overvalued") {
		t.Errorf("csv is missing the HI row:\n%s", out)
	}
	if !strings.Contains(out, "GONE,0,0,0,0,0,0,0,0,0,0,0,0,no data") {
		t.Errorf("csv is missing the GONE no-data row:\n%s", out)
	}
}
