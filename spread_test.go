package screener

import (
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

// call builds a call quote for tests.
func call(strike, bid, ask float64) OptionQuote {
	return OptionQuote{
		ID:     fmt.Sprintf("TST-C%05.1f", strike),
		Strike: decimal.NewFromFloat(strike),
		Bid:    decimal.NewFromFloat(bid),
		Ask:    decimal.NewFromFloat(ask),
	}
}

func TestCleanQuotes(t *testing.T) {
	testCases := []struct {
		name  string
		quote OptionQuote
		want  bool
	}{
		{"regular quote", call(100, 5.00, 5.20), true},
		{"zero bid is a valid quote", call(100, 0, 0.05), true},
		{"missing identifier", OptionQuote{Strike: decimal.NewFromInt(100), Bid: decimal.NewFromInt(1), Ask: decimal.NewFromInt(2)}, false},
		{"missing strike", call(0, 5.00, 5.20), false},
		{"missing ask", call(100, 5.00, 0), false},
		{"negative bid", call(100, -1, 5.20), false},
		{"inverted bid/ask", call(100, 5.20, 5.00), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := len(CleanQuotes([]OptionQuote{tc.quote})) == 1
			if got != tc.want {
				t.Errorf("CleanQuotes() kept=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestCallCandidates_PairCount(t *testing.T) {
	// k usable calls must yield exactly k(k-1)/2 candidates, each with
	// long.Strike < short.Strike.
	for _, k := range []int{0, 1, 2, 5, 10} {
		chain := &OptionChain{}
		for i := 0; i < k; i++ {
			chain.Calls = append(chain.Calls, call(100+float64(5*i), 2.00, 2.20))
		}
		count := 0
		for long, short := range chain.CallCandidates() {
			count++
			if !long.Strike.LessThan(short.Strike) {
				t.Errorf("k=%d: candidate with long.Strike=%s >= short.Strike=%s", k, long.Strike, short.Strike)
			}
		}
		if want := k * (k - 1) / 2; count != want {
			t.Errorf("k=%d: got %d candidates, want %d", k, count, want)
		}
	}
}

func TestCallCandidates_EqualStrikesExcluded(t *testing.T) {
	chain := &OptionChain{Calls: []OptionQuote{
		call(100, 2.00, 2.20),
		{ID: "TST-DUP", Strike: decimal.NewFromInt(100), Bid: decimal.NewFromFloat(2.00), Ask: decimal.NewFromFloat(2.30)},
	}}
	for long, short := range chain.CallCandidates() {
		t.Errorf("unexpected candidate %s/%s for equal strikes", long.ID, short.ID)
	}
}

func TestNewSpread(t *testing.T) {
	// calls = [(100, 5.00/5.20), (110, 1.00/1.20)]: mids are 5.10 and
	// 1.10, so the spread costs 4.00 for a 10 wide.
	long, short := call(100, 5.00, 5.20), call(110, 1.00, 1.20)

	s, ok := NewSpread(long, short)
	if !ok {
		t.Fatal("NewSpread() rejected a valid spread")
	}
	assertDecimal(t, "Debit", s.Debit, "4")
	assertDecimal(t, "Width", s.Width, "10")
	assertDecimal(t, "MaxProfit", s.MaxProfit, "6")
	assertDecimal(t, "Breakeven", s.Breakeven, "104")

	if got, want := s.ROI(), 1.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("ROI() = %v, want %v", got, want)
	}
	spot := decimal.NewFromInt(105)
	if got, want := s.PctToBreakeven(spot), Percent(-100.0/105); !got.Equal(want) {
		t.Errorf("PctToBreakeven(105) = %v, want %v", got, want)
	}
}

func TestNewSpread_Identities(t *testing.T) {
	// MaxProfit = Width - Debit and Breakeven = Long.Strike + Debit
	// hold exactly for every accepted pair.
	quotes := []OptionQuote{
		call(95, 7.35, 7.65), call(100, 5.00, 5.20), call(105, 2.85, 3.15),
		call(110, 1.00, 1.20), call(115, 0.40, 0.55),
	}
	chain := &OptionChain{Calls: quotes}
	seen := 0
	for long, short := range chain.CallCandidates() {
		s, ok := NewSpread(long, short)
		if !ok {
			continue
		}
		seen++
		if !s.MaxProfit.Equal(s.Width.Sub(s.Debit)) {
			t.Errorf("%s/%s: MaxProfit=%s != Width-Debit=%s", long.ID, short.ID, s.MaxProfit, s.Width.Sub(s.Debit))
		}
		if !s.Breakeven.Equal(long.Strike.Add(s.Debit)) {
			t.Errorf("%s/%s: Breakeven=%s != Long.Strike+Debit", long.ID, short.ID, s.Breakeven)
		}
	}
	if seen == 0 {
		t.Fatal("no valid spread in test chain")
	}
}

func TestNewSpread_RejectsDegenerate(t *testing.T) {
	testCases := []struct {
		name        string
		long, short OptionQuote
	}{
		// inverted mids: the higher strike costs more
		{"non-positive debit", call(100, 1.00, 1.20), call(110, 5.00, 5.20)},
		// 2 wide for a 2.90 debit
		{"non-positive max profit", call(100, 5.00, 5.20), call(102, 2.10, 2.30)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := NewSpread(tc.long, tc.short); ok {
				t.Error("NewSpread() accepted a degenerate spread")
			}
		})
	}
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if got.String() != want {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
