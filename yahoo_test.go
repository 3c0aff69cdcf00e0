package screener

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pfalcke/screener/date"
	"github.com/shopspring/decimal"
)

const yahooSample = `{
  "optionChain": {
    "result": [
      {
        "expirationDates": [1768521600, 1776816000],
        "quote": {"regularMarketPrice": 105.0, "shortName": "Test Corp"},
        "options": [
          {
            "calls": [
              {"contractSymbol": "TST-C100", "strike": 100.0, "bid": 5.0, "ask": 5.2},
              {"contractSymbol": "TST-C110", "strike": 110.0, "bid": 1.0, "ask": 1.2}
            ],
            "puts": [
              {"contractSymbol": "TST-P100", "strike": 100.0, "bid": 2.0, "ask": 2.2}
            ]
          }
        ]
      }
    ],
    "error": null
  }
}`

func testProvider(t *testing.T, payload string) *YahooProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	}))
	t.Cleanup(server.Close)
	p := NewYahooProvider()
	p.base = server.URL
	return p
}

func TestYahooProvider_Expirations(t *testing.T) {
	p := testProvider(t, yahooSample)
	expirations, err := p.Expirations("TST")
	if err != nil {
		t.Fatalf("Expirations() failed: %v", err)
	}
	// 1768521600 is 2026-01-16 UTC
	if len(expirations) != 2 || expirations[0] != date.New(2026, time.January, 16) {
		t.Errorf("Expirations() = %v, want 2026-01-16 first", expirations)
	}
}

func TestYahooProvider_Chain(t *testing.T) {
	p := testProvider(t, yahooSample)
	chain, err := p.Chain("TST", date.New(2026, time.January, 16))
	if err != nil {
		t.Fatalf("Chain() failed: %v", err)
	}
	if chain.Underlying != "TST" {
		t.Errorf("Underlying = %q, want TST", chain.Underlying)
	}
	if !chain.Spot.Equal(decimal.NewFromInt(105)) {
		t.Errorf("Spot = %s, want 105", chain.Spot)
	}
	if len(chain.Calls) != 2 || len(chain.Puts) != 1 {
		t.Fatalf("got %d calls and %d puts, want 2 and 1", len(chain.Calls), len(chain.Puts))
	}
	q := chain.Calls[0]
	if q.ID != "TST-C100" || !q.Strike.Equal(decimal.NewFromInt(100)) || !q.Ask.Equal(decimal.NewFromFloat(5.2)) {
		t.Errorf("Calls[0] = %+v, want TST-C100 100 5.0/5.2", q)
	}
}

func TestYahooProvider_SpotIsMemoized(t *testing.T) {
	p := testProvider(t, yahooSample)
	first, err := p.Spot("TST")
	if err != nil {
		t.Fatalf("Spot() failed: %v", err)
	}
	// the memo answers even if the provider goes away
	p.base = "http://127.0.0.1:0"
	second, err := p.Spot("TST")
	if err != nil {
		t.Fatalf("memoized Spot() failed: %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("memoized Spot() = %s, want %s", second, first)
	}
}

func TestYahooProvider_NoData(t *testing.T) {
	empty := `{"optionChain": {"result": [], "error": null}}`
	p := testProvider(t, empty)
	if _, err := p.Expirations("GONE"); !errors.Is(err, ErrNoData) {
		t.Errorf("Expirations() error = %v, want ErrNoData", err)
	}
	if _, err := p.Chain("GONE", date.New(2026, time.January, 16)); !errors.Is(err, ErrNoData) {
		t.Errorf("Chain() error = %v, want ErrNoData", err)
	}
}
