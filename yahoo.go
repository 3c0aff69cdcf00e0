package screener

import (
	"fmt"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/pfalcke/screener/date"
	"github.com/shopspring/decimal"
)

// ChainProvider fetches option chain snapshots for an underlying.
// Provider failures (network, authentication) are fatal to the caller;
// a chain that exists but is empty is reported through ErrNoData.
type ChainProvider interface {
	// Expirations lists the available expiration dates for the symbol.
	Expirations(symbol string) ([]date.Date, error)
	// Chain returns the chain snapshot for one expiration, spot included.
	Chain(symbol string, expiration date.Date) (*OptionChain, error)
}

// YahooProvider fetches chains from the public Yahoo finance options
// endpoint. Responses are served through the daily disk cache, and the
// spot price is memoized so one run fetches it at most once per symbol.
type YahooProvider struct {
	base  string
	spots map[string]decimal.Decimal
}

// NewYahooProvider returns a provider against the public endpoint.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{
		base:  "https://query1.finance.yahoo.com/v7/finance/options",
		spots: make(map[string]decimal.Decimal),
	}
}

func (y *YahooProvider) addr(symbol string, expiration date.Date) string {
	addr := y.base + "/" + url.PathEscape(symbol)
	if !expiration.IsZero() {
		// the endpoint keys expirations by their epoch at midnight UTC
		epoch := time.Date(expiration.Year(), expiration.Month(), expiration.Day(), 0, 0, 0, 0, time.UTC).Unix()
		addr += fmt.Sprintf("?date=%d", epoch)
	}
	return addr
}

// yahooPayload is the typed slice of the response the scanner needs.
// The quote object next to it is loosely shaped and is read separately
// with jsonpath, see Spot.
type yahooPayload struct {
	OptionChain struct {
		Result []struct {
			ExpirationDates []int64 `json:"expirationDates"`
			Options         []struct {
				Calls []yahooContract `json:"calls"`
				Puts  []yahooContract `json:"puts"`
			} `json:"options"`
		} `json:"result"`
	} `json:"optionChain"`
}

type yahooContract struct {
	ContractSymbol string  `json:"contractSymbol"`
	Strike         float64 `json:"strike"`
	Bid            float64 `json:"bid"`
	Ask            float64 `json:"ask"`
}

func (c yahooContract) quote() OptionQuote {
	return OptionQuote{
		ID:     c.ContractSymbol,
		Strike: decimal.NewFromFloat(c.Strike),
		Bid:    decimal.NewFromFloat(c.Bid),
		Ask:    decimal.NewFromFloat(c.Ask),
	}
}

// Expirations lists the available expiration dates for the symbol.
func (y *YahooProvider) Expirations(symbol string) ([]date.Date, error) {
	var payload yahooPayload
	if err := jwget(daily(), y.addr(symbol, date.Date{}), &payload); err != nil {
		return nil, fmt.Errorf("cannot fetch expirations for %q: %w", symbol, err)
	}
	if len(payload.OptionChain.Result) == 0 {
		return nil, fmt.Errorf("%w: unknown symbol %q", ErrNoData, symbol)
	}
	epochs := payload.OptionChain.Result[0].ExpirationDates
	if len(epochs) == 0 {
		return nil, fmt.Errorf("%w: no option expirations for %q", ErrNoData, symbol)
	}
	expirations := make([]date.Date, 0, len(epochs))
	for _, epoch := range epochs {
		expirations = append(expirations, date.New(time.Unix(epoch, 0).UTC().Date()))
	}
	return expirations, nil
}

// Spot returns the underlying's current price, memoized per run.
func (y *YahooProvider) Spot(symbol string) (decimal.Decimal, error) {
	if spot, ok := y.spots[symbol]; ok {
		return spot, nil
	}
	// The quote object bundled in the chain payload has no stable
	// shape across asset classes, so pick the one field out with
	// jsonpath instead of declaring a struct for it.
	var jobj any
	if err := jwget(daily(), y.addr(symbol, date.Date{}), &jobj); err != nil {
		return decimal.Decimal{}, fmt.Errorf("cannot fetch spot for %q: %w", symbol, err)
	}
	path := "$.optionChain.result[0].quote.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("cannot read spot for %q: %q %w", symbol, path, err)
	}
	val, ok := jval.(float64)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("cannot read spot for %q: %q is not a number: %v", symbol, path, jval)
	}
	spot := decimal.NewFromFloat(val)
	y.spots[symbol] = spot
	return spot, nil
}

// Chain returns the chain snapshot for one expiration, spot included.
func (y *YahooProvider) Chain(symbol string, expiration date.Date) (*OptionChain, error) {
	var payload yahooPayload
	if err := jwget(daily(), y.addr(symbol, expiration), &payload); err != nil {
		return nil, fmt.Errorf("cannot fetch chain %s %s: %w", symbol, expiration, err)
	}
	result := payload.OptionChain.Result
	if len(result) == 0 || len(result[0].Options) == 0 {
		return nil, fmt.Errorf("%w: no chain for %s %s", ErrNoData, symbol, expiration)
	}
	spot, err := y.Spot(symbol)
	if err != nil {
		return nil, err
	}

	chain := &OptionChain{Underlying: symbol, Expiration: expiration, Spot: spot}
	for _, c := range result[0].Options[0].Calls {
		chain.Calls = append(chain.Calls, c.quote())
	}
	for _, c := range result[0].Options[0].Puts {
		chain.Puts = append(chain.Puts, c.quote())
	}
	return chain, nil
}

var _ ChainProvider = (*YahooProvider)(nil)
