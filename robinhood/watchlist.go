package robinhood

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pfalcke/screener"
)

var (
	uriLists = "https://api.robinhood.com/midlands/lists/default/"
	uriItems = "https://api.robinhood.com/midlands/lists/items/"
)

// wget little helper to retrieve a json payload from an authenticated endpoint.
func wget(uri string, header http.Header, data any) error {
	r, err := http.NewRequest(http.MethodGet, uri, nil)
	if err != nil {
		return fmt.Errorf("cannot create http request %q: %w", uri, err)
	}
	r.Header = header

	resp, err := http.DefaultClient.Do(r)
	if err != nil {
		return fmt.Errorf("cannot execute http request %q: %w", uri, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %q: %v", uri, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return fmt.Errorf("cannot read receiving http body: %w", err)
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// list is one watchlist as reported by the lists endpoint.
type list struct {
	ID   string `json:"id"`
	Name string `json:"display_name"`
}

// item is one entry of a watchlist.
type item struct {
	Symbol string `json:"symbol"`
}

// Watchlists fetches every watchlist of the logged-in user and returns
// the union of their symbols as one validated watchlist.
func Watchlists() (screener.Watchlist, error) {
	headers, err := LoadHeaders()
	if err != nil {
		return nil, err
	}

	var lists struct {
		Results []list `json:"results"`
	}
	if err := wget(uriLists, headers, &lists); err != nil {
		return nil, fmt.Errorf("cannot fetch watchlists: %w", err)
	}

	var symbols []string
	for _, l := range lists.Results {
		var items struct {
			Results []item `json:"results"`
		}
		uri := uriItems + "?list_id=" + url.QueryEscape(l.ID)
		if err := wget(uri, headers, &items); err != nil {
			return nil, fmt.Errorf("cannot fetch watchlist %q: %w", l.Name, err)
		}
		for _, it := range items.Results {
			symbols = append(symbols, it.Symbol)
		}
	}
	return screener.NewWatchlist(symbols...)
}
