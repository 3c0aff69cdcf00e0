package screener

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
)

// ErrMalformedTicker reports that some raw symbols were rejected by
// validation. NewWatchlist returns it alongside the valid remainder,
// so callers can keep the good symbols and report the bad ones.
var ErrMalformedTicker = errors.New("malformed ticker symbols")

// Watchlist is an ordered list of validated, deduplicated ticker
// symbols. It is the input of the anomaly scan and the output of the
// brokerage watchlist dump.
type Watchlist []string

// tickerPattern accepts US-style symbols: up to five letters plus an
// optional class/share suffix (BRK.B, RDS-A). Anything longer is
// almost always a data-entry defect, typically two symbols glued
// together, and gets rejected instead of silently screened.
var tickerPattern = regexp.MustCompile(`^[A-Z]{1,5}([.-][A-Z]{1,2})?$`)

// ValidTicker reports whether s looks like a well-formed ticker symbol.
func ValidTicker(s string) bool { return tickerPattern.MatchString(s) }

// NewWatchlist builds a watchlist from raw symbols: trimming,
// uppercasing and deduplicating while preserving order. It returns an
// error naming every malformed symbol.
func NewWatchlist(symbols ...string) (Watchlist, error) {
	var list Watchlist
	var bad []string
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if !ValidTicker(s) {
			bad = append(bad, s)
			continue
		}
		if slices.Contains(list, s) {
			continue
		}
		list = append(list, s)
	}
	if len(bad) > 0 {
		return list, fmt.Errorf("%w: %s", ErrMalformedTicker, strings.Join(bad, ", "))
	}
	return list, nil
}

// LoadWatchlist reads a watchlist from a JSON file (a plain array of
// symbols, as written by SaveWatchlist).
func LoadWatchlist(path string) (Watchlist, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read watchlist: %w", err)
	}
	var symbols []string
	if err := json.Unmarshal(content, &symbols); err != nil {
		return nil, fmt.Errorf("cannot parse watchlist %q: %w", path, err)
	}
	return NewWatchlist(symbols...)
}

// SaveWatchlist writes the watchlist as an indented JSON array.
func SaveWatchlist(path string, w Watchlist) error {
	content, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("cannot write watchlist %q: %w", path, err)
	}
	return nil
}
