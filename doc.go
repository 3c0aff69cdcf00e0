// Package screener provides the computation behind a small suite of
// personal market screening tools. It is designed to be local-first and
// batch-oriented: every scan works on an immutable snapshot of input
// data and returns plain values, so the computation is independently
// testable from any data provider.
//
// The core functionalities include:
//   - Spread Scanning: enumerating, valuing, filtering, scoring and
//     ranking call debit spreads over an option chain snapshot.
//   - Anomaly Detection: descriptive statistics and z-score labeling of
//     a ticker's price-to-sales history against its own past.
//   - Dataset Loading: reading a daily shareprices dataset into
//     per-ticker chronological series.
//   - Watchlists: a validated, deduplicated ticker list with a JSON
//     file round-trip.
//
// This package serves as the foundational logic for the `scs`
// command-line tool; all terminal rendering lives in the renderer
// package and all flag handling in the cmd package.
package screener
