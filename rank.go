package screener

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// ScanConfig holds the thresholds and tuning knobs of a spread scan.
// The zero value of a threshold disables it, so callers only set the
// caps they care about. DefaultScanConfig returns the usual defaults.
type ScanConfig struct {
	// MaxPctToBreakeven caps how far (in percent) price must move
	// before the spread turns profitable.
	MaxPctToBreakeven float64
	// MaxLossDollars caps the capital at risk per spread, in currency
	// (debit times the contract multiplier).
	MaxLossDollars float64
	// MinProfitDollars floors the reward per spread, in currency.
	MinProfitDollars float64
	// MinROI floors the return multiple MaxProfit/Debit.
	MinROI float64
	// MaxDebitFracOfSpot caps the debit as a fraction of the spot
	// price (e.g. 0.05 for 5%), the cap used by the simpler scan
	// variant in place of the dollar thresholds.
	MaxDebitFracOfSpot float64

	// PenaltyWeight trades off raw reward-to-risk against the
	// difficulty of reaching breakeven; see Score.
	PenaltyWeight float64
	// TopN truncates the ranked result.
	TopN int
	// Multiplier is the contract multiplier (shares per contract).
	Multiplier int
}

// DefaultScanConfig returns a ScanConfig with the usual defaults:
// penalty weight 0.08, top 15, standard 100-share contracts, and no
// thresholds enabled.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{PenaltyWeight: 0.08, TopN: 15, Multiplier: 100}
}

// RankedSpread is a valid spread that survived filtering, with its
// dollar legs, score, and display metrics resolved against the spot
// price of the scan.
type RankedSpread struct {
	Spread
	Spot           decimal.Decimal
	PctToBreakeven Percent
	ROI            float64
	MaxLossUSD     Money // Debit x Multiplier
	MaxProfitUSD   Money // MaxProfit x Multiplier
	Score          float64
}

// Summary returns a one-line human readable description of the position.
func (r RankedSpread) Summary() string {
	return fmt.Sprintf("buy %s / sell %s call for %s: risk %s to make %s, breakeven %s (%s away)",
		r.Long.Strike.StringFixed(2), r.Short.Strike.StringFixed(2),
		r.Debit.StringFixed(2),
		r.MaxLossUSD, r.MaxProfitUSD,
		r.Breakeven.StringFixed(2), r.PctToBreakeven.SignedString())
}

// score computes the ranking scalar for a spread:
//
//	score = maxProfit$/maxLoss$ - penaltyWeight * pctToBreakeven
//
// a linear scalarization that rewards reward-to-risk and penalizes
// distance to breakeven. It is a heuristic for ordering candidates,
// not a calibrated or predictive model.
func score(roi float64, pct Percent, penaltyWeight float64) float64 {
	return roi - penaltyWeight*float64(pct)
}

// keep reports whether the spread passes every configured threshold.
// Disabled (zero) thresholds always pass.
func (cfg ScanConfig) keep(r RankedSpread) bool {
	if cfg.MaxPctToBreakeven != 0 && float64(r.PctToBreakeven) > cfg.MaxPctToBreakeven {
		return false
	}
	if cfg.MaxLossDollars != 0 && r.MaxLossUSD.AsFloat() > cfg.MaxLossDollars {
		return false
	}
	if cfg.MinProfitDollars != 0 && r.MaxProfitUSD.AsFloat() < cfg.MinProfitDollars {
		return false
	}
	if cfg.MinROI != 0 && r.ROI < cfg.MinROI {
		return false
	}
	if cfg.MaxDebitFracOfSpot != 0 {
		limit := decimal.NewFromFloat(cfg.MaxDebitFracOfSpot).Mul(r.Spot)
		if r.Debit.GreaterThan(limit) {
			return false
		}
	}
	return true
}

// ScanCallDebitSpreads runs the whole pipeline over one chain
// snapshot: enumerate call spread candidates, value them, filter by
// the configured thresholds, score the survivors, and return them
// ordered by (score descending, dollar max-loss ascending - cheaper
// ties first), truncated to cfg.TopN.
//
// An empty result means no candidate met the criteria; it is not an
// error.
func ScanCallDebitSpreads(chain *OptionChain, cfg ScanConfig) []RankedSpread {
	if cfg.Multiplier == 0 {
		cfg.Multiplier = 100
	}
	mult := decimal.NewFromInt(int64(cfg.Multiplier))

	var survivors []RankedSpread
	for long, short := range chain.CallCandidates() {
		s, ok := NewSpread(long, short)
		if !ok {
			continue
		}
		r := RankedSpread{
			Spread:         s,
			Spot:           chain.Spot,
			PctToBreakeven: s.PctToBreakeven(chain.Spot),
			ROI:            s.ROI(),
			MaxLossUSD:     USD(s.Debit.Mul(mult)),
			MaxProfitUSD:   USD(s.MaxProfit.Mul(mult)),
		}
		if !cfg.keep(r) {
			continue
		}
		r.Score = score(r.ROI, r.PctToBreakeven, cfg.PenaltyWeight)
		survivors = append(survivors, r)
	}

	slices.SortStableFunc(survivors, func(a, b RankedSpread) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		case a.MaxLossUSD.LessThan(b.MaxLossUSD):
			return -1
		case b.MaxLossUSD.LessThan(a.MaxLossUSD):
			return 1
		}
		return 0
	})

	if cfg.TopN > 0 && len(survivors) > cfg.TopN {
		survivors = survivors[:cfg.TopN]
	}
	return survivors
}
