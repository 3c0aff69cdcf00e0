package screener

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/pfalcke/screener/date"
	"gonum.org/v1/gonum/stat"
)

// ErrNoData reports a missing-data condition: an empty series, a
// ticker absent from the dataset, or a chain with no usable quotes.
// It is a reportable outcome, not a failure of the scan itself.
var ErrNoData = errors.New("no data")

// Summary holds descriptive statistics over all observations of a series.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Std    float64 // sample standard deviation
	Min    float64
	Max    float64
	Range  float64
	P25    float64
	P75    float64
	IQR    float64
}

// Summarize computes descriptive statistics over the observations.
// It returns ErrNoData for an empty input.
func Summarize(obs []float64) (Summary, error) {
	if len(obs) == 0 {
		return Summary{}, ErrNoData
	}
	sorted := slices.Clone(obs)
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	p25 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	p75 := stat.Quantile(0.75, stat.Empirical, sorted, nil)
	return Summary{
		Count:  len(sorted),
		Mean:   mean,
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Std:    std,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Range:  sorted[len(sorted)-1] - sorted[0],
		P25:    p25,
		P75:    p75,
		IQR:    p75 - p25,
	}, nil
}

// Valuation labels how the current observation of a series compares to
// its own history.
type Valuation string

const (
	Undervalued Valuation = "undervalued"
	Overvalued  Valuation = "overvalued"
	Normal      Valuation = "normal"
)

// zThreshold is the number of standard deviations away from the mean
// beyond which the current observation is labeled an anomaly.
const zThreshold = 1.5

// Anomaly is the result of comparing the most recent observation of a
// metric against the full history of that metric for one ticker.
type Anomaly struct {
	Summary
	On      date.Date // date of the current observation
	Current float64
	ZScore  float64
	Label   Valuation
}

// DetectAnomaly computes descriptive statistics over the whole history
// and a z-score for its most recent observation:
//
//	z = (current - mean) / std
//
// labeling the current observation Undervalued at z <= -1.5,
// Overvalued at z >= 1.5, and Normal in between. A constant series has
// zero standard deviation; its current value cannot deviate from the
// mean, so it is labeled Normal with a zero z-score rather than
// dividing by zero. An empty history returns ErrNoData.
func DetectAnomaly(history *date.History[float64]) (Anomaly, error) {
	sum, err := Summarize(history.Observations())
	if err != nil {
		return Anomaly{}, err
	}
	on, current := history.Latest()
	a := Anomaly{Summary: sum, On: on, Current: current}
	// a single observation has an undefined sample deviation (NaN)
	if sum.Std != 0 && !math.IsNaN(sum.Std) {
		a.ZScore = (current - sum.Mean) / sum.Std
	}
	switch {
	case a.ZScore <= -zThreshold:
		a.Label = Undervalued
	case a.ZScore >= zThreshold:
		a.Label = Overvalued
	default:
		a.Label = Normal
	}
	return a, nil
}

// String returns a compact description, e.g. "overvalued (z=+1.79)".
func (a Anomaly) String() string {
	return fmt.Sprintf("%s (z=%+.2f)", a.Label, a.ZScore)
}
