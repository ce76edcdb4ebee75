// Package analytics is the period-aggregation and comparison core. Every
// function is pure: it reads an immutable store snapshot and returns derived
// result structures, never touching the snapshot or any shared state.
package analytics

import (
	"math"
)

// PercentChange returns the fractional change from previous to current
// (0.25 means +25%). Growth from zero is unbounded, no change from zero is
// zero percent; neither is an error.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return current/previous - 1
}

type GrowthState string

const (
	// GrowthFinite: Ratio holds a usable number.
	GrowthFinite GrowthState = "finite"
	// GrowthUnbounded: previous period was zero and current is positive.
	GrowthUnbounded GrowthState = "unbounded"
	// GrowthUndefined: the change is not a number; render as "–".
	GrowthUndefined GrowthState = "undefined"
)

// Growth is the tri-state change value every comparison row carries. Infinity
// and NaN do not survive JSON, so the state travels explicitly and Ratio is
// zero unless State is GrowthFinite.
type Growth struct {
	Ratio float64     `json:"ratio"`
	State GrowthState `json:"state"`
}

func NewGrowth(current, previous float64) Growth {
	return classify(PercentChange(current, previous))
}

func classify(v float64) Growth {
	switch {
	case math.IsNaN(v) || math.IsInf(v, -1):
		return Growth{State: GrowthUndefined}
	case math.IsInf(v, 1):
		return Growth{State: GrowthUnbounded}
	default:
		return Growth{Ratio: v, State: GrowthFinite}
	}
}

func (g Growth) Finite() bool {
	return g.State == GrowthFinite
}
