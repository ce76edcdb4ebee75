package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	assert.InDelta(t, 0.25, PercentChange(125, 100), 1e-9)
	assert.InDelta(t, -0.5, PercentChange(50, 100), 1e-9)
	assert.InDelta(t, 0, PercentChange(100, 100), 1e-9)
	assert.InDelta(t, -1, PercentChange(0, 100), 1e-9)
	assert.InDelta(t, 1, PercentChange(3000, 1500), 1e-9)

	// growth from zero is unbounded, not an error
	assert.True(t, math.IsInf(PercentChange(10, 0), 1))
	// zero against zero is no change
	assert.Equal(t, 0.0, PercentChange(0, 0))
}

func TestNewGrowthStates(t *testing.T) {
	g := NewGrowth(150, 100)
	assert.Equal(t, GrowthFinite, g.State)
	assert.InDelta(t, 0.5, g.Ratio, 1e-9)
	assert.True(t, g.Finite())

	g = NewGrowth(10, 0)
	assert.Equal(t, GrowthUnbounded, g.State)
	assert.Equal(t, 0.0, g.Ratio)
	assert.False(t, g.Finite())

	g = NewGrowth(0, 0)
	assert.Equal(t, GrowthFinite, g.State)
	assert.Equal(t, 0.0, g.Ratio)
}
