package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStatusForScore verifies the status step function breakpoints.
func TestStatusForScore(t *testing.T) {
	tests := []struct {
		name     string
		score    *float64
		expected HealthStatus
	}{
		{"excellent boundary", Float(80.0), ExcellentStatus},
		{"just below excellent", Float(79.9), GoodStatus},
		{"good boundary", Float(65.0), GoodStatus},
		{"fair boundary", Float(50.0), FairStatus},
		{"concerning boundary", Float(35.0), ConcerningStatus},
		{"just below concerning", Float(34.9), PoorStatus},
		{"numeric zero is poor not unknown", Float(0.0), PoorStatus},
		{"undefined score", nil, UnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusForScore(tt.score))
		})
	}
}

// TestBandBoundariesInclusive verifies that band cutoffs are inclusive
// on the healthy side for both directions.
func TestBandBoundariesInclusive(t *testing.T) {
	thresholds := GetBandThresholds()

	t.Run("current ratio at excellent cutoff", func(t *testing.T) {
		assert.InDelta(t, BandExcellentScore, thresholds[RatioCurrent].Band(2.0), 0.001)
	})

	t.Run("current ratio just below excellent", func(t *testing.T) {
		assert.InDelta(t, BandGoodScore, thresholds[RatioCurrent].Band(1.999), 0.001)
	})

	t.Run("debt to equity at excellent cutoff", func(t *testing.T) {
		assert.InDelta(t, BandExcellentScore, thresholds[RatioDebtToEquity].Band(0.5), 0.001)
	})

	t.Run("debt to equity beyond poor", func(t *testing.T) {
		assert.InDelta(t, BandFloorScore, thresholds[RatioDebtToEquity].Band(3.5), 0.001)
	})

	t.Run("operating margin below poor cutoff", func(t *testing.T) {
		assert.InDelta(t, BandFloorScore, thresholds[RatioOperatingMargin].Band(-0.01), 0.001)
	})
}

// TestPointScaleAward verifies point awards for both directions.
func TestPointScaleAward(t *testing.T) {
	scales := GetPointScales()

	tests := []struct {
		name     string
		ratio    RatioName
		value    float64
		expected float64
	}{
		{"current ratio excellent", RatioCurrent, 2.0, 10},
		{"current ratio mid band", RatioCurrent, 1.2, 5},
		{"current ratio below all bands", RatioCurrent, 0.4, 0},
		{"net margin breakeven", RatioNetMargin, 0.0, 4},
		{"net margin negative", RatioNetMargin, -0.1, 0},
		{"debt to equity low", RatioDebtToEquity, 0.3, 15},
		{"debt to equity moderate", RatioDebtToEquity, 1.5, 8},
		{"debt to equity extreme", RatioDebtToEquity, 4.0, 0},
		{"free cash flow margin strong", RatioFreeCashFlow, 0.18, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scales[tt.ratio].Award(tt.value), 0.001)
		})
	}
}

// TestCategoryWeightsSumToOne guards the fixed weight table.
func TestCategoryWeightsSumToOne(t *testing.T) {
	weights := GetCategoryWeights()
	var total float64
	for _, w := range weights {
		total += w
	}
	assert.InDelta(t, 1.0, total, 0.001)
	assert.Len(t, weights, 5)
}

// TestPointScaleMaxima guards the nominal category point allocation.
func TestPointScaleMaxima(t *testing.T) {
	scales := GetPointScales()
	var total float64
	for _, s := range scales {
		total += s.Max
	}
	assert.InDelta(t, 100.0, total, 0.001)
}
