package schema

// BandThreshold holds the named cutoffs a ratio is judged against in the
// category-weighted scheme. For HigherIsBetter the bands read as
// value >= cutoff; for LowerIsBetter as value <= cutoff. Boundaries are
// inclusive on the healthy side.
type BandThreshold struct {
	Category  RatioCategory
	Direction Direction
	Excellent float64
	Good      float64
	Fair      float64
	Poor      float64
}

// PointBand is one cutoff in the point-accumulation scheme: a value on the
// healthy side of Cutoff (inclusive) earns at least Points.
type PointBand struct {
	Cutoff float64
	Points float64
}

// PointScale is the banded point award for one ratio in the
// point-accumulation scheme. Bands are ordered from the most to the least
// demanding cutoff; the first band satisfied wins. Max is the contribution
// of this ratio to the maximum achievable raw score.
type PointScale struct {
	Direction Direction
	Max       float64
	Bands     []PointBand
}

// Banded category scores used by the category-weighted scheme.
const (
	BandExcellentScore = 100.0
	BandGoodScore      = 75.0
	BandFairScore      = 50.0
	BandPoorScore      = 25.0
	BandFloorScore     = 10.0
)

// NeutralGrowthScore is the growth category default when no growth data
// exists. Growth is the only category with a neutral default; the others
// are excluded from the weighted aggregate when empty.
const NeutralGrowthScore = 50.0

// GetBandThresholds returns the benchmark band thresholds per ratio,
// calibrated for large-cap technology companies.
func GetBandThresholds() map[RatioName]BandThreshold {
	return map[RatioName]BandThreshold{
		RatioCurrent: {LiquidityCategory, HigherIsBetter, 2.0, 1.5, 1.0, 0.5},
		RatioQuick:   {LiquidityCategory, HigherIsBetter, 1.5, 1.0, 0.7, 0.3},
		RatioCash:    {LiquidityCategory, HigherIsBetter, 0.5, 0.3, 0.15, 0.05},

		RatioGrossMargin:     {ProfitabilityCategory, HigherIsBetter, 0.50, 0.35, 0.20, 0.10},
		RatioOperatingMargin: {ProfitabilityCategory, HigherIsBetter, 0.25, 0.15, 0.08, 0.0},
		RatioNetMargin:       {ProfitabilityCategory, HigherIsBetter, 0.20, 0.10, 0.05, 0.0},
		RatioROE:             {ProfitabilityCategory, HigherIsBetter, 0.20, 0.15, 0.10, 0.05},
		RatioROA:             {ProfitabilityCategory, HigherIsBetter, 0.15, 0.10, 0.05, 0.02},

		RatioDebtToEquity: {LeverageCategory, LowerIsBetter, 0.5, 1.0, 2.0, 3.0},
		RatioDebtToAssets: {LeverageCategory, LowerIsBetter, 0.3, 0.5, 0.6, 0.7},

		RatioOperatingCashFlow: {CashFlowCategory, HigherIsBetter, 1.0, 0.6, 0.3, 0.1},
		RatioFreeCashFlow:      {CashFlowCategory, HigherIsBetter, 0.15, 0.10, 0.05, 0.0},
	}
}

// GetPointScales returns the point bands per ratio for the
// point-accumulation scheme. Only the ratios listed here contribute to
// the composite score; the raw sum is normalized against the maxima of
// the ratios actually present.
func GetPointScales() map[RatioName]PointScale {
	return map[RatioName]PointScale{
		// Liquidity, 20 points total
		RatioCurrent: {HigherIsBetter, 10, []PointBand{{2.0, 10}, {1.5, 8}, {1.0, 5}, {0.5, 2}}},
		RatioCash:    {HigherIsBetter, 10, []PointBand{{0.5, 10}, {0.25, 7}, {0.1, 4}}},

		// Profitability, 30 points total
		RatioNetMargin: {HigherIsBetter, 15, []PointBand{{0.20, 15}, {0.10, 12}, {0.05, 8}, {0, 4}}},
		RatioROE:       {HigherIsBetter, 15, []PointBand{{0.20, 15}, {0.15, 12}, {0.10, 8}, {0, 4}}},

		// Leverage, 25 points total
		RatioDebtToEquity: {LowerIsBetter, 15, []PointBand{{0.5, 15}, {1.0, 12}, {2.0, 8}, {3.0, 4}}},
		RatioDebtToAssets: {LowerIsBetter, 10, []PointBand{{0.3, 10}, {0.5, 7}, {0.7, 4}}},

		// Cash flow, 25 points total
		RatioOperatingCashFlow: {HigherIsBetter, 15, []PointBand{{1.0, 15}, {0.5, 10}, {0.2, 5}}},
		RatioFreeCashFlow:      {HigherIsBetter, 10, []PointBand{{0.15, 10}, {0.10, 7}, {0.05, 4}, {0, 2}}},
	}
}

// Award returns the points earned by a value under this scale.
func (s PointScale) Award(value float64) float64 {
	for _, band := range s.Bands {
		if s.Direction == LowerIsBetter {
			if value <= band.Cutoff {
				return band.Points
			}
		} else {
			if value >= band.Cutoff {
				return band.Points
			}
		}
	}
	return 0
}

// Band maps a value onto the 5-band category score under this threshold.
func (t BandThreshold) Band(value float64) float64 {
	if t.Direction == LowerIsBetter {
		switch {
		case value <= t.Excellent:
			return BandExcellentScore
		case value <= t.Good:
			return BandGoodScore
		case value <= t.Fair:
			return BandFairScore
		case value <= t.Poor:
			return BandPoorScore
		default:
			return BandFloorScore
		}
	}
	switch {
	case value >= t.Excellent:
		return BandExcellentScore
	case value >= t.Good:
		return BandGoodScore
	case value >= t.Fair:
		return BandFairScore
	case value >= t.Poor:
		return BandPoorScore
	default:
		return BandFloorScore
	}
}
