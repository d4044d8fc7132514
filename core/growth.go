package core

import (
	"math"

	"github.com/huangsam/finhealth/schema"
)

// ComputeGrowth derives year-over-year growth rates against the prior
// fiscal year's totals. A rate is nil when the prior figure is absent or
// zero; a missing current figure counts as zero so a vanished revenue
// line reads as a full decline rather than missing data.
func ComputeGrowth(current schema.YearTotals, previous *schema.YearTotals) schema.GrowthRates {
	if previous == nil {
		return schema.GrowthRates{}
	}
	return schema.GrowthRates{
		RevenueGrowth: growthRate(current.Revenue, previous.Revenue),
		ProfitGrowth:  growthRate(current.NetIncome, previous.NetIncome),
	}
}

// growthRate computes (current - previous) / |previous|. The absolute
// denominator keeps the sign of the change meaningful when the prior
// figure is negative, which matters for net income.
func growthRate(current, previous *float64) *float64 {
	if previous == nil || *previous == 0 || !isFinite(*previous) {
		return nil
	}
	cur := schema.FloatVal(current, 0)
	if !isFinite(cur) {
		cur = 0
	}
	v := (cur - *previous) / math.Abs(*previous)
	return &v
}

// revenueGrowthScore bands a revenue growth rate onto the category scale.
func revenueGrowthScore(g float64) float64 {
	switch {
	case g > 0.20:
		return 100
	case g > 0.10:
		return 75
	case g > 0:
		return 50
	default:
		return 25
	}
}

// profitGrowthScore bands a profit growth rate onto the category scale.
// A mild decline still scores neutral since net income is noisier than
// revenue year to year.
func profitGrowthScore(g float64) float64 {
	switch {
	case g > 0.15:
		return 100
	case g > 0:
		return 75
	case g > -0.10:
		return 50
	default:
		return 25
	}
}

// growthCategoryScore averages the available growth band scores. The
// second return reports whether any growth data existed; callers default
// to the neutral midpoint when it did not.
func growthCategoryScore(growth schema.GrowthRates) (float64, bool) {
	var scores []float64
	if growth.RevenueGrowth != nil {
		scores = append(scores, revenueGrowthScore(*growth.RevenueGrowth))
	}
	if growth.ProfitGrowth != nil {
		scores = append(scores, profitGrowthScore(*growth.ProfitGrowth))
	}
	if len(scores) == 0 {
		return schema.NeutralGrowthScore, false
	}
	var total float64
	for _, s := range scores {
		total += s
	}
	return total / float64(len(scores)), true
}
