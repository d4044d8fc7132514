package core

import (
	"math"

	"github.com/huangsam/finhealth/schema"
)

// Scorer computes a composite health score from a ratio set plus growth
// rates. Implementations must be pure: same inputs, same outputs, no
// retained state between calls.
type Scorer interface {
	// Variant identifies the scoring scheme.
	Variant() schema.ScorerVariant

	// Score returns the overall score in [0,100] (nil when no data was
	// computed at all) and the per-category scores that produced it.
	Score(ratios schema.RatioSet, growth schema.GrowthRates) (*float64, []schema.CategoryScore)
}

// NewScorer builds the scorer for a variant. Unrecognized variants fall
// back to point accumulation, the scheme that drives ranking.
func NewScorer(variant schema.ScorerVariant) Scorer {
	if variant == schema.CategoryWeighted {
		return &CategoryWeightedScorer{
			Thresholds: schema.GetBandThresholds(),
			Weights:    schema.GetCategoryWeights(),
		}
	}
	return &PointAccumulationScorer{Scales: schema.GetPointScales()}
}

// pointScaleOrder fixes the evaluation order of the point scheme so
// category scores come out deterministically.
var pointScaleOrder = []schema.RatioName{
	schema.RatioCurrent,
	schema.RatioCash,
	schema.RatioNetMargin,
	schema.RatioROE,
	schema.RatioDebtToEquity,
	schema.RatioDebtToAssets,
	schema.RatioOperatingCashFlow,
	schema.RatioFreeCashFlow,
}

// categoryOrder fixes the reporting order of category scores.
var categoryOrder = []schema.RatioCategory{
	schema.LiquidityCategory,
	schema.ProfitabilityCategory,
	schema.LeverageCategory,
	schema.CashFlowCategory,
	schema.GrowthCategory,
}

// PointAccumulationScorer awards hand-tuned points per ratio band and
// normalizes the sum against the maximum achievable for the ratios that
// were actually present. Missing ratios shrink the denominator instead
// of dragging the score down. Growth does not participate.
type PointAccumulationScorer struct {
	Scales map[schema.RatioName]schema.PointScale
}

// Variant identifies the scoring scheme.
func (s *PointAccumulationScorer) Variant() schema.ScorerVariant {
	return schema.PointAccumulation
}

// Score computes the normalized point score, rounded to two decimals.
// With zero tracked ratios present the score is exactly 0, which
// classifies as Poor rather than Unknown.
func (s *PointAccumulationScorer) Score(ratios schema.RatioSet, _ schema.GrowthRates) (*float64, []schema.CategoryScore) {
	var earned, possible float64
	catEarned := make(map[schema.RatioCategory]float64)
	catPossible := make(map[schema.RatioCategory]float64)
	thresholds := schema.GetBandThresholds()

	for _, name := range pointScaleOrder {
		value := ratios.Get(name)
		if value == nil {
			continue
		}
		scale := s.Scales[name]
		points := scale.Award(*value)
		earned += points
		possible += scale.Max

		category := thresholds[name].Category
		catEarned[category] += points
		catPossible[category] += scale.Max
	}

	if possible == 0 {
		return schema.Float(0), nil
	}

	var categories []schema.CategoryScore
	for _, category := range categoryOrder {
		if max, ok := catPossible[category]; ok && max > 0 {
			categories = append(categories, schema.CategoryScore{
				Category: category,
				Score:    round2(catEarned[category] / max * 100),
			})
		}
	}

	return schema.Float(round2(earned / possible * 100)), categories
}

// CategoryWeightedScorer bands each ratio onto the 100/75/50/25/10 scale,
// averages within categories, and combines categories with fixed weights
// renormalized over the categories that have data. Growth alone has a
// neutral default when no growth data exists.
type CategoryWeightedScorer struct {
	Thresholds map[schema.RatioName]schema.BandThreshold
	Weights    map[schema.RatioCategory]float64
}

// Variant identifies the scoring scheme.
func (s *CategoryWeightedScorer) Variant() schema.ScorerVariant {
	return schema.CategoryWeighted
}

// Score computes the weighted category score, rounded to one decimal.
// The overall score is nil only when no category at all produced data;
// that is the one case classified as Unknown.
func (s *CategoryWeightedScorer) Score(ratios schema.RatioSet, growth schema.GrowthRates) (*float64, []schema.CategoryScore) {
	catSums := make(map[schema.RatioCategory]float64)
	catCounts := make(map[schema.RatioCategory]int)

	for name, threshold := range s.Thresholds {
		value := ratios.Get(name)
		if value == nil {
			continue
		}
		catSums[threshold.Category] += threshold.Band(*value)
		catCounts[threshold.Category]++
	}

	growthScore, hasGrowthData := growthCategoryScore(growth)
	if len(catCounts) == 0 && !hasGrowthData {
		// No data computed at all
		return nil, nil
	}

	var categories []schema.CategoryScore
	var weightedSum, totalWeight float64
	for _, category := range categoryOrder {
		var score float64
		switch {
		case category == schema.GrowthCategory:
			// Growth always participates, defaulting to neutral;
			// empty ratio categories are excluded instead.
			score = growthScore
		case catCounts[category] > 0:
			score = catSums[category] / float64(catCounts[category])
		default:
			continue
		}
		categories = append(categories, schema.CategoryScore{Category: category, Score: round1(score)})
		weightedSum += score * s.Weights[category]
		totalWeight += s.Weights[category]
	}

	return schema.Float(round1(weightedSum / totalWeight)), categories
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
