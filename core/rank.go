package core

import (
	"sort"

	"github.com/huangsam/finhealth/schema"
)

// RankCompanies sorts assessments by overall score in descending order
// and returns the top 'limit' rows. Ties break by ticker ascending so
// rankings are reproducible run to run. Assessments without a score sort
// last but are kept: insufficient data is reported, never dropped.
func RankCompanies(assessments []schema.HealthAssessment, limit int) []schema.CompanyRanking {
	sorted := make([]schema.HealthAssessment, len(assessments))
	copy(sorted, assessments)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].OverallScore, sorted[j].OverallScore
		switch {
		case a == nil && b == nil:
			return sorted[i].Ticker < sorted[j].Ticker
		case a == nil:
			return false
		case b == nil:
			return true
		case *a != *b:
			return *a > *b
		default:
			return sorted[i].Ticker < sorted[j].Ticker
		}
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	rankings := make([]schema.CompanyRanking, 0, len(sorted))
	for i, a := range sorted {
		rankings = append(rankings, schema.CompanyRanking{
			Rank:         i + 1,
			Ticker:       a.Ticker,
			CompanyName:  a.CompanyName,
			FiscalYear:   a.FiscalYear,
			OverallScore: a.OverallScore,
			Status:       a.Status,
			CurrentRatio: a.Ratios.CurrentRatio,
			DebtToEquity: a.Ratios.DebtToEquity,
			NetMargin:    a.Ratios.NetMargin,
			ROE:          a.Ratios.ROE,
		})
	}
	return rankings
}
