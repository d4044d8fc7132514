package core

import (
	"testing"

	"github.com/huangsam/finhealth/schema"
	"github.com/stretchr/testify/assert"
)

func TestBuildNotesOrdering(t *testing.T) {
	// Fire one rule per category and check the evaluation order holds
	ratios := schema.RatioSet{
		CurrentRatio:           schema.Float(0.8),   // low liquidity
		NetMargin:              schema.Float(-0.02), // not profitable
		DebtToEquity:           schema.Float(2.5),   // high leverage
		OperatingCashFlowRatio: schema.Float(0.1),   // weak coverage
	}
	growth := schema.GrowthRates{RevenueGrowth: schema.Float(-0.05)}

	notes := BuildNotes(ratios, growth)
	assert.Equal(t, []string{
		"Low liquidity: current ratio below 1.0",
		"Company is not profitable",
		"High leverage: debt-to-equity above 2.0",
		"Low operating cash flow coverage of current liabilities",
		"Revenue in decline",
	}, notes)
}

func TestBuildNotesPositiveObservations(t *testing.T) {
	ratios := schema.RatioSet{
		NetMargin:          schema.Float(0.25),
		ROE:                schema.Float(0.30),
		DebtToEquity:       schema.Float(0.2),
		FreeCashFlowMargin: schema.Float(0.20),
	}
	growth := schema.GrowthRates{RevenueGrowth: schema.Float(0.25)}

	notes := BuildNotes(ratios, growth)
	assert.Contains(t, notes, "Excellent profit margins (above 20%)")
	assert.Contains(t, notes, "Outstanding return on equity (above 25%)")
	assert.Contains(t, notes, "Conservative debt levels")
	assert.Contains(t, notes, "Strong free cash flow generation")
	assert.Contains(t, notes, "Excellent revenue growth (above 20%)")
}

func TestBuildNotesNoConcerns(t *testing.T) {
	// Values inside every band's quiet zone produce the default message
	ratios := schema.RatioSet{
		CurrentRatio: schema.Float(1.5),
		NetMargin:    schema.Float(0.10),
		ROE:          schema.Float(0.15),
		DebtToEquity: schema.Float(1.0),
	}
	notes := BuildNotes(ratios, schema.GrowthRates{})
	assert.Equal(t, []string{NoNotesMessage}, notes)
}

func TestBuildNotesMissingInputsStaySilent(t *testing.T) {
	notes := BuildNotes(schema.RatioSet{}, schema.GrowthRates{})
	assert.Equal(t, []string{NoNotesMessage}, notes)
}
