package core

import (
	"testing"

	"github.com/huangsam/finhealth/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeGrowthNoPriorYear(t *testing.T) {
	growth := ComputeGrowth(schema.YearTotals{Revenue: schema.Float(100)}, nil)
	assert.Nil(t, growth.RevenueGrowth)
	assert.Nil(t, growth.ProfitGrowth)
}

func TestComputeGrowth(t *testing.T) {
	tests := []struct {
		name     string
		current  *float64
		previous *float64
		want     *float64
	}{
		{"simple increase", schema.Float(120), schema.Float(100), schema.Float(0.2)},
		{"simple decline", schema.Float(80), schema.Float(100), schema.Float(-0.2)},
		{"prior zero", schema.Float(120), schema.Float(0), nil},
		{"prior missing", schema.Float(120), nil, nil},
		{"current missing counts as zero", nil, schema.Float(100), schema.Float(-1.0)},
		// Loss shrinking toward zero is positive growth against |previous|
		{"negative prior", schema.Float(25), schema.Float(-50), schema.Float(1.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			growth := ComputeGrowth(
				schema.YearTotals{Revenue: tt.current, NetIncome: tt.current},
				&schema.YearTotals{Revenue: tt.previous, NetIncome: tt.previous},
			)
			if tt.want == nil {
				assert.Nil(t, growth.RevenueGrowth)
				assert.Nil(t, growth.ProfitGrowth)
				return
			}
			require.NotNil(t, growth.RevenueGrowth)
			assert.InDelta(t, *tt.want, *growth.RevenueGrowth, 1e-9)
			require.NotNil(t, growth.ProfitGrowth)
			assert.InDelta(t, *tt.want, *growth.ProfitGrowth, 1e-9)
		})
	}
}

func TestGrowthCategoryScore(t *testing.T) {
	tests := []struct {
		name     string
		growth   schema.GrowthRates
		want     float64
		wantData bool
	}{
		{
			"both rates averaged",
			schema.GrowthRates{RevenueGrowth: schema.Float(0.25), ProfitGrowth: schema.Float(0.05)},
			87.5, // revenue 100, profit 75
			true,
		},
		{
			"revenue only",
			schema.GrowthRates{RevenueGrowth: schema.Float(0.05)},
			50,
			true,
		},
		{
			"mild profit decline is neutral",
			schema.GrowthRates{ProfitGrowth: schema.Float(-0.05)},
			50,
			true,
		},
		{
			"steep profit decline",
			schema.GrowthRates{ProfitGrowth: schema.Float(-0.30)},
			25,
			true,
		},
		{
			"no data defaults to neutral",
			schema.GrowthRates{},
			schema.NeutralGrowthScore,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hasData := growthCategoryScore(tt.growth)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.wantData, hasData)
		})
	}
}
