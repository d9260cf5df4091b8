package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"quantor/domain"
)

var formulaSamples = []domain.OrderParameters{
	{Demand: 1200, OrderCost: 50, HoldingCost: 4},
	{Demand: 6000, OrderCost: 10, HoldingCost: 2},
	{Demand: 1, OrderCost: 1, HoldingCost: 1},
	{Demand: 0.5, OrderCost: 300, HoldingCost: 0.01},
	{Demand: 250000, OrderCost: 75.5, HoldingCost: 12.25},
}

func TestComputeEOQ_MatchesClosedForm(t *testing.T) {
	for _, p := range formulaSamples {
		want := math.Sqrt(2 * p.Demand * p.OrderCost / p.HoldingCost)
		assert.InDelta(t, want, ComputeEOQ(p.Demand, p.OrderCost, p.HoldingCost), 1e-9*want)
	}
}

func TestComputeTotalAnnualCost_MinimalAtEOQ(t *testing.T) {
	for _, p := range formulaSamples {
		eoq := ComputeEOQ(p.Demand, p.OrderCost, p.HoldingCost)
		best := ComputeTotalAnnualCost(p.Demand, p.OrderCost, p.HoldingCost, eoq)

		for _, k := range []float64{0.5, 0.9, 0.99, 1.01, 1.1, 2} {
			other := ComputeTotalAnnualCost(p.Demand, p.OrderCost, p.HoldingCost, eoq*k)
			assert.LessOrEqual(t, best, other, "params %+v, factor %v", p, k)
		}
	}
}

func TestCalculate_ReferenceOrder(t *testing.T) {
	result := Calculate(domain.OrderParameters{Demand: 1200, OrderCost: 50, HoldingCost: 4})

	assert.InDelta(t, math.Sqrt(30000), result.EOQ, 1e-9)
	assert.InDelta(t, 692.82, result.TotalAnnualCost, 0.01)
	assert.Equal(t, 173.21, roundTo2Decimals(result.EOQ))
	assert.Equal(t, 692.82, roundTo2Decimals(result.TotalAnnualCost))
}

func TestRoundTo2Decimals(t *testing.T) {
	assert.Equal(t, 1.23, roundTo2Decimals(1.234))
	assert.Equal(t, 1.24, roundTo2Decimals(1.235001))
	assert.Equal(t, 100.0, roundTo2Decimals(100))
}
