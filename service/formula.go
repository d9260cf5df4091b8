package service

import (
	"math"

	"quantor/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// ComputeEOQ returns sqrt(2DS/H). The caller guarantees D, S, H > 0.
func ComputeEOQ(demand, orderCost, holdingCost float64) float64 {
	return math.Sqrt((2 * demand * orderCost) / holdingCost)
}

// ComputeTotalAnnualCost returns (D/eoq)S + (eoq/2)H. Requires eoq > 0.
func ComputeTotalAnnualCost(demand, orderCost, holdingCost, eoq float64) float64 {
	return (demand/eoq)*orderCost + (eoq/2)*holdingCost
}

// Calculate runs both formulas on validated parameters.
func Calculate(p domain.OrderParameters) domain.ComputationResult {
	eoq := ComputeEOQ(p.Demand, p.OrderCost, p.HoldingCost)
	return domain.ComputationResult{
		EOQ:             eoq,
		TotalAnnualCost: ComputeTotalAnnualCost(p.Demand, p.OrderCost, p.HoldingCost, eoq),
	}
}
