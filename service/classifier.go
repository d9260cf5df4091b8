package service

import "quantor/domain"

// Classify labels a calculation. Rules are checked in order and the first
// match wins.
func Classify(demand, orderCost, holdingCost, eoq float64) domain.Pattern {
	switch {
	case demand > BulkDemandThreshold:
		return domain.PatternBulkOrdering
	case holdingCost > orderCost:
		return domain.PatternHoldingDominant
	case eoq < SmallOrderThreshold:
		return domain.PatternFrequentSmall
	default:
		return domain.PatternBalanced
	}
}
