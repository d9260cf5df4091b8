package domain

// Pattern is the behavior label attached to a calculation.
type Pattern string

const (
	PatternBulkOrdering    Pattern = "bulk-ordering_behavior"
	PatternHoldingDominant Pattern = "holding-dominant_strategy"
	PatternFrequentSmall   Pattern = "frequent_small_orders"
	PatternBalanced        Pattern = "balanced_strategy"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// BehaviorLogEntry records one successful calculation.
type BehaviorLogEntry struct {
	ID          string  `json:"-"`
	Pattern     Pattern `json:"pattern"`
	Demand      float64 `json:"demand"`
	OrderCost   float64 `json:"orderCost"`
	HoldingCost float64 `json:"holdingCost"`
	EOQ         float64 `json:"eoq"`       // rounded to 2 decimals
	TotalCost   float64 `json:"totalCost"` // rounded to 2 decimals
	Timestamp   string  `json:"timestamp"`
}
