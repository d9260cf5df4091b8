package domain

// OrderParameters are the three positive inputs of an EOQ calculation.
type OrderParameters struct {
	Demand      float64 `json:"demand"`
	OrderCost   float64 `json:"orderCost"`
	HoldingCost float64 `json:"holdingCost"`
}

type ComputationResult struct {
	EOQ             float64 `json:"eoq"`
	TotalAnnualCost float64 `json:"totalAnnualCost"`
}

// Field identifies one input of the order form.
type Field string

const (
	FieldDemand      Field = "demand"
	FieldOrderCost   Field = "orderCost"
	FieldHoldingCost Field = "holdingCost"
)

// Fields lists the form inputs in the order they appear on the page.
var Fields = []Field{FieldDemand, FieldOrderCost, FieldHoldingCost}

// ParseField returns the Field named by s.
func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}
