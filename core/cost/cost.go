package cost

import "fmt"

// ToolMetrics carries the cost and quality metadata advertised alongside a
// tool. Hosts use it to choose between tools with overlapping capabilities,
// for example preferring a cheaper search when accuracy matters less.
type ToolMetrics struct {
	// Amount is the cost of a single execution, in Currency units.
	Amount float64 `json:"amount"`

	// Currency is the unit for Amount, e.g. "USD" or "credits".
	Currency string `json:"currency,omitempty"`

	// CostDescription qualifies the cost, e.g. "per API call".
	CostDescription string `json:"cost_description,omitempty"`

	// Accuracy is a reliability score between 0.0 and 1.0.
	Accuracy float64 `json:"accuracy,omitempty"`

	// AverageDurationInMillis is the typical execution time.
	AverageDurationInMillis int64 `json:"average_duration_in_millis,omitempty"`
}

// String formats the cost as "<amount> <currency>" with the optional cost
// description in parentheses. Currency defaults to USD.
func (tm ToolMetrics) String() string {
	currency := tm.Currency
	if currency == "" {
		currency = "USD"
	}

	result := fmt.Sprintf("%.6f %s", tm.Amount, currency)
	if tm.CostDescription != "" {
		result = fmt.Sprintf("%s (%s)", result, tm.CostDescription)
	}
	return result
}
