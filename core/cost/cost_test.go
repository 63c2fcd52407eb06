package cost

import "testing"

func TestToolMetricsString(t *testing.T) {
	tests := []struct {
		name     string
		metrics  ToolMetrics
		expected string
	}{
		{
			name:     "amount and currency",
			metrics:  ToolMetrics{Amount: 0.005, Currency: "USD"},
			expected: "0.005000 USD",
		},
		{
			name:     "currency defaults to USD",
			metrics:  ToolMetrics{Amount: 0.002},
			expected: "0.002000 USD",
		},
		{
			name:     "with cost description",
			metrics:  ToolMetrics{Amount: 0.001, Currency: "USD", CostDescription: "per search query"},
			expected: "0.001000 USD (per search query)",
		},
		{
			name:     "free local tool",
			metrics:  ToolMetrics{Amount: 0, CostDescription: "local sqlite lookup"},
			expected: "0.000000 USD (local sqlite lookup)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.metrics.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}
