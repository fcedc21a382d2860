package services

import "fmt"

// ComposeMultiplier returns the product of the six difficulty factor
// values. Composition is multiplicative so independent risk factors
// compound proportionally; the product is kept at full float precision
// and rounded only at presentation time.
func ComposeMultiplier(factors FactorSet) float64 {
	return factors.Age *
		factors.Condition *
		factors.Location *
		factors.Manufacturer *
		factors.Urgency *
		factors.Complexity
}

// LineCalc holds the priced view of a single quote line item.
type LineCalc struct {
	BaseHours     float64
	AdjustedHours float64 // BaseHours * multiplier
	Cost          float64 // AdjustedHours * labor rate
}

// QuoteSummary holds the aggregate pricing for a quote.
type QuoteSummary struct {
	ItemCount     int     `json:"item_count"`
	BaseHours     float64 `json:"base_hours"`
	Multiplier    float64 `json:"multiplier"`
	AdjustedHours float64 `json:"adjusted_hours"`
	LaborRate     float64 `json:"labor_rate"`
	TotalCost     float64 `json:"total_cost"`
}

// CalcLine prices one line item. The multiplier and rate apply uniformly
// to every line of a quote.
func CalcLine(hours, multiplier, laborRate float64) LineCalc {
	adjusted := hours * multiplier
	return LineCalc{
		BaseHours:     hours,
		AdjustedHours: adjusted,
		Cost:          adjusted * laborRate,
	}
}

// Price computes the full summary for a set of line items under the given
// factor selections and labor rate. An empty quote yields all zeros apart
// from the multiplier. Negative hours or a negative labor rate are
// rejected with ErrInvalidInput.
func Price(items []LineItem, factors FactorSet, laborRate float64) (QuoteSummary, error) {
	if laborRate < 0 {
		return QuoteSummary{}, fmt.Errorf("%w: labor rate %.2f is negative", ErrInvalidInput, laborRate)
	}

	var baseHours float64
	for _, item := range items {
		if item.Hours < 0 {
			return QuoteSummary{}, fmt.Errorf("%w: item %q has negative hours %.2f",
				ErrInvalidInput, item.Code, item.Hours)
		}
		baseHours += item.Hours
	}

	multiplier := ComposeMultiplier(factors)
	adjusted := baseHours * multiplier

	return QuoteSummary{
		ItemCount:     len(items),
		BaseHours:     baseHours,
		Multiplier:    multiplier,
		AdjustedHours: adjusted,
		LaborRate:     laborRate,
		TotalCost:     adjusted * laborRate,
	}, nil
}
