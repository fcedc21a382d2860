package services

import "fmt"

// Factor names recognized by a FactorSet.
const (
	FactorAge          = "age"
	FactorCondition    = "condition"
	FactorLocation     = "location"
	FactorManufacturer = "manufacturer"
	FactorUrgency      = "urgency"
	FactorComplexity   = "complexity"
)

// FactorNames lists the six difficulty factors in display order.
var FactorNames = []string{
	FactorAge,
	FactorCondition,
	FactorLocation,
	FactorManufacturer,
	FactorUrgency,
	FactorComplexity,
}

// FactorOption is one selectable band in a difficulty table.
type FactorOption struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// FactorOptions maps each factor name to its fixed table of selectable
// bands, in selection order. The first band of every table is the 1.0
// "no adjustment" baseline; no shipped multiplier is below 1.0.
var FactorOptions = map[string][]FactorOption{
	FactorAge: {
		{"0-2 years (New)", 1.0},
		{"3-5 years (Like New)", 1.05},
		{"6-8 years (Good)", 1.15},
		{"9-12 years (Average)", 1.25},
		{"13-15 years (Older)", 1.35},
		{"16-20 years (Old)", 1.50},
		{"20+ years (Very Old)", 1.75},
	},
	FactorCondition: {
		{"Excellent - Well maintained", 1.0},
		{"Good - Normal wear", 1.10},
		{"Fair - Some issues", 1.25},
		{"Poor - Multiple problems", 1.40},
		{"Severe - Major overhaul needed", 1.60},
	},
	FactorLocation: {
		{"Shop - Full facilities", 1.0},
		{"On-site - Accessible", 1.15},
		{"On-site - Limited access", 1.30},
		{"Remote - Difficult terrain", 1.50},
		{"Remote - Extreme conditions", 1.75},
	},
	FactorManufacturer: {
		{"CNH (Case/New Holland)", 1.0},
		{"Caterpillar", 1.05},
		{"John Deere", 1.05},
		{"Komatsu", 1.10},
		{"Volvo", 1.10},
		{"Hitachi", 1.15},
		{"Liebherr", 1.15},
		{"JCB", 1.08},
		{"Doosan", 1.12},
		{"Kubota", 1.05},
		{"Other", 1.20},
	},
	FactorUrgency: {
		{"Standard - Normal schedule", 1.0},
		{"Priority - Within 3 days", 1.20},
		{"Rush - Next day", 1.50},
		{"Emergency - Same day", 2.00},
	},
	FactorComplexity: {
		{"Routine - Standard service", 1.0},
		{"Moderate - Some diagnosis needed", 1.15},
		{"Complex - Extensive troubleshooting", 1.30},
		{"Severe - Complete tear-down", 1.50},
	},
}

// FactorSet holds the active multiplier for each of the six difficulty
// factors. Every factor always has a value; the zero-adjustment default
// is 1.0 across the board.
type FactorSet struct {
	Age          float64 `json:"age"`
	Condition    float64 `json:"condition"`
	Location     float64 `json:"location"`
	Manufacturer float64 `json:"manufacturer"`
	Urgency      float64 `json:"urgency"`
	Complexity   float64 `json:"complexity"`
}

// DefaultFactorSet returns a FactorSet with every factor at the 1.0 baseline.
func DefaultFactorSet() FactorSet {
	return FactorSet{
		Age:          1.0,
		Condition:    1.0,
		Location:     1.0,
		Manufacturer: 1.0,
		Urgency:      1.0,
		Complexity:   1.0,
	}
}

// Get returns the multiplier for the named factor.
func (f FactorSet) Get(name string) (float64, error) {
	switch name {
	case FactorAge:
		return f.Age, nil
	case FactorCondition:
		return f.Condition, nil
	case FactorLocation:
		return f.Location, nil
	case FactorManufacturer:
		return f.Manufacturer, nil
	case FactorUrgency:
		return f.Urgency, nil
	case FactorComplexity:
		return f.Complexity, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFactor, name)
}

// Set replaces the multiplier for the named factor.
func (f *FactorSet) Set(name string, value float64) error {
	switch name {
	case FactorAge:
		f.Age = value
	case FactorCondition:
		f.Condition = value
	case FactorLocation:
		f.Location = value
	case FactorManufacturer:
		f.Manufacturer = value
	case FactorUrgency:
		f.Urgency = value
	case FactorComplexity:
		f.Complexity = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFactor, name)
	}
	return nil
}

// LookupFactorOption resolves a band label within the named factor's table.
func LookupFactorOption(factor, label string) (FactorOption, error) {
	options, ok := FactorOptions[factor]
	if !ok {
		return FactorOption{}, fmt.Errorf("%w: %q", ErrUnknownFactor, factor)
	}
	for _, opt := range options {
		if opt.Label == label {
			return opt, nil
		}
	}
	return FactorOption{}, fmt.Errorf("factor %q has no option labeled %q", factor, label)
}
