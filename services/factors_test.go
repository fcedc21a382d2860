package services

import (
	"errors"
	"testing"
)

func TestFactorOptions_TableShape(t *testing.T) {
	tests := []struct {
		factor string
		bands  int
		max    float64
	}{
		{FactorAge, 7, 1.75},
		{FactorCondition, 5, 1.60},
		{FactorLocation, 5, 1.75},
		{FactorManufacturer, 11, 1.20},
		{FactorUrgency, 4, 2.00},
		{FactorComplexity, 4, 1.50},
	}

	for _, tt := range tests {
		t.Run(tt.factor, func(t *testing.T) {
			options, ok := FactorOptions[tt.factor]
			if !ok {
				t.Fatalf("no option table for %q", tt.factor)
			}
			if len(options) != tt.bands {
				t.Errorf("len(options) = %d, want %d", len(options), tt.bands)
			}
			// The first band is always the 1.0 baseline; nothing discounts
			// below it.
			if options[0].Multiplier != 1.0 {
				t.Errorf("first band multiplier = %v, want 1.0", options[0].Multiplier)
			}
			var max float64
			for _, opt := range options {
				if opt.Multiplier < 1.0 {
					t.Errorf("option %q multiplier %v is below 1.0", opt.Label, opt.Multiplier)
				}
				if opt.Multiplier > max {
					max = opt.Multiplier
				}
			}
			if max != tt.max {
				t.Errorf("max multiplier = %v, want %v", max, tt.max)
			}
		})
	}
}

func TestFactorOptions_CoversAllNames(t *testing.T) {
	if len(FactorNames) != 6 {
		t.Fatalf("len(FactorNames) = %d, want 6", len(FactorNames))
	}
	for _, name := range FactorNames {
		if _, ok := FactorOptions[name]; !ok {
			t.Errorf("FactorOptions missing table for %q", name)
		}
	}
}

func TestDefaultFactorSet(t *testing.T) {
	f := DefaultFactorSet()
	for _, name := range FactorNames {
		val, err := f.Get(name)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", name, err)
		}
		if val != 1.0 {
			t.Errorf("default %q = %v, want 1.0", name, val)
		}
	}
}

func TestFactorSet_SetGet(t *testing.T) {
	f := DefaultFactorSet()

	if err := f.Set(FactorUrgency, 2.0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if f.Urgency != 2.0 {
		t.Errorf("Urgency = %v, want 2.0", f.Urgency)
	}

	if err := f.Set("terrain", 1.5); !errors.Is(err, ErrUnknownFactor) {
		t.Errorf("Set(terrain) error = %v, want ErrUnknownFactor", err)
	}
	if _, err := f.Get("terrain"); !errors.Is(err, ErrUnknownFactor) {
		t.Errorf("Get(terrain) error = %v, want ErrUnknownFactor", err)
	}
}

func TestLookupFactorOption(t *testing.T) {
	opt, err := LookupFactorOption(FactorAge, "9-12 years (Average)")
	if err != nil {
		t.Fatalf("LookupFactorOption() error = %v", err)
	}
	if opt.Multiplier != 1.25 {
		t.Errorf("multiplier = %v, want 1.25", opt.Multiplier)
	}

	if _, err := LookupFactorOption(FactorAge, "brand new"); err == nil {
		t.Error("expected error for unknown label")
	}
	if _, err := LookupFactorOption("terrain", "any"); !errors.Is(err, ErrUnknownFactor) {
		t.Errorf("error = %v, want ErrUnknownFactor", err)
	}
}
