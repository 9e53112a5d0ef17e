package services

import (
	"math"
	"testing"
)

func TestResolveDensity(t *testing.T) {
	tests := []struct {
		name       string
		ingredient string
		override   float64
		expect     float64
		expectOK   bool
	}{
		{"exact match", "flour", 0, 0.53, true},
		{"exact match water", "water", 0, 1.0, true},
		{"case insensitive", "MILK", 0, 1.03, true},
		{"extra whitespace", "  golden   syrup ", 0, 1.43, true},
		{"substring match", "plain flour", 0, 0.53, true},
		{"substring match suffix", "whole milk", 0, 1.03, true},
		{"refined key wins", "caster sugar", 0, 0.85, true},
		{"override wins", "flour", 0.6, 0.6, true},
		{"override wins over unknown", "mystery powder", 1.1, 1.1, true},
		{"zero override ignored", "honey", 0, 1.42, true},
		{"negative override ignored", "honey", -2, 1.42, true},
		{"unknown ingredient", "sprinkles", 0, 0, false},
		{"empty name", "", 0, 0, false},
		{"ambiguous match refused", "milk and honey blend", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveDensity(tt.ingredient, tt.override)
			if ok != tt.expectOK {
				t.Fatalf("ResolveDensity(%q, %v) ok = %v, want %v",
					tt.ingredient, tt.override, ok, tt.expectOK)
			}
			if tt.expectOK && math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("ResolveDensity(%q, %v) = %v, want %v",
					tt.ingredient, tt.override, got, tt.expect)
			}
		})
	}
}

// "icing sugar" contains both the "icing sugar" and "sugar" keys; the
// longer key is a refinement and must win deterministically.
func TestResolveDensity_RefinementOverGeneric(t *testing.T) {
	got, ok := ResolveDensity("organic icing sugar", 0)
	if !ok {
		t.Fatal("expected a density for organic icing sugar")
	}
	if math.Abs(got-0.56) > 1e-9 {
		t.Errorf("density = %v, want 0.56 (icing sugar, not plain sugar)", got)
	}
}
