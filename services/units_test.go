package services

import (
	"math"
	"testing"
)

func TestToBase_Mass(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		unit   string
		expect float64
	}{
		{"grams identity", 500, "g", 500},
		{"kilograms", 2, "kg", 2000},
		{"milligrams", 500, "mg", 0.5},
		{"ounces", 1, "oz", 28.3495},
		{"pounds", 1, "lb", 453.592},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToBase(tt.amount, tt.unit)
			if !ok {
				t.Fatalf("ToBase(%v, %q) not ok", tt.amount, tt.unit)
			}
			if got.Unit != BaseGrams {
				t.Errorf("base unit = %q, want g", got.Unit)
			}
			if math.Abs(got.Amount-tt.expect) > 1e-9 {
				t.Errorf("ToBase(%v, %q) = %v, want %v", tt.amount, tt.unit, got.Amount, tt.expect)
			}
		})
	}
}

func TestToBase_Volume(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		unit   string
		expect float64
	}{
		{"millilitres identity", 250, "ml", 250},
		{"litres", 1.5, "l", 1500},
		{"cups", 2, "cup", 480},
		{"tablespoons", 3, "tbsp", 45},
		{"teaspoons", 4, "tsp", 20},
		{"fluid ounces", 1, "fl-oz", 29.5735},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToBase(tt.amount, tt.unit)
			if !ok {
				t.Fatalf("ToBase(%v, %q) not ok", tt.amount, tt.unit)
			}
			if got.Unit != BaseMillilitres {
				t.Errorf("base unit = %q, want ml", got.Unit)
			}
			if math.Abs(got.Amount-tt.expect) > 1e-9 {
				t.Errorf("ToBase(%v, %q) = %v, want %v", tt.amount, tt.unit, got.Amount, tt.expect)
			}
		})
	}
}

// Converting 1 unit to base and dividing back by the factor must recover
// the original amount for every unit in the table.
func TestToBase_RoundTrip(t *testing.T) {
	units := []string{"g", "kg", "mg", "oz", "lb", "ml", "l", "cup", "tbsp", "tsp", "fl-oz"}
	for _, u := range units {
		t.Run(u, func(t *testing.T) {
			base, ok := ToBase(1, u)
			if !ok {
				t.Fatalf("ToBase(1, %q) not ok", u)
			}
			factor, ok := UnitFactor(u)
			if !ok {
				t.Fatalf("UnitFactor(%q) not ok", u)
			}
			back := base.Amount / factor
			if math.Abs(back-1) > 1e-9 {
				t.Errorf("round trip for %q = %v, want 1", u, back)
			}
		})
	}
}

func TestToBase_ApproximateUnits(t *testing.T) {
	tests := []struct {
		unit   string
		expect float64
	}{
		{"each", 50},
		{"slice", 30},
		{"large", 60},
		{"medium", 50},
		{"small", 40},
		{"pinch", 0.36},
		{"dash", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, ok := ToBase(1, tt.unit)
			if !ok {
				t.Fatalf("ToBase(1, %q) not ok", tt.unit)
			}
			if got.Unit != BaseGrams {
				t.Errorf("base unit = %q, want g", got.Unit)
			}
			if math.Abs(got.Amount-tt.expect) > 1e-9 {
				t.Errorf("ToBase(1, %q) = %v, want %v", tt.unit, got.Amount, tt.expect)
			}
			if !IsApproximateUnit(tt.unit) {
				t.Errorf("IsApproximateUnit(%q) = false, want true", tt.unit)
			}
		})
	}

	if IsApproximateUnit("g") {
		t.Error("IsApproximateUnit(g) = true, want false")
	}
}

func TestToBase_Unrecognized(t *testing.T) {
	for _, u := range []string{"", "handful", "bag", "стакан"} {
		if _, ok := ToBase(1, u); ok {
			t.Errorf("ToBase(1, %q) ok = true, want false", u)
		}
	}
}

func TestNormalizeUnit_Aliases(t *testing.T) {
	tests := []struct {
		raw    string
		expect string
	}{
		{"Grams", "g"},
		{"  KG ", "kg"},
		{"Tablespoons", "tbsp"},
		{"litre", "l"},
		{"fl oz", "fl-oz"},
		{"LBS", "lb"},
		{"slices", "slice"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeUnit(tt.raw)
			if !ok {
				t.Fatalf("NormalizeUnit(%q) not ok", tt.raw)
			}
			if got != tt.expect {
				t.Errorf("NormalizeUnit(%q) = %q, want %q", tt.raw, got, tt.expect)
			}
		})
	}
}
