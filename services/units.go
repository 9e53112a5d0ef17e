// Package services provides the costing engine and business calculations
// for recipes, ingredients, wholesale orders and production plans.
package services

import "strings"

// BaseUnit is one of the two canonical units every measurement normalizes to.
type BaseUnit string

const (
	BaseGrams       BaseUnit = "g"
	BaseMillilitres BaseUnit = "ml"
)

// BaseQuantity is an amount expressed in a canonical base unit.
type BaseQuantity struct {
	Amount float64
	Unit   BaseUnit
}

type unitDef struct {
	base   BaseUnit
	factor float64 // multiplier to the base unit
	approx bool    // heuristic gram weight, not a physical conversion
}

// unitTable maps canonical unit names to their base-unit conversion.
// Count, size and informal units have no universal physical conversion;
// their factors are rough default gram weights so a cost can still be
// estimated. Treat those as estimates, not conversions.
var unitTable = map[string]unitDef{
	// mass → g
	"g":  {base: BaseGrams, factor: 1},
	"kg": {base: BaseGrams, factor: 1000},
	"mg": {base: BaseGrams, factor: 0.001},
	"oz": {base: BaseGrams, factor: 28.3495},
	"lb": {base: BaseGrams, factor: 453.592},

	// volume → ml
	"ml":    {base: BaseMillilitres, factor: 1},
	"l":     {base: BaseMillilitres, factor: 1000},
	"cup":   {base: BaseMillilitres, factor: 240},
	"tbsp":  {base: BaseMillilitres, factor: 15},
	"tsp":   {base: BaseMillilitres, factor: 5},
	"fl-oz": {base: BaseMillilitres, factor: 29.5735},

	// count / size / informal → approximate g
	"each":   {base: BaseGrams, factor: 50, approx: true},
	"slice":  {base: BaseGrams, factor: 30, approx: true},
	"large":  {base: BaseGrams, factor: 60, approx: true},
	"medium": {base: BaseGrams, factor: 50, approx: true},
	"small":  {base: BaseGrams, factor: 40, approx: true},
	"pinch":  {base: BaseGrams, factor: 0.36, approx: true},
	"dash":   {base: BaseGrams, factor: 0.6, approx: true},
}

// unitAliases maps common spellings to canonical unit names.
var unitAliases = map[string]string{
	"gram":        "g",
	"grams":       "g",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"milligram":   "mg",
	"milligrams":  "mg",
	"ounce":       "oz",
	"ounces":      "oz",
	"lbs":         "lb",
	"pound":       "lb",
	"pounds":      "lb",
	"millilitre":  "ml",
	"millilitres": "ml",
	"milliliter":  "ml",
	"milliliters": "ml",
	"litre":       "l",
	"litres":      "l",
	"liter":       "l",
	"liters":      "l",
	"cups":        "cup",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"floz":        "fl-oz",
	"fl oz":       "fl-oz",
	"slices":      "slice",
}

// NormalizeUnit resolves a raw unit string (any case, surrounding
// whitespace, common alias spellings) to its canonical name.
func NormalizeUnit(raw string) (string, bool) {
	u := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := unitAliases[u]; ok {
		u = alias
	}
	_, ok := unitTable[u]
	return u, ok
}

// ToBase converts an amount in the given unit to its base quantity
// (grams or millilitres). ok is false for unrecognized units so callers
// can surface "no pricing data" instead of failing.
func ToBase(amount float64, unit string) (BaseQuantity, bool) {
	u, ok := NormalizeUnit(unit)
	if !ok {
		return BaseQuantity{}, false
	}
	def := unitTable[u]
	return BaseQuantity{Amount: amount * def.factor, Unit: def.base}, true
}

// IsApproximateUnit reports whether a unit converts via a default-weight
// heuristic rather than a fixed physical factor.
func IsApproximateUnit(unit string) bool {
	u, ok := NormalizeUnit(unit)
	if !ok {
		return false
	}
	return unitTable[u].approx
}

// UnitFactor returns the multiplier from one canonical unit to its base unit.
// Used by tests and display helpers that need the raw factor.
func UnitFactor(unit string) (float64, bool) {
	u, ok := NormalizeUnit(unit)
	if !ok {
		return 0, false
	}
	return unitTable[u].factor, true
}
