package services

import "strings"

// densityTable holds grams-per-millilitre values for common ingredients,
// keyed by normalized name. Read-only after init.
var densityTable = map[string]float64{
	"flour":           0.53,
	"sugar":           0.85,
	"caster sugar":    0.85,
	"icing sugar":     0.56,
	"brown sugar":     0.72,
	"water":           1.0,
	"milk":            1.03,
	"cream":           1.01,
	"butter":          0.911,
	"oil":             0.92,
	"olive oil":       0.915,
	"vegetable oil":   0.92,
	"honey":           1.42,
	"golden syrup":    1.43,
	"cocoa powder":    0.52,
	"cornflour":       0.64,
	"salt":            1.2,
	"yeast":           0.75,
	"baking powder":   0.9,
	"bicarbonate":     1.1,
	"vanilla extract": 0.88,
	"egg":             1.03,
	"yoghurt":         1.04,
}

// normalizeIngredientName lowercases, trims and collapses internal
// whitespace so "  Plain   Flour " and "plain flour" compare equal.
func normalizeIngredientName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// ResolveDensity returns the g/ml density to use for an ingredient.
// A positive user-supplied override always wins. Otherwise the built-in
// table is consulted: first an exact match on the normalized name, then a
// substring match against table keys ("plain flour" matches "flour") —
// but only when exactly one key matches. Zero or multiple candidate keys
// means no density: an ambiguous guess would silently misprice the
// ingredient, so cross-unit conversion is reported as impossible instead.
func ResolveDensity(name string, override float64) (float64, bool) {
	if override > 0 {
		return override, true
	}

	norm := normalizeIngredientName(name)
	if norm == "" {
		return 0, false
	}

	if d, ok := densityTable[norm]; ok {
		return d, true
	}

	var match string
	for key := range densityTable {
		if strings.Contains(norm, key) {
			if match != "" && match != key {
				// More than one table entry matches; refuse to pick.
				// Prefer the longer key when one contains the other
				// ("caster sugar" over "sugar") since that is a
				// refinement, not an ambiguity.
				if strings.Contains(key, match) {
					match = key
					continue
				}
				if strings.Contains(match, key) {
					continue
				}
				return 0, false
			}
			match = key
		}
	}
	if match == "" {
		return 0, false
	}
	return densityTable[match], true
}
