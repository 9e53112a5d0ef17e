package services

// RecipeLine is one ingredient usage within a recipe, paired with the
// purchasing data needed to cost it. Density is the ingredient's explicit
// g/ml override (0 = unset; the built-in table is consulted by name).
type RecipeLine struct {
	IngredientName string
	Quantity       float64
	Unit           string
	HasPricing     bool // false when the ingredient record carries no pack data
	Pack           PackPricing
	Density        float64
}

// LineCost pairs a recipe line with its costing outcome.
type LineCost struct {
	IngredientName string
	Quantity       float64 // after serving scaling
	Unit           string
	Result         CostResult
	Approximate    bool // unit converted via a default-weight heuristic
}

// RecipeCostSummary aggregates the per-line costs of a recipe at a given
// serving scale. TotalCost sums computed lines only; UnknownLines counts
// the lines whose cost could not be determined.
type RecipeCostSummary struct {
	Lines        []LineCost
	TotalCost    float64
	UnknownLines int
	ScaleFactor  float64
}

// CostRecipe costs every line of a recipe scaled from baseServings to
// targetServings. Scaling is linear: each line's quantity is multiplied
// by targetServings/baseServings before costing. A non-positive
// baseServings falls back to a scale of 1 so a half-filled recipe still
// shows per-line costs.
func CostRecipe(lines []RecipeLine, baseServings, targetServings float64) RecipeCostSummary {
	scale := 1.0
	if baseServings > 0 && targetServings > 0 {
		scale = targetServings / baseServings
	}

	summary := RecipeCostSummary{ScaleFactor: scale}
	for _, line := range lines {
		qty := line.Quantity * scale

		var result CostResult
		if !line.HasPricing {
			result = unknown(ReasonNoPackPrice)
			if line.Quantity <= 0 {
				result = computed(0)
			}
		} else {
			density, _ := ResolveDensity(line.IngredientName, line.Density)
			result = IngredientCost(qty, line.Unit, line.Pack, density)
		}

		if result.Computed() {
			summary.TotalCost += result.Amount
		} else {
			summary.UnknownLines++
		}

		summary.Lines = append(summary.Lines, LineCost{
			IngredientName: line.IngredientName,
			Quantity:       qty,
			Unit:           line.Unit,
			Result:         result,
			Approximate:    IsApproximateUnit(line.Unit),
		})
	}
	return summary
}

// CostPerServing divides a total cost across the effective unit count
// (batch yield for batch recipes, servings otherwise). ok is false when
// units is not positive.
func CostPerServing(totalCost, units float64) (float64, bool) {
	if units <= 0 {
		return 0, false
	}
	return totalCost / units, true
}

// FoodCostPercent returns the food-cost percentage for one serving sold
// at sellPrice. ok is false when sellPrice is not positive; callers
// render "N/A" rather than an infinite percentage.
func FoodCostPercent(costPerServing, sellPrice float64) (float64, bool) {
	if sellPrice <= 0 {
		return 0, false
	}
	return (costPerServing / sellPrice) * 100, true
}

// MarkupPercent returns the markup of sellPrice over cost. ok is false
// when cost is not positive.
func MarkupPercent(sellPrice, cost float64) (float64, bool) {
	if cost <= 0 {
		return 0, false
	}
	return (sellPrice - cost) / cost * 100, true
}

// Health band thresholds are business policy, fixed and inclusive.
const (
	BandExcellent = "Excellent"
	BandGood      = "Good"
	BandFair      = "Fair"
	BandTooHigh   = "Too High"
)

// HealthBand classifies a food-cost percentage.
func HealthBand(foodCostPercent float64) string {
	switch {
	case foodCostPercent <= 25:
		return BandExcellent
	case foodCostPercent <= 33:
		return BandGood
	case foodCostPercent <= 40:
		return BandFair
	default:
		return BandTooHigh
	}
}
