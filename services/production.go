package services

import "sort"

// PlanRecipe is one recipe scheduled on a production plan, carrying the
// recipe's costed lines at base-serving scale.
type PlanRecipe struct {
	RecipeName      string
	BaseServings    float64
	PlannedServings float64
	Lines           []RecipeLine
}

// Requirement is the aggregated amount of one ingredient needed across a
// whole production plan, expressed in its base unit.
type Requirement struct {
	IngredientName string
	Amount         float64
	Unit           BaseUnit
	Approximate    bool // any contributing line used a heuristic unit
	Unconvertible  bool // some usage had an unrecognized unit
}

// PlanSummary is the output of aggregating a production plan: the
// per-recipe costs, the combined shopping list, and the plan total.
type PlanSummary struct {
	Recipes      []PlanRecipeCost
	Requirements []Requirement
	TotalCost    float64
	UnknownLines int
}

// PlanRecipeCost is one recipe's scaled cost within a plan.
type PlanRecipeCost struct {
	RecipeName      string
	PlannedServings float64
	Summary         RecipeCostSummary
}

// AggregatePlan scales every recipe to its planned servings, costs it,
// and merges ingredient usages into a base-unit shopping list. The same
// ingredient used by mass and by volume produces two requirement rows
// rather than a density-dependent merge.
func AggregatePlan(recipes []PlanRecipe) PlanSummary {
	var summary PlanSummary

	type reqKey struct {
		name string
		unit BaseUnit
	}
	merged := map[reqKey]*Requirement{}
	var order []reqKey

	for _, pr := range recipes {
		costed := CostRecipe(pr.Lines, pr.BaseServings, pr.PlannedServings)
		summary.TotalCost += costed.TotalCost
		summary.UnknownLines += costed.UnknownLines
		summary.Recipes = append(summary.Recipes, PlanRecipeCost{
			RecipeName:      pr.RecipeName,
			PlannedServings: pr.PlannedServings,
			Summary:         costed,
		})

		for _, line := range costed.Lines {
			base, ok := ToBase(line.Quantity, line.Unit)
			if !ok {
				key := reqKey{name: line.IngredientName, unit: ""}
				if merged[key] == nil {
					merged[key] = &Requirement{IngredientName: line.IngredientName, Unconvertible: true}
					order = append(order, key)
				}
				continue
			}
			key := reqKey{name: line.IngredientName, unit: base.Unit}
			req := merged[key]
			if req == nil {
				req = &Requirement{IngredientName: line.IngredientName, Unit: base.Unit}
				merged[key] = req
				order = append(order, key)
			}
			req.Amount += base.Amount
			if line.Approximate {
				req.Approximate = true
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].name != order[j].name {
			return order[i].name < order[j].name
		}
		return order[i].unit < order[j].unit
	})
	for _, key := range order {
		summary.Requirements = append(summary.Requirements, *merged[key])
	}
	return summary
}
