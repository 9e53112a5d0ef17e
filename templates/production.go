package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// PlanListItem is one row on the production plans page.
type PlanListItem struct {
	ID        string
	PlanDate  string
	Recipes   int
	TotalCost string
}

// PlanListData feeds the production plans page.
type PlanListData struct {
	Header HeaderData
	Items  []PlanListItem
}

// PlanFormData feeds the plan create form.
type PlanFormData struct {
	Header        HeaderData
	PlanDate      string
	Notes         string
	RecipeOptions []RecipeOption
}

// PlanItemView is one recipe scheduled on a plan.
type PlanItemView struct {
	ID              string
	RecipeName      string
	PlannedServings string
	Batches         string
	Cost            string
	HasCost         bool
}

// RequirementView is one aggregated ingredient requirement.
type RequirementView struct {
	IngredientName string
	Quantity       string
	Unit           string
	Cost           string
	HasCost        bool
	Approximate    bool
	Unconvertible  bool
}

// PlanViewData feeds the single-plan page.
type PlanViewData struct {
	Header        HeaderData
	ID            string
	PlanDate      string
	Notes         string
	Items         []PlanItemView
	Requirements  []RequirementView
	TotalCost     string
	RecipeOptions []RecipeOption
}

func PlanListPage(data PlanListData) templ.Component {
	return Layout("Production", data.Header, PlanListContent(data))
}

func PlanListContent(data PlanListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="plan-list"><div class="page-head"><h1>Production plans</h1>
<a class="btn" href="/production/new" hx-get="/production/new" hx-target="#main" hx-push-url="true">New plan</a></div>`); err != nil {
			return err
		}
		if len(data.Items) == 0 {
			if err := EmptyState("No production plans yet.").Render(ctx, w); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<table class="data-table"><thead><tr><th>Date</th><th>Recipes</th><th>Ingredient cost</th><th></th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, p := range data.Items {
				if _, err := fmt.Fprintf(w,
					`<tr id="plan-%s"><td><a href="/production/%s" hx-get="/production/%s" hx-target="#main" hx-push-url="true">%s</a></td><td>%d</td><td>%s</td>`+
						`<td><button class="btn-small btn-danger" hx-delete="/production/%s" hx-confirm="Delete this plan?" hx-target="#plan-%s" hx-swap="outerHTML">Delete</button></td></tr>`,
					esc(p.ID), esc(p.ID), esc(p.ID), esc(p.PlanDate), p.Recipes, esc(p.TotalCost), esc(p.ID), esc(p.ID)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func PlanFormPage(data PlanFormData) templ.Component {
	return Layout("New production plan", data.Header, PlanFormContent(data))
}

func PlanFormContent(data PlanFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section class="form-card"><h1>New production plan</h1>
<form hx-post="/production" hx-target="#main">
<label>Plan date<input type="date" name="plan_date" value="%s" required></label>
<label>Notes<textarea name="notes" rows="3">%s</textarea></label>
<div class="form-actions"><button type="submit" class="btn">Create</button>
<a class="btn-secondary" href="/production" hx-get="/production" hx-target="#main" hx-push-url="true">Cancel</a></div>
</form></section>`, esc(data.PlanDate), esc(data.Notes))
		return err
	})
}

func PlanViewPage(data PlanViewData) templ.Component {
	return Layout("Plan "+data.PlanDate, data.Header, PlanViewContent(data))
}

func PlanViewContent(data PlanViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="plan-view"><div class="page-head"><h1>Production — %s</h1></div>`, esc(data.PlanDate)); err != nil {
			return err
		}
		if data.Notes != "" {
			if _, err := fmt.Fprintf(w, `<p class="subtitle">%s</p>`, esc(data.Notes)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<h2>Scheduled recipes</h2>
<table class="data-table"><thead><tr><th>Recipe</th><th>Servings</th><th>Batches</th><th>Cost</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, item := range data.Items {
			cost := esc(item.Cost)
			if !item.HasCost {
				cost = `<span class="unpriced">no pricing data</span>`
			}
			if _, err := fmt.Fprintf(w,
				`<tr id="plan-item-%s"><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`+
					`<td><button class="btn-small btn-danger" hx-delete="/production/%s/items/%s" hx-target="#plan-view" hx-swap="outerHTML">Remove</button></td></tr>`,
				esc(item.ID), esc(item.RecipeName), esc(item.PlannedServings), esc(item.Batches), cost, esc(data.ID), esc(item.ID)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<form class="inline-form" hx-post="/production/%s/items" hx-target="#plan-view" hx-swap="outerHTML">
<select name="recipe" required><option value="">Add recipe…</option>`, esc(data.ID)); err != nil {
			return err
		}
		for _, opt := range data.RecipeOptions {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(opt.ID), esc(opt.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select>
<input type="number" name="planned_servings" step="any" min="0" placeholder="Servings" required>
<button type="submit" class="btn-small">Add</button></form>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<h2>Shopping list</h2>`); err != nil {
			return err
		}
		if len(data.Requirements) == 0 {
			if err := EmptyState("Add recipes to see aggregated ingredient requirements.").Render(ctx, w); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<table class="data-table"><thead><tr><th>Ingredient</th><th>Quantity</th><th>Est. cost</th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, r := range data.Requirements {
				name := esc(r.IngredientName)
				if r.Approximate {
					name += ` <span class="badge">approx.</span>`
				}
				qty := esc(r.Quantity) + " " + esc(r.Unit)
				if r.Unconvertible {
					qty = esc(r.Quantity) + " " + esc(r.Unit) + ` <span class="badge badge-warn">mixed units</span>`
				}
				cost := esc(r.Cost)
				if !r.HasCost {
					cost = `<span class="unpriced">—</span>`
				}
				if _, err := fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td></tr>`, name, qty, cost); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, `</tbody><tfoot><tr><td colspan="2">Total ingredient cost</td><td>%s</td></tr></tfoot></table>`, esc(data.TotalCost)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}
