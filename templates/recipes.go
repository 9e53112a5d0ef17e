package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// RecipeListItem is one row on the recipes page.
type RecipeListItem struct {
	ID             string
	Name           string
	Category       string
	TotalCost      string
	CostPerServing string
	SellPrice      string
	FoodCost       string
	HealthBand     string
	BandClass      string // css class: band-excellent, band-good, band-fair, band-too-high
	UnknownLines   int
}

// RecipeListData feeds the recipes page.
type RecipeListData struct {
	Header HeaderData
	Items  []RecipeListItem
}

// RecipeFormData feeds the recipe create/edit form.
type RecipeFormData struct {
	Header          HeaderData
	ID              string
	Name            string
	Category        string
	RecipeType      string
	BaseServings    string
	SellPrice       string
	Method          string
	IsEdit          bool
	CategoryOptions []string
}

// IngredientOption is a dropdown entry on recipe line forms.
type IngredientOption struct {
	ID   string
	Name string
}

// RecipeLineView is one costed ingredient line on the recipe view.
type RecipeLineView struct {
	ID             string
	IngredientName string
	Quantity       string
	Unit           string
	Cost           string
	IsUnknown      bool
	Reason         string
	Approximate    bool
}

// RecipeCostView is the cost summary block, refreshed as a fragment when
// lines or the sell price change.
type RecipeCostView struct {
	RecipeID       string
	TotalCost      string
	UnknownLines   int
	CostPerServing string
	SellPrice      string
	FoodCostLabel  string
	MarkupLabel    string
	HealthBand     string
	BandClass      string
	HasSellPrice   bool
}

// RecipeViewData feeds the single-recipe costing page.
type RecipeViewData struct {
	Header            HeaderData
	ID                string
	Name              string
	Category          string
	Servings          string
	ServingLabel      string
	Method            string
	Lines             []RecipeLineView
	Cost              RecipeCostView
	IngredientOptions []IngredientOption
	UnitOptions       []string
}

func RecipeListPage(data RecipeListData) templ.Component {
	return Layout("Recipes", data.Header, RecipeListContent(data))
}

func RecipeListContent(data RecipeListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="recipe-list"><div class="page-head"><h1>Recipes</h1>
<a class="btn" href="/recipes/new" hx-get="/recipes/new" hx-target="#main" hx-push-url="true">New recipe</a></div>`); err != nil {
			return err
		}
		if len(data.Items) == 0 {
			if err := EmptyState("No recipes yet.").Render(ctx, w); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<table class="data-table"><thead><tr><th>Name</th><th>Category</th><th>Cost</th><th>Per serving</th><th>Sell</th><th>Food cost</th><th>Margin</th><th></th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, r := range data.Items {
				warn := ""
				if r.UnknownLines > 0 {
					warn = fmt.Sprintf(` <span class="badge badge-warn">%d unpriced</span>`, r.UnknownLines)
				}
				if _, err := fmt.Fprintf(w,
					`<tr id="recipe-%s"><td><a href="/recipes/%s" hx-get="/recipes/%s" hx-target="#main" hx-push-url="true">%s</a>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td><span class="band %s">%s</span></td>`+
						`<td><button class="btn-small btn-danger" hx-delete="/recipes/%s" hx-confirm="Delete this recipe?" hx-target="#recipe-%s" hx-swap="outerHTML">Delete</button></td></tr>`,
					esc(r.ID), esc(r.ID), esc(r.ID), esc(r.Name), warn, esc(r.Category), esc(r.TotalCost), esc(r.CostPerServing), esc(r.SellPrice), esc(r.FoodCost), esc(r.BandClass), esc(r.HealthBand), esc(r.ID), esc(r.ID)); err != nil {
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

func RecipeFormPage(data RecipeFormData) templ.Component {
	title := "New recipe"
	if data.IsEdit {
		title = "Edit recipe"
	}
	return Layout(title, data.Header, RecipeFormContent(data))
}

func RecipeFormContent(data RecipeFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action, heading := "/recipes", "New recipe"
		if data.IsEdit {
			action = "/recipes/" + data.ID + "/edit"
			heading = "Edit recipe"
		}
		if _, err := fmt.Fprintf(w, `<section class="form-card"><h1>%s</h1>
<form hx-post="%s" hx-target="#main">
<label>Name<input type="text" name="name" value="%s" required></label>
<label>Category<select name="category"><option value=""></option>`, esc(heading), esc(action), esc(data.Name)); err != nil {
			return err
		}
		for _, opt := range data.CategoryOptions {
			if err := writeOption(w, opt, data.Category); err != nil {
				return err
			}
		}
		typeSingle, typeBatch := "", ""
		if data.RecipeType == "batch" {
			typeBatch = " checked"
		} else {
			typeSingle = " checked"
		}
		_, err := fmt.Fprintf(w, `</select></label>
<fieldset><legend>Yield</legend>
<label class="radio"><input type="radio" name="recipe_type" value="single"%s> Single item (servings)</label>
<label class="radio"><input type="radio" name="recipe_type" value="batch"%s> Batch (units per bake)</label>
<label>Base servings / yield<input type="number" name="base_servings" step="any" min="0" value="%s" required></label>
</fieldset>
<label>Sell price (£)<input type="number" name="sell_price" step="0.01" min="0" value="%s"></label>
<label>Method<textarea name="method" rows="6">%s</textarea></label>
<div class="form-actions"><button type="submit" class="btn">Save</button>
<a class="btn-secondary" href="/recipes" hx-get="/recipes" hx-target="#main" hx-push-url="true">Cancel</a></div>
</form></section>`, typeSingle, typeBatch, esc(data.BaseServings), esc(data.SellPrice), esc(data.Method))
		return err
	})
}

func RecipeViewPage(data RecipeViewData) templ.Component {
	return Layout(data.Name, data.Header, RecipeViewContent(data))
}

func RecipeViewContent(data RecipeViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="recipe-view" class="recipe-view"><div class="page-head">
<h1>%s</h1>
<div class="actions">
<a class="btn-secondary" href="/recipes/%s/export/excel">Excel</a>
<a class="btn-secondary" href="/recipes/%s/export/pdf">PDF</a>
<a class="btn" href="/recipes/%s/edit" hx-get="/recipes/%s/edit" hx-target="#main" hx-push-url="true">Edit</a>
</div></div>
<p class="subtitle">%s · %s %s</p>`,
			esc(data.Name), esc(data.ID), esc(data.ID), esc(data.ID), esc(data.ID),
			esc(data.Category), esc(data.Servings), esc(data.ServingLabel)); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<table class="data-table" id="recipe-lines"><thead><tr><th>Ingredient</th><th>Qty</th><th>Unit</th><th>Cost</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, line := range data.Lines {
			if err := RecipeLineRow(data.ID, line).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
			return err
		}

		// Add-line form
		if _, err := fmt.Fprintf(w, `<form class="inline-form" hx-post="/recipes/%s/lines" hx-target="#recipe-view" hx-swap="outerHTML">
<select name="ingredient" required><option value="">Add ingredient…</option>`, esc(data.ID)); err != nil {
			return err
		}
		for _, opt := range data.IngredientOptions {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(opt.ID), esc(opt.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select>
<input type="number" name="quantity" step="any" min="0" placeholder="Qty" required>
<select name="unit">`); err != nil {
			return err
		}
		for _, u := range data.UnitOptions {
			if err := writeOption(w, u, "g"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select><button type="submit" class="btn-small">Add</button></form>`); err != nil {
			return err
		}

		if err := RecipeCostSummary(data.Cost).Render(ctx, w); err != nil {
			return err
		}

		if data.Method != "" {
			if _, err := fmt.Fprintf(w, `<h2>Method</h2><p class="method">%s</p>`, esc(data.Method)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// RecipeLineRow renders one ingredient line; swapped individually on delete.
func RecipeLineRow(recipeID string, line RecipeLineView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		costCell := esc(line.Cost)
		if line.IsUnknown {
			costCell = fmt.Sprintf(`<span class="unpriced" title="%s">no pricing data</span>`, esc(line.Reason))
		}
		name := esc(line.IngredientName)
		if line.Approximate {
			name += ` <span class="badge">approx.</span>`
		}
		_, err := fmt.Fprintf(w,
			`<tr id="line-%s"><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`+
				`<td><button class="btn-small btn-danger" hx-delete="/recipes/%s/lines/%s" hx-target="#recipe-view" hx-swap="outerHTML">Remove</button></td></tr>`,
			esc(line.ID), name, esc(line.Quantity), esc(line.Unit), costCell, esc(recipeID), esc(line.ID))
		return err
	})
}

// RecipeCostSummary renders the totals and margin block.
func RecipeCostSummary(c RecipeCostView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="cost-summary" class="cost-summary">
<dl>
<dt>Total cost</dt><dd>%s</dd>`, esc(c.TotalCost)); err != nil {
			return err
		}
		if c.UnknownLines > 0 {
			if _, err := fmt.Fprintf(w, `<dt>Unpriced lines</dt><dd class="bad">%d</dd>`, c.UnknownLines); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<dt>Cost per serving</dt><dd>%s</dd>
</dl>
<form class="inline-form" hx-post="/recipes/%s/sell-price" hx-target="#cost-summary" hx-swap="outerHTML">
<label>Sell price (£)<input type="number" name="sell_price" step="0.01" min="0" value="%s"></label>
<button type="submit" class="btn-small">Save</button>
</form>`, esc(c.CostPerServing), esc(c.RecipeID), esc(c.SellPrice)); err != nil {
			return err
		}
		if c.HasSellPrice {
			if _, err := fmt.Fprintf(w, `<dl>
<dt>Food cost</dt><dd>%s</dd>
<dt>Markup</dt><dd>%s</dd>
<dt>Margin health</dt><dd><span class="band %s">%s</span></dd>
</dl>`, esc(c.FoodCostLabel), esc(c.MarkupLabel), esc(c.BandClass), esc(c.HealthBand)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
