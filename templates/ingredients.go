package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// IngredientListItem is one row on the ingredients page.
type IngredientListItem struct {
	ID          string
	Name        string
	Category    string
	PackLabel   string // e.g. "£1.10 / 1500 g"
	PricePer100 string // e.g. "£0.07 per 100 g"
	Supplier    string
	HasDensity  bool
	HasTiers    bool
}

// IngredientListData feeds the ingredients page.
type IngredientListData struct {
	Header HeaderData
	Items  []IngredientListItem
	Count  int
}

// IngredientFormData feeds the ingredient create/edit form.
type IngredientFormData struct {
	Header          HeaderData
	ID              string
	Name            string
	Category        string
	PackPrice       string
	PackQuantity    string
	PackUnit        string
	Density         string
	Allergens       string
	Supplier        string
	BatchPricing    string // raw JSON, editable as text
	IsEdit          bool
	CategoryOptions []string
	PackUnitOptions []string
}

func IngredientListPage(data IngredientListData) templ.Component {
	return Layout("Ingredients", data.Header, IngredientListContent(data))
}

func IngredientListContent(data IngredientListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="ingredient-list"><div class="page-head"><h1>Ingredients <span class="count">(%d)</span></h1>
<div class="actions">
<a class="btn-secondary" href="/ingredients/import">Import</a>
<a class="btn-secondary" href="/ingredients/export">Export</a>
<a class="btn" href="/ingredients/new" hx-get="/ingredients/new" hx-target="#main" hx-push-url="true">New ingredient</a>
</div></div>`, data.Count); err != nil {
			return err
		}
		if len(data.Items) == 0 {
			if err := EmptyState("No ingredients yet. Add one or import a price list.").Render(ctx, w); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<table class="data-table"><thead><tr><th>Name</th><th>Category</th><th>Pack</th><th>Unit price</th><th>Supplier</th><th></th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, it := range data.Items {
				badges := ""
				if it.HasDensity {
					badges += ` <span class="badge">density</span>`
				}
				if it.HasTiers {
					badges += ` <span class="badge">bulk tiers</span>`
				}
				if _, err := fmt.Fprintf(w,
					`<tr id="ingredient-%s"><td><a href="/ingredients/%s/edit" hx-get="/ingredients/%s/edit" hx-target="#main" hx-push-url="true">%s</a>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`+
						`<td><button class="btn-small btn-danger" hx-delete="/ingredients/%s" hx-confirm="Delete this ingredient?" hx-target="#ingredient-%s" hx-swap="outerHTML">Delete</button></td></tr>`,
					esc(it.ID), esc(it.ID), esc(it.ID), esc(it.Name), badges, esc(it.Category), esc(it.PackLabel), esc(it.PricePer100), esc(it.Supplier), esc(it.ID), esc(it.ID)); err != nil {
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

func IngredientFormPage(data IngredientFormData) templ.Component {
	title := "New ingredient"
	if data.IsEdit {
		title = "Edit ingredient"
	}
	return Layout(title, data.Header, IngredientFormContent(data))
}

func IngredientFormContent(data IngredientFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action, heading := "/ingredients", "New ingredient"
		if data.IsEdit {
			action = "/ingredients/" + data.ID
			heading = "Edit ingredient"
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
		if _, err := fmt.Fprintf(w, `</select></label>
<fieldset><legend>Pack pricing</legend>
<label>Pack price (£)<input type="number" name="pack_price" step="0.01" min="0" value="%s" required></label>
<label>Pack quantity<input type="number" name="pack_quantity" step="any" min="0" value="%s" required></label>
<label>Pack unit<select name="pack_unit">`, esc(data.PackPrice), esc(data.PackQuantity)); err != nil {
			return err
		}
		for _, opt := range data.PackUnitOptions {
			if err := writeOption(w, opt, data.PackUnit); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</select></label>
<label>Batch tiers (JSON)<textarea name="batch_pricing" rows="2" placeholder='[{"pack_quantity":25000,"pack_price":17.80}]'>%s</textarea></label>
</fieldset>
<label>Density (g/ml)<input type="number" name="density" step="any" min="0" value="%s"></label>
<p class="hint">Only needed when recipes use this ingredient across mass and volume units.</p>
<label>Allergens<input type="text" name="allergens" value="%s"></label>
<label>Supplier<input type="text" name="supplier" value="%s"></label>
<div class="form-actions"><button type="submit" class="btn">Save</button>
<a class="btn-secondary" href="/ingredients" hx-get="/ingredients" hx-target="#main" hx-push-url="true">Cancel</a></div>
</form></section>`, esc(data.BatchPricing), esc(data.Density), esc(data.Allergens), esc(data.Supplier)); err != nil {
			return err
		}
		return nil
	})
}

// writeOption writes a <option> tag, marking it selected when it matches.
func writeOption(w io.Writer, value, selected string) error {
	sel := ""
	if value == selected {
		sel = " selected"
	}
	_, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(value), sel, esc(value))
	return err
}
