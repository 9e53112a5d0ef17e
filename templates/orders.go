package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// OrderListItem is one row on the orders page.
type OrderListItem struct {
	ID           string
	OrderNumber  string
	Customer     string
	DeliveryDate string
	Status       string
	StatusClass  string
	Total        string
}

// OrderListData feeds the orders page.
type OrderListData struct {
	Header HeaderData
	Items  []OrderListItem
}

// OrderFormData feeds the order create/edit form.
type OrderFormData struct {
	Header          HeaderData
	ID              string
	Customer        string
	CustomerContact string
	CustomerAddress string
	DeliveryDate    string
	Notes           string
	IsEdit          bool
}

// RecipeOption is a dropdown entry on order item forms.
type RecipeOption struct {
	ID        string
	Name      string
	SellPrice string
}

// OrderItemView is one line on the order view.
type OrderItemView struct {
	ID         string
	RecipeName string
	Qty        string
	UnitPrice  string
	LineTotal  string
}

// OrderViewData feeds the single-order page.
type OrderViewData struct {
	Header          HeaderData
	ID              string
	OrderNumber     string
	Customer        string
	CustomerContact string
	CustomerAddress string
	DeliveryDate    string
	Status          string
	Notes           string
	Items           []OrderItemView
	Total           string
	StatusOptions   []string
	RecipeOptions   []RecipeOption
}

func OrderListPage(data OrderListData) templ.Component {
	return Layout("Orders", data.Header, OrderListContent(data))
}

func OrderListContent(data OrderListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="order-list"><div class="page-head"><h1>Orders</h1>
<a class="btn" href="/orders/new" hx-get="/orders/new" hx-target="#main" hx-push-url="true">New order</a></div>`); err != nil {
			return err
		}
		if len(data.Items) == 0 {
			if err := EmptyState("No orders yet.").Render(ctx, w); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<table class="data-table"><thead><tr><th>Order</th><th>Customer</th><th>Delivery</th><th>Status</th><th>Total</th><th></th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, o := range data.Items {
				if _, err := fmt.Fprintf(w,
					`<tr id="order-%s"><td><a href="/orders/%s" hx-get="/orders/%s" hx-target="#main" hx-push-url="true">%s</a></td><td>%s</td><td>%s</td><td><span class="status %s">%s</span></td><td>%s</td>`+
						`<td><button class="btn-small btn-danger" hx-delete="/orders/%s" hx-confirm="Delete this order?" hx-target="#order-%s" hx-swap="outerHTML">Delete</button></td></tr>`,
					esc(o.ID), esc(o.ID), esc(o.ID), esc(o.OrderNumber), esc(o.Customer), esc(o.DeliveryDate), esc(o.StatusClass), esc(o.Status), esc(o.Total), esc(o.ID), esc(o.ID)); err != nil {
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

func OrderFormPage(data OrderFormData) templ.Component {
	title := "New order"
	if data.IsEdit {
		title = "Edit order"
	}
	return Layout(title, data.Header, OrderFormContent(data))
}

func OrderFormContent(data OrderFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action, heading := "/orders", "New order"
		if data.IsEdit {
			action = "/orders/" + data.ID + "/edit"
			heading = "Edit order"
		}
		_, err := fmt.Fprintf(w, `<section class="form-card"><h1>%s</h1>
<form hx-post="%s" hx-target="#main">
<label>Customer<input type="text" name="customer" value="%s" required></label>
<label>Contact<input type="text" name="customer_contact" value="%s" placeholder="Phone or email"></label>
<label>Delivery address<textarea name="customer_address" rows="3">%s</textarea></label>
<label>Delivery date<input type="date" name="delivery_date" value="%s"></label>
<label>Notes<textarea name="notes" rows="3">%s</textarea></label>
<div class="form-actions"><button type="submit" class="btn">Save</button>
<a class="btn-secondary" href="/orders" hx-get="/orders" hx-target="#main" hx-push-url="true">Cancel</a></div>
</form></section>`, esc(heading), esc(action), esc(data.Customer), esc(data.CustomerContact), esc(data.CustomerAddress), esc(data.DeliveryDate), esc(data.Notes))
		return err
	})
}

func OrderViewPage(data OrderViewData) templ.Component {
	return Layout(data.OrderNumber, data.Header, OrderViewContent(data))
}

func OrderViewContent(data OrderViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="order-view" class="order-view"><div class="page-head">
<h1>%s</h1>
<div class="actions">
<a class="btn-secondary" href="/orders/%s/export/pdf">Order sheet PDF</a>
<a class="btn" href="/orders/%s/edit" hx-get="/orders/%s/edit" hx-target="#main" hx-push-url="true">Edit</a>
</div></div>
<div class="detail-grid">
<div><h3>Customer</h3><p>%s</p>`,
			esc(data.OrderNumber), esc(data.ID), esc(data.ID), esc(data.ID), esc(data.Customer)); err != nil {
			return err
		}
		if data.CustomerContact != "" {
			if _, err := fmt.Fprintf(w, `<p>%s</p>`, esc(data.CustomerContact)); err != nil {
				return err
			}
		}
		if data.CustomerAddress != "" {
			if _, err := fmt.Fprintf(w, `<p class="address">%s</p>`, esc(data.CustomerAddress)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</div>
<div><h3>Delivery</h3><p>%s</p></div>
<div><h3>Status</h3>
<select hx-post="/orders/%s/status" hx-target="#order-view" hx-swap="outerHTML" name="status">`,
			esc(data.DeliveryDate), esc(data.ID)); err != nil {
			return err
		}
		for _, s := range data.StatusOptions {
			if err := writeOption(w, s, data.Status); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select></div></div>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<table class="data-table" id="order-items"><thead><tr><th>Recipe</th><th>Qty</th><th>Unit price</th><th>Line total</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, item := range data.Items {
			if err := OrderItemRow(data.ID, item).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `</tbody><tfoot><tr><td colspan="3">Total</td><td>%s</td><td></td></tr></tfoot></table>`, esc(data.Total)); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<form class="inline-form" hx-post="/orders/%s/items" hx-target="#order-view" hx-swap="outerHTML">
<select name="recipe" required><option value="">Add item…</option>`, esc(data.ID)); err != nil {
			return err
		}
		for _, opt := range data.RecipeOptions {
			if _, err := fmt.Fprintf(w, `<option value="%s" data-price="%s">%s</option>`, esc(opt.ID), esc(opt.SellPrice), esc(opt.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select>
<input type="number" name="qty" step="any" min="0" placeholder="Qty" required>
<input type="number" name="unit_price" step="0.01" min="0" placeholder="Unit price £">
<button type="submit" class="btn-small">Add</button></form>`); err != nil {
			return err
		}

		if data.Notes != "" {
			if _, err := fmt.Fprintf(w, `<h2>Notes</h2><p class="method">%s</p>`, esc(data.Notes)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// OrderItemRow renders a single order line.
func OrderItemRow(orderID string, item OrderItemView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<tr id="item-%s"><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`+
				`<td><button class="btn-small btn-danger" hx-delete="/orders/%s/items/%s" hx-target="#order-view" hx-swap="outerHTML">Remove</button></td></tr>`,
			esc(item.ID), esc(item.RecipeName), esc(item.Qty), esc(item.UnitPrice), esc(item.LineTotal), esc(orderID), esc(item.ID))
		return err
	})
}
