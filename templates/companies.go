package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// CompanyListItem is one row on the companies page.
type CompanyListItem struct {
	ID        string
	Name      string
	Reference string
	IsActive  bool
}

// CompanyListData feeds the companies page.
type CompanyListData struct {
	Header HeaderData
	Items  []CompanyListItem
}

// CompanyFormData feeds the company create/edit form.
type CompanyFormData struct {
	Header    HeaderData
	ID        string
	Name      string
	Reference string
	IsEdit    bool
}

func CompanyListPage(data CompanyListData) templ.Component {
	return Layout("Companies", data.Header, CompanyListContent(data))
}

func CompanyListContent(data CompanyListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="company-list"><div class="page-head"><h1>Companies</h1>`+
			`<a class="btn" href="/companies/new" hx-get="/companies/new" hx-target="#main" hx-push-url="true">New company</a></div>`); err != nil {
			return err
		}
		if len(data.Items) == 0 {
			if err := EmptyState("No companies yet. Create one to get started.").Render(ctx, w); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<table class="data-table"><thead><tr><th>Name</th><th>Reference</th><th></th><th></th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, c := range data.Items {
				activeLabel := `<button class="btn-small" hx-post="/companies/` + esc(c.ID) + `/activate" hx-target="body">Set active</button>`
				if c.IsActive {
					activeLabel = `<span class="badge badge-active">Active</span>`
				}
				if _, err := fmt.Fprintf(w,
					`<tr id="company-%s"><td><a href="/companies/%s/edit" hx-get="/companies/%s/edit" hx-target="#main" hx-push-url="true">%s</a></td><td>%s</td><td>%s</td>`+
						`<td><button class="btn-small btn-danger" hx-delete="/companies/%s" hx-confirm="Delete this company and all of its data?" hx-target="#company-%s" hx-swap="outerHTML">Delete</button></td></tr>`,
					esc(c.ID), esc(c.ID), esc(c.ID), esc(c.Name), esc(c.Reference), activeLabel, esc(c.ID), esc(c.ID)); err != nil {
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

func CompanyFormPage(data CompanyFormData) templ.Component {
	title := "New company"
	if data.IsEdit {
		title = "Edit company"
	}
	return Layout(title, data.Header, CompanyFormContent(data))
}

func CompanyFormContent(data CompanyFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action, heading := "/companies", "New company"
		if data.IsEdit {
			action = "/companies/" + data.ID
			heading = "Edit company"
		}
		_, err := fmt.Fprintf(w, `<section class="form-card"><h1>%s</h1>
<form hx-post="%s" hx-target="#main">
<label>Name<input type="text" name="name" value="%s" required></label>
<label>Reference slug<input type="text" name="reference" value="%s" placeholder="HORNBY"></label>
<p class="hint">The reference appears in order numbers, e.g. BKO-HORNBY-25-26-001.</p>
<div class="form-actions"><button type="submit" class="btn">Save</button>
<a class="btn-secondary" href="/companies" hx-get="/companies" hx-target="#main" hx-push-url="true">Cancel</a></div>
</form></section>`, esc(heading), esc(action), esc(data.Name), esc(data.Reference))
		return err
	})
}
