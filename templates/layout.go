// Package templates holds the templ view components for every page and
// HTMX fragment. Components are built directly against the templ runtime
// (templ.ComponentFunc) with templ.EscapeString guarding all interpolated
// record data.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ActiveCompany identifies the bakery currently selected in the header.
type ActiveCompany struct {
	ID   string
	Name string
}

// CompanySelectorItem is one entry in the header company dropdown.
type CompanySelectorItem struct {
	ID        string
	Name      string
	Reference string
	IsActive  bool
}

// HeaderData feeds the top bar on every page.
type HeaderData struct {
	ActiveCompany *ActiveCompany
	Companies    []CompanySelectorItem
}

type navLink struct {
	href  string
	label string
}

var navLinks = []navLink{
	{"/", "Dashboard"},
	{"/ingredients", "Ingredients"},
	{"/recipes", "Recipes"},
	{"/orders", "Orders"},
	{"/production", "Production"},
	{"/shifts", "Shifts"},
	{"/companies", "Companies"},
}

// esc is a shorthand for templ's HTML escaper.
func esc(s string) string {
	return templ.EscapeString(s)
}

// Layout wraps page content in the full HTML document: head with HTMX,
// header with the company selector, nav and the toast container.
func Layout(title string, header HeaderData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s · BakeryOps</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
`, esc(title)); err != nil {
			return err
		}
		if err := Header(header).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main id="main" class="container">`); err != nil {
			return err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</main>
<div id="toast-container"></div>
<script>
document.body.addEventListener("showToast", function (evt) {
  const d = evt.detail;
  const el = document.createElement("div");
  el.className = "toast toast-" + d.type;
  el.textContent = d.message;
  document.getElementById("toast-container").appendChild(el);
  setTimeout(() => el.remove(), 4000);
});
(function () {
  const m = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!m) return;
  document.cookie = "flash_toast=; Path=/; Max-Age=0";
  try {
    const d = JSON.parse(decodeURIComponent(m[1]));
    document.body.dispatchEvent(new CustomEvent("showToast", { detail: d }));
  } catch (_) {}
})();
</script>
</body>
</html>`); err != nil {
			return err
		}
		return nil
	})
}

// Header renders the top bar: brand, nav links and the company selector.
func Header(data HeaderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<header class="topbar"><a class="brand" href="/">BakeryOps</a><nav>`); err != nil {
			return err
		}
		for _, l := range navLinks {
			if _, err := fmt.Fprintf(w, `<a href="%s" hx-get="%s" hx-target="#main" hx-push-url="true">%s</a>`, l.href, l.href, esc(l.label)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</nav><div class="company-selector">`); err != nil {
			return err
		}
		if data.ActiveCompany != nil {
			if _, err := fmt.Fprintf(w, `<span class="active-company">%s</span>`, esc(data.ActiveCompany.Name)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<span class="active-company muted">No company selected</span>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<ul class="company-dropdown">`); err != nil {
			return err
		}
		for _, c := range data.Companies {
			active := ""
			if c.IsActive {
				active = ` class="active"`
			}
			if _, err := fmt.Fprintf(w, `<li%s><button hx-post="/companies/%s/activate" hx-target="body">%s</button></li>`,
				active, esc(c.ID), esc(c.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul></div></header>`); err != nil {
			return err
		}
		return nil
	})
}

// EmptyState renders a consistent placeholder when a list has no rows.
func EmptyState(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="empty-state">%s</div>`, esc(message))
		return err
	})
}
