package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ShiftListItem is one row on the staff rota page.
type ShiftListItem struct {
	ID        string
	StaffName string
	Role      string
	ShiftDate string
	Start     string
	End       string
}

// ShiftListData feeds the rota page.
type ShiftListData struct {
	Header      HeaderData
	Items       []ShiftListItem
	RoleOptions []string
}

func ShiftListPage(data ShiftListData) templ.Component {
	return Layout("Rota", data.Header, ShiftListContent(data))
}

func ShiftListContent(data ShiftListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="shift-list"><div class="page-head"><h1>Staff rota</h1></div>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<form class="inline-form" hx-post="/shifts" hx-target="#shift-list" hx-swap="outerHTML">
<input type="text" name="staff_name" placeholder="Staff name" required>
<select name="role">`); err != nil {
			return err
		}
		for _, role := range data.RoleOptions {
			if err := writeOption(w, role, "Baker"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select>
<input type="date" name="shift_date" required>
<input type="time" name="start" value="06:00">
<input type="time" name="end" value="14:00">
<button type="submit" class="btn-small">Add shift</button></form>`); err != nil {
			return err
		}

		if len(data.Items) == 0 {
			if err := EmptyState("No shifts scheduled.").Render(ctx, w); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<table class="data-table"><thead><tr><th>Date</th><th>Staff</th><th>Role</th><th>Start</th><th>End</th><th></th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, s := range data.Items {
				if _, err := fmt.Fprintf(w,
					`<tr id="shift-%s"><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`+
						`<td><button class="btn-small btn-danger" hx-delete="/shifts/%s" hx-target="#shift-%s" hx-swap="outerHTML">Remove</button></td></tr>`,
					esc(s.ID), esc(s.ShiftDate), esc(s.StaffName), esc(s.Role), esc(s.Start), esc(s.End), esc(s.ID), esc(s.ID)); err != nil {
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
