package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// DashboardData feeds the landing page.
type DashboardData struct {
	Header          HeaderData
	CompanyName     string
	IngredientCount int
	RecipeCount     int
	OpenOrders      int
	UpcomingPlans   int
	ShiftsThisWeek  int
}

func DashboardPage(data DashboardData) templ.Component {
	return Layout("Dashboard", data.Header, DashboardContent(data))
}

func DashboardContent(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		heading := "Dashboard"
		if data.CompanyName != "" {
			heading = data.CompanyName
		}
		if _, err := fmt.Fprintf(w, `<section id="dashboard"><div class="page-head"><h1>%s</h1></div>
<div class="stat-grid">`, esc(heading)); err != nil {
			return err
		}
		cards := []struct {
			label string
			count int
			href  string
		}{
			{"Ingredients", data.IngredientCount, "/ingredients"},
			{"Recipes", data.RecipeCount, "/recipes"},
			{"Open orders", data.OpenOrders, "/orders"},
			{"Upcoming plans", data.UpcomingPlans, "/production"},
			{"Shifts this week", data.ShiftsThisWeek, "/shifts"},
		}
		for _, c := range cards {
			if _, err := fmt.Fprintf(w, `<a class="stat-card" href="%s" hx-get="%s" hx-target="#main" hx-push-url="true"><span class="stat-value">%d</span><span class="stat-label">%s</span></a>`,
				esc(c.href), esc(c.href), c.count, esc(c.label)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></section>`)
		return err
	})
}
