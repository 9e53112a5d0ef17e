package handlers

import (
	"log"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bakeryops/templates"
)

// HandleDashboard renders the landing page with counts for the active company.
func HandleDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.DashboardData{Header: GetHeaderData(e.Request)}

		if company := GetActiveCompany(e.Request); company != nil {
			data.CompanyName = company.Name
			data.IngredientCount = countByCompany(app, "ingredients", company.ID)
			data.RecipeCount = countByCompany(app, "recipes", company.ID)
			data.OpenOrders = countRecords(app, "orders",
				"company = {:companyId} && status != 'delivered' && status != 'invoiced' && status != 'cancelled'",
				map[string]any{"companyId": company.ID})

			today := time.Now().Format("2006-01-02")
			data.UpcomingPlans = countRecords(app, "production_plans",
				"company = {:companyId} && plan_date >= {:today}",
				map[string]any{"companyId": company.ID, "today": today})

			weekEnd := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
			data.ShiftsThisWeek = countRecords(app, "shifts",
				"company = {:companyId} && shift_date >= {:from} && shift_date <= {:to}",
				map[string]any{"companyId": company.ID, "from": today, "to": weekEnd})
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.DashboardContent(data)
		} else {
			component = templates.DashboardPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

func countByCompany(app *pocketbase.PocketBase, collection, companyID string) int {
	return countRecords(app, collection, "company = {:companyId}", map[string]any{"companyId": companyID})
}

func countRecords(app *pocketbase.PocketBase, collection, filter string, params map[string]any) int {
	records, err := app.FindRecordsByFilter(collection, filter, "", 0, 0, params)
	if err != nil {
		log.Printf("dashboard: could not count %s: %v", collection, err)
		return 0
	}
	return len(records)
}
