package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bakeryops/services"
	"bakeryops/templates"
)

// buildPlanRecipes loads a plan's scheduled recipes with their costed
// ingredient lines, paired with the production_items record IDs.
func buildPlanRecipes(app *pocketbase.PocketBase, planID string) ([]string, []services.PlanRecipe) {
	itemRecords, err := app.FindRecordsByFilter(
		"production_items",
		"plan = {:planId}",
		"created",
		0, 0,
		map[string]any{"planId": planID},
	)
	if err != nil {
		log.Printf("production: could not query items for plan %s: %v", planID, err)
		return nil, nil
	}

	var ids []string
	var planRecipes []services.PlanRecipe
	for _, item := range itemRecords {
		pr := services.PlanRecipe{
			RecipeName:      "(deleted recipe)",
			PlannedServings: item.GetFloat("planned_servings"),
			BaseServings:    1,
		}

		if recipeID := item.GetString("recipe"); recipeID != "" {
			if recipe, err := app.FindRecordById("recipes", recipeID); err == nil {
				pr.RecipeName = recipe.GetString("name")
				units, _ := recipeUnits(recipe)
				if units > 0 {
					pr.BaseServings = units
				}
				for _, lr := range buildRecipeLines(app, recipe.Id) {
					pr.Lines = append(pr.Lines, lr.Line)
				}
			}
		}

		ids = append(ids, item.Id)
		planRecipes = append(planRecipes, pr)
	}
	return ids, planRecipes
}

// HandlePlanList renders the production plans page.
func HandlePlanList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		records, err := app.FindRecordsByFilter(
			"production_plans",
			"company = {:companyId}",
			"-plan_date",
			0, 0,
			map[string]any{"companyId": companyID},
		)
		if err != nil {
			log.Printf("plan_list: could not query plans: %v", err)
			records = nil
		}

		var items []templates.PlanListItem
		for _, rec := range records {
			_, planRecipes := buildPlanRecipes(app, rec.Id)
			summary := services.AggregatePlan(planRecipes)

			costLabel := services.FormatGBP(summary.TotalCost)
			if summary.UnknownLines > 0 {
				costLabel += " (min.)"
			}

			items = append(items, templates.PlanListItem{
				ID:        rec.Id,
				PlanDate:  rec.GetString("plan_date"),
				Recipes:   len(planRecipes),
				TotalCost: costLabel,
			})
		}

		data := templates.PlanListData{
			Header: GetHeaderData(e.Request),
			Items:  items,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.PlanListContent(data)
		} else {
			component = templates.PlanListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandlePlanCreate renders the new-plan form.
func HandlePlanCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.PlanFormData{Header: GetHeaderData(e.Request)}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.PlanFormContent(data)
		} else {
			component = templates.PlanFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandlePlanSave processes the new-plan form submission.
func HandlePlanSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		planDate := e.Request.FormValue("plan_date")
		if planDate == "" {
			return ErrorToast(e, http.StatusBadRequest, "Plan date is required")
		}

		plansCol, err := app.FindCollectionByNameOrId("production_plans")
		if err != nil {
			log.Printf("plan_save: could not find production_plans collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec := core.NewRecord(plansCol)
		rec.Set("company", companyID)
		rec.Set("plan_date", planDate)
		rec.Set("notes", e.Request.FormValue("notes"))
		if err := app.Save(rec); err != nil {
			log.Printf("plan_save: could not save plan: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Production plan created")
		e.Response.Header().Set("HX-Redirect", "/production/"+rec.Id)
		return e.String(200, "OK")
	}
}

// HandlePlanView renders the single-plan page with the aggregated
// shopping list.
func HandlePlanView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("production_plans", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Plan not found")
		}

		data := buildPlanViewData(app, e, rec)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.PlanViewContent(data)
		} else {
			component = templates.PlanViewPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// buildPlanViewData assembles the plan view: scheduled recipes with their
// scaled costs plus the merged ingredient requirements.
func buildPlanViewData(app *pocketbase.PocketBase, e *core.RequestEvent, rec *core.Record) templates.PlanViewData {
	itemIDs, planRecipes := buildPlanRecipes(app, rec.Id)
	summary := services.AggregatePlan(planRecipes)

	var items []templates.PlanItemView
	for i, prc := range summary.Recipes {
		batches := "—"
		if planRecipes[i].BaseServings > 0 {
			batches = services.FormatQty(prc.PlannedServings / planRecipes[i].BaseServings)
		}

		hasCost := prc.Summary.UnknownLines == 0
		items = append(items, templates.PlanItemView{
			ID:              itemIDs[i],
			RecipeName:      prc.RecipeName,
			PlannedServings: services.FormatQty(prc.PlannedServings),
			Batches:         batches,
			Cost:            services.FormatGBP(prc.Summary.TotalCost),
			HasCost:         hasCost || prc.Summary.TotalCost > 0,
		})
	}

	var requirements []templates.RequirementView
	for _, req := range summary.Requirements {
		view := templates.RequirementView{
			IngredientName: req.IngredientName,
			Approximate:    req.Approximate,
			Unconvertible:  req.Unconvertible,
		}
		if req.Unconvertible {
			view.Quantity = "?"
			view.Unit = ""
		} else {
			view.Quantity = services.FormatQty(req.Amount)
			view.Unit = string(req.Unit)
		}
		requirements = append(requirements, view)
	}

	costLabel := services.FormatGBP(summary.TotalCost)
	if summary.UnknownLines > 0 {
		costLabel += " (min.)"
	}

	company := GetActiveCompany(e.Request)
	companyID := ""
	if company != nil {
		companyID = company.ID
	}
	if c := rec.GetString("company"); c != "" {
		companyID = c
	}

	return templates.PlanViewData{
		Header:        GetHeaderData(e.Request),
		ID:            rec.Id,
		PlanDate:      rec.GetString("plan_date"),
		Notes:         rec.GetString("notes"),
		Items:         items,
		Requirements:  requirements,
		TotalCost:     costLabel,
		RecipeOptions: recipeOptions(app, companyID),
	}
}

// HandlePlanAddItem schedules a recipe on a plan and re-renders the view.
// Route: POST /production/{id}/items
func HandlePlanAddItem(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("production_plans", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Plan not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		recipeID := e.Request.FormValue("recipe")
		if _, err := app.FindRecordById("recipes", recipeID); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Recipe not found")
		}

		servings, err := strconv.ParseFloat(e.Request.FormValue("planned_servings"), 64)
		if err != nil || servings <= 0 {
			return ErrorToast(e, http.StatusBadRequest, "Planned servings must be a positive number")
		}

		itemsCol, err := app.FindCollectionByNameOrId("production_items")
		if err != nil {
			log.Printf("plan_item: could not find production_items collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		item := core.NewRecord(itemsCol)
		item.Set("plan", rec.Id)
		item.Set("recipe", recipeID)
		item.Set("planned_servings", servings)
		if err := app.Save(item); err != nil {
			log.Printf("plan_item: could not save item: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := buildPlanViewData(app, e, rec)
		return templates.PlanViewContent(data).Render(e.Request.Context(), e.Response)
	}
}

// HandlePlanDeleteItem unschedules a recipe and re-renders the view.
// Route: DELETE /production/{id}/items/{itemId}
func HandlePlanDeleteItem(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("production_plans", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Plan not found")
		}

		item, err := app.FindRecordById("production_items", e.Request.PathValue("itemId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Item not found")
		}
		if item.GetString("plan") != rec.Id {
			return ErrorToast(e, http.StatusBadRequest, "Item does not belong to this plan")
		}

		if err := app.Delete(item); err != nil {
			log.Printf("plan_item: could not delete item %s: %v", item.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := buildPlanViewData(app, e, rec)
		return templates.PlanViewContent(data).Render(e.Request.Context(), e.Response)
	}
}

// HandlePlanDelete deletes a plan and, via cascade, its items.
func HandlePlanDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("production_plans", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Plan not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("plan_delete: could not delete plan %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Plan deleted")
		return e.String(200, "")
	}
}
