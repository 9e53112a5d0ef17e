package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bakeryops/services"
	"bakeryops/templates"
)

// recipeLineRecord pairs a recipe_ingredients record ID with its costing input.
type recipeLineRecord struct {
	ID   string
	Line services.RecipeLine
}

// buildRecipeLines loads a recipe's ingredient lines with the pack pricing
// needed to cost them. A line whose ingredient was deleted still appears,
// unpriced.
func buildRecipeLines(app *pocketbase.PocketBase, recipeID string) []recipeLineRecord {
	lineRecords, err := app.FindRecordsByFilter(
		"recipe_ingredients",
		"recipe = {:recipeId}",
		"sort_order",
		0, 0,
		map[string]any{"recipeId": recipeID},
	)
	if err != nil {
		log.Printf("recipe: could not query lines for recipe %s: %v", recipeID, err)
		return nil
	}

	var lines []recipeLineRecord
	for _, lr := range lineRecords {
		line := services.RecipeLine{
			Quantity: lr.GetFloat("quantity"),
			Unit:     lr.GetString("unit"),
		}

		ingredientID := lr.GetString("ingredient")
		ing, err := app.FindRecordById("ingredients", ingredientID)
		if err != nil {
			line.IngredientName = "(deleted ingredient)"
		} else {
			line.IngredientName = ing.GetString("name")
			line.Density = ing.GetFloat("density")
			packPrice := ing.GetFloat("pack_price")
			packQty := ing.GetFloat("pack_quantity")
			if packPrice > 0 && packQty > 0 {
				line.HasPricing = true
				line.Pack = services.PackPricing{
					PackPrice:    packPrice,
					PackQuantity: packQty,
					PackUnit:     services.BaseUnit(ing.GetString("pack_unit")),
					BatchTiers:   parseBatchTiers(ing.GetString("batch_pricing")),
				}
			}
		}

		lines = append(lines, recipeLineRecord{ID: lr.Id, Line: line})
	}
	return lines
}

// parseBatchTiers decodes the batch_pricing JSON column; malformed data is
// treated as no tiers rather than an error.
func parseBatchTiers(raw string) []services.BatchTier {
	if raw == "" || raw == "null" {
		return nil
	}
	var tiers []services.BatchTier
	if err := json.Unmarshal([]byte(raw), &tiers); err != nil {
		log.Printf("recipe: bad batch_pricing JSON: %v", err)
		return nil
	}
	return tiers
}

// recipeUnits returns the divisor for per-serving cost and its display label.
func recipeUnits(rec *core.Record) (float64, string) {
	if rec.GetString("recipe_type") == "batch" {
		yield := rec.GetFloat("batch_yield")
		if yield <= 0 {
			yield = rec.GetFloat("base_servings")
		}
		return yield, "units per batch"
	}
	return rec.GetFloat("base_servings"), "servings"
}

// bandClass maps a margin health band to its css class.
func bandClass(band string) string {
	switch band {
	case services.BandExcellent:
		return "band-excellent"
	case services.BandGood:
		return "band-good"
	case services.BandFair:
		return "band-fair"
	default:
		return "band-too-high"
	}
}

// HandleRecipeList renders the recipes page with cost summaries.
func HandleRecipeList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		records, err := app.FindRecordsByFilter(
			"recipes",
			"company = {:companyId}",
			"name",
			0, 0,
			map[string]any{"companyId": companyID},
		)
		if err != nil {
			log.Printf("recipe_list: could not query recipes: %v", err)
			records = nil
		}

		var items []templates.RecipeListItem
		for _, rec := range records {
			lineRecs := buildRecipeLines(app, rec.Id)
			lines := make([]services.RecipeLine, 0, len(lineRecs))
			for _, lr := range lineRecs {
				lines = append(lines, lr.Line)
			}

			units, _ := recipeUnits(rec)
			summary := services.CostRecipe(lines, units, units)
			perServing, hasPerServing := services.CostPerServing(summary.TotalCost, units)
			sellPrice := rec.GetFloat("sell_price")
			foodCost, fcOK := services.FoodCostPercent(perServing, sellPrice)

			band, class := "—", ""
			if hasPerServing && fcOK {
				band = services.HealthBand(foodCost)
				class = bandClass(band)
			}

			perServingLabel := "—"
			if hasPerServing {
				perServingLabel = services.FormatGBP(perServing)
			}
			sellLabel := "—"
			if sellPrice > 0 {
				sellLabel = services.FormatGBP(sellPrice)
			}

			items = append(items, templates.RecipeListItem{
				ID:             rec.Id,
				Name:           rec.GetString("name"),
				Category:       rec.GetString("category"),
				TotalCost:      services.FormatGBP(summary.TotalCost),
				CostPerServing: perServingLabel,
				SellPrice:      sellLabel,
				FoodCost:       services.FormatPercent(foodCost, fcOK && hasPerServing),
				HealthBand:     band,
				BandClass:      class,
				UnknownLines:   summary.UnknownLines,
			})
		}

		data := templates.RecipeListData{
			Header: GetHeaderData(e.Request),
			Items:  items,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.RecipeListContent(data)
		} else {
			component = templates.RecipeListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleRecipeCreate renders the new-recipe form.
func HandleRecipeCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.RecipeFormData{
			Header:          GetHeaderData(e.Request),
			RecipeType:      "single",
			CategoryOptions: services.RecipeCategoryOptions,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.RecipeFormContent(data)
		} else {
			component = templates.RecipeFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleRecipeSave processes the new-recipe form submission.
func HandleRecipeSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		recipesCol, err := app.FindCollectionByNameOrId("recipes")
		if err != nil {
			log.Printf("recipe_save: could not find recipes collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec := core.NewRecord(recipesCol)
		rec.Set("company", companyID)
		if err := applyRecipeForm(e, rec); err != nil {
			return err
		}
		if err := app.Save(rec); err != nil {
			log.Printf("recipe_save: could not save recipe: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Recipe created")
		e.Response.Header().Set("HX-Redirect", "/recipes/"+rec.Id)
		return e.String(200, "OK")
	}
}

// HandleRecipeEdit renders the edit form for a recipe.
func HandleRecipeEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("recipes", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Recipe not found")
		}

		servings := rec.GetFloat("base_servings")
		if rec.GetString("recipe_type") == "batch" && rec.GetFloat("batch_yield") > 0 {
			servings = rec.GetFloat("batch_yield")
		}

		sellPrice := ""
		if sp := rec.GetFloat("sell_price"); sp > 0 {
			sellPrice = strconv.FormatFloat(sp, 'f', 2, 64)
		}

		data := templates.RecipeFormData{
			Header:          GetHeaderData(e.Request),
			ID:              rec.Id,
			Name:            rec.GetString("name"),
			Category:        rec.GetString("category"),
			RecipeType:      rec.GetString("recipe_type"),
			BaseServings:    services.FormatQty(servings),
			SellPrice:       sellPrice,
			Method:          rec.GetString("method"),
			IsEdit:          true,
			CategoryOptions: services.RecipeCategoryOptions,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.RecipeFormContent(data)
		} else {
			component = templates.RecipeFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleRecipeUpdate processes the edit form submission.
func HandleRecipeUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("recipes", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Recipe not found")
		}

		if err := applyRecipeForm(e, rec); err != nil {
			return err
		}
		if err := app.Save(rec); err != nil {
			log.Printf("recipe_update: could not save recipe %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Recipe saved")
		e.Response.Header().Set("HX-Redirect", "/recipes/"+rec.Id)
		return e.String(200, "OK")
	}
}

// HandleRecipeView renders the recipe costing page. A "servings" query
// parameter rescales every line and cost linearly.
func HandleRecipeView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("recipes", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Recipe not found")
		}

		data := buildRecipeViewData(app, e, rec)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.RecipeViewContent(data)
		} else {
			component = templates.RecipeViewPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// buildRecipeViewData assembles the costed view of one recipe.
func buildRecipeViewData(app *pocketbase.PocketBase, e *core.RequestEvent, rec *core.Record) templates.RecipeViewData {
	units, servingLabel := recipeUnits(rec)

	target := units
	if raw := e.Request.URL.Query().Get("servings"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			target = v
		}
	}

	lineRecs := buildRecipeLines(app, rec.Id)
	lines := make([]services.RecipeLine, 0, len(lineRecs))
	for _, lr := range lineRecs {
		lines = append(lines, lr.Line)
	}
	summary := services.CostRecipe(lines, units, target)

	var lineViews []templates.RecipeLineView
	for i, lc := range summary.Lines {
		lineViews = append(lineViews, templates.RecipeLineView{
			ID:             lineRecs[i].ID,
			IngredientName: lc.IngredientName,
			Quantity:       services.FormatQty(lc.Quantity),
			Unit:           lc.Unit,
			Cost:           services.FormatCost(lc.Result),
			IsUnknown:      !lc.Result.Computed(),
			Reason:         string(lc.Result.Reason),
			Approximate:    lc.Approximate,
		})
	}

	// Per-serving figures use the target scale
	effectiveUnits := target
	perServing, hasPerServing := services.CostPerServing(summary.TotalCost, effectiveUnits)
	sellPrice := rec.GetFloat("sell_price")
	foodCost, fcOK := services.FoodCostPercent(perServing, sellPrice)
	markup, muOK := services.MarkupPercent(sellPrice, perServing)

	band, class := "", ""
	if hasPerServing && fcOK {
		band = services.HealthBand(foodCost)
		class = bandClass(band)
	}

	perServingLabel := "—"
	if hasPerServing {
		perServingLabel = services.FormatGBP(perServing)
	}
	sellValue := ""
	if sellPrice > 0 {
		sellValue = strconv.FormatFloat(sellPrice, 'f', 2, 64)
	}

	// A total alongside unpriced lines is a floor, not the true cost
	totalLabel := services.FormatGBP(summary.TotalCost)
	if summary.UnknownLines > 0 {
		totalLabel += " (min.)"
	}

	return templates.RecipeViewData{
		Header:       GetHeaderData(e.Request),
		ID:           rec.Id,
		Name:         rec.GetString("name"),
		Category:     rec.GetString("category"),
		Servings:     services.FormatQty(target),
		ServingLabel: servingLabel,
		Method:       rec.GetString("method"),
		Lines:        lineViews,
		Cost: templates.RecipeCostView{
			RecipeID:       rec.Id,
			TotalCost:      totalLabel,
			UnknownLines:   summary.UnknownLines,
			CostPerServing: perServingLabel,
			SellPrice:      sellValue,
			FoodCostLabel:  services.FormatPercent(foodCost, fcOK && hasPerServing),
			MarkupLabel:    services.FormatPercent(markup, muOK && hasPerServing),
			HealthBand:     band,
			BandClass:      class,
			HasSellPrice:   sellPrice > 0,
		},
		IngredientOptions: ingredientOptions(app, rec.GetString("company")),
		UnitOptions:       services.UnitOptions,
	}
}

// ingredientOptions lists a company's ingredients for the add-line dropdown.
func ingredientOptions(app *pocketbase.PocketBase, companyID string) []templates.IngredientOption {
	records, err := app.FindRecordsByFilter(
		"ingredients",
		"company = {:companyId}",
		"name",
		0, 0,
		map[string]any{"companyId": companyID},
	)
	if err != nil {
		log.Printf("recipe: could not query ingredients for options: %v", err)
		return nil
	}

	var options []templates.IngredientOption
	for _, rec := range records {
		options = append(options, templates.IngredientOption{
			ID:   rec.Id,
			Name: rec.GetString("name"),
		})
	}
	return options
}

// HandleRecipeDelete deletes a recipe and, via cascade, its lines.
func HandleRecipeDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("recipes", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Recipe not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("recipe_delete: could not delete recipe %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Recipe deleted")
		return e.String(200, "")
	}
}

// HandleRecipeAddLine adds an ingredient line and re-renders the recipe view.
// Route: POST /recipes/{id}/lines
func HandleRecipeAddLine(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("recipes", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Recipe not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		ingredientID := e.Request.FormValue("ingredient")
		if _, err := app.FindRecordById("ingredients", ingredientID); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Ingredient not found")
		}

		quantity, err := strconv.ParseFloat(e.Request.FormValue("quantity"), 64)
		if err != nil || quantity <= 0 {
			return ErrorToast(e, http.StatusBadRequest, "Quantity must be a positive number")
		}

		unit, ok := services.NormalizeUnit(e.Request.FormValue("unit"))
		if !ok {
			return ErrorToast(e, http.StatusBadRequest, "Unrecognized unit")
		}

		linesCol, err := app.FindCollectionByNameOrId("recipe_ingredients")
		if err != nil {
			log.Printf("recipe_line: could not find recipe_ingredients collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		existing := buildRecipeLines(app, rec.Id)

		line := core.NewRecord(linesCol)
		line.Set("recipe", rec.Id)
		line.Set("ingredient", ingredientID)
		line.Set("quantity", quantity)
		line.Set("unit", unit)
		line.Set("sort_order", len(existing)+1)
		if err := app.Save(line); err != nil {
			log.Printf("recipe_line: could not save line: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := buildRecipeViewData(app, e, rec)
		return templates.RecipeViewContent(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleRecipeDeleteLine removes an ingredient line and re-renders the view.
// Route: DELETE /recipes/{id}/lines/{lineId}
func HandleRecipeDeleteLine(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("recipes", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Recipe not found")
		}

		line, err := app.FindRecordById("recipe_ingredients", e.Request.PathValue("lineId"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Line not found")
		}
		if line.GetString("recipe") != rec.Id {
			return ErrorToast(e, http.StatusBadRequest, "Line does not belong to this recipe")
		}

		if err := app.Delete(line); err != nil {
			log.Printf("recipe_line: could not delete line %s: %v", line.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := buildRecipeViewData(app, e, rec)
		return templates.RecipeViewContent(data).Render(e.Request.Context(), e.Response)
	}
}

// HandleRecipeSellPrice saves the sell price and re-renders the cost summary.
// Route: POST /recipes/{id}/sell-price
func HandleRecipeSellPrice(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("recipes", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Recipe not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		var sellPrice float64
		if raw := strings.TrimSpace(e.Request.FormValue("sell_price")); raw != "" {
			sellPrice, err = strconv.ParseFloat(raw, 64)
			if err != nil || sellPrice < 0 {
				return ErrorToast(e, http.StatusBadRequest, "Sell price must be a non-negative number")
			}
		}

		rec.Set("sell_price", sellPrice)
		if err := app.Save(rec); err != nil {
			log.Printf("recipe_sell_price: could not save recipe %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Sell price saved")
		data := buildRecipeViewData(app, e, rec)
		return templates.RecipeCostSummary(data.Cost).Render(e.Request.Context(), e.Response)
	}
}

// buildCostingExportData assembles the export payload for a recipe.
func buildCostingExportData(app *pocketbase.PocketBase, recipeID string) (services.CostingExportData, error) {
	rec, err := app.FindRecordById("recipes", recipeID)
	if err != nil {
		return services.CostingExportData{}, fmt.Errorf("recipe not found: %w", err)
	}

	companyName := ""
	if companyID := rec.GetString("company"); companyID != "" {
		if company, err := app.FindRecordById("companies", companyID); err == nil {
			companyName = company.GetString("name")
		}
	}

	units, servingLabel := recipeUnits(rec)
	lineRecs := buildRecipeLines(app, rec.Id)
	lines := make([]services.RecipeLine, 0, len(lineRecs))
	for _, lr := range lineRecs {
		lines = append(lines, lr.Line)
	}
	summary := services.CostRecipe(lines, units, units)

	var rows []services.CostingExportRow
	for i, lc := range summary.Lines {
		rows = append(rows, services.CostingExportRow{
			Index:          i + 1,
			IngredientName: lc.IngredientName,
			Quantity:       lc.Quantity,
			Unit:           lc.Unit,
			Cost:           lc.Result,
			Approximate:    lc.Approximate,
		})
	}

	perServing, hasPerServing := services.CostPerServing(summary.TotalCost, units)
	sellPrice := rec.GetFloat("sell_price")
	foodCost, fcOK := services.FoodCostPercent(perServing, sellPrice)
	markup, muOK := services.MarkupPercent(sellPrice, perServing)

	band := ""
	if hasPerServing && fcOK {
		band = services.HealthBand(foodCost)
	}

	createdDate := "—"
	if dt := rec.GetDateTime("created"); !dt.IsZero() {
		createdDate = dt.Time().Format("02 Jan 2006")
	}

	return services.CostingExportData{
		RecipeName:     rec.GetString("name"),
		Category:       rec.GetString("category"),
		CompanyName:    companyName,
		CreatedDate:    createdDate,
		Servings:       units,
		ServingLabel:   servingLabel,
		Rows:           rows,
		TotalCost:      summary.TotalCost,
		UnknownLines:   summary.UnknownLines,
		CostPerServing: perServing,
		HasPerServing:  hasPerServing,
		SellPrice:      sellPrice,
		FoodCostLabel:  services.FormatPercent(foodCost, fcOK && hasPerServing),
		MarkupLabel:    services.FormatPercent(markup, muOK && hasPerServing),
		HealthBand:     band,
	}, nil
}

// HandleRecipeExportExcel downloads a recipe costing sheet as Excel.
func HandleRecipeExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildCostingExportData(app, e.Request.PathValue("id"))
		if err != nil {
			log.Printf("recipe_export_excel: %v", err)
			return e.String(http.StatusNotFound, "Recipe not found")
		}

		xlsxBytes, err := services.GenerateCostingExcel(data)
		if err != nil {
			log.Printf("recipe_export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Costing_%s.xlsx", sanitizeFilename(data.RecipeName))
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleRecipeExportPDF downloads a recipe costing sheet as PDF.
func HandleRecipeExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := buildCostingExportData(app, e.Request.PathValue("id"))
		if err != nil {
			log.Printf("recipe_export_pdf: %v", err)
			return e.String(http.StatusNotFound, "Recipe not found")
		}

		pdfBytes, err := services.GenerateCostingPDF(data)
		if err != nil {
			log.Printf("recipe_export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Costing_%s.pdf", sanitizeFilename(data.RecipeName))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// applyRecipeForm parses and validates the shared recipe form fields onto a
// record. The single yield input feeds base_servings for single recipes and
// batch_yield for batch ones.
func applyRecipeForm(e *core.RequestEvent, rec *core.Record) error {
	if err := e.Request.ParseForm(); err != nil {
		return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
	}

	name := strings.TrimSpace(e.Request.FormValue("name"))
	if name == "" {
		return ErrorToast(e, http.StatusBadRequest, "Recipe name is required")
	}

	recipeType := e.Request.FormValue("recipe_type")
	if recipeType != "single" && recipeType != "batch" {
		recipeType = "single"
	}

	servings, err := strconv.ParseFloat(e.Request.FormValue("base_servings"), 64)
	if err != nil || servings <= 0 {
		return ErrorToast(e, http.StatusBadRequest, "Servings must be a positive number")
	}

	var sellPrice float64
	if raw := strings.TrimSpace(e.Request.FormValue("sell_price")); raw != "" {
		sellPrice, err = strconv.ParseFloat(raw, 64)
		if err != nil || sellPrice < 0 {
			return ErrorToast(e, http.StatusBadRequest, "Sell price must be a non-negative number")
		}
	}

	rec.Set("name", name)
	rec.Set("category", e.Request.FormValue("category"))
	rec.Set("recipe_type", recipeType)
	rec.Set("base_servings", servings)
	if recipeType == "batch" {
		rec.Set("batch_yield", servings)
	} else {
		rec.Set("batch_yield", 0)
	}
	rec.Set("sell_price", sellPrice)
	rec.Set("method", strings.TrimSpace(e.Request.FormValue("method")))
	return nil
}
