package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bakeryops/services"
	"bakeryops/templates"
)

// HandleIngredientList renders the ingredients page for the active company.
func HandleIngredientList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		records, err := app.FindRecordsByFilter(
			"ingredients",
			"company = {:companyId}",
			"name",
			0, 0,
			map[string]any{"companyId": companyID},
		)
		if err != nil {
			log.Printf("ingredient_list: could not query ingredients: %v", err)
			records = nil
		}

		var items []templates.IngredientListItem
		for _, rec := range records {
			packPrice := rec.GetFloat("pack_price")
			packQty := rec.GetFloat("pack_quantity")
			packUnit := rec.GetString("pack_unit")

			per100 := "—"
			if packPrice > 0 && packQty > 0 {
				per100 = fmt.Sprintf("%s per 100 %s", services.FormatGBP(packPrice/packQty*100), packUnit)
			}

			tiersJSON := rec.GetString("batch_pricing")
			hasTiers := tiersJSON != "" && tiersJSON != "null" && tiersJSON != "[]"

			items = append(items, templates.IngredientListItem{
				ID:          rec.Id,
				Name:        rec.GetString("name"),
				Category:    rec.GetString("category"),
				PackLabel:   fmt.Sprintf("%s / %s %s", services.FormatGBP(packPrice), services.FormatQty(packQty), packUnit),
				PricePer100: per100,
				Supplier:    rec.GetString("supplier"),
				HasDensity:  rec.GetFloat("density") > 0,
				HasTiers:    hasTiers,
			})
		}

		data := templates.IngredientListData{
			Header: GetHeaderData(e.Request),
			Items:  items,
			Count:  len(items),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.IngredientListContent(data)
		} else {
			component = templates.IngredientListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleIngredientCreate renders the new-ingredient form.
func HandleIngredientCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.IngredientFormData{
			Header:          GetHeaderData(e.Request),
			PackUnit:        "g",
			CategoryOptions: services.IngredientCategoryOptions,
			PackUnitOptions: services.PackUnitOptions,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.IngredientFormContent(data)
		} else {
			component = templates.IngredientFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleIngredientSave processes the new-ingredient form submission.
func HandleIngredientSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		ingredientsCol, err := app.FindCollectionByNameOrId("ingredients")
		if err != nil {
			log.Printf("ingredient_save: could not find ingredients collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec := core.NewRecord(ingredientsCol)
		rec.Set("company", companyID)
		if err := applyIngredientForm(e, rec); err != nil {
			return err
		}
		if err := app.Save(rec); err != nil {
			log.Printf("ingredient_save: could not save ingredient: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Ingredient saved")
		e.Response.Header().Set("HX-Redirect", "/ingredients")
		return e.String(200, "OK")
	}
}

// HandleIngredientEdit renders the edit form for an ingredient.
func HandleIngredientEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("ingredients", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Ingredient not found")
		}

		density := ""
		if d := rec.GetFloat("density"); d > 0 {
			density = strconv.FormatFloat(d, 'f', -1, 64)
		}
		tiersJSON := rec.GetString("batch_pricing")
		if tiersJSON == "null" {
			tiersJSON = ""
		}

		data := templates.IngredientFormData{
			Header:          GetHeaderData(e.Request),
			ID:              rec.Id,
			Name:            rec.GetString("name"),
			Category:        rec.GetString("category"),
			PackPrice:       strconv.FormatFloat(rec.GetFloat("pack_price"), 'f', -1, 64),
			PackQuantity:    strconv.FormatFloat(rec.GetFloat("pack_quantity"), 'f', -1, 64),
			PackUnit:        rec.GetString("pack_unit"),
			Density:         density,
			Allergens:       rec.GetString("allergens"),
			Supplier:        rec.GetString("supplier"),
			BatchPricing:    tiersJSON,
			IsEdit:          true,
			CategoryOptions: services.IngredientCategoryOptions,
			PackUnitOptions: services.PackUnitOptions,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.IngredientFormContent(data)
		} else {
			component = templates.IngredientFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleIngredientUpdate processes the edit form submission.
func HandleIngredientUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("ingredients", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Ingredient not found")
		}

		if err := applyIngredientForm(e, rec); err != nil {
			return err
		}
		if err := app.Save(rec); err != nil {
			log.Printf("ingredient_update: could not save ingredient %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Ingredient saved")
		e.Response.Header().Set("HX-Redirect", "/ingredients")
		return e.String(200, "OK")
	}
}

// HandleIngredientDelete deletes an ingredient. Recipe lines that used it
// keep their record and show as unpriced from then on.
func HandleIngredientDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("ingredients", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Ingredient not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("ingredient_delete: could not delete ingredient %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Ingredient deleted")
		return e.String(200, "")
	}
}

// HandleIngredientExportExcel downloads the active company's ingredient
// list as an Excel file.
func HandleIngredientExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		company, err := app.FindRecordById("companies", companyID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Bakery not found")
		}
		companyName := company.GetString("name")

		records, err := app.FindRecordsByFilter(
			"ingredients",
			"company = {:companyId}",
			"name",
			0, 0,
			map[string]any{"companyId": companyID},
		)
		if err != nil {
			log.Printf("ingredient_export: query failed: %v", err)
			records = nil
		}

		columns := services.IngredientColumns()
		var rows []map[string]string
		for _, rec := range records {
			row := make(map[string]string)
			for _, col := range columns {
				switch col.Field {
				case "pack_price":
					row[col.Field] = strconv.FormatFloat(rec.GetFloat("pack_price"), 'f', 2, 64)
				case "pack_quantity":
					row[col.Field] = services.FormatQty(rec.GetFloat("pack_quantity"))
				case "density":
					if d := rec.GetFloat("density"); d > 0 {
						row[col.Field] = strconv.FormatFloat(d, 'f', -1, 64)
					}
				default:
					row[col.Field] = rec.GetString(col.Field)
				}
			}
			rows = append(rows, row)
		}

		xlsxBytes, err := services.GenerateIngredientExcel(services.IngredientExportData{
			CompanyName: companyName,
			Columns:     columns,
			Rows:        rows,
		})
		if err != nil {
			log.Printf("ingredient_export: generate failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("%s_Ingredients_%d.xlsx", sanitizeFilename(companyName), time.Now().Year())
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// applyIngredientForm parses and validates the shared ingredient form
// fields onto a record.
func applyIngredientForm(e *core.RequestEvent, rec *core.Record) error {
	if err := e.Request.ParseForm(); err != nil {
		return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
	}

	name := strings.TrimSpace(e.Request.FormValue("name"))
	if name == "" {
		return ErrorToast(e, http.StatusBadRequest, "Ingredient name is required")
	}

	packPrice, err := strconv.ParseFloat(e.Request.FormValue("pack_price"), 64)
	if err != nil || packPrice < 0 {
		return ErrorToast(e, http.StatusBadRequest, "Pack price must be a non-negative number")
	}
	packQty, err := strconv.ParseFloat(e.Request.FormValue("pack_quantity"), 64)
	if err != nil || packQty <= 0 {
		return ErrorToast(e, http.StatusBadRequest, "Pack quantity must be a positive number")
	}
	packUnit := e.Request.FormValue("pack_unit")
	if packUnit != "g" && packUnit != "ml" {
		return ErrorToast(e, http.StatusBadRequest, "Pack unit must be g or ml")
	}

	var density float64
	if raw := strings.TrimSpace(e.Request.FormValue("density")); raw != "" {
		density, err = strconv.ParseFloat(raw, 64)
		if err != nil || density <= 0 {
			return ErrorToast(e, http.StatusBadRequest, "Density must be a positive number")
		}
	}

	tiersRaw := strings.TrimSpace(e.Request.FormValue("batch_pricing"))
	if tiersRaw != "" {
		var tiers []services.BatchTier
		if err := json.Unmarshal([]byte(tiersRaw), &tiers); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Batch tiers must be valid JSON")
		}
		for _, t := range tiers {
			if t.PackQuantity <= 0 || t.PackPrice < 0 {
				return ErrorToast(e, http.StatusBadRequest, "Each batch tier needs a positive quantity and non-negative price")
			}
		}
		rec.Set("batch_pricing", tiers)
	} else {
		rec.Set("batch_pricing", nil)
	}

	rec.Set("name", name)
	rec.Set("category", e.Request.FormValue("category"))
	rec.Set("pack_price", packPrice)
	rec.Set("pack_quantity", packQty)
	rec.Set("pack_unit", packUnit)
	rec.Set("density", density)
	rec.Set("allergens", strings.TrimSpace(e.Request.FormValue("allergens")))
	rec.Set("supplier", strings.TrimSpace(e.Request.FormValue("supplier")))
	return nil
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
