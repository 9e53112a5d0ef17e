package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bakeryops/services"
	"bakeryops/templates"
)

// HandleIngredientImportPage renders the upload form.
// Route: GET /ingredients/import
func HandleIngredientImportPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.IngredientImportData{Header: GetHeaderData(e.Request)}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.IngredientImportContent(data)
		} else {
			component = templates.IngredientImportPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleIngredientTemplateDownload serves the Excel template for ingredient import.
// Route: GET /ingredients/import/template
func HandleIngredientTemplateDownload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		xlsxBytes, err := services.GenerateIngredientTemplate()
		if err != nil {
			log.Printf("ingredient_template: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate template")
		}

		filename := fmt.Sprintf("Ingredients_Template_%d.xlsx", time.Now().Year())
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleIngredientValidate receives a file upload, validates it, and returns
// the validation results as an HTMX partial.
// Route: POST /ingredients/import/validate
func HandleIngredientValidate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if _, err := requireActiveCompany(e); err != nil {
			return err
		}

		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		result, err := services.ValidateIngredientFile(file, header.Filename)
		if err != nil {
			log.Printf("ingredient_validate: %v", err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		view := templates.ImportValidationView{
			FileName:  result.FileName,
			TotalRows: result.TotalRows,
			ValidRows: result.ValidRows,
			ErrorRows: result.ErrorRows,
			CanCommit: result.TotalRows > 0 && result.ErrorRows == 0,
		}
		for _, ve := range result.Errors {
			view.Errors = append(view.Errors, templates.ImportErrorRow{
				Row: ve.Row, Field: ve.Field, Message: ve.Message,
			})
		}

		if view.CanCommit {
			b, err := json.Marshal(result.ParsedRows)
			if err != nil {
				log.Printf("ingredient_validate: marshal parsed rows: %v", err)
				view.CanCommit = false
			} else {
				view.ParsedRowsJSON = string(b)
			}
		}
		if len(result.Errors) > 0 {
			if b, err := json.Marshal(result.Errors); err == nil {
				view.ErrorsJSON = string(b)
			}
		}

		return templates.ImportValidationResult(view).Render(e.Request.Context(), e.Response)
	}
}

// HandleIngredientErrorReport downloads the error report as an Excel file.
// Route: POST /ingredients/import/error-report
func HandleIngredientErrorReport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		var errors []services.ValidationError
		if err := json.Unmarshal([]byte(e.Request.FormValue("errors_json")), &errors); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid error data")
		}

		xlsxBytes, err := services.GenerateErrorReport(errors)
		if err != nil {
			log.Printf("ingredient_error_report: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		filename := fmt.Sprintf("Ingredient_Errors_%s.xlsx", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleIngredientImportCommit re-validates and batch-inserts the uploaded rows.
// Route: POST /ingredients/import/commit
func HandleIngredientImportCommit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID, err := requireActiveCompany(e)
		if err != nil {
			return err
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		parsedJSON := e.Request.FormValue("parsed_rows_json")
		if parsedJSON == "" {
			return ErrorToast(e, http.StatusBadRequest,
				"File data missing. Please re-upload and try again.")
		}

		var parsedRows []map[string]string
		if err := json.Unmarshal([]byte(parsedJSON), &parsedRows); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid parsed data")
		}

		importResult, err := services.CommitIngredientImport(app, companyID, parsedRows)
		if err != nil {
			log.Printf("ingredient_import_commit: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if importResult.Failed > 0 {
			var rows []templates.ImportErrorRow
			for _, ie := range importResult.Errors {
				rows = append(rows, templates.ImportErrorRow{
					Row: ie.Row, Field: ie.Field, Message: ie.Message,
				})
			}
			component := templates.IngredientImportFailure(importResult.Imported, importResult.Failed, rows)
			return component.Render(e.Request.Context(), e.Response)
		}

		SetToast(e, "success", fmt.Sprintf("%d ingredients imported", importResult.Imported))
		return templates.IngredientImportSuccess(importResult.Imported).Render(e.Request.Context(), e.Response)
	}
}
