package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bakeryops/templates"
)

// HandleCompanyList renders the companies page.
func HandleCompanyList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companiesCol, err := app.FindCollectionByNameOrId("companies")
		if err != nil {
			log.Printf("company_list: could not find companies collection: %v", err)
			return e.String(500, "Internal error")
		}

		records, err := app.FindAllRecords(companiesCol)
		if err != nil {
			log.Printf("company_list: could not query companies: %v", err)
			return e.String(500, "Internal error")
		}

		active := GetActiveCompany(e.Request)
		var items []templates.CompanyListItem
		for _, rec := range records {
			items = append(items, templates.CompanyListItem{
				ID:        rec.Id,
				Name:      rec.GetString("name"),
				Reference: rec.GetString("reference"),
				IsActive:  active != nil && rec.Id == active.ID,
			})
		}

		data := templates.CompanyListData{
			Header: GetHeaderData(e.Request),
			Items:  items,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CompanyListContent(data)
		} else {
			component = templates.CompanyListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCompanyCreate renders the new-company form.
func HandleCompanyCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.CompanyFormData{Header: GetHeaderData(e.Request)}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CompanyFormContent(data)
		} else {
			component = templates.CompanyFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCompanySave processes the new-company form submission.
func HandleCompanySave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		reference := normalizeReference(e.Request.FormValue("reference"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Bakery name is required")
		}

		companiesCol, err := app.FindCollectionByNameOrId("companies")
		if err != nil {
			log.Printf("company_save: could not find companies collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec := core.NewRecord(companiesCol)
		rec.Set("name", name)
		rec.Set("reference", reference)
		if err := app.Save(rec); err != nil {
			log.Printf("company_save: could not save company: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Bakery created")
		e.Response.Header().Set("HX-Redirect", "/companies")
		return e.String(200, "OK")
	}
}

// HandleCompanyEdit renders the edit form for a company.
func HandleCompanyEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("companies", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Bakery not found")
		}

		data := templates.CompanyFormData{
			Header:    GetHeaderData(e.Request),
			ID:        rec.Id,
			Name:      rec.GetString("name"),
			Reference: rec.GetString("reference"),
			IsEdit:    true,
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.CompanyFormContent(data)
		} else {
			component = templates.CompanyFormPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCompanyUpdate processes the edit form submission.
func HandleCompanyUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("companies", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Bakery not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Bakery name is required")
		}

		rec.Set("name", name)
		rec.Set("reference", normalizeReference(e.Request.FormValue("reference")))
		if err := app.Save(rec); err != nil {
			log.Printf("company_update: could not save company %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Bakery updated")
		e.Response.Header().Set("HX-Redirect", "/companies")
		return e.String(200, "OK")
	}
}

// HandleCompanyDelete deletes a company. The relation fields cascade, so
// the bakery's ingredients, recipes, orders, plans and shifts go with it.
func HandleCompanyDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("companies", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Bakery not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("company_delete: could not delete company %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Bakery deleted")
		return e.String(200, "")
	}
}

// HandleCompanyActivate sets the active company cookie and returns a full
// page redirect via HX-Redirect so the whole shell re-renders.
func HandleCompanyActivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		companyID := e.Request.PathValue("id")

		if _, err := app.FindRecordById("companies", companyID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Bakery not found")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     "active_company",
			Value:    companyID,
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 30,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		SetToast(e, "success", "Bakery switched")

		e.Response.Header().Set("HX-Redirect", "/")
		return e.String(200, "OK")
	}
}

// normalizeReference uppercases a company reference and strips spaces so it
// reads cleanly inside order numbers.
func normalizeReference(ref string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(ref), " ", ""))
}
