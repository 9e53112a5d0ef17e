package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bakeryops/templates"
)

type contextKey string

const ActiveCompanyKey contextKey = "activeCompany"
const HeaderDataKey contextKey = "headerData"

// GetActiveCompany extracts the active company from the request context.
func GetActiveCompany(r *http.Request) *templates.ActiveCompany {
	if val, ok := r.Context().Value(ActiveCompanyKey).(*templates.ActiveCompany); ok {
		return val
	}
	return nil
}

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// ActiveCompanyMiddleware reads the "active_company" cookie, loads the company
// record, builds HeaderData with the full company list, and stores both in the
// request context so handlers and templates can use them.
func ActiveCompanyMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var activeCompany *templates.ActiveCompany

		cookie, err := e.Request.Cookie("active_company")
		if err == nil && cookie.Value != "" {
			rec, err := app.FindRecordById("companies", cookie.Value)
			if err == nil {
				activeCompany = &templates.ActiveCompany{
					ID:   rec.Id,
					Name: rec.GetString("name"),
				}
			} else {
				log.Printf("middleware: active company %s not found, clearing cookie", cookie.Value)
				http.SetCookie(e.Response, &http.Cookie{
					Name:   "active_company",
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
			}
		}

		// Fall back to the first company so a fresh install lands somewhere useful
		companiesCol, _ := app.FindCollectionByNameOrId("companies")
		var selectorItems []templates.CompanySelectorItem
		if companiesCol != nil {
			records, _ := app.FindAllRecords(companiesCol)
			if activeCompany == nil && len(records) > 0 {
				activeCompany = &templates.ActiveCompany{
					ID:   records[0].Id,
					Name: records[0].GetString("name"),
				}
			}
			for _, rec := range records {
				isActive := activeCompany != nil && rec.Id == activeCompany.ID
				selectorItems = append(selectorItems, templates.CompanySelectorItem{
					ID:        rec.Id,
					Name:      rec.GetString("name"),
					Reference: rec.GetString("reference"),
					IsActive:  isActive,
				})
			}
		}

		headerData := templates.HeaderData{
			ActiveCompany: activeCompany,
			Companies:     selectorItems,
		}

		ctx := context.WithValue(e.Request.Context(), ActiveCompanyKey, activeCompany)
		ctx = context.WithValue(ctx, HeaderDataKey, headerData)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// requireActiveCompany returns the active company ID or renders an error
// toast asking the user to pick one first.
func requireActiveCompany(e *core.RequestEvent) (string, error) {
	company := GetActiveCompany(e.Request)
	if company == nil {
		return "", ErrorToast(e, http.StatusBadRequest, "Select a bakery first")
	}
	return company.ID, nil
}
