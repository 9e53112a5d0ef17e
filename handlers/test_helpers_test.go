package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bakeryops/templates"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// withActiveCompany stores the active company in the request context the
// same way the middleware does, so handlers under test can read it.
func withActiveCompany(req *http.Request, company *core.Record) *http.Request {
	active := &templates.ActiveCompany{
		ID:   company.Id,
		Name: company.GetString("name"),
	}
	header := templates.HeaderData{
		ActiveCompany: active,
		Companies: []templates.CompanySelectorItem{
			{ID: company.Id, Name: active.Name, IsActive: true},
		},
	}
	ctx := context.WithValue(req.Context(), ActiveCompanyKey, active)
	ctx = context.WithValue(ctx, HeaderDataKey, header)
	return req.WithContext(ctx)
}
