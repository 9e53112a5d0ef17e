package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bakeryops/templates"
	"bakeryops/testhelpers"
)

func TestGetActiveCompany_FromContext(t *testing.T) {
	expected := &templates.ActiveCompany{ID: "test123", Name: "Test Bakery"}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), ActiveCompanyKey, expected)
	req = req.WithContext(ctx)

	got := GetActiveCompany(req)
	if got == nil {
		t.Fatal("expected active company, got nil")
	}
	if got.ID != expected.ID {
		t.Errorf("expected ID %q, got %q", expected.ID, got.ID)
	}
}

func TestGetActiveCompany_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetActiveCompany(req); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestGetHeaderData_FromContext(t *testing.T) {
	expected := templates.HeaderData{
		ActiveCompany: &templates.ActiveCompany{ID: "c1", Name: "Bakery"},
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), HeaderDataKey, expected)
	req = req.WithContext(ctx)

	got := GetHeaderData(req)
	if got.ActiveCompany == nil {
		t.Fatal("expected active company in header data")
	}
	if got.ActiveCompany.ID != "c1" {
		t.Errorf("expected ID 'c1', got %q", got.ActiveCompany.ID)
	}
}

func TestGetHeaderData_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetHeaderData(req); got.ActiveCompany != nil {
		t.Error("expected nil active company")
	}
}

func TestActiveCompanyMiddleware_WithCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Cookie Bakery")
	testhelpers.CreateTestCompany(t, app, "Other Bakery")

	middleware := ActiveCompanyMiddleware(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "active_company", Value: company.Id})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	_ = middleware(e)

	active := GetActiveCompany(e.Request)
	if active == nil {
		t.Fatal("expected active company in context after middleware")
	}
	if active.Name != "Cookie Bakery" {
		t.Errorf("expected 'Cookie Bakery', got %q", active.Name)
	}

	header := GetHeaderData(e.Request)
	if len(header.Companies) != 2 {
		t.Errorf("expected 2 companies in header, got %d", len(header.Companies))
	}
}

func TestActiveCompanyMiddleware_NoCookieFallsBackToFirstCompany(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Only Bakery")

	middleware := ActiveCompanyMiddleware(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	_ = middleware(e)

	active := GetActiveCompany(e.Request)
	if active == nil || active.ID != company.Id {
		t.Fatalf("expected fallback to first company, got %+v", active)
	}
}

func TestActiveCompanyMiddleware_StaleCookieCleared(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	middleware := ActiveCompanyMiddleware(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "active_company", Value: "nonexistent_id"})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	_ = middleware(e)

	if active := GetActiveCompany(e.Request); active != nil {
		t.Errorf("expected nil active company for stale cookie, got %+v", active)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "active_company" && c.MaxAge == -1 {
			return
		}
	}
	t.Error("expected stale active_company cookie to be cleared")
}
