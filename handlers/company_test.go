package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bakeryops/testhelpers"
)

func TestHandleCompanyActivate_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Activate Me")

	handler := HandleCompanyActivate(app)

	req := httptest.NewRequest(http.MethodPost, "/companies/"+company.Id+"/activate", nil)
	req.SetPathValue("id", company.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/")

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "active_company" && c.Value == company.Id {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected active_company cookie to be set")
	}
}

func TestHandleCompanyActivate_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleCompanyActivate(app)

	req := httptest.NewRequest(http.MethodPost, "/companies/nonexistent/activate", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != 404 {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleCompanyList_ShowsCompanies(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")
	testhelpers.CreateTestCompany(t, app, "Crust & Crumb")

	handler := HandleCompanyList(app)

	req := httptest.NewRequest(http.MethodGet, "/companies", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Hornby Bakehouse", "Crust &amp; Crumb")
}

func TestHandleCompanySave_CreatesCompany(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleCompanySave(app)

	form := url.Values{}
	form.Set("name", "New Bakery")
	form.Set("reference", "new b")
	req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/companies")

	saved, err := app.FindFirstRecordByFilter("companies", "name = 'New Bakery'")
	if err != nil {
		t.Fatalf("company not saved: %v", err)
	}
	if got := saved.GetString("reference"); got != "NEWB" {
		t.Errorf("expected normalized reference NEWB, got %q", got)
	}
}

func TestHandleCompanySave_RequiresName(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleCompanySave(app)

	form := url.Values{}
	form.Set("name", "   ")
	req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleCompanyDelete_CascadesToRecords(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Doomed Bakery")
	ingredient := testhelpers.CreateTestIngredient(t, app, company.Id, "Flour", 1.10, 1500, "g")

	handler := HandleCompanyDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/companies/"+company.Id, nil)
	req.SetPathValue("id", company.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if _, err := app.FindRecordById("companies", company.Id); err == nil {
		t.Error("expected company to be deleted")
	}
	if _, err := app.FindRecordById("ingredients", ingredient.Id); err == nil {
		t.Error("expected ingredient to cascade delete with its company")
	}
}

func TestNormalizeReference(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hornby", "HORNBY"},
		{" Crust and Crumb ", "CRUSTANDCRUMB"},
		{"", ""},
		{"BK-01", "BK-01"},
	}
	for _, tc := range tests {
		if got := normalizeReference(tc.in); got != tc.want {
			t.Errorf("normalizeReference(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
