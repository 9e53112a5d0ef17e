package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bakeryops/testhelpers"
)

func TestHandleDashboard_CountsActiveCompanyRecords(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")
	other := testhelpers.CreateTestCompany(t, app, "Other Bakery")

	testhelpers.CreateTestIngredient(t, app, company.Id, "Flour", 1.10, 1500, "g")
	testhelpers.CreateTestIngredient(t, app, company.Id, "Butter", 3.50, 250, "g")
	testhelpers.CreateTestIngredient(t, app, other.Id, "Rye Flour", 2.40, 1000, "g")
	testhelpers.CreateTestRecipe(t, app, company.Id, "Sourdough Loaf", 2)

	open := testhelpers.CreateTestOrder(t, app, company.Id, "The Corner Cafe", "BKO-HORNBYBAKEHOUSE-25-26-001")
	open.Set("status", "confirmed")
	if err := app.Save(open); err != nil {
		t.Fatal(err)
	}
	closed := testhelpers.CreateTestOrder(t, app, company.Id, "Old Customer", "BKO-HORNBYBAKEHOUSE-25-26-002")
	closed.Set("status", "delivered")
	if err := app.Save(closed); err != nil {
		t.Fatal(err)
	}

	handler := HandleDashboard(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// 2 ingredients, 1 recipe, 1 open order; the delivered order and the
	// other bakery's ingredient are left out
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Hornby Bakehouse", ">2<", ">1<")
}

func TestHandleDashboard_NoActiveCompany(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleDashboard(app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
