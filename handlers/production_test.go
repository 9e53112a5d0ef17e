package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bakeryops/testhelpers"
)

func TestHandlePlanSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")

	handler := HandlePlanSave(app)

	form := url.Values{}
	form.Set("plan_date", "2026-09-07")
	form.Set("notes", "Saturday market bake")
	req := httptest.NewRequest(http.MethodPost, "/production", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	saved, err := app.FindFirstRecordByFilter("production_plans", "plan_date = '2026-09-07'")
	if err != nil {
		t.Fatalf("plan not saved: %v", err)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/production/"+saved.Id)
	if saved.GetString("company") != company.Id {
		t.Error("expected plan scoped to active company")
	}
}

func TestHandlePlanSave_RequiresDate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")

	handler := HandlePlanSave(app)

	req := httptest.NewRequest(http.MethodPost, "/production", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandlePlanView_AggregatesShoppingList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")
	flour := testhelpers.CreateTestIngredient(t, app, company.Id, "Strong White Flour", 2.00, 1000, "g")

	loaf := testhelpers.CreateTestRecipe(t, app, company.Id, "Sourdough Loaf", 2)
	testhelpers.CreateTestRecipeLine(t, app, loaf.Id, flour.Id, 500, "g")
	baguette := testhelpers.CreateTestRecipe(t, app, company.Id, "Baguette", 1)
	testhelpers.CreateTestRecipeLine(t, app, baguette.Id, flour.Id, 300, "g")

	plan := testhelpers.CreateTestProductionPlan(t, app, company.Id, "2026-09-07")
	testhelpers.CreateTestProductionItem(t, app, plan.Id, loaf.Id, 4)
	testhelpers.CreateTestProductionItem(t, app, plan.Id, baguette.Id, 2)

	handler := HandlePlanView(app)

	req := httptest.NewRequest(http.MethodGet, "/production/"+plan.Id, nil)
	req.SetPathValue("id", plan.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// 4 loaves need 1000g, 2 baguettes need 600g: one merged flour row
	// of 1600g costing £3.20 in total
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Sourdough Loaf", "Baguette", "Strong White Flour", "1600", "£3.20")
}

func TestHandlePlanView_FlagsUnpricedIngredients(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")
	salt := testhelpers.CreateTestIngredient(t, app, company.Id, "Sea Salt", 0, 0, "g")

	loaf := testhelpers.CreateTestRecipe(t, app, company.Id, "Sourdough Loaf", 2)
	testhelpers.CreateTestRecipeLine(t, app, loaf.Id, salt.Id, 10, "g")

	plan := testhelpers.CreateTestProductionPlan(t, app, company.Id, "2026-09-07")
	testhelpers.CreateTestProductionItem(t, app, plan.Id, loaf.Id, 2)

	handler := HandlePlanView(app)

	req := httptest.NewRequest(http.MethodGet, "/production/"+plan.Id, nil)
	req.SetPathValue("id", plan.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Sea Salt", "(min.)")
}

func TestHandlePlanAddItem(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")
	loaf := testhelpers.CreateTestRecipe(t, app, company.Id, "Sourdough Loaf", 2)
	plan := testhelpers.CreateTestProductionPlan(t, app, company.Id, "2026-09-07")

	handler := HandlePlanAddItem(app)

	form := url.Values{}
	form.Set("recipe", loaf.Id)
	form.Set("planned_servings", "6")
	req := httptest.NewRequest(http.MethodPost, "/production/"+plan.Id+"/items", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", plan.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	item, err := app.FindFirstRecordByFilter("production_items", "plan = {:id}",
		map[string]any{"id": plan.Id})
	if err != nil {
		t.Fatalf("item not saved: %v", err)
	}
	if got := item.GetFloat("planned_servings"); got != 6 {
		t.Errorf("expected planned_servings 6, got %v", got)
	}

	// 6 planned over a base of 2 is 3 batches
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Sourdough Loaf", "3")
}

func TestHandlePlanAddItem_RejectsZeroServings(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")
	loaf := testhelpers.CreateTestRecipe(t, app, company.Id, "Sourdough Loaf", 2)
	plan := testhelpers.CreateTestProductionPlan(t, app, company.Id, "2026-09-07")

	handler := HandlePlanAddItem(app)

	form := url.Values{}
	form.Set("recipe", loaf.Id)
	form.Set("planned_servings", "0")
	req := httptest.NewRequest(http.MethodPost, "/production/"+plan.Id+"/items", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", plan.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandlePlanDeleteItem_ChecksOwnership(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")
	loaf := testhelpers.CreateTestRecipe(t, app, company.Id, "Sourdough Loaf", 2)
	plan := testhelpers.CreateTestProductionPlan(t, app, company.Id, "2026-09-07")
	other := testhelpers.CreateTestProductionPlan(t, app, company.Id, "2026-09-08")
	item := testhelpers.CreateTestProductionItem(t, app, other.Id, loaf.Id, 4)

	handler := HandlePlanDeleteItem(app)

	req := httptest.NewRequest(http.MethodDelete, "/production/"+plan.Id+"/items/"+item.Id, nil)
	req.SetPathValue("id", plan.Id)
	req.SetPathValue("itemId", item.Id)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an item from another plan, got %d", rec.Code)
	}
	if _, err := app.FindRecordById("production_items", item.Id); err != nil {
		t.Error("expected the other plan's item to survive")
	}
}
