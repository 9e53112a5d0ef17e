package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bakeryops/testhelpers"
)

func TestHandleShiftSave_AddsShiftAndRendersRota(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")

	handler := HandleShiftSave(app)

	form := url.Values{}
	form.Set("staff_name", "Priya")
	form.Set("role", "Baker")
	form.Set("shift_date", "2026-09-01")
	form.Set("start", "05:00")
	form.Set("end", "13:00")
	req := httptest.NewRequest(http.MethodPost, "/shifts", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Priya", "Baker", "05:00")

	saved, err := app.FindFirstRecordByFilter("shifts", "staff_name = 'Priya'")
	if err != nil {
		t.Fatalf("shift not saved: %v", err)
	}
	if saved.GetString("company") != company.Id {
		t.Error("expected shift scoped to active company")
	}
}

func TestHandleShiftSave_RejectsUnknownRole(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")

	handler := HandleShiftSave(app)

	form := url.Values{}
	form.Set("staff_name", "Priya")
	form.Set("role", "Astronaut")
	form.Set("shift_date", "2026-09-01")
	req := httptest.NewRequest(http.MethodPost, "/shifts", strings.NewReader(form.Encode()))
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

func TestHandleShiftList_ScopedToActiveCompany(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")
	other := testhelpers.CreateTestCompany(t, app, "Other Bakery")
	testhelpers.CreateTestShift(t, app, company.Id, "Priya", "2026-09-01")
	testhelpers.CreateTestShift(t, app, other.Id, "Marcus", "2026-09-01")

	handler := HandleShiftList(app)

	req := httptest.NewRequest(http.MethodGet, "/shifts", nil)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Priya")
	if strings.Contains(body, "Marcus") {
		t.Error("expected other company's shift to be hidden")
	}
}

func TestHandleShiftDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")
	shift := testhelpers.CreateTestShift(t, app, company.Id, "Priya", "2026-09-01")

	handler := HandleShiftDelete(app)

	req := httptest.NewRequest(http.MethodDelete, "/shifts/"+shift.Id, nil)
	req.SetPathValue("id", shift.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if _, err := app.FindRecordById("shifts", shift.Id); err == nil {
		t.Error("expected shift to be deleted")
	}
}
