package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bakeryops/testhelpers"
)

// buildUploadRequest creates a multipart POST with a single "file" part.
func buildUploadRequest(t *testing.T, target, fileName, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandleIngredientTemplateDownload(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleIngredientTemplateDownload(app)

	req := httptest.NewRequest(http.MethodGet, "/ingredients/import/template", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "spreadsheetml") {
		t.Errorf("unexpected content type %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "Ingredients_Template_") {
		t.Errorf("unexpected content disposition %q", got)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected xlsx bytes in response body")
	}
}

func TestHandleIngredientValidate_ValidCSV(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")

	handler := HandleIngredientValidate(app)

	csvContent := "Ingredient Name,Pack Price (£),Pack Quantity,Pack Unit\n" +
		"Plain Flour,1.20,1500,g\n" +
		"Whole Milk,1.15,2272,ml\n"
	req := buildUploadRequest(t, "/ingredients/import/validate", "ingredients.csv", csvContent)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "parsed_rows_json", "Import valid rows", "2 valid")
	if strings.Contains(body, "error-report") {
		t.Error("expected no error report link for a clean file")
	}
}

func TestHandleIngredientValidate_ReportsRowErrors(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")

	handler := HandleIngredientValidate(app)

	csvContent := "Ingredient Name,Pack Price (£),Pack Quantity,Pack Unit\n" +
		"Plain Flour,abc,1500,kg\n"
	req := buildUploadRequest(t, "/ingredients/import/validate", "ingredients.csv", csvContent)
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Pack price must be a number", "errors_json")
	if strings.Contains(body, "parsed_rows_json") {
		t.Error("expected commit form hidden when rows have errors")
	}
}

func TestHandleIngredientValidate_RejectsUnsupportedFormat(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")

	handler := HandleIngredientValidate(app)

	req := buildUploadRequest(t, "/ingredients/import/validate", "ingredients.pdf", "not a spreadsheet")
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

func TestHandleIngredientImportCommit_InsertsRows(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")

	handler := HandleIngredientImportCommit(app)

	parsedJSON := `[{"name":"Plain Flour","pack_price":"1.20","pack_quantity":"1500","pack_unit":"g"},` +
		`{"name":"Whole Milk","pack_price":"1.15","pack_quantity":"2272","pack_unit":"ml","density":"1.03"}]`
	form := url.Values{}
	form.Set("parsed_rows_json", parsedJSON)
	req := httptest.NewRequest(http.MethodPost, "/ingredients/import/commit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withActiveCompany(req, company)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "2 ingredients imported")

	milk, err := app.FindFirstRecordByFilter("ingredients", "name = 'Whole Milk'")
	if err != nil {
		t.Fatalf("imported ingredient not found: %v", err)
	}
	if milk.GetString("company") != company.Id {
		t.Error("expected imported ingredient scoped to active company")
	}
	if got := milk.GetFloat("density"); got != 1.03 {
		t.Errorf("expected density 1.03, got %v", got)
	}
}

func TestHandleIngredientImportCommit_MissingData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")

	handler := HandleIngredientImportCommit(app)

	req := httptest.NewRequest(http.MethodPost, "/ingredients/import/commit", strings.NewReader(""))
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

func TestHandleIngredientErrorReport(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleIngredientErrorReport(app)

	form := url.Values{}
	form.Set("errors_json", `[{"row":2,"field":"Pack Price (£)","message":"Pack price must be a number of 0 or more"}]`)
	req := httptest.NewRequest(http.MethodPost, "/ingredients/import/error-report", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "spreadsheetml") {
		t.Errorf("unexpected content type %q", got)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected xlsx bytes in response body")
	}
}
