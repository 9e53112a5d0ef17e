package services

import (
	"testing"
	"time"

	"bakeryops/testhelpers"
)

func TestGenerateOrderNumber_Sequence(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")

	now := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	first, err := GenerateOrderNumber(app, company.Id, now)
	if err != nil {
		t.Fatalf("GenerateOrderNumber() error: %v", err)
	}
	if first != "BKO-HORNBYBAKEHOUSE-25-26-001" {
		t.Errorf("first order number = %q", first)
	}

	// Save an order with that number, next should increment
	testhelpers.CreateTestOrder(t, app, company.Id, "Cafe A", first)

	second, err := GenerateOrderNumber(app, company.Id, now)
	if err != nil {
		t.Fatalf("GenerateOrderNumber() error: %v", err)
	}
	if second != "BKO-HORNBYBAKEHOUSE-25-26-002" {
		t.Errorf("second order number = %q", second)
	}
}

func TestGenerateOrderNumber_ResetsAcrossFiscalYears(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")

	january := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	first, err := GenerateOrderNumber(app, company.Id, january)
	if err != nil {
		t.Fatalf("GenerateOrderNumber() error: %v", err)
	}
	testhelpers.CreateTestOrder(t, app, company.Id, "Cafe A", first)

	// New fiscal year starts in April: sequence starts again at 001
	april := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)
	next, err := GenerateOrderNumber(app, company.Id, april)
	if err != nil {
		t.Fatalf("GenerateOrderNumber() error: %v", err)
	}
	if next != "BKO-HORNBYBAKEHOUSE-26-27-001" {
		t.Errorf("order number after fiscal rollover = %q", next)
	}
}

func TestGenerateOrderNumber_FallsBackToCompanyID(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")
	company.Set("reference", "")
	if err := app.Save(company); err != nil {
		t.Fatalf("failed to clear reference: %v", err)
	}

	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	number, err := GenerateOrderNumber(app, company.Id, now)
	if err != nil {
		t.Fatalf("GenerateOrderNumber() error: %v", err)
	}
	want := formatOrderNumber(company.Id, "26-27", 1)
	if number != want {
		t.Errorf("order number = %q, want %q", number, want)
	}
}

func TestGenerateOrderNumber_CompanyNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, err := GenerateOrderNumber(app, "missing", time.Now()); err == nil {
		t.Error("expected error for missing company")
	}
}
