package services

import (
	"testing"

	"bakeryops/testhelpers"
)

func TestBuildOrderExportData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Hornby Bakehouse")
	loaf := testhelpers.CreateTestRecipe(t, app, company.Id, "Sourdough Loaf", 1)
	sponge := testhelpers.CreateTestRecipe(t, app, company.Id, "Victoria Sponge", 12)

	order := testhelpers.CreateTestOrder(t, app, company.Id, "The Corner Cafe", "BKO-HORNBYBAKEHOUSE-25-26-001")
	order.Set("delivery_date", "2026-09-04")
	order.Set("notes", "Before 7am.")
	if err := app.Save(order); err != nil {
		t.Fatalf("failed to update order: %v", err)
	}

	testhelpers.CreateTestOrderItem(t, app, order.Id, loaf.Id, 20, 2.80)
	testhelpers.CreateTestOrderItem(t, app, order.Id, sponge.Id, 2, 12.50)

	data, err := BuildOrderExportData(app, order.Id)
	if err != nil {
		t.Fatalf("BuildOrderExportData() error: %v", err)
	}

	if data.CompanyName != "Hornby Bakehouse" {
		t.Errorf("CompanyName = %q", data.CompanyName)
	}
	if data.OrderNumber != "BKO-HORNBYBAKEHOUSE-25-26-001" {
		t.Errorf("OrderNumber = %q", data.OrderNumber)
	}
	if data.CustomerName != "The Corner Cafe" {
		t.Errorf("CustomerName = %q", data.CustomerName)
	}
	if len(data.LineItems) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(data.LineItems))
	}

	wantTotal := 20*2.80 + 2*12.50
	if data.OrderTotal != wantTotal {
		t.Errorf("OrderTotal = %v, want %v", data.OrderTotal, wantTotal)
	}
	for _, item := range data.LineItems {
		if item.RecipeName == "" {
			t.Error("line item missing recipe name")
		}
		if item.LineTotal != item.Qty*item.UnitPrice {
			t.Errorf("line total %v != qty*price %v", item.LineTotal, item.Qty*item.UnitPrice)
		}
	}
}

func TestBuildOrderExportData_OrderNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, err := BuildOrderExportData(app, "nonexistent"); err == nil {
		t.Error("expected error for missing order")
	}
}

func TestBuildOrderExportData_NoItems(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	company := testhelpers.CreateTestCompany(t, app, "Quiet Bakery")
	order := testhelpers.CreateTestOrder(t, app, company.Id, "No Item Cafe", "BKO-QUIETBAKERY-25-26-001")

	data, err := BuildOrderExportData(app, order.Id)
	if err != nil {
		t.Fatalf("BuildOrderExportData() error: %v", err)
	}
	if len(data.LineItems) != 0 {
		t.Errorf("expected no line items, got %d", len(data.LineItems))
	}
	if data.OrderTotal != 0 {
		t.Errorf("OrderTotal = %v, want 0", data.OrderTotal)
	}
}
