// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"bakeryops/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCompany creates a company record with the given name and returns it.
func CreateTestCompany(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("companies")
	if err != nil {
		t.Fatalf("failed to find companies collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("reference", strings.ToUpper(strings.ReplaceAll(name, " ", "")))

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test company: %v", err)
	}

	return record
}

// CreateTestIngredient creates an ingredient record with pack pricing.
func CreateTestIngredient(t *testing.T, app *pocketbase.PocketBase, companyID, name string, packPrice, packQuantity float64, packUnit string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("ingredients")
	if err != nil {
		t.Fatalf("failed to find ingredients collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("name", name)
	record.Set("pack_price", packPrice)
	record.Set("pack_quantity", packQuantity)
	record.Set("pack_unit", packUnit)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test ingredient: %v", err)
	}

	return record
}

// CreateTestRecipe creates a recipe record linked to a company.
func CreateTestRecipe(t *testing.T, app *pocketbase.PocketBase, companyID, name string, baseServings float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("recipes")
	if err != nil {
		t.Fatalf("failed to find recipes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("name", name)
	record.Set("recipe_type", "single")
	record.Set("base_servings", baseServings)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test recipe: %v", err)
	}

	return record
}

// CreateTestRecipeLine creates a recipe_ingredients record.
func CreateTestRecipeLine(t *testing.T, app *pocketbase.PocketBase, recipeID, ingredientID string, quantity float64, unit string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("recipe_ingredients")
	if err != nil {
		t.Fatalf("failed to find recipe_ingredients collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("recipe", recipeID)
	record.Set("ingredient", ingredientID)
	record.Set("quantity", quantity)
	record.Set("unit", unit)
	record.Set("sort_order", 1)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test recipe line: %v", err)
	}

	return record
}

// CreateTestOrder creates a wholesale order record linked to a company.
func CreateTestOrder(t *testing.T, app *pocketbase.PocketBase, companyID, customer, orderNumber string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("orders")
	if err != nil {
		t.Fatalf("failed to find orders collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("customer", customer)
	record.Set("order_number", orderNumber)
	record.Set("status", "draft")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test order: %v", err)
	}

	return record
}

// CreateTestOrderItem creates an order_items record.
func CreateTestOrderItem(t *testing.T, app *pocketbase.PocketBase, orderID, recipeID string, qty, unitPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("order_items")
	if err != nil {
		t.Fatalf("failed to find order_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("order", orderID)
	record.Set("recipe", recipeID)
	record.Set("qty", qty)
	record.Set("unit_price", unitPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test order item: %v", err)
	}

	return record
}

// CreateTestProductionPlan creates a production_plans record.
func CreateTestProductionPlan(t *testing.T, app *pocketbase.PocketBase, companyID, planDate string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("production_plans")
	if err != nil {
		t.Fatalf("failed to find production_plans collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("plan_date", planDate)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test production plan: %v", err)
	}

	return record
}

// CreateTestProductionItem creates a production_items record.
func CreateTestProductionItem(t *testing.T, app *pocketbase.PocketBase, planID, recipeID string, plannedServings float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("production_items")
	if err != nil {
		t.Fatalf("failed to find production_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("plan", planID)
	record.Set("recipe", recipeID)
	record.Set("planned_servings", plannedServings)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test production item: %v", err)
	}

	return record
}

// CreateTestShift creates a shifts record.
func CreateTestShift(t *testing.T, app *pocketbase.PocketBase, companyID, staffName, shiftDate string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("shifts")
	if err != nil {
		t.Fatalf("failed to find shifts collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("staff_name", staffName)
	record.Set("role", "Baker")
	record.Set("shift_date", shiftDate)
	record.Set("start", "06:00")
	record.Set("end", "14:00")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test shift: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
