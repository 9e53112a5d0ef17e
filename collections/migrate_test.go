package collections_test

import (
	"testing"

	"bakeryops/collections"
	"bakeryops/testhelpers"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// createOrphanRecord inserts a record into a company-scoped collection
// without a company relation.
func createOrphanRecord(t *testing.T, app *pocketbase.PocketBase, collection string, fields map[string]any) *core.Record {
	t.Helper()
	col, err := app.FindCollectionByNameOrId(collection)
	if err != nil {
		t.Fatalf("%s collection not found: %v", collection, err)
	}
	r := core.NewRecord(col)
	for k, v := range fields {
		r.Set(k, v)
	}
	if err := app.Save(r); err != nil {
		t.Fatalf("failed to save orphan %s record: %v", collection, err)
	}
	return r
}

func TestMigrateOrphanRecords_AttachesToDefaultCompany(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	orphanIngredient := createOrphanRecord(t, app, "ingredients", map[string]any{
		"name": "Legacy Flour", "pack_price": 1.0, "pack_quantity": 1000, "pack_unit": "g",
	})
	orphanRecipe := createOrphanRecord(t, app, "recipes", map[string]any{
		"name": "Legacy Loaf", "base_servings": 1,
	})

	if err := collections.MigrateOrphanRecordsToCompany(app); err != nil {
		t.Fatalf("MigrateOrphanRecordsToCompany() error: %v", err)
	}

	// A default company should exist
	companiesCol, _ := app.FindCollectionByNameOrId("companies")
	defaults, err := app.FindRecordsByFilter(companiesCol, "reference = 'DEFAULT'", "", 0, 0, nil)
	if err != nil || len(defaults) != 1 {
		t.Fatalf("expected exactly one default company, got %d (err=%v)", len(defaults), err)
	}

	// Orphans should now be linked to it
	reloadedIngredient, _ := app.FindRecordById("ingredients", orphanIngredient.Id)
	if reloadedIngredient.GetString("company") != defaults[0].Id {
		t.Errorf("ingredient company = %q, want default company id", reloadedIngredient.GetString("company"))
	}
	reloadedRecipe, _ := app.FindRecordById("recipes", orphanRecipe.Id)
	if reloadedRecipe.GetString("company") != defaults[0].Id {
		t.Errorf("recipe company = %q, want default company id", reloadedRecipe.GetString("company"))
	}
}

func TestMigrateOrphanRecords_NoOrphans(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	company := testhelpers.CreateTestCompany(t, app, "Owned Bakery")
	testhelpers.CreateTestIngredient(t, app, company.Id, "Flour", 1.0, 1000, "g")

	if err := collections.MigrateOrphanRecordsToCompany(app); err != nil {
		t.Fatalf("MigrateOrphanRecordsToCompany() error: %v", err)
	}

	// No default company should be created when there is nothing to migrate
	companiesCol, _ := app.FindCollectionByNameOrId("companies")
	defaults, _ := app.FindRecordsByFilter(companiesCol, "reference = 'DEFAULT'", "", 0, 0, nil)
	if len(defaults) != 0 {
		t.Errorf("expected no default company, got %d", len(defaults))
	}
}

func TestMigrateOrphanRecords_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	createOrphanRecord(t, app, "shifts", map[string]any{
		"staff_name": "Legacy Baker", "shift_date": "2026-01-05",
	})

	if err := collections.MigrateOrphanRecordsToCompany(app); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	if err := collections.MigrateOrphanRecordsToCompany(app); err != nil {
		t.Fatalf("second run error: %v", err)
	}

	// Still exactly one default company
	companiesCol, _ := app.FindCollectionByNameOrId("companies")
	defaults, _ := app.FindRecordsByFilter(companiesCol, "reference = 'DEFAULT'", "", 0, 0, nil)
	if len(defaults) != 1 {
		t.Errorf("expected 1 default company after repeat migration, got %d", len(defaults))
	}
}

func TestMigrateOrphanRecords_ReusesExistingDefault(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	companiesCol, _ := app.FindCollectionByNameOrId("companies")
	existing := core.NewRecord(companiesCol)
	existing.Set("name", "My Default")
	existing.Set("reference", "DEFAULT")
	if err := app.Save(existing); err != nil {
		t.Fatalf("failed to save existing default company: %v", err)
	}

	orphan := createOrphanRecord(t, app, "orders", map[string]any{
		"customer": "Legacy Customer", "status": "draft",
	})

	if err := collections.MigrateOrphanRecordsToCompany(app); err != nil {
		t.Fatalf("MigrateOrphanRecordsToCompany() error: %v", err)
	}

	reloaded, _ := app.FindRecordById("orders", orphan.Id)
	if reloaded.GetString("company") != existing.Id {
		t.Errorf("order attached to %q, want existing default %q", reloaded.GetString("company"), existing.Id)
	}
}
