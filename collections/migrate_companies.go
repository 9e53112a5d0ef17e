package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// companyScopedCollections are the collections whose records must always
// belong to a company.
var companyScopedCollections = []string{
	"ingredients",
	"recipes",
	"orders",
	"production_plans",
	"shifts",
}

// MigrateOrphanRecordsToCompany finds records in company-scoped collections
// that have no company assigned and attaches them to a default company,
// creating it if needed. Safe to call on every startup -- returns early if
// nothing to migrate.
func MigrateOrphanRecordsToCompany(app *pocketbase.PocketBase) error {
	companiesCol, err := app.FindCollectionByNameOrId("companies")
	if err != nil {
		return fmt.Errorf("migrate: could not find companies collection: %w", err)
	}

	var defaultCompany *core.Record
	ensureDefaultCompany := func() (*core.Record, error) {
		if defaultCompany != nil {
			return defaultCompany, nil
		}
		existing, err := app.FindFirstRecordByFilter(companiesCol, "reference = 'DEFAULT'")
		if err == nil && existing != nil {
			defaultCompany = existing
			return defaultCompany, nil
		}

		r := core.NewRecord(companiesCol)
		r.Set("name", "Default Bakery")
		r.Set("reference", "DEFAULT")
		if err := app.Save(r); err != nil {
			return nil, fmt.Errorf("migrate: could not create default company: %w", err)
		}
		defaultCompany = r
		return defaultCompany, nil
	}

	for _, name := range companyScopedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			return fmt.Errorf("migrate: could not find %s collection: %w", name, err)
		}

		orphans, err := app.FindRecordsByFilter(col, "company = ''", "", 0, 0, nil)
		if err != nil {
			return fmt.Errorf("migrate: could not query orphan %s: %w", name, err)
		}
		if len(orphans) == 0 {
			continue
		}

		company, err := ensureDefaultCompany()
		if err != nil {
			return err
		}

		log.Printf("migrate: found %d orphan %s record(s) without a company -- attaching...\n", len(orphans), name)
		for _, r := range orphans {
			r.Set("company", company.Id)
			if err := app.Save(r); err != nil {
				log.Printf("migrate: failed to attach %s %s to company %s: %v\n", name, r.Id, company.Id, err)
				continue
			}
		}
	}

	return nil
}
