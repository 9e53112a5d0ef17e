package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures all bakery collections exist:
// companies, ingredients, recipes, recipe_ingredients, orders, order_items,
// production_plans, production_items and shifts.
func Setup(app *pocketbase.PocketBase) {
	companies := ensureCollection(app, "companies", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "reference", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ingredients := ensureCollection(app, "ingredients", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      false,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: false})
		c.Fields.Add(&core.NumberField{Name: "pack_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "pack_quantity", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "pack_unit",
			Required:  false,
			Values:    []string{"g", "ml"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "density", Required: false})
		c.Fields.Add(&core.TextField{Name: "allergens", Required: false})
		c.Fields.Add(&core.JSONField{Name: "batch_pricing", Required: false})
		c.Fields.Add(&core.TextField{Name: "supplier", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	recipes := ensureCollection(app, "recipes", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      false,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "category", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "recipe_type",
			Required:  false,
			Values:    []string{"single", "batch"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "base_servings", Required: false})
		c.Fields.Add(&core.NumberField{Name: "batch_yield", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sell_price", Required: false})
		c.Fields.Add(&core.TextField{Name: "method", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "recipe_ingredients", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "recipe",
			Required:      true,
			CollectionId:  recipes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "ingredient",
			Required:      true,
			CollectionId:  ingredients.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true})
		c.Fields.Add(&core.TextField{Name: "unit", Required: true})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	orders := ensureCollection(app, "orders", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      false,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "customer", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_contact", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_address", Required: false})
		c.Fields.Add(&core.TextField{Name: "order_number", Required: false})
		c.Fields.Add(&core.TextField{Name: "delivery_date", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"draft", "confirmed", "in_production", "delivered", "invoiced", "cancelled"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "order_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "order",
			Required:      true,
			CollectionId:  orders.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "recipe",
			Required:      true,
			CollectionId:  recipes.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "qty", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	plans := ensureCollection(app, "production_plans", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      false,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "plan_date", Required: true})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "production_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "plan",
			Required:      true,
			CollectionId:  plans.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "recipe",
			Required:      true,
			CollectionId:  recipes.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "planned_servings", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "shifts", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "company",
			Required:      false,
			CollectionId:  companies.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "staff_name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "role",
			Required:  false,
			Values:    []string{"Baker", "Pastry Chef", "Decorator", "Front of House", "Delivery"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "shift_date", Required: true})
		c.Fields.Add(&core.TextField{Name: "start", Required: false})
		c.Fields.Add(&core.TextField{Name: "end", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
