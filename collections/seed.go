package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type tierDef struct {
	packQuantity float64
	packPrice    float64
}

type ingredientDef struct {
	name         string
	category     string
	packPrice    float64
	packQuantity float64
	packUnit     string
	density      float64
	allergens    string
	supplier     string
	tiers        []tierDef
}

type recipeLineDef struct {
	ingredientName string
	quantity       float64
	unit           string
}

type recipeDef struct {
	name         string
	category     string
	recipeType   string
	baseServings float64
	sellPrice    float64
	method       string
	lines        []recipeLineDef
}

type orderItemDef struct {
	recipeName string
	qty        float64
	unitPrice  float64
}

type orderDef struct {
	customer        string
	customerContact string
	customerAddress string
	orderNumber     string
	deliveryDate    string
	status          string
	notes           string
	items           []orderItemDef
}

type planItemDef struct {
	recipeName      string
	plannedServings float64
}

type planDef struct {
	planDate string
	notes    string
	items    []planItemDef
}

type shiftDef struct {
	staffName string
	role      string
	shiftDate string
	start     string
	end       string
}

// Seed populates all collections with a realistic demo bakery. It is safe
// to call on every startup because it returns early if any company records
// already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if companies already exist ─────────────────
	companiesCol, err := app.FindCollectionByNameOrId("companies")
	if err != nil {
		return fmt.Errorf("seed: could not find companies collection: %w", err)
	}
	existing, err := app.FindAllRecords(companiesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query companies: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: companies collection is empty – inserting seed data …")

	// ── lookup helper collections ────────────────────────────────────
	ingredientsCol, err := app.FindCollectionByNameOrId("ingredients")
	if err != nil {
		return fmt.Errorf("seed: could not find ingredients collection: %w", err)
	}
	recipesCol, err := app.FindCollectionByNameOrId("recipes")
	if err != nil {
		return fmt.Errorf("seed: could not find recipes collection: %w", err)
	}
	recipeIngredientsCol, err := app.FindCollectionByNameOrId("recipe_ingredients")
	if err != nil {
		return fmt.Errorf("seed: could not find recipe_ingredients collection: %w", err)
	}
	ordersCol, err := app.FindCollectionByNameOrId("orders")
	if err != nil {
		return fmt.Errorf("seed: could not find orders collection: %w", err)
	}
	orderItemsCol, err := app.FindCollectionByNameOrId("order_items")
	if err != nil {
		return fmt.Errorf("seed: could not find order_items collection: %w", err)
	}
	plansCol, err := app.FindCollectionByNameOrId("production_plans")
	if err != nil {
		return fmt.Errorf("seed: could not find production_plans collection: %w", err)
	}
	planItemsCol, err := app.FindCollectionByNameOrId("production_items")
	if err != nil {
		return fmt.Errorf("seed: could not find production_items collection: %w", err)
	}
	shiftsCol, err := app.FindCollectionByNameOrId("shifts")
	if err != nil {
		return fmt.Errorf("seed: could not find shifts collection: %w", err)
	}

	// ── company ──────────────────────────────────────────────────────
	company := core.NewRecord(companiesCol)
	company.Set("name", "Hornby Bakehouse")
	company.Set("reference", "HORNBY")
	if err := app.Save(company); err != nil {
		return fmt.Errorf("seed: save company: %w", err)
	}

	// ── helper: create ingredient ────────────────────────────────────
	ingredientIDs := make(map[string]string)
	createIngredient := func(d ingredientDef) error {
		r := core.NewRecord(ingredientsCol)
		r.Set("company", company.Id)
		r.Set("name", d.name)
		r.Set("category", d.category)
		r.Set("pack_price", d.packPrice)
		r.Set("pack_quantity", d.packQuantity)
		r.Set("pack_unit", d.packUnit)
		if d.density > 0 {
			r.Set("density", d.density)
		}
		r.Set("allergens", d.allergens)
		r.Set("supplier", d.supplier)
		if len(d.tiers) > 0 {
			tiers := make([]map[string]any, 0, len(d.tiers))
			for _, t := range d.tiers {
				tiers = append(tiers, map[string]any{
					"pack_quantity": t.packQuantity,
					"pack_price":    t.packPrice,
				})
			}
			r.Set("batch_pricing", tiers)
		}
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save ingredient %q: %w", d.name, err)
		}
		ingredientIDs[d.name] = r.Id
		return nil
	}

	// ── helper: create recipe with lines ─────────────────────────────
	recipeIDs := make(map[string]string)
	createRecipe := func(d recipeDef) error {
		r := core.NewRecord(recipesCol)
		r.Set("company", company.Id)
		r.Set("name", d.name)
		r.Set("category", d.category)
		r.Set("recipe_type", d.recipeType)
		r.Set("base_servings", d.baseServings)
		r.Set("sell_price", d.sellPrice)
		r.Set("method", d.method)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save recipe %q: %w", d.name, err)
		}
		recipeIDs[d.name] = r.Id

		for i, line := range d.lines {
			ingredientID, ok := ingredientIDs[line.ingredientName]
			if !ok {
				return fmt.Errorf("seed: recipe %q references unknown ingredient %q", d.name, line.ingredientName)
			}
			lr := core.NewRecord(recipeIngredientsCol)
			lr.Set("recipe", r.Id)
			lr.Set("ingredient", ingredientID)
			lr.Set("quantity", line.quantity)
			lr.Set("unit", line.unit)
			lr.Set("sort_order", i+1)
			if err := app.Save(lr); err != nil {
				return fmt.Errorf("seed: save recipe line %q/%q: %w", d.name, line.ingredientName, err)
			}
		}
		return nil
	}

	// ── helper: create order with items ──────────────────────────────
	createOrder := func(d orderDef) error {
		r := core.NewRecord(ordersCol)
		r.Set("company", company.Id)
		r.Set("customer", d.customer)
		r.Set("customer_contact", d.customerContact)
		r.Set("customer_address", d.customerAddress)
		r.Set("order_number", d.orderNumber)
		r.Set("delivery_date", d.deliveryDate)
		r.Set("status", d.status)
		r.Set("notes", d.notes)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save order %q: %w", d.orderNumber, err)
		}

		for _, item := range d.items {
			recipeID, ok := recipeIDs[item.recipeName]
			if !ok {
				return fmt.Errorf("seed: order %q references unknown recipe %q", d.orderNumber, item.recipeName)
			}
			ir := core.NewRecord(orderItemsCol)
			ir.Set("order", r.Id)
			ir.Set("recipe", recipeID)
			ir.Set("qty", item.qty)
			ir.Set("unit_price", item.unitPrice)
			if err := app.Save(ir); err != nil {
				return fmt.Errorf("seed: save order item %q: %w", item.recipeName, err)
			}
		}
		return nil
	}

	// ── helper: create production plan with items ────────────────────
	createPlan := func(d planDef) error {
		r := core.NewRecord(plansCol)
		r.Set("company", company.Id)
		r.Set("plan_date", d.planDate)
		r.Set("notes", d.notes)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save production plan %q: %w", d.planDate, err)
		}

		for _, item := range d.items {
			recipeID, ok := recipeIDs[item.recipeName]
			if !ok {
				return fmt.Errorf("seed: plan %q references unknown recipe %q", d.planDate, item.recipeName)
			}
			ir := core.NewRecord(planItemsCol)
			ir.Set("plan", r.Id)
			ir.Set("recipe", recipeID)
			ir.Set("planned_servings", item.plannedServings)
			if err := app.Save(ir); err != nil {
				return fmt.Errorf("seed: save plan item %q: %w", item.recipeName, err)
			}
		}
		return nil
	}

	// ── helper: create shift ─────────────────────────────────────────
	createShift := func(d shiftDef) error {
		r := core.NewRecord(shiftsCol)
		r.Set("company", company.Id)
		r.Set("staff_name", d.staffName)
		r.Set("role", d.role)
		r.Set("shift_date", d.shiftDate)
		r.Set("start", d.start)
		r.Set("end", d.end)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save shift %q: %w", d.staffName, err)
		}
		return nil
	}

	// ── ingredients ──────────────────────────────────────────────────
	ingredients := []ingredientDef{
		{name: "Plain Flour", category: "Flour & Grains", packPrice: 1.10, packQuantity: 1500, packUnit: "g", density: 0.53, allergens: "Gluten", supplier: "Shipton Mill"},
		{name: "Strong White Bread Flour", category: "Flour & Grains", packPrice: 12.50, packQuantity: 16000, packUnit: "g", density: 0.53, allergens: "Gluten", supplier: "Shipton Mill",
			tiers: []tierDef{{packQuantity: 25000, packPrice: 17.80}}},
		{name: "Caster Sugar", category: "Sugars & Sweeteners", packPrice: 1.45, packQuantity: 1000, packUnit: "g", density: 0.85, supplier: "Booker"},
		{name: "Icing Sugar", category: "Sugars & Sweeteners", packPrice: 1.25, packQuantity: 500, packUnit: "g", density: 0.56, supplier: "Booker"},
		{name: "Unsalted Butter", category: "Fats & Oils", packPrice: 1.99, packQuantity: 250, packUnit: "g", density: 0.911, allergens: "Milk", supplier: "Longley Farm"},
		{name: "Whole Milk", category: "Dairy & Eggs", packPrice: 1.45, packQuantity: 2272, packUnit: "ml", density: 1.03, allergens: "Milk", supplier: "Longley Farm"},
		{name: "Free Range Eggs", category: "Dairy & Eggs", packPrice: 2.40, packQuantity: 720, packUnit: "g", supplier: "Longley Farm", allergens: "Egg"},
		{name: "Fine Sea Salt", category: "Spices & Flavourings", packPrice: 0.85, packQuantity: 750, packUnit: "g", density: 1.2, supplier: "Booker"},
		{name: "Instant Dried Yeast", category: "Raising Agents", packPrice: 3.20, packQuantity: 500, packUnit: "g", supplier: "Booker"},
		{name: "Baking Powder", category: "Raising Agents", packPrice: 1.15, packQuantity: 170, packUnit: "g", supplier: "Booker"},
		{name: "Dark Chocolate 70%", category: "Chocolate", packPrice: 6.80, packQuantity: 1000, packUnit: "g", allergens: "Milk, Soya", supplier: "Callebaut"},
		{name: "Vanilla Extract", category: "Spices & Flavourings", packPrice: 4.95, packQuantity: 100, packUnit: "ml", density: 0.88, supplier: "Nielsen-Massey"},
		{name: "Double Cream", category: "Dairy & Eggs", packPrice: 2.10, packQuantity: 600, packUnit: "ml", density: 1.01, allergens: "Milk", supplier: "Longley Farm"},
	}
	for _, d := range ingredients {
		if err := createIngredient(d); err != nil {
			return err
		}
	}

	// ── recipes ──────────────────────────────────────────────────────
	recipes := []recipeDef{
		{
			name: "Sourdough Loaf", category: "Bread", recipeType: "single",
			baseServings: 1, sellPrice: 4.20,
			method: "Autolyse flour and water, fold in levain and salt, bulk ferment 4h with folds, shape, retard overnight, bake at 240C with steam.",
			lines: []recipeLineDef{
				{ingredientName: "Strong White Bread Flour", quantity: 500, unit: "g"},
				{ingredientName: "Fine Sea Salt", quantity: 10, unit: "g"},
				{ingredientName: "Instant Dried Yeast", quantity: 1, unit: "tsp"},
			},
		},
		{
			name: "Victoria Sponge", category: "Cakes", recipeType: "single",
			baseServings: 12, sellPrice: 18.00,
			method: "Cream butter and sugar, beat in eggs, fold in flour and baking powder, bake two tins at 180C for 25 min, sandwich with jam and cream.",
			lines: []recipeLineDef{
				{ingredientName: "Unsalted Butter", quantity: 225, unit: "g"},
				{ingredientName: "Caster Sugar", quantity: 225, unit: "g"},
				{ingredientName: "Free Range Eggs", quantity: 4, unit: "large"},
				{ingredientName: "Plain Flour", quantity: 225, unit: "g"},
				{ingredientName: "Baking Powder", quantity: 2, unit: "tsp"},
				{ingredientName: "Vanilla Extract", quantity: 1, unit: "tsp"},
				{ingredientName: "Double Cream", quantity: 150, unit: "ml"},
			},
		},
		{
			name: "Chocolate Brownies", category: "Cakes", recipeType: "batch",
			baseServings: 16, sellPrice: 2.50,
			method: "Melt chocolate and butter, whisk eggs and sugar to ribbon, combine, fold in flour, bake at 170C for 28 min.",
			lines: []recipeLineDef{
				{ingredientName: "Dark Chocolate 70%", quantity: 200, unit: "g"},
				{ingredientName: "Unsalted Butter", quantity: 175, unit: "g"},
				{ingredientName: "Caster Sugar", quantity: 325, unit: "g"},
				{ingredientName: "Free Range Eggs", quantity: 3, unit: "large"},
				{ingredientName: "Plain Flour", quantity: 130, unit: "g"},
				{ingredientName: "Fine Sea Salt", quantity: 1, unit: "pinch"},
			},
		},
	}
	for _, d := range recipes {
		if err := createRecipe(d); err != nil {
			return err
		}
	}

	// ── wholesale order ──────────────────────────────────────────────
	order := orderDef{
		customer:        "The Corner Cafe",
		customerContact: "Alex Murray",
		customerAddress: "12 Station Road\nLancaster LA1 1AA",
		orderNumber:     "BKO-HORNBY-25-26-001",
		deliveryDate:    "2026-09-04",
		status:          "confirmed",
		notes:           "Deliver to rear entrance before 7am.",
		items: []orderItemDef{
			{recipeName: "Sourdough Loaf", qty: 20, unitPrice: 2.80},
			{recipeName: "Victoria Sponge", qty: 2, unitPrice: 12.50},
		},
	}
	if err := createOrder(order); err != nil {
		return err
	}

	// ── production plan ──────────────────────────────────────────────
	plan := planDef{
		planDate: "2026-09-04",
		notes:    "Thursday wholesale bake.",
		items: []planItemDef{
			{recipeName: "Sourdough Loaf", plannedServings: 24},
			{recipeName: "Victoria Sponge", plannedServings: 24},
			{recipeName: "Chocolate Brownies", plannedServings: 32},
		},
	}
	if err := createPlan(plan); err != nil {
		return err
	}

	// ── shifts ───────────────────────────────────────────────────────
	shifts := []shiftDef{
		{staffName: "Priya Shah", role: "Baker", shiftDate: "2026-09-04", start: "04:00", end: "12:00"},
		{staffName: "Tom Ridley", role: "Pastry Chef", shiftDate: "2026-09-04", start: "06:00", end: "14:00"},
		{staffName: "Megan Clarke", role: "Front of House", shiftDate: "2026-09-04", start: "08:00", end: "16:00"},
	}
	for _, d := range shifts {
		if err := createShift(d); err != nil {
			return err
		}
	}

	log.Println("seed: demo bakery inserted.")
	return nil
}
