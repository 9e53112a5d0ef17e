package services

// UnitOptions is the list of recipe units offered in quantity dropdowns.
var UnitOptions = []string{
	"g",
	"kg",
	"mg",
	"oz",
	"lb",
	"ml",
	"l",
	"fl-oz",
	"tbsp",
	"tsp",
	"cup",
	"each",
	"slice",
	"large",
	"medium",
	"small",
	"pinch",
	"dash",
}

// PackUnitOptions are the base units packs can be purchased in.
var PackUnitOptions = []string{"g", "ml"}

// IngredientCategoryOptions groups ingredients on list pages and imports.
var IngredientCategoryOptions = []string{
	"Flour & Grains",
	"Dairy & Eggs",
	"Sugars & Sweeteners",
	"Fats & Oils",
	"Fruit & Nuts",
	"Chocolate",
	"Raising Agents",
	"Spices & Flavourings",
	"Other",
}

// RecipeCategoryOptions groups recipes on list pages.
var RecipeCategoryOptions = []string{
	"Bread",
	"Cakes",
	"Pastries",
	"Biscuits",
	"Savoury",
	"Desserts",
	"Other",
}

// OrderStatusOptions are the wholesale order lifecycle states.
var OrderStatusOptions = []string{
	"draft",
	"confirmed",
	"in_production",
	"delivered",
	"invoiced",
	"cancelled",
}

// ShiftRoleOptions are the staff roles offered on the rota page.
var ShiftRoleOptions = []string{
	"Baker",
	"Pastry Chef",
	"Decorator",
	"Front of House",
	"Delivery",
}
