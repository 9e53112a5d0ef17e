package services

// TemplateField describes one column in an ingredient import template.
type TemplateField struct {
	Key            string // internal name, matches PocketBase field name
	Label          string // human-readable header shown in Excel
	Description    string // shown on the Instructions sheet
	FormatRule     string // e.g. "number", "g or ml", ""
	ExampleValue   string // shown on the Instructions sheet
	AlwaysRequired bool
}

// IngredientTemplateFields returns the ordered list of columns for
// ingredient import templates.
func IngredientTemplateFields() []TemplateField {
	return []TemplateField{
		{Key: "name", Label: "Ingredient Name", Description: "Name as it appears in recipes", ExampleValue: "Plain Flour", AlwaysRequired: true},
		{Key: "category", Label: "Category", Description: "Grouping shown on the ingredients page (select from dropdown)", ExampleValue: "Flour & Grains"},
		{Key: "pack_price", Label: "Pack Price (£)", Description: "Price paid for one pack", FormatRule: "Number, e.g. 1.20", ExampleValue: "1.20", AlwaysRequired: true},
		{Key: "pack_quantity", Label: "Pack Quantity", Description: "Pack size in the pack unit below", FormatRule: "Number greater than 0", ExampleValue: "1500", AlwaysRequired: true},
		{Key: "pack_unit", Label: "Pack Unit", Description: "Base unit the pack is measured in (select from dropdown)", FormatRule: "g or ml", ExampleValue: "g", AlwaysRequired: true},
		{Key: "density", Label: "Density (g/ml)", Description: "Only needed when recipes use this ingredient across mass and volume", FormatRule: "Number greater than 0, blank for unknown", ExampleValue: "0.53"},
		{Key: "allergens", Label: "Allergens", Description: "Comma-separated allergen list", ExampleValue: "Gluten"},
		{Key: "supplier", Label: "Supplier", Description: "Where the ingredient is purchased", ExampleValue: "Shipton Mill"},
	}
}
