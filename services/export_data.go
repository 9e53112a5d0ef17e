package services

// CostingExportRow is a single ingredient line on a recipe costing sheet.
type CostingExportRow struct {
	Index          int
	IngredientName string
	Quantity       float64
	Unit           string
	Cost           CostResult
	Approximate    bool
}

// CostingExportData holds everything needed to render a recipe costing
// sheet (Excel or PDF).
type CostingExportData struct {
	RecipeName     string
	Category       string
	CompanyName    string
	CreatedDate    string
	Servings       float64
	ServingLabel   string // "servings" or "slices"
	Rows           []CostingExportRow
	TotalCost      float64
	UnknownLines   int
	CostPerServing float64
	HasPerServing  bool
	SellPrice      float64
	FoodCostLabel  string // preformatted percentage or "N/A"
	MarkupLabel    string
	HealthBand     string
}
