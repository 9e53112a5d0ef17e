package services

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func costingFixture() CostingExportData {
	return CostingExportData{
		RecipeName:   "Victoria Sponge",
		Category:     "cakes",
		CompanyName:  "Hornby Bakehouse",
		CreatedDate:  "2026-03-15",
		Servings:     12,
		ServingLabel: "servings",
		Rows: []CostingExportRow{
			{Index: 1, IngredientName: "Plain Flour", Quantity: 500, Unit: "g", Cost: computed(0.40)},
			{Index: 2, IngredientName: "Butter", Quantity: 250, Unit: "g", Cost: computed(1.00)},
			{Index: 3, IngredientName: "Vanilla Extract", Quantity: 1, Unit: "tsp", Cost: unknown(ReasonNoPackPrice), Approximate: true},
		},
		TotalCost:      1.40,
		UnknownLines:   1,
		CostPerServing: 0.1167,
		HasPerServing:  true,
		SellPrice:      4.50,
		FoodCostLabel:  "31.1%",
		MarkupLabel:    "221.4%",
		HealthBand:     BandGood,
	}
}

func TestGenerateCostingExcel_Basic(t *testing.T) {
	result, err := GenerateCostingExcel(costingFixture())
	if err != nil {
		t.Fatalf("GenerateCostingExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateCostingExcel() returned empty bytes")
	}

	// Verify it's a valid Excel file
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Victoria Sponge" {
		t.Errorf("expected sheet name 'Victoria Sponge', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if !strings.Contains(title, "Victoria Sponge") {
		t.Errorf("expected title to mention recipe name, got %q", title)
	}

	// Row 6 = first data row
	name, _ := f.GetCellValue(sheets[0], "B6")
	if name != "Plain Flour" {
		t.Errorf("first ingredient = %q, want 'Plain Flour'", name)
	}
	cost, _ := f.GetCellValue(sheets[0], "E6")
	if cost != "£0.40" {
		t.Errorf("first cost = %q, want '£0.40'", cost)
	}
}

func TestGenerateCostingExcel_UnpricedLine(t *testing.T) {
	result, err := GenerateCostingExcel(costingFixture())
	if err != nil {
		t.Fatalf("GenerateCostingExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]

	// Third data row is the unpriced vanilla line
	name, _ := f.GetCellValue(sheet, "B8")
	if !strings.Contains(name, "Vanilla Extract") {
		t.Errorf("third ingredient = %q, want vanilla", name)
	}
	if !strings.Contains(name, "approx") {
		t.Errorf("approximate line should be flagged, got %q", name)
	}
	cost, _ := f.GetCellValue(sheet, "E8")
	if !strings.Contains(cost, "no pricing data") {
		t.Errorf("unpriced cost cell = %q, want 'no pricing data' note", cost)
	}
}

func TestGenerateCostingExcel_EmptyRecipeName(t *testing.T) {
	data := costingFixture()
	data.RecipeName = ""

	result, err := GenerateCostingExcel(data)
	if err != nil {
		t.Fatalf("GenerateCostingExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList()[0]; got != "Costing" {
		t.Errorf("expected default sheet name 'Costing', got %q", got)
	}
}

func TestGenerateCostingExcel_LongRecipeName(t *testing.T) {
	data := costingFixture()
	data.RecipeName = "This is a very long recipe name that exceeds thirty one characters"

	result, err := GenerateCostingExcel(data)
	if err != nil {
		t.Fatalf("GenerateCostingExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	if got := f.GetSheetList()[0]; len(got) > 31 {
		t.Errorf("sheet name exceeds 31 chars: %d", len(got))
	}
}

func TestGenerateCostingExcel_NoRows(t *testing.T) {
	data := CostingExportData{
		RecipeName:   "Empty Recipe",
		CompanyName:  "Hornby Bakehouse",
		CreatedDate:  "2026-03-15",
		Servings:     1,
		ServingLabel: "servings",
	}

	result, err := GenerateCostingExcel(data)
	if err != nil {
		t.Fatalf("GenerateCostingExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateCostingExcel() returned empty bytes")
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"normal text", "Plain Flour", "Plain Flour"},
		{"starts with equals", "=SUM(A1:A10)", "'=SUM(A1:A10)"},
		{"starts with plus", "+1234", "'+1234"},
		{"starts with minus", "-100", "'-100"},
		{"starts with at", "@import", "'@import"},
		{"starts with tab", "\tdata", "'\tdata"},
		{"starts with pipe", "|command", "'|command"},
		{"starts with carriage return", "\rdata", "'\rdata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeExcelCell(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Errorf("thinBorders() returned %d borders, want 4", len(borders))
	}

	sides := map[string]bool{"left": false, "top": false, "bottom": false, "right": false}
	for _, b := range borders {
		sides[b.Type] = true
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1 (thin)", b.Type, b.Style)
		}
	}
	for side, found := range sides {
		if !found {
			t.Errorf("missing border side: %s", side)
		}
	}
}
