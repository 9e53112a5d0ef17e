package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// IngredientExportColumn defines a column in the ingredient export spreadsheet.
type IngredientExportColumn struct {
	Header string
	Field  string  // field name on the PocketBase record
	Width  float64 // column width in Excel units
}

// IngredientExportData holds all data needed for ingredient export.
type IngredientExportData struct {
	CompanyName string
	Columns     []IngredientExportColumn
	Rows        []map[string]string // each row is field -> value
}

// IngredientColumns returns the export columns for the ingredient list.
func IngredientColumns() []IngredientExportColumn {
	return []IngredientExportColumn{
		{Header: "Ingredient Name", Field: "name", Width: 30},
		{Header: "Category", Field: "category", Width: 22},
		{Header: "Pack Price (£)", Field: "pack_price", Width: 14},
		{Header: "Pack Quantity", Field: "pack_quantity", Width: 14},
		{Header: "Pack Unit", Field: "pack_unit", Width: 10},
		{Header: "Density (g/ml)", Field: "density", Width: 14},
		{Header: "Allergens", Field: "allergens", Width: 28},
		{Header: "Supplier", Field: "supplier", Width: 25},
	}
}

// GenerateIngredientExcel creates an Excel file from ingredient export data.
func GenerateIngredientExcel(data IngredientExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Ingredients"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	cols := columnLetters(len(data.Columns))
	lastCol := cols[len(cols)-1]

	// Title row.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.CompanyName)+" - Ingredients")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	// Header row.
	for i, col := range data.Columns {
		cell := fmt.Sprintf("%s3", cols[i])
		f.SetCellValue(sheetName, cell, col.Header)
		f.SetColWidth(sheetName, cols[i], cols[i], col.Width)
	}
	f.SetCellStyle(sheetName, "A3", lastCol+"3", headerStyle)

	// Data rows.
	for rowIdx, rowData := range data.Rows {
		rowNum := rowIdx + 4
		for i, col := range data.Columns {
			cell := fmt.Sprintf("%s%d", cols[i], rowNum)
			f.SetCellValue(sheetName, cell, sanitizeExcelCell(rowData[col.Field]))
		}
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), rowStyle)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}
