package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

const importBatchSize = 100

// ValidationError represents a single field-level error on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is returned after parsing and validating an uploaded file.
type ValidationResult struct {
	TotalRows  int                 `json:"total_rows"`
	ValidRows  int                 `json:"valid_rows"`
	ErrorRows  int                 `json:"error_rows"`
	Errors     []ValidationError   `json:"errors"`
	ParsedRows []map[string]string `json:"-"`
	FileName   string              `json:"-"`
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file multipart.File) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return rows[0], rows[1:], nil
}

// mapHeadersToFields maps uploaded column headers to TemplateField keys.
// Returns an ordered list of field keys (one per column) and any
// unrecognized columns.
func mapHeadersToFields(headers []string, fields []TemplateField) ([]string, []string) {
	labelToKey := make(map[string]string, len(fields))
	for _, f := range fields {
		normalized := strings.ToLower(strings.TrimSpace(f.Label))
		labelToKey[normalized] = f.Key
	}

	mapped := make([]string, len(headers))
	var unrecognized []string

	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		// Strip trailing " *" that our template adds for required fields
		norm = strings.TrimSuffix(norm, " *")
		norm = strings.TrimSpace(norm)

		if key, ok := labelToKey[norm]; ok {
			mapped[i] = key
		} else {
			mapped[i] = ""
			unrecognized = append(unrecognized, h)
		}
	}
	return mapped, unrecognized
}

// validateIngredientRow checks one parsed row's field formats.
func validateIngredientRow(rowNum int, rowData map[string]string) []ValidationError {
	var errs []ValidationError

	addErr := func(field, msg string) {
		errs = append(errs, ValidationError{Row: rowNum, Field: field, Message: msg})
	}

	if v := rowData["pack_price"]; v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			addErr("Pack Price (£)", "Pack price must be a number of 0 or more")
		}
	}
	if v := rowData["pack_quantity"]; v != "" {
		qty, err := strconv.ParseFloat(v, 64)
		if err != nil || qty <= 0 {
			addErr("Pack Quantity", "Pack quantity must be a number greater than 0")
		}
	}
	if v := rowData["pack_unit"]; v != "" {
		u := strings.ToLower(strings.TrimSpace(v))
		if u != string(BaseGrams) && u != string(BaseMillilitres) {
			addErr("Pack Unit", `Pack unit must be "g" or "ml"`)
		}
	}
	if v := rowData["density"]; v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d <= 0 {
			addErr("Density (g/ml)", "Density must be a number greater than 0, or blank")
		}
	}

	return errs
}

// ValidateIngredientFile parses and validates an uploaded ingredient file
// (.csv or .xlsx) without writing anything.
func ValidateIngredientFile(file multipart.File, fileName string) (*ValidationResult, error) {
	fields := IngredientTemplateFields()

	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return nil, err
	}

	columnKeys, _ := mapHeadersToFields(headers, fields)

	keyToLabel := make(map[string]string, len(fields))
	isRequired := make(map[string]bool)
	for _, f := range fields {
		keyToLabel[f.Key] = f.Label
		if f.AlwaysRequired {
			isRequired[f.Key] = true
		}
	}

	result := &ValidationResult{
		TotalRows:  len(dataRows),
		FileName:   fileName,
		ParsedRows: make([]map[string]string, 0, len(dataRows)),
	}

	errorRowSet := make(map[int]bool)
	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		rowData := make(map[string]string)
		var rowErrors []ValidationError

		for colIdx, key := range columnKeys {
			if key == "" {
				continue
			}
			value := ""
			if colIdx < len(row) {
				value = strings.TrimSpace(row[colIdx])
			}
			rowData[key] = value
		}

		for key := range isRequired {
			if rowData[key] == "" {
				label := keyToLabel[key]
				rowErrors = append(rowErrors, ValidationError{
					Row:     rowNum,
					Field:   label,
					Message: fmt.Sprintf("%s is required", label),
				})
			}
		}

		rowErrors = append(rowErrors, validateIngredientRow(rowNum, rowData)...)

		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			errorRowSet[rowNum] = true
		}
		result.ParsedRows = append(result.ParsedRows, rowData)
	}

	result.ErrorRows = len(errorRowSet)
	result.ValidRows = result.TotalRows - result.ErrorRows
	return result, nil
}

// ImportResult holds the outcome of a batch import operation.
type ImportResult struct {
	TotalRows  int              `json:"total_rows"`
	Imported   int              `json:"imported"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors,omitempty"`
	RolledBack bool             `json:"rolled_back"`
}

// ImportRowError represents a failure to insert a specific row.
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CommitIngredientImport re-validates and batch-inserts parsed ingredient
// rows for a company. Rows are processed in chunks of importBatchSize;
// a failed insert rolls back its whole chunk and later chunks continue.
func CommitIngredientImport(
	app *pocketbase.PocketBase,
	companyID string,
	parsedRows []map[string]string,
) (*ImportResult, error) {
	var revalidationErrors []ValidationError
	for i, rowData := range parsedRows {
		rowNum := i + 2
		if rowData["name"] == "" {
			revalidationErrors = append(revalidationErrors, ValidationError{
				Row: rowNum, Field: "Ingredient Name", Message: "Ingredient Name is required",
			})
		}
		revalidationErrors = append(revalidationErrors, validateIngredientRow(rowNum, rowData)...)
	}
	if len(revalidationErrors) > 0 {
		errorRowSet := make(map[int]bool)
		for _, e := range revalidationErrors {
			errorRowSet[e.Row] = true
		}
		return &ImportResult{
			TotalRows:  len(parsedRows),
			Failed:     len(errorRowSet),
			Errors:     toImportRowErrors(revalidationErrors),
			RolledBack: true,
		}, nil
	}

	col, err := app.FindCollectionByNameOrId("ingredients")
	if err != nil {
		return nil, fmt.Errorf("ingredients collection not found: %w", err)
	}

	result := &ImportResult{TotalRows: len(parsedRows)}

	for chunkStart := 0; chunkStart < len(parsedRows); chunkStart += importBatchSize {
		chunkEnd := chunkStart + importBatchSize
		if chunkEnd > len(parsedRows) {
			chunkEnd = len(parsedRows)
		}
		chunk := parsedRows[chunkStart:chunkEnd]

		chunkErrors := insertIngredientChunk(app, col, companyID, chunk, chunkStart)
		if len(chunkErrors) > 0 {
			result.Errors = append(result.Errors, chunkErrors...)
			result.Failed += len(chunk)
			result.RolledBack = true
		} else {
			result.Imported += len(chunk)
		}
	}

	return result, nil
}

// insertIngredientChunk inserts a batch of rows within one transaction.
// Any failure rolls back the entire chunk.
func insertIngredientChunk(
	app *pocketbase.PocketBase,
	col *core.Collection,
	companyID string,
	rows []map[string]string,
	startOffset int,
) []ImportRowError {
	var chunkErrors []ImportRowError

	err := app.RunInTransaction(func(txApp core.App) error {
		for i, rowData := range rows {
			rowNum := startOffset + i + 2

			record := core.NewRecord(col)
			record.Set("company", companyID)
			record.Set("name", rowData["name"])
			record.Set("category", rowData["category"])
			record.Set("allergens", rowData["allergens"])
			record.Set("supplier", rowData["supplier"])
			record.Set("pack_unit", strings.ToLower(strings.TrimSpace(rowData["pack_unit"])))

			price, _ := strconv.ParseFloat(rowData["pack_price"], 64)
			record.Set("pack_price", price)
			qty, _ := strconv.ParseFloat(rowData["pack_quantity"], 64)
			record.Set("pack_quantity", qty)
			if d, err := strconv.ParseFloat(rowData["density"], 64); err == nil && d > 0 {
				record.Set("density", d)
			}

			if err := txApp.Save(record); err != nil {
				chunkErrors = append(chunkErrors, ImportRowError{
					Row:     rowNum,
					Field:   "Ingredient Name",
					Message: fmt.Sprintf("failed to save: %v", err),
				})
				return err // roll back the chunk
			}
		}
		return nil
	})
	if err != nil && len(chunkErrors) == 0 {
		chunkErrors = append(chunkErrors, ImportRowError{
			Row: startOffset + 2, Message: fmt.Sprintf("chunk failed: %v", err),
		})
	}
	return chunkErrors
}

func toImportRowErrors(errs []ValidationError) []ImportRowError {
	out := make([]ImportRowError, len(errs))
	for i, e := range errs {
		out[i] = ImportRowError{Row: e.Row, Field: e.Field, Message: e.Message}
	}
	return out
}

// GenerateErrorReport builds an .xlsx listing validation errors so the
// user can fix their upload offline.
func GenerateErrorReport(errors []ValidationError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Errors"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#B91C1C"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	headers := []string{"Row", "Field", "Problem"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 22)
	f.SetColWidth(sheetName, "C", "C", 60)

	for i, e := range errors {
		rowNum := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), e.Row)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), e.Field)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), e.Message)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
