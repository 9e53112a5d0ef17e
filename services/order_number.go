package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// GetFiscalYear returns the UK fiscal year string for a given date.
// The financial year runs April to March.
// Jan 2026 → "25-26", May 2026 → "26-27"
func GetFiscalYear(t time.Time) string {
	year := t.Year()
	month := t.Month()

	var startYear int
	if month >= time.April {
		startYear = year
	} else {
		startYear = year - 1
	}
	endYear := startYear + 1

	return fmt.Sprintf("%02d-%02d", startYear%100, endYear%100)
}

// formatOrderNumber constructs the order number string from components.
// Uses "-" as separator so company references containing "/" don't clash.
func formatOrderNumber(companyRef, fiscalYear string, sequence int) string {
	return fmt.Sprintf("BKO-%s-%s-%03d", companyRef, fiscalYear, sequence)
}

// GenerateOrderNumber creates the next wholesale order number for a company.
// Format: BKO-{company_ref}-{fiscal_year}-{sequence}
// - company_ref: company's reference slug (falls back to company ID if empty)
// - fiscal_year: UK fiscal year (Apr-Mar), e.g., "25-26"
// - sequence: 3-digit zero-padded, per company per fiscal year
func GenerateOrderNumber(app *pocketbase.PocketBase, companyID string, now time.Time) (string, error) {
	company, err := app.FindRecordById("companies", companyID)
	if err != nil {
		return "", fmt.Errorf("company not found: %w", err)
	}

	companyRef := company.GetString("reference")
	if companyRef == "" {
		companyRef = companyID
	}

	fiscalYear := GetFiscalYear(now)

	prefix := fmt.Sprintf("BKO-%s-%s-", companyRef, fiscalYear)

	existing, err := app.FindRecordsByFilter(
		"orders",
		"company = {:companyId} && order_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{
			"companyId": companyID,
			"prefix":    prefix + "%",
		},
	)
	if err != nil {
		existing = nil
	}

	nextSeq := len(existing) + 1

	return formatOrderNumber(companyRef, fiscalYear, nextSeq), nil
}
