package services

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// OrderExportData holds all data needed to generate a wholesale order PDF.
type OrderExportData struct {
	// Supplier (the bakery)
	CompanyName string

	// Order header
	OrderNumber  string
	OrderDate    string
	DeliveryDate string
	Status       string

	// Customer
	CustomerName    string
	CustomerContact string
	CustomerAddress string

	// Line items
	LineItems []OrderExportLineItem

	// Totals
	OrderTotal float64

	Notes string
}

// OrderExportLineItem holds a single order line for PDF export.
type OrderExportLineItem struct {
	SINo       int
	RecipeName string
	Qty        float64
	UnitPrice  float64
	LineTotal  float64
}

// OrderLineTotal computes one wholesale order line's total.
func OrderLineTotal(qty, unitPrice float64) float64 {
	return qty * unitPrice
}

// OrderTotal sums line totals for a wholesale order.
func OrderTotal(items []OrderExportLineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal
	}
	return total
}

// BuildOrderExportData assembles all data needed for order PDF generation
// from PocketBase records.
func BuildOrderExportData(app *pocketbase.PocketBase, orderID string) (*OrderExportData, error) {
	order, err := app.FindRecordById("orders", orderID)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	companyName := ""
	if companyID := order.GetString("company"); companyID != "" {
		if company, err := app.FindRecordById("companies", companyID); err == nil {
			companyName = company.GetString("name")
		} else {
			log.Printf("order_export: could not find company %s: %v", companyID, err)
		}
	}

	itemRecords, err := app.FindRecordsByFilter(
		"order_items",
		"order = {:orderId}",
		"created",
		0,
		0,
		map[string]any{"orderId": orderID},
	)
	if err != nil {
		log.Printf("order_export: could not fetch items for order %s: %v", orderID, err)
		itemRecords = nil
	}

	var lineItems []OrderExportLineItem
	for i, item := range itemRecords {
		recipeName := ""
		if recipeID := item.GetString("recipe"); recipeID != "" {
			if recipe, err := app.FindRecordById("recipes", recipeID); err == nil {
				recipeName = recipe.GetString("name")
			} else {
				log.Printf("order_export: could not find recipe %s: %v", recipeID, err)
			}
		}

		qty := item.GetFloat("qty")
		unitPrice := item.GetFloat("unit_price")

		lineItems = append(lineItems, OrderExportLineItem{
			SINo:       i + 1,
			RecipeName: recipeName,
			Qty:        qty,
			UnitPrice:  unitPrice,
			LineTotal:  OrderLineTotal(qty, unitPrice),
		})
	}

	return &OrderExportData{
		CompanyName:     companyName,
		OrderNumber:     order.GetString("order_number"),
		OrderDate:       order.GetDateTime("created").Time().Format("02 Jan 2006"),
		DeliveryDate:    order.GetString("delivery_date"),
		Status:          order.GetString("status"),
		CustomerName:    order.GetString("customer"),
		CustomerContact: order.GetString("customer_contact"),
		CustomerAddress: order.GetString("customer_address"),
		LineItems:       lineItems,
		OrderTotal:      OrderTotal(lineItems),
		Notes:           order.GetString("notes"),
	}, nil
}
