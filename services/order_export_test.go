package services

import (
	"math"
	"testing"
)

func TestOrderLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		qty       float64
		unitPrice float64
		want      float64
	}{
		{"simple", 10, 1.50, 15.00},
		{"zero quantity", 0, 2.00, 0},
		{"zero price", 5, 0, 0},
		{"fractional", 2.5, 1.20, 3.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrderLineTotal(tt.qty, tt.unitPrice)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("OrderLineTotal(%v, %v) = %v, want %v", tt.qty, tt.unitPrice, got, tt.want)
			}
		})
	}
}

func TestOrderTotal(t *testing.T) {
	items := []OrderExportLineItem{
		{SINo: 1, RecipeName: "Sourdough Loaf", Qty: 20, UnitPrice: 2.80, LineTotal: 56.00},
		{SINo: 2, RecipeName: "Victoria Sponge", Qty: 4, UnitPrice: 12.50, LineTotal: 50.00},
	}
	got := OrderTotal(items)
	if math.Abs(got-106.00) > 0.001 {
		t.Errorf("OrderTotal() = %v, want 106.00", got)
	}

	if OrderTotal(nil) != 0 {
		t.Errorf("OrderTotal(nil) = %v, want 0", OrderTotal(nil))
	}
}

func orderFixture() *OrderExportData {
	return &OrderExportData{
		CompanyName:     "Hornby Bakehouse",
		OrderNumber:     "BKO-HORNBY-25-26-001",
		OrderDate:       "2026-03-10",
		DeliveryDate:    "2026-03-14",
		Status:          "confirmed",
		CustomerName:    "The Corner Cafe",
		CustomerContact: "Alex Murray",
		CustomerAddress: "12 Station Road\nLancaster LA1 1AA",
		LineItems: []OrderExportLineItem{
			{SINo: 1, RecipeName: "Sourdough Loaf", Qty: 20, UnitPrice: 2.80, LineTotal: 56.00},
			{SINo: 2, RecipeName: "Victoria Sponge", Qty: 4, UnitPrice: 12.50, LineTotal: 50.00},
		},
		OrderTotal: 106.00,
		Notes:      "Deliver to rear entrance before 7am.",
	}
}

func TestGenerateOrderPDF_Complete(t *testing.T) {
	result, err := GenerateOrderPDF(orderFixture())
	if err != nil {
		t.Fatalf("GenerateOrderPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateOrderPDF() returned empty bytes")
	}
	if len(result) > 5 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header")
	}
}

func TestGenerateOrderPDF_EmptyLineItems(t *testing.T) {
	data := orderFixture()
	data.LineItems = nil
	data.OrderTotal = 0

	result, err := GenerateOrderPDF(data)
	if err != nil {
		t.Fatalf("GenerateOrderPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateOrderPDF() returned empty bytes")
	}
}

func TestGenerateOrderPDF_NoNotesOrCustomerDetail(t *testing.T) {
	data := orderFixture()
	data.Notes = ""
	data.CustomerContact = ""
	data.CustomerAddress = ""

	result, err := GenerateOrderPDF(data)
	if err != nil {
		t.Fatalf("GenerateOrderPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateOrderPDF() returned empty bytes")
	}
}
