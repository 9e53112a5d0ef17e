package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateCostingPDF creates a recipe costing sheet PDF using maroto/v2.
// It returns the raw PDF bytes or an error.
func GenerateCostingPDF(data CostingExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addCostingHeader(m, data)
	addCostingTableHeader(m)
	for _, r := range data.Rows {
		addCostingTableRow(m, r)
	}
	addCostingSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addCostingHeader adds the recipe title, company and date to the PDF.
func addCostingHeader(m core.Maroto, data CostingExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.RecipeName+" — Costing Sheet", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("%s · %s %s", data.CompanyName, FormatQty(data.Servings), data.ServingLabel), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addCostingTableHeader adds the column header row for the ingredient table.
func addCostingTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("#", headerText),
			).WithStyle(&headerCell),
			col.New(5).Add(
				text.New("Ingredient", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Qty", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Unit", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Cost", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addCostingTableRow adds one ingredient line. Unpriced lines render
// their reason in red italics instead of a cost figure.
func addCostingTableRow(m core.Maroto, r CostingExportRow) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	name := r.IngredientName
	if r.Approximate {
		name += " (approx.)"
	}

	costText := rightText
	costStr := ""
	if r.Cost.Computed() {
		costStr = FormatGBP(r.Cost.Amount)
	} else {
		costStr = string(r.Cost.Reason)
		costText.Style = fontstyle.Italic
		costText.Color = &props.Color{Red: 185, Green: 28, Blue: 28}
	}

	m.AddRows(
		row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), baseText)),
			col.New(5).Add(text.New(name, leftText)),
			col.New(2).Add(text.New(FormatQty(r.Quantity), rightText)),
			col.New(1).Add(text.New(r.Unit, baseText)),
			col.New(3).Add(text.New(costStr, costText)),
		),
	)
}

// addCostingSummary adds total, per-serving and margin rows.
func addCostingSummary(m core.Maroto, data CostingExportData) {
	m.AddRows(row.New(4))

	labelText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	addSummaryRow := func(label, value string) {
		m.AddRows(
			row.New(6).Add(
				col.New(9).Add(text.New(label, labelText)),
				col.New(3).Add(text.New(value, valueText)),
			),
		)
	}

	addSummaryRow("Total Cost:", FormatGBP(data.TotalCost))
	if data.UnknownLines > 0 {
		addSummaryRow("Unpriced Lines:", fmt.Sprintf("%d", data.UnknownLines))
	}
	if data.HasPerServing {
		addSummaryRow("Cost Per Serving:", FormatGBP(data.CostPerServing))
	}
	if data.SellPrice > 0 {
		addSummaryRow("Sell Price:", FormatGBP(data.SellPrice))
		addSummaryRow("Food Cost:", data.FoodCostLabel)
		addSummaryRow("Markup:", data.MarkupLabel)
		addSummaryRow("Margin Health:", data.HealthBand)
	}
}
