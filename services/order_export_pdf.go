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

// GenerateOrderPDF creates a wholesale order document (delivery note /
// invoice) using maroto/v2. It returns the raw PDF bytes or an error.
func GenerateOrderPDF(data *OrderExportData) ([]byte, error) {
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

	addOrderHeader(m, data)
	addOrderCustomer(m, data)
	addOrderTableHeader(m)
	for _, item := range data.LineItems {
		addOrderTableRow(m, item)
	}
	addOrderSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func addOrderHeader(m core.Maroto, data *OrderExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.CompanyName, props.Text{
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
				text.New(fmt.Sprintf("Order: %s", data.OrderNumber), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.OrderDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Status: %s", data.Status), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Delivery: %s", data.DeliveryDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addOrderCustomer(m core.Maroto, data *OrderExportData) {
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New("Deliver To", props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	lines := []string{data.CustomerName}
	if data.CustomerAddress != "" {
		lines = append(lines, data.CustomerAddress)
	}
	if data.CustomerContact != "" {
		lines = append(lines, data.CustomerContact)
	}
	for _, line := range lines {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(line, props.Text{Size: 9, Align: align.Left}),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

func addOrderTableHeader(m core.Maroto) {
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
				text.New("Item", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Qty", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Unit Price", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Total", headerText),
			).WithStyle(&headerCell),
		),
	)
}

func addOrderTableRow(m core.Maroto, item OrderExportLineItem) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.SINo), baseText)),
			col.New(5).Add(text.New(item.RecipeName, leftText)),
			col.New(2).Add(text.New(FormatQty(item.Qty), rightText)),
			col.New(2).Add(text.New(FormatGBP(item.UnitPrice), rightText)),
			col.New(2).Add(text.New(FormatGBP(item.LineTotal), rightText)),
		),
	)
}

func addOrderSummary(m core.Maroto, data *OrderExportData) {
	m.AddRows(row.New(4))

	m.AddRows(
		row.New(7).Add(
			col.New(10).Add(
				text.New("Order Total:", props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
			col.New(2).Add(
				text.New(FormatGBP(data.OrderTotal), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	if data.Notes != "" {
		m.AddRows(row.New(4))
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New("Notes: "+data.Notes, props.Text{Size: 8, Align: align.Left}),
				),
			),
		)
	}
}
