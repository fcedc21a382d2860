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
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF creates a printable quote document from export data using
// maroto/v2. It returns the raw PDF bytes or an error.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
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

	addQuoteHeader(m, data)
	addQuoteTableHeader(m)
	for _, r := range data.Rows {
		addQuoteTableRow(m, r)
	}
	addQuoteSummary(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the title, customer details, and date to the PDF.
func addQuoteHeader(m core.Maroto, data ExportData) {
	// Title row
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Equipment Service Quote", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	subtleText := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	subtleRight := subtleText
	subtleRight.Align = align.Right

	// Customer and date row
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Customer: %s", data.CustomerName), subtleText),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", data.QuoteDate), subtleRight),
			),
		),
	)

	// Contact and serial row
	contact := data.ContactPerson
	if data.Phone != "" {
		contact = fmt.Sprintf("%s | %s", contact, data.Phone)
	}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Contact: %s", contact), subtleText),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Equipment Serial: %s", data.EquipmentSerial), subtleRight),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addQuoteTableHeader adds the column header row for the line item table.
func addQuoteTableHeader(m core.Maroto) {
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
			col.New(2).Add(
				text.New("SRT Code", headerText),
			).WithStyle(&headerCell),
			col.New(4).Add(
				text.New("Description", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Model", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Base Hrs", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Adj. Hrs", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Cost", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addQuoteTableRow adds a single line item row to the table.
func addQuoteTableRow(m core.Maroto, r ExportRow) {
	baseText := props.Text{
		Size:  8,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(2).Add(text.New(r.Code, leftText)),
			col.New(4).Add(text.New(r.Description, leftText)),
			col.New(2).Add(text.New(r.Model, leftText)),
			col.New(1).Add(text.New(FormatHours(r.BaseHours), rightText)),
			col.New(1).Add(text.New(FormatHours(r.AdjustedHours), rightText)),
			col.New(2).Add(text.New(FormatUSD(r.Cost), rightText)),
		),
	)
}

// addQuoteSummary adds the totals section at the bottom of the PDF.
func addQuoteSummary(m core.Maroto, data ExportData) {
	// Spacer before summary
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := labelStyle

	addSummaryRow := func(label, value string) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	addSummaryRow("Base Hours", FormatHours(data.BaseHours))
	addSummaryRow(fmt.Sprintf("Difficulty Multiplier (%.2fx) - Adjusted Hours", data.Multiplier),
		FormatHours(data.AdjustedHours))
	addSummaryRow(fmt.Sprintf("Total Cost @ %s/hr", FormatUSD(data.LaborRate)),
		FormatUSD(data.TotalCost))
}

// addQuoteFooter adds the generated-date line at the bottom.
func addQuoteFooter(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.QuoteDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
