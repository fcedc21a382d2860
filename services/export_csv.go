package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvHeader is the fixed column set of the tabular quote export.
var csvHeader = []string{"SRT Code", "Description", "Model", "Base Hours", "Adj. Hours", "Cost"}

// GenerateCSV renders the export as delimited text, one row per line item.
// Base hours keep full precision so a re-parsed export reproduces the
// original values; adjusted hours and cost are presentation-rounded.
func GenerateCSV(data ExportData) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for _, r := range data.Rows {
		record := []string{
			r.Code,
			r.Description,
			r.Model,
			strconv.FormatFloat(r.BaseHours, 'f', -1, 64),
			fmt.Sprintf("%.2f", r.AdjustedHours),
			FormatUSD(r.Cost),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseCSV reads a quote export back into line items and per-row pricing.
// It accepts the exact column set GenerateCSV produces.
func ParseCSV(r io.Reader) ([]ExportRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("parse csv: missing header row")
	}

	header := records[0]
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("parse csv: expected %d columns, got %d", len(csvHeader), len(header))
	}
	for i, want := range csvHeader {
		if strings.TrimSpace(header[i]) != want {
			return nil, fmt.Errorf("parse csv: column %d is %q, want %q", i, header[i], want)
		}
	}

	rows := make([]ExportRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		baseHours, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("parse csv row %d: base hours %q: %w", i+2, rec[3], err)
		}
		adjHours, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, fmt.Errorf("parse csv row %d: adjusted hours %q: %w", i+2, rec[4], err)
		}
		cost, err := parseCurrency(rec[5])
		if err != nil {
			return nil, fmt.Errorf("parse csv row %d: cost %q: %w", i+2, rec[5], err)
		}

		rows = append(rows, ExportRow{
			Code:          rec[0],
			Description:   rec[1],
			Model:         rec[2],
			BaseHours:     baseHours,
			AdjustedHours: adjHours,
			Cost:          cost,
		})
	}
	return rows, nil
}

// parseCurrency strips the display symbol and grouping commas before
// parsing an exported amount.
func parseCurrency(s string) (float64, error) {
	s = strings.TrimSpace(s)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, CurrencySymbol)
	s = strings.ReplaceAll(s, ",", "")

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if negative {
		val = -val
	}
	return val, nil
}
