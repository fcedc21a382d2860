package services

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateExcel_BasicQuote(t *testing.T) {
	data := exportFixture(t)

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}

	// Verify it's a valid Excel file
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Quote" {
		t.Errorf("expected sheet name 'Quote', got %v", sheets)
	}

	// Title carries the customer name.
	title, _ := f.GetCellValue(sheets[0], "A1")
	if !strings.Contains(title, "ABC Construction Co.") {
		t.Errorf("title %q does not mention the customer", title)
	}

	// Column headers match the tabular export contract.
	wantHeaders := []string{"SRT Code", "Description", "Model", "Base Hours", "Adj. Hours", "Cost"}
	for i, col := range []string{"A", "B", "C", "D", "E", "F"} {
		got, _ := f.GetCellValue(sheets[0], col+"6")
		if got != wantHeaders[i] {
			t.Errorf("header %s6 = %q, want %q", col, got, wantHeaders[i])
		}
	}

	// First data row carries the first line item.
	code, _ := f.GetCellValue(sheets[0], "A7")
	if code != "10.001.AD.10" {
		t.Errorf("A7 = %q, want first SRT code", code)
	}
}

func TestGenerateExcel_EmptyQuote(t *testing.T) {
	data := ExportData{
		CustomerName: "Empty Quote Co.",
		QuoteDate:    "2026-09-01",
		LaborRate:    125.00,
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"plain text", "Engine oil change", "Engine oil change"},
		{"formula", "=SUM(A1:A9)", "'=SUM(A1:A9)"},
		{"plus", "+1234", "'+1234"},
		{"minus", "-cmd", "'-cmd"},
		{"at sign", "@import", "'@import"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeExcelCell(tt.input); got != tt.expect {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
