package services

import (
	"testing"
)

func TestGeneratePDF_BasicQuote(t *testing.T) {
	data := exportFixture(t)

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGeneratePDF_EmptyQuote(t *testing.T) {
	data := ExportData{
		CustomerName: "Empty Quote Co.",
		QuoteDate:    "2026-09-01",
		LaborRate:    125.00,
	}

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
}
