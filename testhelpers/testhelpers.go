// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/nbutlerequip/construction-equipment-quote-tool/collections"
	"github.com/nbutlerequip/construction-equipment-quote-tool/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestQuote creates a quote record with the given customer name and
// baseline difficulty factors, and returns it.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, customerName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer_name", customerName)
	record.Set("labor_rate", services.DefaultLaborRate)
	record.Set("reject_duplicates", false)
	record.Set("age_factor", 1.0)
	record.Set("condition_factor", 1.0)
	record.Set("location_factor", 1.0)
	record.Set("manufacturer_factor", 1.0)
	record.Set("urgency_factor", 1.0)
	record.Set("complexity_factor", 1.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestQuoteItem creates a quote item record linked to a quote and returns it.
func CreateTestQuoteItem(t *testing.T, app *pocketbase.PocketBase, quoteID string, sortOrder int, code, description string, hours float64, model string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		t.Fatalf("failed to find quote_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", sortOrder)
	record.Set("code", code)
	record.Set("description", description)
	record.Set("hours", hours)
	record.Set("model", model)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote item: %v", err)
	}

	return record
}

// WriteTestDatabase writes a small organized SRT dataset into a temporary
// directory and returns the loaded database. Handlers take the database as
// an explicit argument, so tests build one here instead of hitting disk paths
// from the real deployment.
func WriteTestDatabase(t *testing.T) *services.Database {
	t.Helper()

	dir := t.TempDir()
	raw := `{
  "excavator_580N": [
    {"code": "10.001.AD.10", "description": "Engine oil and filter change", "hours": 2.0},
    {"code": "35.300.CH.40", "description": "Hydraulic pump replacement", "hours": 6.5},
    {"code": "55.100.EL.15", "description": "Alternator remove and install", "hours": 3.0}
  ],
  "backhoe_loader_580SN": [
    {"code": "10.001.AD.10", "description": "Engine oil and filter change", "hours": 1.8},
    {"code": "44.200.AX.10", "description": "Front axle seal replace", "hours": 4.5}
  ],
  "skid_steer_SR210": [
    {"code": "29.400.DR.20", "description": "Drive chain tension adjust", "hours": 2.0}
  ]
}`
	path := filepath.Join(dir, services.OrganizedDatabaseFile)
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("failed to write test SRT database: %v", err)
	}

	db, err := services.Load(dir, services.LoadOptions{})
	if err != nil {
		t.Fatalf("failed to load test SRT database: %v", err)
	}
	return db
}
