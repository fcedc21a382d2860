package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/nbutlerequip/construction-equipment-quote-tool/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type itemDef struct {
	sortOrder   int
	code        string
	description string
	hours       float64
	model       string
}

type quoteDef struct {
	customerName    string
	contactPerson   string
	phone           string
	equipmentSerial string
	quoteDate       string
	laborRate       float64
	factors         services.FactorSet
	items           []itemDef
}

// Seed populates the quotes collections with one realistic demo quote.
// It is safe to call on every startup because it returns early if any
// quote records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if quotes already exist ────────────────────
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("seed: could not find quotes collection: %w", err)
	}
	existing, err := app.FindAllRecords(quotesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query quotes: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: quotes collection is empty – inserting seed data …")

	itemsCol, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		return fmt.Errorf("seed: could not find quote_items collection: %w", err)
	}

	demo := quoteDef{
		customerName:    "ABC Construction Co.",
		contactPerson:   "John Smith",
		phone:           "(555) 123-4567",
		equipmentSerial: "NHE580N04412",
		quoteDate:       "2026-08-28",
		laborRate:       services.DefaultLaborRate,
		factors: services.FactorSet{
			Age:          1.25,
			Condition:    1.10,
			Location:     1.0,
			Manufacturer: 1.0,
			Urgency:      1.0,
			Complexity:   1.15,
		},
		items: []itemDef{
			{1, "10.001.AD.10", "Engine oil and filter change", 2.0, "Excavator 580N"},
			{2, "35.300.CH.40", "Hydraulic pump replacement", 6.5, "Excavator 580N"},
			{3, "55.100.EL.15", "Alternator remove and install", 3.0, "Excavator 580N"},
		},
	}

	quote := core.NewRecord(quotesCol)
	quote.Set("customer_name", demo.customerName)
	quote.Set("contact_person", demo.contactPerson)
	quote.Set("phone", demo.phone)
	quote.Set("equipment_serial", demo.equipmentSerial)
	quote.Set("quote_date", demo.quoteDate)
	quote.Set("labor_rate", demo.laborRate)
	quote.Set("reject_duplicates", true)
	quote.Set("age_factor", demo.factors.Age)
	quote.Set("condition_factor", demo.factors.Condition)
	quote.Set("location_factor", demo.factors.Location)
	quote.Set("manufacturer_factor", demo.factors.Manufacturer)
	quote.Set("urgency_factor", demo.factors.Urgency)
	quote.Set("complexity_factor", demo.factors.Complexity)
	if err := app.Save(quote); err != nil {
		return fmt.Errorf("seed: could not save demo quote: %w", err)
	}

	for _, d := range demo.items {
		item := core.NewRecord(itemsCol)
		item.Set("quote", quote.Id)
		item.Set("sort_order", d.sortOrder)
		item.Set("code", d.code)
		item.Set("description", d.description)
		item.Set("hours", d.hours)
		item.Set("model", d.model)
		if err := app.Save(item); err != nil {
			return fmt.Errorf("seed: could not save demo quote item %q: %w", d.code, err)
		}
	}

	log.Printf("seed: created demo quote for %q with %d items", demo.customerName, len(demo.items))
	return nil
}
