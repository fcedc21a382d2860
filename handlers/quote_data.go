package handlers

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/nbutlerequip/construction-equipment-quote-tool/services"
)

// factorSetFromRecord reads the six stored factor columns into a FactorSet.
// A zero column (new record, field never set) falls back to the 1.0 baseline.
func factorSetFromRecord(r *core.Record) services.FactorSet {
	read := func(field string) float64 {
		if v := r.GetFloat(field); v > 0 {
			return v
		}
		return 1.0
	}
	return services.FactorSet{
		Age:          read("age_factor"),
		Condition:    read("condition_factor"),
		Location:     read("location_factor"),
		Manufacturer: read("manufacturer_factor"),
		Urgency:      read("urgency_factor"),
		Complexity:   read("complexity_factor"),
	}
}

// laborRateFromRecord reads the stored labor rate, falling back to the
// default when the column was never set.
func laborRateFromRecord(r *core.Record) float64 {
	if rate := r.GetFloat("labor_rate"); rate > 0 {
		return rate
	}
	return services.DefaultLaborRate
}

// loadQuoteItems fetches a quote's item records ordered by sort_order.
func loadQuoteItems(app *pocketbase.PocketBase, quoteID string) ([]*core.Record, error) {
	col, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		return nil, fmt.Errorf("quote_items collection not found: %w", err)
	}
	items, err := app.FindRecordsByFilter(col, "quote = {:q}", "sort_order", 0, 0, map[string]any{"q": quoteID})
	if err != nil {
		return nil, fmt.Errorf("query quote items: %w", err)
	}
	return items, nil
}

// buildQuote assembles the in-memory quote aggregate from a quote record
// and its item records.
func buildQuote(quoteRecord *core.Record, itemRecords []*core.Record) *services.Quote {
	q := services.NewQuote()
	q.Factors = factorSetFromRecord(quoteRecord)
	if quoteRecord.GetBool("reject_duplicates") {
		q.Duplicates = services.RejectDuplicates
	}
	for _, ir := range itemRecords {
		q.Items = append(q.Items, services.LineItem{
			Code:        ir.GetString("code"),
			Description: ir.GetString("description"),
			Hours:       ir.GetFloat("hours"),
			Model:       ir.GetString("model"),
		})
	}
	return q
}

// nextSortOrder returns one past the highest sort_order among item records.
func nextSortOrder(itemRecords []*core.Record) int {
	max := 0
	for _, ir := range itemRecords {
		if so := ir.GetInt("sort_order"); so > max {
			max = so
		}
	}
	return max + 1
}
