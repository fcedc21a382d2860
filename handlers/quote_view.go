package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/nbutlerequip/construction-equipment-quote-tool/services"
)

// quoteItemView is one line item as served to clients, including the
// per-line pricing under the quote's current factors.
type quoteItemView struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Description   string  `json:"description"`
	Model         string  `json:"model"`
	Hours         float64 `json:"hours"`
	AdjustedHours float64 `json:"adjusted_hours"`
	Cost          float64 `json:"cost"`
}

// quoteView is the full quote payload: header fields, factor selections,
// line items, and the computed summary.
type quoteView struct {
	ID               string                `json:"id"`
	CustomerName     string                `json:"customer_name"`
	ContactPerson    string                `json:"contact_person"`
	Phone            string                `json:"phone"`
	EquipmentSerial  string                `json:"equipment_serial"`
	QuoteDate        string                `json:"quote_date"`
	LaborRate        float64               `json:"labor_rate"`
	RejectDuplicates bool                  `json:"reject_duplicates"`
	Factors          services.FactorSet    `json:"factors"`
	Items            []quoteItemView       `json:"items"`
	Summary          services.QuoteSummary `json:"summary"`
}

// quoteResponse assembles the client payload for a quote record and its
// item records. Pricing is computed on the fly; nothing derived is stored.
func quoteResponse(quoteRecord *core.Record, itemRecords []*core.Record) quoteView {
	q := buildQuote(quoteRecord, itemRecords)
	rate := laborRateFromRecord(quoteRecord)

	summary, err := q.Summary(rate)
	if err != nil {
		// Stored hours are validated on write, so this only fires on
		// hand-edited data. Serve zeros rather than failing the view.
		log.Printf("quote_view: pricing failed for %s: %v", quoteRecord.Id, err)
		summary = services.QuoteSummary{LaborRate: rate, Multiplier: services.ComposeMultiplier(q.Factors)}
	}

	items := make([]quoteItemView, 0, len(itemRecords))
	for _, ir := range itemRecords {
		calc := services.CalcLine(ir.GetFloat("hours"), summary.Multiplier, rate)
		items = append(items, quoteItemView{
			ID:            ir.Id,
			Code:          ir.GetString("code"),
			Description:   ir.GetString("description"),
			Model:         ir.GetString("model"),
			Hours:         calc.BaseHours,
			AdjustedHours: calc.AdjustedHours,
			Cost:          calc.Cost,
		})
	}

	return quoteView{
		ID:               quoteRecord.Id,
		CustomerName:     quoteRecord.GetString("customer_name"),
		ContactPerson:    quoteRecord.GetString("contact_person"),
		Phone:            quoteRecord.GetString("phone"),
		EquipmentSerial:  quoteRecord.GetString("equipment_serial"),
		QuoteDate:        quoteRecord.GetString("quote_date"),
		LaborRate:        rate,
		RejectDuplicates: quoteRecord.GetBool("reject_duplicates"),
		Factors:          q.Factors,
		Items:            items,
		Summary:          summary,
	}
}

// HandleQuoteView serves one quote with items and computed pricing.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		quoteRecord, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		itemRecords, err := loadQuoteItems(app, quoteID)
		if err != nil {
			log.Printf("quote_view: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, quoteResponse(quoteRecord, itemRecords))
	}
}
