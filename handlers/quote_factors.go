package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/nbutlerequip/construction-equipment-quote-tool/services"
)

// factorSetInput selects a difficulty band by factor name and table label.
type factorSetInput struct {
	Factor string `json:"factor"`
	Label  string `json:"label"`
}

// HandleQuoteFactorSet updates one of a quote's six difficulty factors to
// the multiplier of the named table band.
func HandleQuoteFactorSet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		quoteRecord, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		var in factorSetInput
		if err := e.BindBody(&in); err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		option, err := services.LookupFactorOption(in.Factor, in.Label)
		if err != nil {
			return e.String(http.StatusBadRequest, err.Error())
		}

		quoteRecord.Set(fmt.Sprintf("%s_factor", in.Factor), option.Multiplier)
		if err := app.Save(quoteRecord); err != nil {
			log.Printf("quote_factors: save failed for %s: %v", quoteID, err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		itemRecords, err := loadQuoteItems(app, quoteID)
		if err != nil {
			log.Printf("quote_factors: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, quoteResponse(quoteRecord, itemRecords))
	}
}
