package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleQuoteDelete deletes a quote. The item relation cascades, so the
// quote's line items go with it.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		record, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("quote_delete: error deleting %s: %v", quoteID, err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("quote_delete: deleted quote %s", quoteID)
		return e.NoContent(http.StatusNoContent)
	}
}
