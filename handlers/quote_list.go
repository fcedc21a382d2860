package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// quoteListEntry is the abbreviated quote payload for list views.
type quoteListEntry struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customer_name"`
	QuoteDate    string  `json:"quote_date"`
	LaborRate    float64 `json:"labor_rate"`
	Created      string  `json:"created"`
}

// HandleQuoteList lists all quotes, newest first.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		col, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_list: quotes collection not found: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(col, "id != ''", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("quote_list: query failed: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		quotes := make([]quoteListEntry, 0, len(records))
		for _, r := range records {
			quotes = append(quotes, quoteListEntry{
				ID:           r.Id,
				CustomerName: r.GetString("customer_name"),
				QuoteDate:    r.GetString("quote_date"),
				LaborRate:    laborRateFromRecord(r),
				Created:      r.GetDateTime("created").String(),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{"quotes": quotes})
	}
}
