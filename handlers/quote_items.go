package handlers

import (
	"errors"
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/nbutlerequip/construction-equipment-quote-tool/services"
)

// itemAddInput is the request body for adding a line item. When ModelKey
// is set the operation is looked up in the SRT database and Description,
// Hours and Model are filled from it; otherwise they are taken as given
// (manual entry).
type itemAddInput struct {
	ModelKey    string  `json:"model_key"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Model       string  `json:"model"`
}

func (in itemAddInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Code, validation.Required, validation.Length(1, 60)),
		validation.Field(&in.Description, validation.Length(0, 300)),
		validation.Field(&in.Hours, validation.Min(0.0)),
	)
}

// resolveItem turns the input into a LineItem, consulting the SRT
// database when a model key is given.
func resolveItem(db *services.Database, in itemAddInput) (services.LineItem, error) {
	if in.ModelKey == "" {
		return services.LineItem{
			Code:        in.Code,
			Description: in.Description,
			Hours:       in.Hours,
			Model:       in.Model,
		}, nil
	}

	entry, ok := db.Models[in.ModelKey]
	if !ok {
		return services.LineItem{}, errors.New("unknown model")
	}
	for _, op := range services.ModelOperations(db, in.ModelKey) {
		if op.Code == in.Code {
			return services.LineItem{
				Code:        op.Code,
				Description: op.Description,
				Hours:       op.Hours,
				Model:       entry.DisplayName,
			}, nil
		}
	}
	return services.LineItem{}, errors.New("operation not found for model")
}

// HandleQuoteItemAdd adds a line item to a quote. The quote's stored
// duplicate policy applies unless the request carries ?allow_duplicate=1.
func HandleQuoteItemAdd(app *pocketbase.PocketBase, db *services.Database) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		quoteRecord, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		var in itemAddInput
		if err := e.BindBody(&in); err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}
		if err := in.Validate(); err != nil {
			return e.String(http.StatusBadRequest, err.Error())
		}

		item, err := resolveItem(db, in)
		if err != nil {
			return e.String(http.StatusNotFound, "SRT operation not found")
		}

		itemRecords, err := loadQuoteItems(app, quoteID)
		if err != nil {
			log.Printf("item_add: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		q := buildQuote(quoteRecord, itemRecords)
		if e.Request.URL.Query().Get("allow_duplicate") == "1" {
			q.Duplicates = services.AllowDuplicates
		}
		if err := q.AddItem(item); err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				return e.String(http.StatusBadRequest, err.Error())
			}
			// duplicate rejection
			return e.String(http.StatusConflict, err.Error())
		}

		itemsCol, err := app.FindCollectionByNameOrId("quote_items")
		if err != nil {
			log.Printf("item_add: quote_items collection not found: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(itemsCol)
		record.Set("quote", quoteID)
		record.Set("sort_order", nextSortOrder(itemRecords))
		record.Set("code", item.Code)
		record.Set("description", item.Description)
		record.Set("hours", item.Hours)
		record.Set("model", item.Model)
		if err := app.Save(record); err != nil {
			log.Printf("item_add: save failed: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		itemRecords = append(itemRecords, record)
		return e.JSON(http.StatusCreated, quoteResponse(quoteRecord, itemRecords))
	}
}

// HandleQuoteItemDelete removes one line item from a quote.
func HandleQuoteItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")
		if quoteID == "" || itemID == "" {
			return e.String(http.StatusBadRequest, "Missing required IDs")
		}

		record, err := app.FindRecordById("quote_items", itemID)
		if err != nil || record.GetString("quote") != quoteID {
			return e.String(http.StatusNotFound, "Item not found")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("item_delete: error deleting %s: %v", itemID, err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		quoteRecord, err := app.FindRecordById("quotes", quoteID)
		if err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}
		itemRecords, err := loadQuoteItems(app, quoteID)
		if err != nil {
			log.Printf("item_delete: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, quoteResponse(quoteRecord, itemRecords))
	}
}

// HandleQuoteClear removes every line item from a quote. Factor
// selections are untouched.
func HandleQuoteClear(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
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
			log.Printf("quote_clear: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		for _, ir := range itemRecords {
			if err := app.Delete(ir); err != nil {
				log.Printf("quote_clear: error deleting %s: %v", ir.Id, err)
				return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
		}

		log.Printf("quote_clear: removed %d items from quote %s", len(itemRecords), quoteID)
		return e.JSON(http.StatusOK, quoteResponse(quoteRecord, nil))
	}
}
