package handlers

import (
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/nbutlerequip/construction-equipment-quote-tool/services"
)

// quoteCreateInput is the request body for creating a quote. Omitted
// factors default to the 1.0 baseline and an omitted labor rate defaults
// to the shop rate.
type quoteCreateInput struct {
	CustomerName     string  `json:"customer_name"`
	ContactPerson    string  `json:"contact_person"`
	Phone            string  `json:"phone"`
	EquipmentSerial  string  `json:"equipment_serial"`
	QuoteDate        string  `json:"quote_date"`
	LaborRate        float64 `json:"labor_rate"`
	RejectDuplicates bool    `json:"reject_duplicates"`
}

func (in quoteCreateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.CustomerName, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.ContactPerson, validation.Length(0, 200)),
		validation.Field(&in.Phone, validation.Length(0, 40)),
		validation.Field(&in.EquipmentSerial, validation.Length(0, 60)),
		validation.Field(&in.QuoteDate, validation.Date("2006-01-02")),
		validation.Field(&in.LaborRate, validation.Min(0.0)),
	)
}

// HandleQuoteCreate creates a new quote with baseline factors.
func HandleQuoteCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var in quoteCreateInput
		if err := e.BindBody(&in); err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}
		if err := in.Validate(); err != nil {
			return e.String(http.StatusBadRequest, err.Error())
		}

		col, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			log.Printf("quote_create: quotes collection not found: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rate := in.LaborRate
		if rate == 0 {
			rate = services.DefaultLaborRate
		}

		record := core.NewRecord(col)
		record.Set("customer_name", in.CustomerName)
		record.Set("contact_person", in.ContactPerson)
		record.Set("phone", in.Phone)
		record.Set("equipment_serial", in.EquipmentSerial)
		record.Set("quote_date", in.QuoteDate)
		record.Set("labor_rate", rate)
		record.Set("reject_duplicates", in.RejectDuplicates)
		for _, field := range []string{
			"age_factor", "condition_factor", "location_factor",
			"manufacturer_factor", "urgency_factor", "complexity_factor",
		} {
			record.Set(field, 1.0)
		}

		if err := app.Save(record); err != nil {
			log.Printf("quote_create: save failed: %v", err)
			return e.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("quote_create: created quote %s for %q", record.Id, in.CustomerName)
		return e.JSON(http.StatusCreated, quoteResponse(record, nil))
	}
}
