package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the quotes and quote_items
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_person", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "equipment_serial", Required: false})
		c.Fields.Add(&core.TextField{Name: "quote_date", Required: false})
		c.Fields.Add(&core.NumberField{Name: "labor_rate", Required: false})
		c.Fields.Add(&core.BoolField{Name: "reject_duplicates"})
		// One column per difficulty factor; every quote always carries all
		// six, defaulting to the 1.0 baseline.
		c.Fields.Add(&core.NumberField{Name: "age_factor", Required: false})
		c.Fields.Add(&core.NumberField{Name: "condition_factor", Required: false})
		c.Fields.Add(&core.NumberField{Name: "location_factor", Required: false})
		c.Fields.Add(&core.NumberField{Name: "manufacturer_factor", Required: false})
		c.Fields.Add(&core.NumberField{Name: "urgency_factor", Required: false})
		c.Fields.Add(&core.NumberField{Name: "complexity_factor", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quote_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "code", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "hours", Required: false})
		c.Fields.Add(&core.TextField{Name: "model", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
