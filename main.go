package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/nbutlerequip/construction-equipment-quote-tool/collections"
	"github.com/nbutlerequip/construction-equipment-quote-tool/handlers"
	"github.com/nbutlerequip/construction-equipment-quote-tool/services"
)

// srtDataDir resolves the SRT database directory, overridable for
// deployments that mount the dataset elsewhere.
func srtDataDir() string {
	if dir := os.Getenv("SRT_DATA_DIR"); dir != "" {
		return dir
	}
	return "./data"
}

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.SeedDataset(srtDataDir()); err != nil {
			log.Printf("Warning: dataset seed failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// The SRT database is immutable at runtime; load it once and hand
		// the same value to every handler.
		db, err := services.Load(srtDataDir(), services.LoadOptions{})
		if err != nil {
			return err
		}
		log.Printf("srt: loaded %d models, %d operations (%d records skipped)",
			db.ModelCount(), db.OperationCount(), len(db.Skipped))

		// ── SRT database ─────────────────────────────────────────
		se.Router.GET("/api/srt/models", handlers.HandleSRTModels(db))
		se.Router.GET("/api/srt/models/{modelKey}/operations", handlers.HandleModelOperations(db))
		se.Router.GET("/api/srt/search", handlers.HandleSRTSearch(db))

		// ── Difficulty factor tables ─────────────────────────────
		se.Router.GET("/api/factors", handlers.HandleFactorTables())

		// ── Quote CRUD ───────────────────────────────────────────
		se.Router.GET("/api/quotes", handlers.HandleQuoteList(app))
		se.Router.POST("/api/quotes", handlers.HandleQuoteCreate(app))
		se.Router.GET("/api/quotes/{id}", handlers.HandleQuoteView(app))
		se.Router.DELETE("/api/quotes/{id}", handlers.HandleQuoteDelete(app))

		// ── Quote line items ─────────────────────────────────────
		se.Router.POST("/api/quotes/{id}/items", handlers.HandleQuoteItemAdd(app, db))
		se.Router.DELETE("/api/quotes/{id}/items/{itemId}", handlers.HandleQuoteItemDelete(app))
		se.Router.POST("/api/quotes/{id}/clear", handlers.HandleQuoteClear(app))

		// ── Quote factors ────────────────────────────────────────
		se.Router.POST("/api/quotes/{id}/factors", handlers.HandleQuoteFactorSet(app))

		// ── Quote export ─────────────────────────────────────────
		se.Router.GET("/api/quotes/{id}/export/csv", handlers.HandleQuoteExportCSV(app))
		se.Router.GET("/api/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app))
		se.Router.GET("/api/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
