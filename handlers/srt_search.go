package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/nbutlerequip/construction-equipment-quote-tool/services"
)

// HandleSRTSearch searches operation codes and descriptions. The optional
// "model" query parameter scopes the search to a single model key; the
// empty scope searches the whole database.
func HandleSRTSearch(db *services.Database) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query().Get("q")
		if query == "" {
			return e.String(http.StatusBadRequest, "Missing search query")
		}

		scope := e.Request.URL.Query().Get("model")
		if scope != services.ScopeAllModels {
			if _, ok := db.Models[scope]; !ok {
				return e.String(http.StatusNotFound, "Unknown model")
			}
		}

		rows := services.Search(db, query, scope)
		return e.JSON(http.StatusOK, map[string]any{
			"query":   query,
			"scope":   scope,
			"count":   len(rows),
			"results": rows,
		})
	}
}
