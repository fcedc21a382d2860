package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/nbutlerequip/construction-equipment-quote-tool/services"
)

// modelGroup is one equipment type with its models, as served to clients.
type modelGroup struct {
	EquipmentType string                `json:"equipment_type"`
	Models        []services.ModelEntry `json:"models"`
}

// HandleSRTModels lists every model in the loaded database, grouped by
// equipment type. Types and models within a type are alphabetical.
func HandleSRTModels(db *services.Database) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		byType := services.ModelsByType(db)
		groups := make([]modelGroup, 0, len(byType))
		for _, et := range services.EquipmentTypes(db) {
			g := modelGroup{EquipmentType: et}
			for _, key := range byType[et] {
				g.Models = append(g.Models, db.Models[key])
			}
			groups = append(groups, g)
		}
		return e.JSON(http.StatusOK, map[string]any{
			"model_count":     db.ModelCount(),
			"operation_count": db.OperationCount(),
			"groups":          groups,
		})
	}
}

// HandleModelOperations lists the operations of a single model.
func HandleModelOperations(db *services.Database) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		modelKey := e.Request.PathValue("modelKey")
		if modelKey == "" {
			return e.String(http.StatusBadRequest, "Missing model key")
		}

		entry, ok := db.Models[modelKey]
		if !ok {
			return e.String(http.StatusNotFound, "Unknown model")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"model":      entry,
			"operations": services.ModelOperations(db, modelKey),
		})
	}
}
