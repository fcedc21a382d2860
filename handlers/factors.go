package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/nbutlerequip/construction-equipment-quote-tool/services"
)

// factorTable is one difficulty factor with its selectable bands.
type factorTable struct {
	Name    string                  `json:"name"`
	Options []services.FactorOption `json:"options"`
}

// HandleFactorTables serves the six difficulty-factor tables in display
// order, so clients render dropdowns from the same bands pricing uses.
func HandleFactorTables() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		tables := make([]factorTable, 0, len(services.FactorNames))
		for _, name := range services.FactorNames {
			tables = append(tables, factorTable{
				Name:    name,
				Options: services.FactorOptions[name],
			})
		}
		return e.JSON(http.StatusOK, map[string]any{
			"factors":            tables,
			"default_labor_rate": services.DefaultLaborRate,
		})
	}
}
