package services

import (
	"sort"
	"strings"
)

// ScopeAllModels searches every model in the database.
const ScopeAllModels = ""

// Search returns the flat rows whose code or description contains query,
// case-insensitively. Scope is a single model key, or ScopeAllModels for
// the whole table. Result order follows flat-table row order; this is a
// filter, not a ranked search, and the full match set is returned.
//
// An empty query matches nothing. Callers that want "no filter" use
// ModelOperations or AllRows instead.
func Search(db *Database, query, scope string) []FlatRow {
	if query == "" {
		return nil
	}

	needle := strings.ToLower(query)
	var matches []FlatRow
	for _, row := range db.Rows {
		if scope != ScopeAllModels && row.ModelKey != scope {
			continue
		}
		if strings.Contains(strings.ToLower(row.Code), needle) ||
			strings.Contains(strings.ToLower(row.Description), needle) {
			matches = append(matches, row)
		}
	}
	return matches
}

// ModelOperations returns every operation for one model, in table order.
// This is the unfiltered path, distinct from searching with an empty query.
func ModelOperations(db *Database, modelKey string) []OperationRecord {
	var ops []OperationRecord
	for _, row := range db.Rows {
		if row.ModelKey == modelKey {
			ops = append(ops, OperationRecord{
				Code:        row.Code,
				Description: row.Description,
				Hours:       row.Hours,
			})
		}
	}
	return ops
}

// AllRows returns the whole flat table, unfiltered.
func AllRows(db *Database) []FlatRow {
	return db.Rows
}

// ModelsByType groups model keys by equipment type. Keys within each group
// are sorted; the caller orders the groups themselves for display.
func ModelsByType(db *Database) map[string][]string {
	byType := make(map[string][]string)
	for mk, entry := range db.Models {
		byType[entry.EquipmentType] = append(byType[entry.EquipmentType], mk)
	}
	for _, keys := range byType {
		sort.Strings(keys)
	}
	return byType
}

// EquipmentTypes returns the sorted list of distinct equipment types.
func EquipmentTypes(db *Database) []string {
	byType := ModelsByType(db)
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
