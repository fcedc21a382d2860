// Package services provides the quote engine: SRT database loading and
// search, difficulty-factor pricing, the quote aggregate, and export
// generation.
package services

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Database source files recognized by Load, in preference order.
const (
	OrganizedDatabaseFile = "srt_database_organized.json"
	FlatDatabaseFile      = "srt_database_flat.csv"
	ModelLookupFile       = "model_lookup.json"
)

// OperationRecord is one billable repair task. Code is unique within a
// model, not globally.
type OperationRecord struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
}

// FlatRow is one operation record tagged with its owning model.
type FlatRow struct {
	ModelKey      string  `json:"model_key"`
	EquipmentType string  `json:"equipment_type"`
	ModelName     string  `json:"model_name"`
	Code          string  `json:"code"`
	Description   string  `json:"description"`
	Hours         float64 `json:"hours"`
}

// ModelEntry is the per-model metadata derived from a model key.
type ModelEntry struct {
	ModelKey       string `json:"model_key"`
	DisplayName    string `json:"display_name"`
	EquipmentType  string `json:"equipment_type"`
	ModelName      string `json:"model_name"`
	OperationCount int    `json:"operation_count"`
}

// Database is the normalized, immutable SRT table: one flat row per
// operation plus a per-model metadata index. It is built once at startup
// and shared read-only for the process lifetime.
type Database struct {
	Rows   []FlatRow
	Models map[string]ModelEntry

	// Skipped lists records dropped during a lenient load because their
	// hours field was not numeric.
	Skipped []RecordError
}

// RecordError describes one record rejected during load.
type RecordError struct {
	ModelKey string
	Code     string
	Err      error
}

func (r RecordError) Error() string {
	return fmt.Sprintf("model %q code %q: %v", r.ModelKey, r.Code, r.Err)
}

func (r RecordError) Unwrap() error { return r.Err }

// LoadOptions controls database loading behavior.
type LoadOptions struct {
	// Strict aborts the load on the first malformed record instead of
	// skipping it.
	Strict bool
}

// ParseModelKey derives equipment type and model name from a model key.
// The key is split on "_": the first token, title-cased, is the equipment
// type; the remaining tokens rejoined with "_" are the model name. A
// single-token key uses that token as the model name too.
func ParseModelKey(modelKey string) (equipmentType, modelName string) {
	parts := strings.Split(modelKey, "_")
	equipmentType = titleCase(parts[0])
	if len(parts) > 1 {
		modelName = strings.Join(parts[1:], "_")
	} else {
		modelName = parts[0]
	}
	return equipmentType, modelName
}

// titleCase uppercases the first letter of each space-separated word,
// lowercasing the rest.
func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// newModelEntry builds the metadata entry for one model key.
func newModelEntry(modelKey string, operationCount int) ModelEntry {
	equipmentType, modelName := ParseModelKey(modelKey)
	return ModelEntry{
		ModelKey:       modelKey,
		DisplayName:    fmt.Sprintf("%s %s", equipmentType, modelName),
		EquipmentType:  equipmentType,
		ModelName:      modelName,
		OperationCount: operationCount,
	}
}

// Load reads the SRT database from dir. It prefers the self-describing
// nested JSON encoding and falls back to the pre-flattened CSV (with an
// optional side-car model lookup). When neither file exists it returns
// ErrDatabaseNotFound with a remediation hint.
//
// Malformed records (non-numeric hours) are skipped and reported in
// Database.Skipped unless opts.Strict is set, in which case the first one
// aborts the load.
func Load(dir string, opts LoadOptions) (*Database, error) {
	organized := filepath.Join(dir, OrganizedDatabaseFile)
	if _, err := os.Stat(organized); err == nil {
		return loadOrganized(organized, opts)
	}

	flat := filepath.Join(dir, FlatDatabaseFile)
	if _, err := os.Stat(flat); err == nil {
		return loadFlat(flat, filepath.Join(dir, ModelLookupFile), opts)
	}

	return nil, fmt.Errorf("%w: add %q (or %q) to %s",
		ErrDatabaseNotFound, OrganizedDatabaseFile, FlatDatabaseFile, dir)
}

// loadOrganized parses the preferred nested encoding:
// {modelKey: [{code, description, hours}, ...], ...}.
func loadOrganized(path string, opts LoadOptions) (*Database, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var source map[string][]map[string]any
	if err := json.Unmarshal(raw, &source); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	db := &Database{Models: make(map[string]ModelEntry, len(source))}

	// Deterministic row order: model keys sorted, record order preserved
	// within each model.
	modelKeys := make([]string, 0, len(source))
	for mk := range source {
		modelKeys = append(modelKeys, mk)
	}
	sort.Strings(modelKeys)

	for _, modelKey := range modelKeys {
		equipmentType, modelName := ParseModelKey(modelKey)
		count := 0

		for _, rec := range source[modelKey] {
			code := cast.ToString(rec["code"])
			hours, err := cast.ToFloat64E(rec["hours"])
			if err != nil {
				recErr := RecordError{
					ModelKey: modelKey,
					Code:     code,
					Err:      fmt.Errorf("%w: hours %v", ErrMalformedRecord, rec["hours"]),
				}
				if opts.Strict {
					return nil, recErr
				}
				db.Skipped = append(db.Skipped, recErr)
				continue
			}

			db.Rows = append(db.Rows, FlatRow{
				ModelKey:      modelKey,
				EquipmentType: equipmentType,
				ModelName:     modelName,
				Code:          code,
				Description:   cast.ToString(rec["description"]),
				Hours:         hours,
			})
			count++
		}

		db.Models[modelKey] = newModelEntry(modelKey, count)
	}

	return db, nil
}

// loadFlat parses the fallback pre-flattened CSV encoding with columns
// model_key, code, description, hours. The model index comes from the
// side-car lookup file when present, else it is rebuilt by grouping the
// flat rows on model_key.
func loadFlat(path, lookupPath string, opts LoadOptions) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("parse %s: missing header row", path)
	}

	colIdx := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"model_key", "code", "description", "hours"} {
		if _, ok := colIdx[required]; !ok {
			return nil, fmt.Errorf("parse %s: missing column %q", path, required)
		}
	}

	db := &Database{Models: make(map[string]ModelEntry)}
	counts := make(map[string]int)

	for _, row := range records[1:] {
		modelKey := row[colIdx["model_key"]]
		code := row[colIdx["code"]]

		hours, err := cast.ToFloat64E(row[colIdx["hours"]])
		if err != nil {
			recErr := RecordError{
				ModelKey: modelKey,
				Code:     code,
				Err:      fmt.Errorf("%w: hours %q", ErrMalformedRecord, row[colIdx["hours"]]),
			}
			if opts.Strict {
				return nil, recErr
			}
			db.Skipped = append(db.Skipped, recErr)
			continue
		}

		equipmentType, modelName := ParseModelKey(modelKey)
		db.Rows = append(db.Rows, FlatRow{
			ModelKey:      modelKey,
			EquipmentType: equipmentType,
			ModelName:     modelName,
			Code:          code,
			Description:   row[colIdx["description"]],
			Hours:         hours,
		})
		counts[modelKey]++
	}

	// Prefer the precomputed side-car index, rebuild from rows otherwise.
	if entries, err := loadModelLookup(lookupPath); err == nil {
		db.Models = entries
		// Counts in a stale side-car lose to what was actually loaded.
		for mk, entry := range db.Models {
			if n, ok := counts[mk]; ok {
				entry.OperationCount = n
				db.Models[mk] = entry
			}
		}
	} else {
		for mk, n := range counts {
			db.Models[mk] = newModelEntry(mk, n)
		}
	}

	return db, nil
}

// loadModelLookup reads the optional side-car model index.
func loadModelLookup(path string) (map[string]ModelEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries map[string]ModelEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for mk, entry := range entries {
		if entry.ModelKey == "" {
			entry.ModelKey = mk
			entries[mk] = entry
		}
	}
	return entries, nil
}

// ModelCount returns the number of models in the index.
func (db *Database) ModelCount() int {
	return len(db.Models)
}

// OperationCount returns the total number of flat rows.
func (db *Database) OperationCount() int {
	return len(db.Rows)
}
