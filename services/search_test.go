package services

import (
	"testing"
)

// testDatabase builds a small in-memory database without touching disk.
func testDatabase() *Database {
	rows := []FlatRow{
		{ModelKey: "excavator_580N", EquipmentType: "Excavator", ModelName: "580N", Code: "10.001.AD.10", Description: "Engine oil and filter change", Hours: 2.0},
		{ModelKey: "excavator_580N", EquipmentType: "Excavator", ModelName: "580N", Code: "10.002.BC.20", Description: "Hydraulic pump replacement", Hours: 6.5},
		{ModelKey: "excavator_590SN", EquipmentType: "Excavator", ModelName: "590SN", Code: "10.001.AD.10", Description: "Engine oil and filter change", Hours: 2.2},
		{ModelKey: "dozer_1150M", EquipmentType: "Dozer", ModelName: "1150M", Code: "30.200.ZZ.01", Description: "Track adjustment", Hours: 1.5},
	}
	models := map[string]ModelEntry{
		"excavator_580N":  newModelEntry("excavator_580N", 2),
		"excavator_590SN": newModelEntry("excavator_590SN", 1),
		"dozer_1150M":     newModelEntry("dozer_1150M", 1),
	}
	return &Database{Rows: rows, Models: models}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	db := testDatabase()

	tests := []struct {
		name  string
		query string
		scope string
		want  int
	}{
		{"uppercase query matches description", "OIL", ScopeAllModels, 2},
		{"matches code substring", "10.002", ScopeAllModels, 1},
		{"mixed case", "HyDrAuLiC", ScopeAllModels, 1},
		{"no match", "transmission", ScopeAllModels, 0},
		{"empty query matches nothing", "", ScopeAllModels, 0},
		{"scoped to one model", "oil", "excavator_580N", 1},
		{"scoped excludes other models", "track", "excavator_580N", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(db, tt.query, tt.scope)
			if len(got) != tt.want {
				t.Errorf("Search(%q, %q) returned %d rows, want %d", tt.query, tt.scope, len(got), tt.want)
			}
		})
	}
}

func TestSearch_ScopedNeverLeaks(t *testing.T) {
	db := testDatabase()

	// "engine" appears under two models; a scoped search returns only one.
	got := Search(db, "engine", "excavator_590SN")
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	for _, row := range got {
		if row.ModelKey != "excavator_590SN" {
			t.Errorf("scoped search leaked row from %q", row.ModelKey)
		}
	}
}

func TestSearch_PreservesTableOrder(t *testing.T) {
	db := testDatabase()

	got := Search(db, "engine", ScopeAllModels)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].ModelKey != "excavator_580N" || got[1].ModelKey != "excavator_590SN" {
		t.Errorf("result order %q, %q does not follow table order", got[0].ModelKey, got[1].ModelKey)
	}
}

func TestModelOperations(t *testing.T) {
	db := testDatabase()

	ops := ModelOperations(db, "excavator_580N")
	if len(ops) != 2 {
		t.Fatalf("expected 2 operations, got %d", len(ops))
	}
	if ops[0].Code != "10.001.AD.10" {
		t.Errorf("first op = %q, want table order preserved", ops[0].Code)
	}

	if got := ModelOperations(db, "no_such_model"); len(got) != 0 {
		t.Errorf("unknown model returned %d operations, want 0", len(got))
	}
}

func TestModelsByType(t *testing.T) {
	db := testDatabase()

	byType := ModelsByType(db)
	if len(byType["Excavator"]) != 2 {
		t.Errorf("Excavator group has %d models, want 2", len(byType["Excavator"]))
	}
	if len(byType["Dozer"]) != 1 {
		t.Errorf("Dozer group has %d models, want 1", len(byType["Dozer"]))
	}
	// Keys within a group are sorted.
	if byType["Excavator"][0] != "excavator_580N" {
		t.Errorf("group order = %v, want sorted", byType["Excavator"])
	}

	types := EquipmentTypes(db)
	if len(types) != 2 || types[0] != "Dozer" || types[1] != "Excavator" {
		t.Errorf("EquipmentTypes() = %v, want [Dozer Excavator]", types)
	}
}

func TestAllRows(t *testing.T) {
	db := testDatabase()
	if got := AllRows(db); len(got) != 4 {
		t.Errorf("AllRows() returned %d rows, want 4", len(got))
	}
}
