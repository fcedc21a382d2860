package collections

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nbutlerequip/construction-equipment-quote-tool/services"
)

// starterDataset is a small CNH operation set used to bootstrap a fresh
// deployment. Production installs replace it with the full SRT export.
var starterDataset = map[string][]services.OperationRecord{
	"excavator_580N": {
		{Code: "10.001.AD.10", Description: "Engine oil and filter change", Hours: 2.0},
		{Code: "10.102.AD.25", Description: "Fuel filter replace", Hours: 1.0},
		{Code: "35.300.CH.40", Description: "Hydraulic pump replacement", Hours: 6.5},
		{Code: "35.310.CH.10", Description: "Hydraulic fluid and filter service", Hours: 3.0},
		{Code: "55.100.EL.15", Description: "Alternator remove and install", Hours: 3.0},
	},
	"excavator_590SN": {
		{Code: "10.001.AD.10", Description: "Engine oil and filter change", Hours: 2.2},
		{Code: "21.110.TR.30", Description: "Transmission fluid service", Hours: 3.5},
		{Code: "72.050.BK.20", Description: "Boom cylinder reseal", Hours: 5.0},
	},
	"backhoe_loader_580SN": {
		{Code: "10.001.AD.10", Description: "Engine oil and filter change", Hours: 1.8},
		{Code: "44.200.AX.10", Description: "Front axle seal replace", Hours: 4.5},
		{Code: "89.010.GL.05", Description: "Grease all fittings and inspect pins", Hours: 0.5},
	},
	"skid_steer_SR210": {
		{Code: "10.001.AD.10", Description: "Engine oil and filter change", Hours: 1.5},
		{Code: "29.400.DR.20", Description: "Drive chain tension adjust", Hours: 2.0},
	},
}

// SeedDataset writes the starter SRT dataset into dir when no recognized
// database encoding exists there. An existing dataset is never touched.
func SeedDataset(dir string) error {
	if _, err := services.Load(dir, services.LoadOptions{}); err == nil {
		return nil // a dataset is already present
	} else if !errors.Is(err, services.ErrDatabaseNotFound) {
		// A dataset exists but failed to parse; leave it for the operator.
		return fmt.Errorf("seed dataset: existing database is unreadable: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("seed dataset: create data dir: %w", err)
	}

	raw, err := json.MarshalIndent(starterDataset, "", "  ")
	if err != nil {
		return fmt.Errorf("seed dataset: marshal starter data: %w", err)
	}

	path := filepath.Join(dir, services.OrganizedDatabaseFile)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("seed dataset: write %s: %w", path, err)
	}

	log.Printf("seed: wrote starter SRT dataset to %s (%d models)", path, len(starterDataset))
	return nil
}
