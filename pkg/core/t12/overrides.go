package t12

import (
	"fmt"
	"os"

	hjson "github.com/hjson/hjson-go/v4"
)

// Category overrides let an operator extend or relabel the built-in table
// per deployment (some managers want e.g. "Short-Term Rental" tracked as its
// own revenue category). Override files are HJSON so they can carry comments
// alongside the mappings.

// OverrideFile is the on-disk shape of a category override file.
type OverrideFile struct {
	// Add maps new category names to their metadata.
	Add map[string]CategoryInfo `json:"add"`
	// Relabel maps existing category names to replacement display labels.
	Relabel map[string]string `json:"relabel"`
	// Notes documents why the override exists.
	Notes string `json:"notes"`
}

// LoadOverrides parses an HJSON override file and applies it to the shared
// category table. Added categories must carry a valid type; relabels must
// target known categories.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read category overrides: %w", err)
	}

	var file OverrideFile
	if err := hjson.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse category overrides %s: %w", path, err)
	}

	for name, info := range file.Add {
		switch info.Type {
		case TypeRevenue, TypeDeduction, TypeExpense, TypeSubtotal:
		default:
			return fmt.Errorf("override category %q has invalid type %q", name, info.Type)
		}
		if info.Label == "" {
			info.Label = name
		}
		Categories[name] = info
	}

	for name, label := range file.Relabel {
		info, ok := Categories[name]
		if !ok {
			return fmt.Errorf("relabel target %q is not a known category", name)
		}
		info.Label = label
		Categories[name] = info
	}

	return nil
}
