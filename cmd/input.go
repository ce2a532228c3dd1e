package cmd

import (
	"fmt"
	"os"

	"meeting-scheduler/config"
	"meeting-scheduler/models"
	"meeting-scheduler/parser"
)

// loadInput parses the three CSV inputs and merges preferences into the
// supplier list. It also returns preference rows naming unknown suppliers.
func loadInput(in config.InputConfig) (models.Input, []string, error) {
	missing := map[string]string{"reps": in.Reps, "suppliers": in.Suppliers, "preferences": in.Preferences}
	for _, name := range []string{"reps", "suppliers", "preferences"} {
		if missing[name] == "" {
			return models.Input{}, nil, fmt.Errorf("no %s file: set --%s or input.%s", name, name, name)
		}
	}

	var reps []models.Rep
	if err := withFile(in.Reps, func(f *os.File) (err error) {
		reps, err = parser.ParseReps(f)
		return err
	}); err != nil {
		return models.Input{}, nil, err
	}
	var suppliers []models.Supplier
	if err := withFile(in.Suppliers, func(f *os.File) (err error) {
		suppliers, err = parser.ParseSuppliers(f)
		return err
	}); err != nil {
		return models.Input{}, nil, err
	}
	var prefs *parser.Preferences
	if err := withFile(in.Preferences, func(f *os.File) (err error) {
		prefs, err = parser.ParsePreferences(f)
		return err
	}); err != nil {
		return models.Input{}, nil, err
	}

	merged, unknown := parser.MergePreferences(suppliers, prefs)
	return models.Input{Reps: reps, Suppliers: merged}, unknown, nil
}

func withFile(path string, fn func(*os.File) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()
	if err := fn(file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
