package scheduler

import (
	"slices"
	"sort"

	"meeting-scheduler/models"
)

// SupplierTable returns the meetings as supplier rows sorted by supplier,
// then day, then slot.
func SupplierTable(meetings []models.Meeting) []models.SupplierRow {
	sorted := slices.Clone(meetings)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Supplier != b.Supplier {
			return a.Supplier < b.Supplier
		}
		if a.DayIndex != b.DayIndex {
			return a.DayIndex < b.DayIndex
		}
		return a.SlotIndex < b.SlotIndex
	})
	rows := make([]models.SupplierRow, len(sorted))
	for i, m := range sorted {
		rows[i] = models.SupplierRow{
			Supplier: m.Supplier,
			Booth:    m.Booth,
			Day:      m.Day,
			Slot:     m.Slot,
			Rep:      m.Rep,
			Category: m.Category,
		}
	}
	return rows
}

// RepTable returns the meetings as rep rows sorted by rep, then day, then slot.
func RepTable(meetings []models.Meeting) []models.RepRow {
	sorted := slices.Clone(meetings)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Rep != b.Rep {
			return a.Rep < b.Rep
		}
		if a.DayIndex != b.DayIndex {
			return a.DayIndex < b.DayIndex
		}
		return a.SlotIndex < b.SlotIndex
	})
	rows := make([]models.RepRow, len(sorted))
	for i, m := range sorted {
		rows[i] = models.RepRow{
			Rep:      m.Rep,
			Day:      m.Day,
			Slot:     m.Slot,
			Supplier: m.Supplier,
			Booth:    m.Booth,
			Category: m.Category,
		}
	}
	return rows
}

// MissingSuppliers lists suppliers that have no entry in the summaries, in
// supplier order. A non-empty result points at an upstream data mismatch.
func MissingSuppliers(suppliers []models.Supplier, summaries map[string]*models.SupplierSummary) []string {
	missing := []string{}
	for _, s := range suppliers {
		if _, ok := summaries[s.Name]; !ok {
			missing = append(missing, s.Name)
		}
	}
	return missing
}

// BuildSchedule turns an optimisation result into the tables handed to
// renderers. Validation is computed against the full supplier list.
func BuildSchedule(res *Result, suppliers []models.Supplier) *models.Schedule {
	best := res.Best
	return &models.Schedule{
		RunID:             res.RunID,
		Seed:              best.Seed,
		Unfulfilled:       best.Unfulfilled,
		SupplierRows:      SupplierTable(best.Meetings),
		RepRows:           RepTable(best.Meetings),
		Summaries:         best.Summaries,
		MissingSuppliers:  MissingSuppliers(suppliers, best.Summaries),
		SeedUnfulfilled:   res.Unfulfilled,
		MeanUnfulfilled:   res.Mean,
		StdDevUnfulfilled: res.StdDev,
	}
}
