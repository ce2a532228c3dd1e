package scheduler

import (
	"sort"

	"meeting-scheduler/models"
)

// Specificity scores constrain how early a supplier is processed.
const (
	specificityRep = iota
	specificitySubcategory
	specificityCategory
	specificityNone
)

// Specificity returns the best tier any of the requests resolves to:
// 0 for a rep name, 1 for a sub-category, 2 for a category, 3 otherwise.
func Specificity(requests []string, r *Resolver) int {
	best := specificityNone
	for _, req := range requests {
		switch r.Resolve(req).Tier {
		case models.TierExactRep:
			return specificityRep
		case models.TierSubcategory:
			best = min(best, specificitySubcategory)
		case models.TierCategory:
			best = min(best, specificityCategory)
		}
	}
	return best
}

// OrderSuppliers returns suppliers ordered Peak first, then by specificity.
// Ties keep input order.
func OrderSuppliers(suppliers []models.Supplier, r *Resolver) []models.Supplier {
	score := make(map[string]int, len(suppliers))
	for _, s := range suppliers {
		score[s.Name] = Specificity(s.Requests, r)
	}
	ordered := make([]models.Supplier, len(suppliers))
	copy(ordered, suppliers)
	sort.SliceStable(ordered, func(i, j int) bool {
		left, right := ordered[i], ordered[j]
		if left.Type.Rank() != right.Type.Rank() {
			return left.Type.Rank() < right.Type.Rank()
		}
		return score[left.Name] < score[right.Name]
	})
	return ordered
}
