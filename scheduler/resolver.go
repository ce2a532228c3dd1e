package scheduler

import (
	"sort"
	"strings"

	"meeting-scheduler/models"
)

// Resolution is a request resolved to a tier and its ranked candidates.
type Resolution struct {
	Tier       models.Tier
	Candidates []models.Rep
}

// Resolver maps raw request strings to candidate reps. It indexes the rep
// list once and is safe for concurrent use since it is never written after
// construction.
type Resolver struct {
	reps          []models.Rep
	byName        map[string][]int
	bySubcategory map[string][]int
	byCategory    map[string][]int
}

// NewResolver indexes reps by name, sub-category and category.
func NewResolver(reps []models.Rep) *Resolver {
	r := &Resolver{
		reps:          reps,
		byName:        make(map[string][]int),
		bySubcategory: make(map[string][]int),
		byCategory:    make(map[string][]int),
	}
	for i, rep := range reps {
		r.byName[rep.Name] = append(r.byName[rep.Name], i)
		if rep.Subcategory != "" {
			r.bySubcategory[rep.Subcategory] = append(r.bySubcategory[rep.Subcategory], i)
		}
		if rep.Category != "" {
			r.byCategory[rep.Category] = append(r.byCategory[rep.Category], i)
		}
	}
	return r
}

// Resolve tries an exact rep name, then sub-category, then category. Matching
// is exact and case-sensitive after trimming surrounding whitespace. The
// returned candidate slice is a fresh copy.
func (r *Resolver) Resolve(request string) Resolution {
	req := strings.TrimSpace(request)
	if req == "" {
		return Resolution{Tier: models.TierUnresolved}
	}
	if idx, ok := r.byName[req]; ok {
		return Resolution{Tier: models.TierExactRep, Candidates: r.pick(idx)}
	}
	if idx, ok := r.bySubcategory[req]; ok {
		c := r.pick(idx)
		sort.SliceStable(c, func(i, j int) bool { return c[i].SubcategoryRank < c[j].SubcategoryRank })
		return Resolution{Tier: models.TierSubcategory, Candidates: c}
	}
	if idx, ok := r.byCategory[req]; ok {
		c := r.pick(idx)
		sort.SliceStable(c, func(i, j int) bool { return c[i].CategoryRank < c[j].CategoryRank })
		return Resolution{Tier: models.TierCategory, Candidates: c}
	}
	return Resolution{Tier: models.TierUnresolved}
}

// Resolve is a convenience wrapper for one-off lookups.
func Resolve(request string, reps []models.Rep) Resolution {
	return NewResolver(reps).Resolve(request)
}

func (r *Resolver) pick(idx []int) []models.Rep {
	out := make([]models.Rep, len(idx))
	for i, j := range idx {
		out[i] = r.reps[j]
	}
	return out
}

// categoryLabel is the label attached to a meeting.
func categoryLabel(tier models.Tier, rep models.Rep, request string) string {
	switch tier {
	case models.TierExactRep, models.TierCategory:
		return rep.Category
	case models.TierSubcategory:
		return rep.Subcategory
	default:
		return request
	}
}
