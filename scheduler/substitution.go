package scheduler

import (
	"strings"

	"meeting-scheduler/models"
)

// Reason is why a candidate could not take a meeting.
type Reason string

const (
	ReasonOverCap Reason = "over_cap"
	ReasonNoSlot  Reason = "no_slot"
)

// substitutionRule lists the leader tiers that may replace a rep, in
// preference order, and the field the replacement must share.
type substitutionRule struct {
	replacements []models.LeaderTier
	sameSegment  bool
	sameRegion   bool
}

var substitutionRules = map[models.LeaderTier]substitutionRule{
	models.LeaderKey:      {replacements: []models.LeaderTier{models.LeaderRegion, models.LeaderDistrict}, sameSegment: true},
	models.LeaderRegion:   {replacements: []models.LeaderTier{models.LeaderDistrict}, sameRegion: true},
	models.LeaderDistrict: {replacements: []models.LeaderTier{models.LeaderDistrict}, sameRegion: true},
}

// Substitute picks the replacement for a candidate that could not be booked.
// The replacement comes from pool, is not in exclude, satisfies the
// leadership rule for the candidate's tier and is the best ranked for the
// request tier (ties by name). It reports false when no rep qualifies.
func Substitute(candidate models.Rep, pool []models.Rep, exclude map[string]bool, tier models.Tier) (models.Rep, bool) {
	rule, ok := substitutionRules[candidate.Leader]
	if !ok {
		return models.Rep{}, false
	}
	for _, leader := range rule.replacements {
		var best *models.Rep
		for i := range pool {
			r := &pool[i]
			if r.Name == candidate.Name || exclude[r.Name] || r.Leader != leader {
				continue
			}
			if rule.sameSegment && r.Segment != candidate.Segment {
				continue
			}
			if rule.sameRegion && r.Region != candidate.Region {
				continue
			}
			if best == nil || betterRanked(*r, *best, tier) {
				best = r
			}
		}
		if best != nil {
			return *best, true
		}
	}
	return models.Rep{}, false
}

func betterRanked(a, b models.Rep, tier models.Tier) bool {
	ra, rb := a.CategoryRank, b.CategoryRank
	if tier == models.TierSubcategory {
		ra, rb = a.SubcategoryRank, b.SubcategoryRank
	}
	if ra != rb {
		return ra < rb
	}
	return a.Name < b.Name
}

// substitutionPool is the set of reps a request may be substituted with. It
// keeps the request within its tier: a sub-category request only draws from
// that sub-category, a category request from that category, and a rep-name
// request from the requested rep's category.
func (r *Resolver) substitutionPool(request string, res Resolution) []models.Rep {
	req := strings.TrimSpace(request)
	var idx []int
	switch res.Tier {
	case models.TierSubcategory:
		idx = r.bySubcategory[req]
	case models.TierCategory:
		idx = r.byCategory[req]
	case models.TierExactRep:
		seen := make(map[int]bool)
		for _, c := range res.Candidates {
			for _, i := range r.byCategory[c.Category] {
				if !seen[i] {
					seen[i] = true
					idx = append(idx, i)
				}
			}
		}
	}
	return r.pick(idx)
}
