package scheduler_test

import (
	"testing"

	"meeting-scheduler/models"
	"meeting-scheduler/scheduler"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	key := rep("Kim", "Safety", "Gloves", 1, 1, models.LeaderKey, "West", "A")
	region := rep("Rhea", "Safety", "Gloves", 3, 2, models.LeaderRegion, "West", "A")
	regionOtherSegment := rep("Ross", "Safety", "Gloves", 1, 1, models.LeaderRegion, "West", "B")
	districtWest := rep("Dana", "Safety", "Gloves", 2, 3, models.LeaderDistrict, "West", "A")
	districtWest2 := rep("Drew", "Safety", "Gloves", 1, 4, models.LeaderDistrict, "West", "B")
	districtEast := rep("Dora", "Safety", "Gloves", 1, 1, models.LeaderDistrict, "East", "A")

	pool := []models.Rep{key, region, regionOtherSegment, districtWest, districtWest2, districtEast}

	tests := map[string]struct {
		candidate models.Rep
		pool      []models.Rep
		exclude   map[string]bool
		tier      models.Tier
		want      string
		ok        bool
	}{
		"KeyPrefersRegionSameSegment": {
			candidate: key, pool: pool, tier: models.TierCategory, want: "Rhea", ok: true,
		},
		"KeyFallsBackToDistrictSameSegment": {
			candidate: key, pool: pool, exclude: map[string]bool{"Rhea": true},
			tier: models.TierCategory, want: "Dora", ok: true,
		},
		"KeyNoSameSegmentLeft": {
			candidate: key, pool: []models.Rep{key, regionOtherSegment, districtWest2}, tier: models.TierCategory,
		},
		"RegionToDistrictSameRegionByCategoryRank": {
			candidate: region, pool: pool, tier: models.TierCategory, want: "Drew", ok: true,
		},
		"RegionToDistrictSameRegionBySubcategoryRank": {
			candidate: region, pool: pool, tier: models.TierSubcategory, want: "Dana", ok: true,
		},
		"DistrictToOtherDistrictSameRegion": {
			candidate: districtWest, pool: pool, tier: models.TierCategory, want: "Drew", ok: true,
		},
		"DistrictNeverItself": {
			candidate: districtEast, pool: pool, tier: models.TierCategory,
		},
		"DistrictExcluded": {
			candidate: districtWest, pool: pool, exclude: map[string]bool{"Drew": true}, tier: models.TierCategory,
		},
		"UnknownLeader": {
			candidate: rep("Zed", "Safety", "Gloves", 1, 1, "", "West", "A"), pool: pool, tier: models.TierCategory,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := scheduler.Substitute(tt.candidate, tt.pool, tt.exclude, tt.tier)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Name)
			}
		})
	}
}
