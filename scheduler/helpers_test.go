package scheduler_test

import (
	"fmt"

	"meeting-scheduler/calendar"
	"meeting-scheduler/models"
	"meeting-scheduler/scheduler"
)

func rep(name, category, subcategory string, catRank, subRank int, leader models.LeaderTier, region, segment string) models.Rep {
	return models.Rep{
		Name:            name,
		Category:        category,
		Subcategory:     subcategory,
		CategoryRank:    catRank,
		SubcategoryRank: subRank,
		Leader:          leader,
		Region:          region,
		Segment:         segment,
	}
}

func supplier(name string, typ models.SupplierType, requests ...string) models.Supplier {
	return models.Supplier{Name: name, Booth: "B-" + name, Type: typ, Requests: requests}
}

func oneDay(states ...calendar.SlotState) calendar.Calendar {
	day := calendar.Day{Name: "Day 1"}
	for i, st := range states {
		day.Slots = append(day.Slots, calendar.Slot{Label: fmt.Sprintf("slot-%d", i), State: st})
	}
	return calendar.Calendar{Days: []calendar.Day{day}}
}

func options(repCap, peakCap, accCap int) scheduler.Options {
	return scheduler.Options{RepCap: repCap, PeakCap: peakCap, AcceleratingCap: accCap, Seeds: 1, BaseSeed: 1}
}

// forum builds a mid-sized input with overlapping demand so that caps,
// substitution and slot contention all come into play.
func forum() models.Input {
	var reps []models.Rep
	leaders := []models.LeaderTier{models.LeaderKey, models.LeaderRegion, models.LeaderDistrict, models.LeaderDistrict}
	categories := []string{"Safety", "Electrical", "Fasteners"}
	for i := 0; i < 24; i++ {
		cat := categories[i%len(categories)]
		reps = append(reps, rep(
			fmt.Sprintf("Rep%02d", i),
			cat,
			fmt.Sprintf("%s-%d", cat, i%2),
			i/len(categories)+1,
			i%5+1,
			leaders[i%len(leaders)],
			fmt.Sprintf("Region%d", i%3),
			fmt.Sprintf("Segment%d", i%2),
		))
	}

	var suppliers []models.Supplier
	for i := 0; i < 30; i++ {
		typ := models.SupplierAccelerating
		if i%3 == 0 {
			typ = models.SupplierPeak
		}
		requests := []string{
			reps[(i*7)%len(reps)].Name,
			categories[i%len(categories)],
			fmt.Sprintf("%s-%d", categories[(i+1)%len(categories)], i%2),
			reps[(i*5+3)%len(reps)].Name,
			categories[(i+2)%len(categories)],
			"Unknown Vertical",
			reps[(i*11+1)%len(reps)].Name,
		}
		suppliers = append(suppliers, supplier(fmt.Sprintf("Supplier%02d", i), typ, requests...))
	}
	return models.Input{Reps: reps, Suppliers: suppliers}
}
