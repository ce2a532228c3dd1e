package scheduler

import (
	"math/rand/v2"

	"meeting-scheduler/calendar"
	"meeting-scheduler/models"
)

// slotOrder holds, per rep and per day, the open slot indices in a shuffled
// order drawn once per pass.
type slotOrder map[string][][]int

// newRand returns the pass PRNG. The same seed always yields the same stream.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// buildSlotOrder shuffles every rep's open slots day by day. Reps are visited
// in input order and days in calendar order so the draw depends on the seed only.
func buildSlotOrder(cal calendar.Calendar, reps []models.Rep, rng *rand.Rand) slotOrder {
	order := make(slotOrder, len(reps))
	for _, r := range reps {
		if _, ok := order[r.Name]; ok {
			continue
		}
		days := make([][]int, len(cal.Days))
		for d := range cal.Days {
			slots := cal.OpenSlots(d)
			rng.Shuffle(len(slots), func(i, j int) { slots[i], slots[j] = slots[j], slots[i] })
			days[d] = slots
		}
		order[r.Name] = days
	}
	return order
}

// findSlot returns the first slot, visiting days rotated from dayStart and
// each day's slots in the rep's shuffled order, that is open, free for the rep
// and free for the supplier.
func findSlot(st *State, order slotOrder, supplier, rep string, dayStart int) (calendar.Key, bool) {
	days := order[rep]
	n := len(days)
	for i := 0; i < n; i++ {
		d := (dayStart + i) % n
		for _, slot := range days[d] {
			k := calendar.Key{Day: d, Slot: slot}
			if st.RepFree(rep, k) && st.SupplierFree(supplier, k) {
				return k, true
			}
		}
	}
	return calendar.Key{}, false
}
