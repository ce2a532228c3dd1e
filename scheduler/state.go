package scheduler

import (
	"meeting-scheduler/calendar"
	"meeting-scheduler/models"
)

// State is the mutable availability of one pass. It is created per pass and
// never shared between passes.
type State struct {
	cal           calendar.Calendar
	repBusy       map[string]map[calendar.Key]bool
	repCount      map[string]int
	supplierCount map[string]int
	supplierUsed  map[string]map[calendar.Key]bool
	meetings      []models.Meeting
}

// NewState returns a state where every rep is free in every open slot.
func NewState(cal calendar.Calendar, reps []models.Rep) *State {
	s := &State{
		cal:           cal,
		repBusy:       make(map[string]map[calendar.Key]bool, len(reps)),
		repCount:      make(map[string]int, len(reps)),
		supplierCount: make(map[string]int),
		supplierUsed:  make(map[string]map[calendar.Key]bool),
	}
	for _, r := range reps {
		s.repBusy[r.Name] = make(map[calendar.Key]bool)
	}
	return s
}

// RepFree reports whether the rep can take a meeting in the slot.
func (s *State) RepFree(rep string, k calendar.Key) bool {
	return s.cal.IsOpen(k) && !s.repBusy[rep][k]
}

// SupplierFree reports whether the supplier has no meeting in the slot.
func (s *State) SupplierFree(supplier string, k calendar.Key) bool {
	return !s.supplierUsed[supplier][k]
}

// RepCount is the number of meetings committed for a rep.
func (s *State) RepCount(rep string) int { return s.repCount[rep] }

// SupplierCount is the number of meetings committed for a supplier.
func (s *State) SupplierCount(supplier string) int { return s.supplierCount[supplier] }

// Meetings returns the committed meetings in commit order.
func (s *State) Meetings() []models.Meeting { return s.meetings }

// commit records a meeting and every piece of state that depends on it in one
// step: rep and supplier slots, both counters and the supplier summary.
func (s *State) commit(m models.Meeting, k calendar.Key, sum *models.SupplierSummary) {
	if s.repBusy[m.Rep] == nil {
		s.repBusy[m.Rep] = make(map[calendar.Key]bool)
	}
	if s.supplierUsed[m.Supplier] == nil {
		s.supplierUsed[m.Supplier] = make(map[calendar.Key]bool)
	}
	s.repBusy[m.Rep][k] = true
	s.supplierUsed[m.Supplier][k] = true
	s.repCount[m.Rep]++
	s.supplierCount[m.Supplier]++
	s.meetings = append(s.meetings, m)

	if sum.CategoryCounts[m.Request] == 0 {
		sum.Fulfilled = append(sum.Fulfilled, m.Request)
	}
	sum.CategoryCounts[m.Request]++
}
