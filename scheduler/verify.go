package scheduler

import (
	"errors"
	"fmt"

	"meeting-scheduler/calendar"
	"meeting-scheduler/models"
)

// Verify checks a pass result against the scheduling invariants: no double
// booking of a rep or supplier, caps respected, no blackout meetings, and
// every meeting's rep drawn from its request's candidates or substitution
// pool. It returns all violations joined.
func Verify(res *models.PassResult, input models.Input, cal calendar.Calendar, opts Options) error {
	resolver := NewResolver(input.Reps)
	supplierType := make(map[string]models.SupplierType, len(input.Suppliers))
	for _, s := range input.Suppliers {
		supplierType[s.Name] = s.Type
	}

	type booking struct {
		who string
		key calendar.Key
	}
	repSlots := make(map[booking]bool)
	supplierSlots := make(map[booking]bool)
	repCount := make(map[string]int)
	supplierCount := make(map[string]int)

	var errs []error
	for _, m := range res.Meetings {
		k := calendar.Key{Day: m.DayIndex, Slot: m.SlotIndex}
		if !cal.IsOpen(k) {
			errs = append(errs, fmt.Errorf("meeting %s/%s at %s %s is not in an open slot", m.Supplier, m.Rep, m.Day, m.Slot))
		}
		if repSlots[booking{m.Rep, k}] {
			errs = append(errs, fmt.Errorf("rep %s double booked at %s %s", m.Rep, m.Day, m.Slot))
		}
		repSlots[booking{m.Rep, k}] = true
		if supplierSlots[booking{m.Supplier, k}] {
			errs = append(errs, fmt.Errorf("supplier %s double booked at %s %s", m.Supplier, m.Day, m.Slot))
		}
		supplierSlots[booking{m.Supplier, k}] = true
		repCount[m.Rep]++
		supplierCount[m.Supplier]++

		if !eligible(resolver, m) {
			errs = append(errs, fmt.Errorf("rep %s is not a candidate for request %q of %s", m.Rep, m.Request, m.Supplier))
		}
	}

	for rep, n := range repCount {
		if n > opts.RepCap {
			errs = append(errs, fmt.Errorf("rep %s has %d meetings, cap %d", rep, n, opts.RepCap))
		}
	}
	for sup, n := range supplierCount {
		if limit := opts.SupplierCap(supplierType[sup]); n > limit {
			errs = append(errs, fmt.Errorf("supplier %s has %d meetings, cap %d", sup, n, limit))
		}
	}
	return errors.Join(errs...)
}

func eligible(r *Resolver, m models.Meeting) bool {
	res := r.Resolve(m.Request)
	for _, c := range res.Candidates {
		if c.Name == m.Rep {
			return true
		}
	}
	for _, c := range r.substitutionPool(m.Request, res) {
		if c.Name == m.Rep {
			return true
		}
	}
	return false
}
