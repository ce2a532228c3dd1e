package scheduler

import (
	"slices"
	"time"

	"meeting-scheduler/calendar"
	"meeting-scheduler/logger"
	"meeting-scheduler/metrics"
	"meeting-scheduler/models"
)

// env is the read-only input shared by every pass of a run.
type env struct {
	input    models.Input
	cal      calendar.Calendar
	opts     Options
	resolver *Resolver
	ordered  []models.Supplier
}

func newEnv(input models.Input, cal calendar.Calendar, opts Options) *env {
	resolver := NewResolver(input.Reps)
	return &env{
		input:    input,
		cal:      cal,
		opts:     opts,
		resolver: resolver,
		ordered:  OrderSuppliers(input.Suppliers, resolver),
	}
}

// RunPass runs one complete scheduling pass with the given seed. Options are
// assumed valid; see Options.Validate.
func RunPass(input models.Input, cal calendar.Calendar, opts Options, seed int64) *models.PassResult {
	return newEnv(input, cal, opts).run(seed, logger.NopLogger{})
}

// pass holds the private state of one seed.
type pass struct {
	*env
	seed  int64
	state *State
	order slotOrder
	log   logger.Logger
}

func (e *env) run(seed int64, log logger.Logger) *models.PassResult {
	start := time.Now()
	p := &pass{
		env:   e,
		seed:  seed,
		state: NewState(e.cal, e.input.Reps),
		order: buildSlotOrder(e.cal, e.input.Reps, newRand(seed)),
		log:   log,
	}

	summaries := make(map[string]*models.SupplierSummary, len(e.ordered))
	days := len(e.cal.Days)
	for i, sup := range e.ordered {
		sum := newSummary(sup)
		summaries[sup.Name] = sum
		dayStart := 0
		if days > 0 {
			dayStart = i % days
		}
		p.schedule(sup, sum, dayStart)
	}

	total := 0
	for _, sum := range summaries {
		total += sum.Unfulfilled()
	}

	metrics.PassesTotal.Inc()
	metrics.PassDurationSeconds.Observe(time.Since(start).Seconds())
	return &models.PassResult{
		Seed:        seed,
		Meetings:    p.state.Meetings(),
		Summaries:   summaries,
		Unfulfilled: total,
	}
}

func newSummary(sup models.Supplier) *models.SupplierSummary {
	return &models.SupplierSummary{
		Supplier:       sup.Name,
		Requested:      slices.Clone(sup.Requests),
		Fulfilled:      []string{},
		CategoryCounts: make(map[string]int),
		Substitutions:  make(map[string][]string),
		Outcomes:       make([]models.Outcome, len(sup.Requests)),
	}
}

// schedule walks a supplier's requests in listed order until its cap is hit.
func (p *pass) schedule(sup models.Supplier, sum *models.SupplierSummary, dayStart int) {
	limit := p.opts.SupplierCap(sup.Type)
	for i, request := range sup.Requests {
		if p.state.SupplierCount(sup.Name) >= limit {
			for j := i; j < len(sup.Requests); j++ {
				sum.Outcomes[j] = models.OutcomeCapReached
			}
			return
		}
		sum.Outcomes[i] = p.assign(sup, request, sum, dayStart)
	}
}

type failure struct {
	rep    models.Rep
	reason Reason
}

// assign tries the request's ranked candidates, then substitutes for each
// failed candidate in rank order, cascading until a booking succeeds or the
// hierarchy has no replacement left.
func (p *pass) assign(sup models.Supplier, request string, sum *models.SupplierSummary, dayStart int) models.Outcome {
	res := p.resolver.Resolve(request)
	if res.Tier == models.TierUnresolved || len(res.Candidates) == 0 {
		return models.OutcomeUnresolved
	}

	tried := make(map[string]bool, len(res.Candidates))
	var failed []failure
	for _, rep := range res.Candidates {
		tried[rep.Name] = true
		reason, ok := p.book(sup, rep, request, res.Tier, sum, dayStart)
		if ok {
			return models.OutcomeFulfilled
		}
		failed = append(failed, failure{rep: rep, reason: reason})
	}

	pool := p.resolver.substitutionPool(request, res)
	for _, f := range failed {
		cur, reason := f.rep, f.reason
		for {
			sub, ok := Substitute(cur, pool, tried, res.Tier)
			p.removed(sum, request, cur, reason, sub.Name)
			if !ok {
				break
			}
			tried[sub.Name] = true
			next, booked := p.book(sup, sub, request, res.Tier, sum, dayStart)
			if booked {
				return models.OutcomeFulfilled
			}
			cur, reason = sub, next
		}
	}
	return models.OutcomeUnavailable
}

// book commits a meeting with rep if the rep is under cap and a common free
// slot exists.
func (p *pass) book(sup models.Supplier, rep models.Rep, request string, tier models.Tier, sum *models.SupplierSummary, dayStart int) (Reason, bool) {
	if p.state.RepCount(rep.Name) >= p.opts.RepCap {
		return ReasonOverCap, false
	}
	k, ok := findSlot(p.state, p.order, sup.Name, rep.Name, dayStart)
	if !ok {
		return ReasonNoSlot, false
	}
	day, slot := p.cal.Labels(k)
	m := models.Meeting{
		Supplier:  sup.Name,
		Booth:     sup.Booth,
		Rep:       rep.Name,
		Day:       day,
		Slot:      slot,
		DayIndex:  k.Day,
		SlotIndex: k.Slot,
		Category:  categoryLabel(tier, rep, request),
		Request:   request,
	}
	p.state.commit(m, k, sum)
	return "", true
}

// removed logs a rep taken out of a request, once per request.
func (p *pass) removed(sum *models.SupplierSummary, request string, rep models.Rep, reason Reason, replacement string) {
	metrics.SubstitutionsTotal.WithLabelValues(string(reason)).Inc()
	p.log.Debugw("rep substituted out", map[string]any{
		"seed":        p.seed,
		"supplier":    sum.Supplier,
		"request":     request,
		"rep":         rep.Name,
		"reason":      string(reason),
		"replacement": replacement,
	})
	if slices.Contains(sum.Substitutions[request], rep.Name) {
		return
	}
	sum.Substitutions[request] = append(sum.Substitutions[request], rep.Name)
}
