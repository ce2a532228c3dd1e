package models

// SupplierType is the priority class of a supplier.
// Peak suppliers are processed before Accelerating ones.
type SupplierType string

const (
	SupplierPeak         SupplierType = "Peak"
	SupplierAccelerating SupplierType = "Accelerating"
)

// Rank orders supplier types for processing (lower first).
func (t SupplierType) Rank() int {
	if t == SupplierPeak {
		return 0
	}
	return 1
}

// LeaderTier is the leadership level of a rep.
type LeaderTier string

const (
	LeaderKey      LeaderTier = "Key"
	LeaderRegion   LeaderTier = "Region"
	LeaderDistrict LeaderTier = "District"
)

// Tier is the specificity of a resolved request.
type Tier int

const (
	TierExactRep Tier = iota
	TierSubcategory
	TierCategory
	TierUnresolved
)

func (t Tier) String() string {
	switch t {
	case TierExactRep:
		return "rep"
	case TierSubcategory:
		return "subcategory"
	case TierCategory:
		return "category"
	default:
		return "unresolved"
	}
}

// Rep is one attending sales representative. It is never mutated by the
// scheduler; per-pass state about a rep lives in the scheduler.
type Rep struct {
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Subcategory     string     `json:"subcategory"`
	CategoryRank    int        `json:"category_rank"`
	SubcategoryRank int        `json:"subcategory_rank"`
	Leader          LeaderTier `json:"leader"`
	Region          string     `json:"region"`
	Segment         string     `json:"segment"`
}

// Supplier is one exhibiting supplier together with its ordered requests.
type Supplier struct {
	Name     string       `json:"name"`
	Booth    string       `json:"booth"`
	Type     SupplierType `json:"type"`
	Requests []string     `json:"requests"`
}

// Input bundles the immutable data shared by every scheduling pass.
type Input struct {
	Reps      []Rep
	Suppliers []Supplier
}

// Meeting is a committed supplier/rep appointment.
type Meeting struct {
	Supplier  string `json:"supplier"`
	Booth     string `json:"booth"`
	Rep       string `json:"rep"`
	Day       string `json:"day"`
	Slot      string `json:"slot"`
	DayIndex  int    `json:"-"`
	SlotIndex int    `json:"-"`
	Category  string `json:"category"`
	// Request is the raw request string that produced the meeting.
	Request string `json:"request"`
}

// Outcome records what happened to a single request entry during a pass.
type Outcome string

const (
	OutcomeFulfilled   Outcome = "fulfilled"
	OutcomeUnresolved  Outcome = "unresolved"
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeCapReached  Outcome = "supplier_cap_reached"
)

// SupplierSummary is the per-supplier report of a pass.
type SupplierSummary struct {
	Supplier  string   `json:"supplier"`
	Requested []string `json:"requested"`
	// Fulfilled holds each fulfilled request string once, in fulfilment order.
	Fulfilled []string `json:"fulfilled"`
	// CategoryCounts counts the meetings produced per request string.
	CategoryCounts map[string]int `json:"category_counts"`
	// Substitutions maps a request to the reps removed from it.
	Substitutions map[string][]string `json:"substitutions,omitempty"`
	// Outcomes is parallel to Requested.
	Outcomes []Outcome `json:"outcomes"`
}

// Unfulfilled counts request entries that did not produce a meeting.
func (s *SupplierSummary) Unfulfilled() int {
	n := 0
	for _, o := range s.Outcomes {
		if o != OutcomeFulfilled {
			n++
		}
	}
	return n
}

// PassResult is the full output of one scheduling pass.
type PassResult struct {
	Seed        int64                       `json:"seed"`
	Meetings    []Meeting                   `json:"meetings"`
	Summaries   map[string]*SupplierSummary `json:"summaries"`
	Unfulfilled int                         `json:"unfulfilled"`
}

// SupplierRow is one line of the supplier-indexed meeting table.
type SupplierRow struct {
	Supplier string `json:"supplier"`
	Booth    string `json:"booth"`
	Day      string `json:"day"`
	Slot     string `json:"slot"`
	Rep      string `json:"rep"`
	Category string `json:"category"`
}

// RepRow is one line of the rep-indexed meeting table.
type RepRow struct {
	Rep      string `json:"rep"`
	Day      string `json:"day"`
	Slot     string `json:"slot"`
	Supplier string `json:"supplier"`
	Booth    string `json:"booth"`
	Category string `json:"category"`
}

// Schedule is the final, selected result handed to renderers.
type Schedule struct {
	RunID             string                      `json:"run_id"`
	Seed              int64                       `json:"seed"`
	Unfulfilled       int                         `json:"unfulfilled"`
	SupplierRows      []SupplierRow               `json:"supplier_schedule"`
	RepRows           []RepRow                    `json:"rep_schedule"`
	Summaries         map[string]*SupplierSummary `json:"summaries"`
	MissingSuppliers  []string                    `json:"missing_suppliers"`
	UnknownSuppliers  []string                    `json:"unknown_preference_suppliers,omitempty"`
	SeedUnfulfilled   []int                       `json:"seed_unfulfilled"`
	MeanUnfulfilled   float64                     `json:"mean_unfulfilled"`
	StdDevUnfulfilled float64                     `json:"stddev_unfulfilled"`
}
