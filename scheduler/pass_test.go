package scheduler_test

import (
	"testing"

	"meeting-scheduler/calendar"
	"meeting-scheduler/models"
	"meeting-scheduler/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPass_ExactRep(t *testing.T) {
	input := models.Input{
		Reps: []models.Rep{
			rep("Alice", "Safety", "Gloves", 1, 1, models.LeaderKey, "West", "A"),
			rep("Bob", "Electrical", "Wire", 1, 1, models.LeaderDistrict, "X", "B"),
		},
		Suppliers: []models.Supplier{supplier("Acme", models.SupplierPeak, "Alice")},
	}
	opts := options(12, 1, 1)
	cal := calendar.Default()

	res := scheduler.RunPass(input, cal, opts, 1)
	require.Len(t, res.Meetings, 1)

	m := res.Meetings[0]
	assert.Equal(t, "Acme", m.Supplier)
	assert.Equal(t, "B-Acme", m.Booth)
	assert.Equal(t, "Alice", m.Rep)
	assert.Equal(t, "Safety", m.Category, "rep-name requests are labelled with the rep's category")
	assert.True(t, cal.IsOpen(calendar.Key{Day: m.DayIndex, Slot: m.SlotIndex}))

	sum := res.Summaries["Acme"]
	require.NotNil(t, sum)
	assert.Equal(t, []string{"Alice"}, sum.Fulfilled)
	assert.Equal(t, map[string]int{"Alice": 1}, sum.CategoryCounts)
	assert.Equal(t, []models.Outcome{models.OutcomeFulfilled}, sum.Outcomes)
	assert.Zero(t, res.Unfulfilled)
	assert.NoError(t, scheduler.Verify(res, input, cal, opts))
}

func TestRunPass_CategoryLabels(t *testing.T) {
	input := models.Input{
		Reps: []models.Rep{
			rep("Alice", "Safety", "Gloves", 2, 1, models.LeaderDistrict, "West", "A"),
			rep("Bob", "Safety", "Eyewear", 1, 1, models.LeaderDistrict, "West", "A"),
		},
		Suppliers: []models.Supplier{supplier("Acme", models.SupplierPeak, "Gloves", "Safety")},
	}
	res := scheduler.RunPass(input, calendar.Default(), options(12, 6, 3), 3)
	require.Len(t, res.Meetings, 2)

	byRequest := map[string]models.Meeting{}
	for _, m := range res.Meetings {
		byRequest[m.Request] = m
	}
	assert.Equal(t, "Alice", byRequest["Gloves"].Rep)
	assert.Equal(t, "Gloves", byRequest["Gloves"].Category)
	assert.Equal(t, "Bob", byRequest["Safety"].Rep, "best category rank first")
	assert.Equal(t, "Safety", byRequest["Safety"].Category)
}

func TestRunPass_UnresolvedRequest(t *testing.T) {
	input := models.Input{
		Reps:      []models.Rep{rep("Alice", "Safety", "Gloves", 1, 1, models.LeaderKey, "West", "A")},
		Suppliers: []models.Supplier{supplier("Acme", models.SupplierPeak, "Plumbing", "Alice")},
	}
	res := scheduler.RunPass(input, calendar.Default(), options(12, 6, 3), 1)

	sum := res.Summaries["Acme"]
	assert.Equal(t, []models.Outcome{models.OutcomeUnresolved, models.OutcomeFulfilled}, sum.Outcomes)
	assert.Equal(t, []string{"Alice"}, sum.Fulfilled)
	assert.Empty(t, sum.Substitutions)
	assert.Equal(t, 1, res.Unfulfilled)
}

func TestRunPass_SupplierCap(t *testing.T) {
	input := models.Input{
		Reps: []models.Rep{
			rep("Alice", "Safety", "Gloves", 1, 1, models.LeaderKey, "West", "A"),
			rep("Bob", "Safety", "Gloves", 2, 2, models.LeaderDistrict, "West", "A"),
		},
		Suppliers: []models.Supplier{supplier("Acme", models.SupplierAccelerating, "Alice", "Bob", "Safety")},
	}
	res := scheduler.RunPass(input, calendar.Default(), options(12, 6, 1), 1)

	require.Len(t, res.Meetings, 1)
	assert.Equal(t, "Alice", res.Meetings[0].Rep)
	assert.Equal(t, []models.Outcome{
		models.OutcomeFulfilled, models.OutcomeCapReached, models.OutcomeCapReached,
	}, res.Summaries["Acme"].Outcomes)
	assert.Equal(t, 2, res.Unfulfilled)
}

func TestRunPass_RepeatedRequestCounts(t *testing.T) {
	input := models.Input{
		Reps: []models.Rep{
			rep("Alice", "Safety", "Gloves", 1, 1, models.LeaderKey, "West", "A"),
			rep("Bob", "Safety", "Gloves", 2, 2, models.LeaderDistrict, "West", "A"),
		},
		Suppliers: []models.Supplier{supplier("Acme", models.SupplierPeak, "Safety", "Safety")},
	}
	res := scheduler.RunPass(input, calendar.Default(), options(12, 6, 3), 1)

	sum := res.Summaries["Acme"]
	assert.Len(t, res.Meetings, 2)
	assert.Equal(t, []string{"Safety"}, sum.Fulfilled)
	assert.Equal(t, 2, sum.CategoryCounts["Safety"])
}

func TestRunPass_OverCapWithoutSubstitute(t *testing.T) {
	input := models.Input{
		Reps: []models.Rep{
			rep("Alice", "Widgets", "Sprockets", 1, 1, models.LeaderDistrict, "West", "A"),
			rep("Bob", "Electrical", "Wire", 1, 1, models.LeaderDistrict, "West", "A"),
		},
		Suppliers: []models.Supplier{
			supplier("First", models.SupplierPeak, "Alice"),
			supplier("Second", models.SupplierAccelerating, "Widgets"),
		},
	}
	opts := options(1, 6, 3)
	cal := calendar.Default()
	res := scheduler.RunPass(input, cal, opts, 1)

	require.Len(t, res.Meetings, 1)
	assert.Equal(t, "First", res.Meetings[0].Supplier)

	sum := res.Summaries["Second"]
	assert.Empty(t, sum.Fulfilled)
	assert.Equal(t, []models.Outcome{models.OutcomeUnavailable}, sum.Outcomes)
	assert.Equal(t, map[string][]string{"Widgets": {"Alice"}}, sum.Substitutions)
	assert.NoError(t, scheduler.Verify(res, input, cal, opts))
}

func TestRunPass_SubstitutionCascade(t *testing.T) {
	reps := []models.Rep{
		rep("Kim", "Safety", "Gloves", 1, 1, models.LeaderKey, "North", "A"),
		rep("Rhea", "Safety", "Gloves", 2, 2, models.LeaderRegion, "West", "A"),
		rep("Dan", "Safety", "Eyewear", 3, 1, models.LeaderDistrict, "West", "B"),
		rep("Eve", "Electrical", "Wire", 1, 1, models.LeaderDistrict, "West", "A"),
	}

	tests := map[string]struct {
		suppliers   []models.Supplier
		supplier    string
		wantRep     string
		wantRemoved []string
	}{
		"KeyReplacedByRegion": {
			suppliers: []models.Supplier{
				supplier("P1", models.SupplierPeak, "Kim"),
				supplier("P2", models.SupplierPeak, "Kim"),
			},
			supplier:    "P2",
			wantRep:     "Rhea",
			wantRemoved: []string{"Kim"},
		},
		"RegionReplacedByDistrict": {
			suppliers: []models.Supplier{
				supplier("P1", models.SupplierPeak, "Kim"),
				supplier("P2", models.SupplierPeak, "Rhea"),
				supplier("P3", models.SupplierPeak, "Kim"),
			},
			supplier:    "P3",
			wantRep:     "Dan",
			wantRemoved: []string{"Kim", "Rhea"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			input := models.Input{Reps: reps, Suppliers: tt.suppliers}
			opts := options(1, 6, 3)
			cal := calendar.Default()
			res := scheduler.RunPass(input, cal, opts, 5)

			var got []models.Meeting
			for _, m := range res.Meetings {
				if m.Supplier == tt.supplier {
					got = append(got, m)
				}
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantRep, got[0].Rep)
			assert.Equal(t, "Safety", got[0].Category)

			sum := res.Summaries[tt.supplier]
			assert.Equal(t, []string{"Kim"}, sum.Fulfilled)
			assert.Equal(t, tt.wantRemoved, sum.Substitutions["Kim"])
			assert.NoError(t, scheduler.Verify(res, input, cal, opts))
		})
	}
}

func TestRunPass_SubstituteNeverOutsideTier(t *testing.T) {
	// Eve shares Rhea's region but not the requested category.
	input := models.Input{
		Reps: []models.Rep{
			rep("Rhea", "Safety", "Gloves", 1, 1, models.LeaderRegion, "West", "A"),
			rep("Eve", "Electrical", "Wire", 1, 1, models.LeaderDistrict, "West", "A"),
		},
		Suppliers: []models.Supplier{
			supplier("P1", models.SupplierPeak, "Rhea"),
			supplier("P2", models.SupplierPeak, "Safety"),
		},
	}
	res := scheduler.RunPass(input, calendar.Default(), options(1, 6, 3), 2)

	require.Len(t, res.Meetings, 1)
	assert.Equal(t, []string{"Rhea"}, res.Summaries["P2"].Substitutions["Safety"])
	assert.Empty(t, res.Summaries["P2"].Fulfilled)
}

func TestRunPass_EarlierSupplierWinsSoleCandidate(t *testing.T) {
	reps := []models.Rep{rep("Alice", "Safety", "Gloves", 1, 1, models.LeaderDistrict, "West", "A")}

	tests := map[string]struct {
		suppliers []models.Supplier
		winner    string
	}{
		"SamePriorityInputOrder": {
			suppliers: []models.Supplier{
				supplier("Zeta", models.SupplierPeak, "Alice"),
				supplier("Alpha", models.SupplierPeak, "Alice"),
			},
			winner: "Zeta",
		},
		"PeakBeforeAccelerating": {
			suppliers: []models.Supplier{
				supplier("Acc", models.SupplierAccelerating, "Alice"),
				supplier("Peak", models.SupplierPeak, "Alice"),
			},
			winner: "Peak",
		},
		"SpecificityBeforeInputOrder": {
			suppliers: []models.Supplier{
				supplier("Loose", models.SupplierPeak, "Safety"),
				supplier("Pinned", models.SupplierPeak, "Alice"),
			},
			winner: "Pinned",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			input := models.Input{Reps: reps, Suppliers: tt.suppliers}
			for seed := int64(1); seed <= 20; seed++ {
				res := scheduler.RunPass(input, calendar.Default(), options(1, 6, 3), seed)
				require.Len(t, res.Meetings, 1)
				assert.Equal(t, tt.winner, res.Meetings[0].Supplier, "seed %d", seed)
			}
		})
	}
}

func TestRunPass_SingleOpenSlot(t *testing.T) {
	input := models.Input{
		Reps: []models.Rep{rep("Alice", "Safety", "Gloves", 1, 1, models.LeaderDistrict, "West", "A")},
		Suppliers: []models.Supplier{
			supplier("S1", models.SupplierPeak, "Alice"),
			supplier("S2", models.SupplierPeak, "Alice"),
			supplier("S3", models.SupplierAccelerating, "Alice"),
		},
	}
	cal := oneDay(calendar.Lunch, calendar.Open, calendar.Break, calendar.Lunch)
	opts := options(10, 6, 3)

	for seed := int64(1); seed <= 10; seed++ {
		res := scheduler.RunPass(input, cal, opts, seed)
		require.Len(t, res.Meetings, 1)
		assert.Equal(t, 1, res.Meetings[0].SlotIndex)
		assert.Equal(t, "slot-1", res.Meetings[0].Slot)
		assert.Equal(t, "S1", res.Meetings[0].Supplier)
		assert.Equal(t, 2, res.Unfulfilled)
		assert.NoError(t, scheduler.Verify(res, input, cal, opts))
	}
}

func TestRunPass_SupplierNotDoubleBooked(t *testing.T) {
	input := models.Input{
		Reps: []models.Rep{
			rep("Alice", "Safety", "Gloves", 1, 1, models.LeaderDistrict, "West", "A"),
			rep("Bob", "Electrical", "Wire", 1, 1, models.LeaderDistrict, "East", "B"),
		},
		Suppliers: []models.Supplier{supplier("Acme", models.SupplierPeak, "Alice", "Bob")},
	}
	res := scheduler.RunPass(input, oneDay(calendar.Open, calendar.Lunch), options(10, 6, 3), 1)

	require.Len(t, res.Meetings, 1)
	assert.Equal(t, "Alice", res.Meetings[0].Rep)
	assert.Equal(t, []models.Outcome{models.OutcomeFulfilled, models.OutcomeUnavailable}, res.Summaries["Acme"].Outcomes)
	assert.Equal(t, []string{"Bob"}, res.Summaries["Acme"].Substitutions["Bob"])
}

func TestRunPass_Deterministic(t *testing.T) {
	input := forum()
	opts := options(4, 5, 3)
	cal := calendar.Default()

	a := scheduler.RunPass(input, cal, opts, 42)
	b := scheduler.RunPass(input, cal, opts, 42)
	assert.Equal(t, a.Meetings, b.Meetings)
	assert.Equal(t, a.Summaries, b.Summaries)
	assert.Equal(t, a.Unfulfilled, b.Unfulfilled)
}

func TestRunPass_InvariantsHoldAcrossSeeds(t *testing.T) {
	input := forum()
	cal := calendar.Default()

	tests := map[string]scheduler.Options{
		"TightReps":      options(2, 6, 3),
		"TightSuppliers": options(12, 2, 1),
		"Generous":       options(30, 7, 7),
	}
	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			for seed := int64(1); seed <= 15; seed++ {
				res := scheduler.RunPass(input, cal, opts, seed)
				require.NoError(t, scheduler.Verify(res, input, cal, opts), "seed %d", seed)

				total := 0
				for _, s := range input.Suppliers {
					sum := res.Summaries[s.Name]
					require.NotNil(t, sum)
					require.Len(t, sum.Outcomes, len(s.Requests))
					total += sum.Unfulfilled()
				}
				assert.Equal(t, total, res.Unfulfilled)
			}
		})
	}
}
