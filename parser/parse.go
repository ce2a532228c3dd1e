package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	customerrors "meeting-scheduler/errors"
	"meeting-scheduler/metrics"
	"meeting-scheduler/models"
)

// Preferences maps a supplier name to its ordered raw requests. Order holds
// the supplier names in first-seen order.
type Preferences struct {
	Requests map[string][]string
	Order    []string
}

// ParseReps reads the rep list. Lines starting with '#' are headers/comments.
// Each record is:
//
//	name, category, subcategory, category rank, subcategory rank, leader, region, segment
//
// Leader is one of Key, Region or District (case-insensitive, an optional
// " Leader" suffix is accepted). Names must be unique.
func ParseReps(r io.Reader) ([]models.Rep, error) {
	defer observe(time.Now())
	var reps []models.Rep
	seen := make(map[string]bool)
	err := readRecords(r, "reps", func(line int, record []string) error {
		if len(record) != 8 {
			return fail("reps", line, record, customerrors.ErrInvalidFieldCount)
		}
		rep := models.Rep{
			Name:        field(record, 0),
			Category:    field(record, 1),
			Subcategory: field(record, 2),
			Region:      field(record, 6),
			Segment:     field(record, 7),
		}
		if rep.Name == "" {
			return fail("reps", line, record, customerrors.ErrEmptyRecord)
		}
		if seen[rep.Name] {
			return fail("reps", line, record, fmt.Errorf("%w: %s", customerrors.ErrDuplicateName, rep.Name))
		}
		var err error
		if rep.CategoryRank, err = parseRank(field(record, 3)); err != nil {
			return fail("reps", line, record, fmt.Errorf("%w: %v", customerrors.ErrInvalidRank, err))
		}
		if rep.SubcategoryRank, err = parseRank(field(record, 4)); err != nil {
			return fail("reps", line, record, fmt.Errorf("%w: %v", customerrors.ErrInvalidRank, err))
		}
		leader, ok := parseLeader(field(record, 5))
		if !ok {
			return fail("reps", line, record, fmt.Errorf("%w: %q", customerrors.ErrInvalidLeaderTier, field(record, 5)))
		}
		rep.Leader = leader

		seen[rep.Name] = true
		reps = append(reps, rep)
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ParserRecordsTotal.WithLabelValues("reps").Add(float64(len(reps)))
	return reps, nil
}

// ParseSuppliers reads the supplier list, one "name, booth, type" record per
// line. Type is Peak or Accelerating (case-insensitive). Names must be unique.
func ParseSuppliers(r io.Reader) ([]models.Supplier, error) {
	defer observe(time.Now())
	var suppliers []models.Supplier
	seen := make(map[string]bool)
	err := readRecords(r, "suppliers", func(line int, record []string) error {
		if len(record) != 3 {
			return fail("suppliers", line, record, customerrors.ErrInvalidFieldCount)
		}
		s := models.Supplier{Name: field(record, 0), Booth: field(record, 1)}
		if s.Name == "" {
			return fail("suppliers", line, record, customerrors.ErrEmptyRecord)
		}
		if seen[s.Name] {
			return fail("suppliers", line, record, fmt.Errorf("%w: %s", customerrors.ErrDuplicateName, s.Name))
		}
		switch strings.ToLower(field(record, 2)) {
		case "peak":
			s.Type = models.SupplierPeak
		case "accelerating":
			s.Type = models.SupplierAccelerating
		default:
			return fail("suppliers", line, record, fmt.Errorf("%w: %q", customerrors.ErrInvalidSupplierType, field(record, 2)))
		}
		seen[s.Name] = true
		suppliers = append(suppliers, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ParserRecordsTotal.WithLabelValues("suppliers").Add(float64(len(suppliers)))
	return suppliers, nil
}

// ParsePreferences reads "supplier, request, request, ..." records. Rows
// for the same supplier append in file order; empty request cells are skipped.
func ParsePreferences(r io.Reader) (*Preferences, error) {
	defer observe(time.Now())
	prefs := &Preferences{Requests: make(map[string][]string)}
	rows := 0
	err := readRecords(r, "preferences", func(line int, record []string) error {
		name := field(record, 0)
		if name == "" {
			return fail("preferences", line, record, customerrors.ErrEmptyRecord)
		}
		if _, ok := prefs.Requests[name]; !ok {
			prefs.Order = append(prefs.Order, name)
			prefs.Requests[name] = []string{}
		}
		for i := 1; i < len(record); i++ {
			if req := field(record, i); req != "" {
				prefs.Requests[name] = append(prefs.Requests[name], req)
			}
		}
		rows++
		return nil
	})
	if err != nil {
		return nil, err
	}
	metrics.ParserRecordsTotal.WithLabelValues("preferences").Add(float64(rows))
	return prefs, nil
}

// MergePreferences attaches requests to suppliers and returns the preference
// entries that name no known supplier. Suppliers without preferences get an
// empty request list.
func MergePreferences(suppliers []models.Supplier, prefs *Preferences) ([]models.Supplier, []string) {
	known := make(map[string]bool, len(suppliers))
	out := make([]models.Supplier, len(suppliers))
	for i, s := range suppliers {
		known[s.Name] = true
		s.Requests = append([]string(nil), prefs.Requests[s.Name]...)
		out[i] = s
	}
	unknown := []string{}
	for _, name := range prefs.Order {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	return out, unknown
}

func readRecords(r io.Reader, source string, fn func(line int, record []string) error) error {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	reader.Comment = 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			metrics.ParserErrorsTotal.WithLabelValues("csv").Inc()
			return fmt.Errorf("error reading %s CSV: %w", source, err)
		}
		lineNum, _ := reader.FieldPos(0)
		if len(record) > 0 && strings.HasPrefix(strings.TrimSpace(record[0]), "#") {
			continue
		}
		if blank(record) {
			continue
		}
		if err := fn(lineNum, record); err != nil {
			return err
		}
	}
}

func fail(source string, line int, record []string, err error) error {
	metrics.ParserErrorsTotal.WithLabelValues(errorType(err)).Inc()
	return &customerrors.ParseError{Source: source, Line: line, Record: record, Err: err}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, customerrors.ErrInvalidFieldCount):
		return "field_count"
	case errors.Is(err, customerrors.ErrInvalidRank):
		return "rank"
	case errors.Is(err, customerrors.ErrInvalidLeaderTier):
		return "leader_tier"
	case errors.Is(err, customerrors.ErrInvalidSupplierType):
		return "supplier_type"
	case errors.Is(err, customerrors.ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, customerrors.ErrEmptyRecord):
		return "empty_record"
	default:
		return "other"
	}
}

func observe(start time.Time) {
	metrics.ParserDurationSeconds.Observe(time.Since(start).Seconds())
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseRank accepts integers and spreadsheet-style floats such as "3.0".
func parseRank(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("rank %q is not a whole number", s)
	}
	return int(f), nil
}

func parseLeader(s string) (models.LeaderTier, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.ToLower(s), "leader"))
	switch s {
	case "key":
		return models.LeaderKey, true
	case "region":
		return models.LeaderRegion, true
	case "district":
		return models.LeaderDistrict, true
	default:
		return "", false
	}
}
