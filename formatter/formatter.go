package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"meeting-scheduler/models"
)

// View selects which meeting table is rendered.
type View string

const (
	ViewSupplier View = "supplier"
	ViewRep      View = "rep"
)

// ParseView maps a config or flag value to a View.
func ParseView(s string) (View, error) {
	switch View(strings.ToLower(strings.TrimSpace(s))) {
	case "", ViewSupplier:
		return ViewSupplier, nil
	case ViewRep:
		return ViewRep, nil
	default:
		return "", fmt.Errorf("unknown view %q (want supplier or rep)", s)
	}
}

// Format renders the schedule in the named format: text, json or csv.
func Format(schedule *models.Schedule, format string, view View) (string, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return FormatText(schedule, view), nil
	case "json":
		return FormatJSON(schedule)
	case "csv":
		return FormatCSV(schedule, view), nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or csv)", format)
	}
}

// tableData is the view-independent shape shared by the text and CSV renderers.
type tableData struct {
	Header []string
	Rows   [][]string
	// Group is the column whose value starts a new block in text output.
	Group int
}

func prepareTable(schedule *models.Schedule, view View) tableData {
	if view == ViewRep {
		t := tableData{Header: []string{"Rep", "Day", "Slot", "Supplier", "Booth", "Category"}}
		for _, r := range schedule.RepRows {
			t.Rows = append(t.Rows, []string{r.Rep, r.Day, r.Slot, r.Supplier, r.Booth, r.Category})
		}
		return t
	}
	t := tableData{Header: []string{"Supplier", "Booth", "Day", "Slot", "Rep", "Category"}}
	for _, r := range schedule.SupplierRows {
		t.Rows = append(t.Rows, []string{r.Supplier, r.Booth, r.Day, r.Slot, r.Rep, r.Category})
	}
	return t
}

// FormatText returns a human readable schedule grouped by supplier or rep,
// followed by the per-supplier summary and validation warnings.
func FormatText(schedule *models.Schedule, view View) string {
	data := prepareTable(schedule, view)
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Run %s : seed=%d ; unfulfilled=%d ; meetings=%d\n",
		schedule.RunID, schedule.Seed, schedule.Unfulfilled, len(schedule.SupplierRows)))

	if len(data.Rows) == 0 {
		sb.WriteString("\nno meetings scheduled\n")
	}
	current := ""
	for _, row := range data.Rows {
		if row[data.Group] != current {
			current = row[data.Group]
			sb.WriteString("\n")
			sb.WriteString(formatGroupHeader(view, row))
			sb.WriteString("\n")
		}
		sb.WriteString(formatTextLine(view, row))
		sb.WriteString("\n")
	}

	sb.WriteString("\nSummary\n")
	for _, name := range sortedSummaryNames(schedule.Summaries) {
		sb.WriteString(formatSummaryLine(schedule.Summaries[name]))
	}

	if len(schedule.MissingSuppliers) > 0 {
		sb.WriteString(fmt.Sprintf("\n⚠️  Suppliers missing from summary: %s\n", strings.Join(schedule.MissingSuppliers, ", ")))
	}
	if len(schedule.UnknownSuppliers) > 0 {
		sb.WriteString(fmt.Sprintf("⚠️  Preferences for unknown suppliers: %s\n", strings.Join(schedule.UnknownSuppliers, ", ")))
	}
	return sb.String()
}

func formatGroupHeader(view View, row []string) string {
	if view == ViewRep {
		return row[0]
	}
	return fmt.Sprintf("%s (booth %s)", row[0], row[1])
}

func formatTextLine(view View, row []string) string {
	if view == ViewRep {
		// Rep, Day, Slot, Supplier, Booth, Category
		return fmt.Sprintf("  %s %s : %s [booth %s] ; %s", row[1], row[2], row[3], row[4], row[5])
	}
	// Supplier, Booth, Day, Slot, Rep, Category
	return fmt.Sprintf("  %s %s : %s ; %s", row[2], row[3], row[4], row[5])
}

func formatSummaryLine(s *models.SupplierSummary) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s : requested=%d, fulfilled=%d, unfulfilled=%d\n",
		s.Supplier, len(s.Requested), len(s.Fulfilled), s.Unfulfilled()))
	for i, req := range s.Requested {
		if i < len(s.Outcomes) && s.Outcomes[i] != models.OutcomeFulfilled {
			sb.WriteString(fmt.Sprintf("    • %s: %s\n", req, s.Outcomes[i]))
		}
	}
	for _, req := range sortedKeys(s.Substitutions) {
		sb.WriteString(fmt.Sprintf("    ↺ %s: removed %s\n", req, strings.Join(s.Substitutions[req], ", ")))
	}
	return sb.String()
}

// FormatJSON returns the whole schedule, tables and summaries, as indented JSON.
func FormatJSON(schedule *models.Schedule) (string, error) {
	jsonBytes, err := json.MarshalIndent(schedule, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding schedule: %w", err)
	}
	return string(jsonBytes), nil
}

// FormatCSV returns the selected meeting table as CSV with a header row.
func FormatCSV(schedule *models.Schedule, view View) string {
	data := prepareTable(schedule, view)
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write(data.Header)
	for _, row := range data.Rows {
		writer.Write(row)
	}

	writer.Flush()
	return sb.String()
}

// FormatSummaryCSV returns one row per supplier summary.
func FormatSummaryCSV(schedule *models.Schedule) string {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	writer.Write([]string{"Supplier", "Requested", "Fulfilled", "Unfulfilled", "Substitutions"})
	for _, name := range sortedSummaryNames(schedule.Summaries) {
		s := schedule.Summaries[name]
		var subs []string
		for _, req := range sortedKeys(s.Substitutions) {
			subs = append(subs, fmt.Sprintf("%s(%s)", req, strings.Join(s.Substitutions[req], ",")))
		}
		writer.Write([]string{
			s.Supplier,
			strings.Join(s.Requested, "; "),
			strings.Join(s.Fulfilled, "; "),
			fmt.Sprintf("%d", s.Unfulfilled()),
			strings.Join(subs, "; "),
		})
	}

	writer.Flush()
	return sb.String()
}

func sortedSummaryNames(summaries map[string]*models.SupplierSummary) []string {
	names := make([]string, 0, len(summaries))
	for name := range summaries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
