// Package period resolves the reporting time-window enum into SQL
// filters. Every report and the billing summary share the same
// resolution rules.
package period

import "fmt"

type Period string

const (
	Today Period = "today"
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
	All   Period = "all"
)

// Parse normalizes a query-string value, falling back to def for
// empty input. Unknown values resolve to All (unfiltered), matching
// the permissive switch the reports have always used.
func Parse(s string, def Period) Period {
	switch Period(s) {
	case Today, Week, Month, Year:
		return Period(s)
	case "":
		return def
	default:
		return All
	}
}

// Clause returns a SQL condition limiting column to the window.
// column is always a code-level identifier, never user input.
func (p Period) Clause(column string) string {
	switch p {
	case Today:
		return fmt.Sprintf("DATE(%s) = CURRENT_DATE", column)
	case Week:
		return fmt.Sprintf("%s >= CURRENT_DATE - INTERVAL '7 days'", column)
	case Month:
		return fmt.Sprintf("%s >= CURRENT_DATE - INTERVAL '30 days'", column)
	case Year:
		return fmt.Sprintf("%s >= CURRENT_DATE - INTERVAL '1 year'", column)
	default:
		return "1=1"
	}
}
