package usecase

import "strings"

// FilterRows hides rows whose name does not contain query, ignoring case.
// Rows are never removed; an empty query shows them all.
func FilterRows(rows []TableRow, query string) {
	q := strings.ToLower(query)
	for i := range rows {
		rows[i].Hidden = !strings.Contains(strings.ToLower(rows[i].Name), q)
	}
}

// VisibleCount reports how many rows are currently shown.
func VisibleCount(rows []TableRow) int {
	n := 0
	for _, r := range rows {
		if !r.Hidden {
			n++
		}
	}
	return n
}
