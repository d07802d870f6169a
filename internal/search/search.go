// Package search provides the composable query pipeline over diary entries.
//
// Each filter is a pure function from an entry sequence to a filtered entry
// sequence. Filters are pointwise predicates with no cross-entry
// interaction, so they compose by sequential application in any order.
package search

import (
	"strings"

	"github.com/daybook/daybook/internal/model"
)

// StrictSearch keeps entries whose text contains term as a case-sensitive
// substring. An empty term matches every entry.
func StrictSearch(d *model.Diary, term string) []model.Entry {
	out := make([]model.Entry, 0, len(d.Entries))
	for _, e := range d.Entries {
		if strings.Contains(e.Text, term) {
			out = append(out, e)
		}
	}
	return out
}

// DateFilter keeps entries strictly inside the open interval (after, before).
// Either bound may be the empty string, meaning unset; both unset is a
// pass-through. Timestamps are compared as strings, which in the canonical
// sortable layout is equivalent to chronological comparison. An entry equal
// to a bound is excluded.
func DateFilter(entries []model.Entry, before, after string) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if before != "" && e.Timestamp >= before {
			continue
		}
		if after != "" && e.Timestamp <= after {
			continue
		}
		out = append(out, e)
	}
	return out
}

// MetricFilter keeps entries that carry the named metric and satisfy every
// supplied bound: value > gt, value < lt, value == eq. Nil bounds are
// unset. gt and lt are strictly exclusive. Inconsistent bounds are the
// caller's validation concern; the conjunction is evaluated literally even
// when it can never hold.
func MetricFilter(entries []model.Entry, name string, gt, lt, eq *float64) []model.Entry {
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		v, ok := e.Metrics[name]
		if !ok {
			continue
		}
		if gt != nil && v <= *gt {
			continue
		}
		if lt != nil && v >= *lt {
			continue
		}
		if eq != nil && v != *eq {
			continue
		}
		out = append(out, e)
	}
	return out
}
