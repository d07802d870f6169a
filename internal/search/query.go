package search

import "github.com/daybook/daybook/internal/model"

// Query is the typed form of a compound search request: a substring term,
// optional date bounds, and an optional metric name with numeric bounds.
// Nil pointers and empty strings mean unset.
type Query struct {
	Term   string
	Before string
	After  string
	Metric string
	GT     *float64
	LT     *float64
	EQ     *float64
}

// Validation error codes returned by Query.Validate.
const (
	CodeEmptyDateRange      = "empty_date_range"
	CodeEmptyMetricBounds   = "empty_metric_bounds"
	CodeEqWithBounds        = "eq_with_bounds"
	CodeBoundsWithoutMetric = "bounds_without_metric"
)

// Validate is a pure check of bound consistency. It returns nil for a usable
// query, or the list of error codes describing every problem found. Run does
// not call Validate; an unvalidated inconsistent query simply yields an
// empty result.
func (q Query) Validate() []string {
	var codes []string
	if q.Before != "" && q.After != "" && q.Before <= q.After {
		codes = append(codes, CodeEmptyDateRange)
	}
	if q.GT != nil && q.LT != nil && *q.GT >= *q.LT {
		codes = append(codes, CodeEmptyMetricBounds)
	}
	if q.EQ != nil && (q.GT != nil || q.LT != nil) {
		codes = append(codes, CodeEqWithBounds)
	}
	if q.Metric == "" && (q.GT != nil || q.LT != nil || q.EQ != nil) {
		codes = append(codes, CodeBoundsWithoutMetric)
	}
	return codes
}

// Run applies the pipeline: substring search, then date filter, then metric
// filter when a metric name is given.
func Run(d *model.Diary, q Query) []model.Entry {
	entries := StrictSearch(d, q.Term)
	entries = DateFilter(entries, q.Before, q.After)
	if q.Metric != "" {
		entries = MetricFilter(entries, q.Metric, q.GT, q.LT, q.EQ)
	}
	return entries
}
