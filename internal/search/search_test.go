package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daybook/daybook/internal/model"
)

var (
	entry1 = model.Entry{Timestamp: "2001-12-25", Text: "spam", Metrics: map[string]float64{}}
	entry2 = model.Entry{Timestamp: "2002-12-25", Text: "spam eggs", Metrics: map[string]float64{"metric": 0}}
	entry3 = model.Entry{Timestamp: "2003-12-25", Text: "eggs beans sausage spam", Metrics: map[string]float64{"tag": 1}}
	entry4 = model.Entry{Timestamp: "2004-12-25", Text: "beans spam egg spam", Metrics: map[string]float64{"metric": 10}}

	allEntries = []model.Entry{entry1, entry2, entry3, entry4}
	diary      = &model.Diary{Name: "name", Entries: allEntries}
)

func f(v float64) *float64 { return &v }

func TestStrictSearch(t *testing.T) {
	assert.Equal(t, allEntries, StrictSearch(diary, "spam"))
	assert.Equal(t, []model.Entry{entry2, entry3, entry4}, StrictSearch(diary, "egg"))
	assert.Equal(t, []model.Entry{entry2, entry4}, StrictSearch(diary, "spam egg"))
	assert.Equal(t, allEntries, StrictSearch(diary, ""), "empty term matches all")
	assert.Empty(t, StrictSearch(diary, "SPAM"), "search is case-sensitive")
}

func TestDateFilter(t *testing.T) {
	assert.Equal(t, []model.Entry{entry1}, DateFilter(allEntries, "2002-12-25", ""))
	assert.Equal(t, []model.Entry{entry3, entry4}, DateFilter(allEntries, "", "2002-12-25"))
	assert.Equal(t, []model.Entry{entry3}, DateFilter(allEntries, "2004-12-25", "2002-12-25"))
	assert.Equal(t, allEntries, DateFilter(allEntries, "", ""), "no bounds is a pass-through")
}

func TestDateFilterBoundsAreExclusive(t *testing.T) {
	days := []model.Entry{
		{Timestamp: "2001-01-01", Text: "d1"},
		{Timestamp: "2001-01-02", Text: "d2"},
		{Timestamp: "2001-01-03", Text: "d3"},
		{Timestamp: "2001-01-04", Text: "d4"},
		{Timestamp: "2001-01-05", Text: "d5"},
	}
	assert.Equal(t, []model.Entry{days[0]}, DateFilter(days, "2001-01-02", ""))
	assert.Equal(t, []model.Entry{days[2]}, DateFilter(days, "2001-01-04", "2001-01-02"))
}

func TestMetricFilter(t *testing.T) {
	assert.Equal(t, []model.Entry{entry2, entry4}, MetricFilter(allEntries, "metric", nil, nil, nil),
		"no bounds keeps every entry that has the metric")
	assert.Equal(t, []model.Entry{entry2}, MetricFilter(allEntries, "metric", nil, f(5), nil))
	assert.Equal(t, []model.Entry{entry4}, MetricFilter(allEntries, "metric", f(5), nil, nil))
	assert.Equal(t, []model.Entry{entry4}, MetricFilter(allEntries, "metric", nil, nil, f(10)))
	assert.Equal(t, []model.Entry{entry4}, MetricFilter(allEntries, "metric", f(4), nil, nil))
}

func TestMetricFilterStrictBounds(t *testing.T) {
	entries := []model.Entry{{Text: "x", Metrics: map[string]float64{"metric": 5}}}
	assert.Empty(t, MetricFilter(entries, "metric", f(5), nil, nil), "gt is exclusive")
	assert.Empty(t, MetricFilter(entries, "metric", nil, f(5), nil), "lt is exclusive")
}

func TestMetricFilterInconsistentBoundsYieldEmpty(t *testing.T) {
	// gt > lt can never hold; the conjunction is still evaluated literally
	assert.Empty(t, MetricFilter(allEntries, "metric", f(20), f(1), nil))
}

func TestRunComposesFilters(t *testing.T) {
	got := Run(diary, Query{Term: "spam", After: "2001-12-25", Metric: "metric", GT: f(4)})
	assert.Equal(t, []model.Entry{entry4}, got)

	got = Run(diary, Query{})
	assert.Equal(t, allEntries, got, "empty query returns everything")
}

func TestQueryValidate(t *testing.T) {
	assert.Nil(t, Query{Term: "spam", Metric: "mood", GT: f(1), LT: f(5)}.Validate())

	assert.Equal(t, []string{CodeEmptyDateRange},
		Query{Before: "2001-01-01", After: "2002-01-01"}.Validate())
	assert.Equal(t, []string{CodeEmptyMetricBounds},
		Query{Metric: "mood", GT: f(5), LT: f(1)}.Validate())
	assert.Equal(t, []string{CodeEqWithBounds},
		Query{Metric: "mood", EQ: f(3), GT: f(1)}.Validate())
	assert.Equal(t, []string{CodeBoundsWithoutMetric},
		Query{GT: f(1)}.Validate())

	codes := Query{Before: "2001-01-01", After: "2002-01-01", GT: f(5), LT: f(1)}.Validate()
	assert.ElementsMatch(t, []string{CodeEmptyDateRange, CodeEmptyMetricBounds, CodeBoundsWithoutMetric}, codes)
}
