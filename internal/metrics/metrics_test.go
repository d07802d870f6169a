package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	cases := []struct {
		name string
		text string
		want map[string]float64
	}{
		{"no tags", "spam, eggs, sausage and spam", map[string]float64{}},
		{"one tag", "quiet night in #mood 5", map[string]float64{"mood": 5}},
		{"many tags", "out for dinner #cost 18.0 #mood 5", map[string]float64{"cost": 18.0, "mood": 5}},
		{"repeat takes last", "#mood 3 then again #mood 7", map[string]float64{"mood": 7}},
		{"decimal", "#km 4.25 today", map[string]float64{"km": 4.25}},
		{"missing value is no match", "thinking about #mood today", map[string]float64{}},
		{"word value is no match", "#mood great", map[string]float64{}},
		{"empty text", "", map[string]float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Extract(tc.text))
		})
	}
}

func TestExtractNeverNil(t *testing.T) {
	assert.NotNil(t, Extract("nothing here"))
}
