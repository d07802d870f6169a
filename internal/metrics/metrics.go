// Package metrics extracts inline numeric annotations from entry text.
//
// An annotation is a `#name value` token, e.g. "out for dinner #cost 18.0
// #mood 5". Names are word characters, values are unsigned decimals with an
// optional single decimal point.
package metrics

import (
	"regexp"
	"strconv"
)

var tagPattern = regexp.MustCompile(`#(\w+) ([0-9]+(?:\.[0-9]+)?)`)

// Extract scans text for all non-overlapping `#name value` tokens and
// returns a name→value mapping. When a name repeats, the later occurrence
// wins. Candidates that do not match the grammar are a normal no-match, not
// an error; Extract never fails and never returns nil.
func Extract(text string) map[string]float64 {
	out := make(map[string]float64)
	for _, m := range tagPattern.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		out[m[1]] = v
	}
	return out
}
