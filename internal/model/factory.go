package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/daybook/daybook/internal/metrics"
)

// TimestampLayout is the canonical entry timestamp format. The fractional
// seconds are fixed-width so lexicographic comparison of two timestamps is
// equivalent to chronological comparison.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Factory stamps new entries with a timestamp and identifier. The clock and
// identifier source are injectable so tests can construct deterministically.
type Factory struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultFactory reads the system clock and issues random UUIDs.
var DefaultFactory = Factory{Now: time.Now, NewID: uuid.NewString}

// NewEntry builds an entry from text: current time in canonical layout, a
// fresh identifier, and the metrics extracted from the text.
func (f Factory) NewEntry(text string) Entry {
	return Entry{
		ID:        f.NewID(),
		Timestamp: f.Now().Format(TimestampLayout),
		Text:      text,
		Metrics:   metrics.Extract(text),
	}
}
