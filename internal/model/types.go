package model

// Entry is one immutable journal record: free text stamped with a sortable
// timestamp, plus the numeric metrics extracted from the text at creation.
type Entry struct {
	ID        string             `json:"entryId"`
	Timestamp string             `json:"timestamp"`
	Text      string             `json:"text"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Equal reports whether two entries carry the same timestamp, text and
// metrics. Identifiers are compared only when both sides have one; snapshot
// round-trips drop identifiers and remain equal.
func (e Entry) Equal(other Entry) bool {
	if e.ID != "" && other.ID != "" && e.ID != other.ID {
		return false
	}
	if e.Timestamp != other.Timestamp || e.Text != other.Text {
		return false
	}
	if len(e.Metrics) != len(other.Metrics) {
		return false
	}
	for name, v := range e.Metrics {
		if ov, ok := other.Metrics[name]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Diary is a named, ordered collection of entries belonging to one owner.
// Under single-writer append discipline insertion order is chronological
// order, and entries loaded from either store arrive sorted by timestamp.
type Diary struct {
	ID      string  `json:"diaryId"`
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// NewDiary returns an empty diary with a fresh identifier.
func NewDiary(name string) *Diary {
	return &Diary{ID: DefaultFactory.NewID(), Name: name}
}

// Add appends a new entry built from text, stamping the current time and
// extracting metrics. The in-memory diary is now ahead of durable state;
// callers must persist after every Add.
func (d *Diary) Add(text string) {
	d.AddWith(DefaultFactory, text)
}

// AddWith is Add with an explicit factory, for deterministic construction.
func (d *Diary) AddWith(f Factory, text string) {
	d.Entries = append(d.Entries, f.NewEntry(text))
}

// Latest returns the most recently appended entry.
func (d *Diary) Latest() (Entry, bool) {
	if len(d.Entries) == 0 {
		return Entry{}, false
	}
	return d.Entries[len(d.Entries)-1], true
}

// Equal reports whether two diaries have the same name and entry sequence.
// Diary identifiers are store-specific and not compared.
func (d *Diary) Equal(other *Diary) bool {
	if other == nil || d.Name != other.Name || len(d.Entries) != len(other.Entries) {
		return false
	}
	for i, e := range d.Entries {
		if !e.Equal(other.Entries[i]) {
			return false
		}
	}
	return true
}
