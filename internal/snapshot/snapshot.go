// Package snapshot persists a whole diary as a single JSON artifact.
//
// The artifact carries the diary name and the ordered entry list with
// timestamps, text and metrics. It has no concept of identifiers; a
// round-trip is structurally lossless but drops entry and diary IDs.
// Every save rewrites the whole artifact, every load reconstructs the
// whole diary.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/daybook/daybook/internal/model"
)

type document struct {
	Name    string  `json:"name"`
	Entries []entry `json:"entries"`
}

type entry struct {
	Timestamp string             `json:"timestamp"`
	Text      string             `json:"text"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Write serializes the diary to w.
func Write(w io.Writer, d *model.Diary) error {
	doc := document{Name: d.Name, Entries: make([]entry, 0, len(d.Entries))}
	for _, e := range d.Entries {
		m := e.Metrics
		if m == nil {
			m = map[string]float64{}
		}
		doc.Entries = append(doc.Entries, entry{Timestamp: e.Timestamp, Text: e.Text, Metrics: m})
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Read is the exact inverse of Write. Malformed or truncated input fails
// with model.ErrParse.
func Read(r io.Reader) (*model.Diary, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("read snapshot: %w: %v", model.ErrParse, err)
	}
	d := &model.Diary{Name: doc.Name, Entries: make([]model.Entry, 0, len(doc.Entries))}
	for _, e := range doc.Entries {
		m := e.Metrics
		if m == nil {
			m = map[string]float64{}
		}
		d.Entries = append(d.Entries, model.Entry{Timestamp: e.Timestamp, Text: e.Text, Metrics: m})
	}
	return d, nil
}

// Save rewrites the artifact at path atomically: the document is written to
// a temp file in the same directory and renamed over the target, so readers
// never observe a partial snapshot.
func Save(path string, d *model.Diary) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create snapshot temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := Write(tmp, d); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load reads the artifact at path. A missing file fails with
// model.ErrNotFound.
func Load(path string) (*model.Diary, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("snapshot %s: %w", path, model.ErrNotFound)
		}
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}
