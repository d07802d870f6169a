package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daybook/daybook/internal/journal"
	"github.com/daybook/daybook/internal/model"
	"github.com/daybook/daybook/internal/search"
	"github.com/daybook/daybook/internal/textstats"
)

func runWrite(svc *journal.Service, owner, text string, w io.Writer) error {
	d, err := svc.Append(context.Background(), owner, text)
	if err != nil {
		return err
	}
	e, _ := d.Latest()
	fmt.Fprintf(w, "%s  %s\n", e.Timestamp, e.Text)
	return nil
}

func runRead(svc *journal.Service, owner string, w io.Writer) error {
	d, err := svc.Open(context.Background(), owner)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (%d entries)\n", d.Name, len(d.Entries))
	printEntries(w, d.Entries)
	return nil
}

func runMetrics(svc *journal.Service, owner string, w io.Writer) error {
	d, err := svc.Open(context.Background(), owner)
	if err != nil {
		return err
	}
	for _, e := range d.Entries {
		if len(e.Metrics) == 0 {
			continue
		}
		names := make([]string, 0, len(e.Metrics))
		for name := range e.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		pairs := make([]string, 0, len(names))
		for _, name := range names {
			pairs = append(pairs, fmt.Sprintf("%s=%g", name, e.Metrics[name]))
		}
		fmt.Fprintf(w, "%s  %s\n", e.Timestamp, strings.Join(pairs, " "))
	}
	return nil
}

func runSearch(svc *journal.Service, owner string, q search.Query, w io.Writer) error {
	if codes := q.Validate(); codes != nil {
		return fmt.Errorf("invalid query (%s): %w", strings.Join(codes, ", "), model.ErrValidation)
	}
	d, err := svc.Open(context.Background(), owner)
	if err != nil {
		return err
	}
	printEntries(w, search.Run(d, q))
	return nil
}

func runStats(svc *journal.Service, owner string, w io.Writer) error {
	d, err := svc.Open(context.Background(), owner)
	if err != nil {
		return err
	}
	for _, e := range d.Entries {
		s, err := textstats.Compute(e.Text)
		if err != nil {
			return fmt.Errorf("entry %s: %w", e.Timestamp, err)
		}
		fmt.Fprintf(w, "%s  compound=%+.3f sentences=%d tokens=%d content=%d\n",
			e.Timestamp, s.Compound, s.Sentences, s.Tokens, s.ContentWords)
	}
	return nil
}

func printEntries(w io.Writer, entries []model.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s\n", e.Timestamp, e.Text)
	}
}

// queryFromFlags builds a search.Query from the search command's flags,
// leaving numeric bounds nil when their flag was not supplied.
func queryFromFlags(cmd *cobra.Command) (search.Query, error) {
	q := search.Query{}
	var err error
	if q.Term, err = cmd.Flags().GetString("term"); err != nil {
		return q, err
	}
	if q.Before, err = cmd.Flags().GetString("before"); err != nil {
		return q, err
	}
	if q.After, err = cmd.Flags().GetString("after"); err != nil {
		return q, err
	}
	if q.Metric, err = cmd.Flags().GetString("metric"); err != nil {
		return q, err
	}
	for flag, dst := range map[string]**float64{"gt": &q.GT, "lt": &q.LT, "eq": &q.EQ} {
		if cmd.Flags().Changed(flag) {
			v, err := cmd.Flags().GetFloat64(flag)
			if err != nil {
				return q, err
			}
			*dst = &v
		}
	}
	return q, nil
}
