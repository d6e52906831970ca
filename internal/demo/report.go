package demo

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/invlab/invlab/internal/inventory"
	"github.com/invlab/invlab/internal/timing"
)

// SearchOutcome records one timed search.
type SearchOutcome struct {
	// Query is the searched name, or the searched ID in decimal.
	Query string `json:"query"`

	// Found reports whether the search resolved an item.
	Found bool `json:"found"`

	// Item is the resolved item when Found is true.
	Item *inventory.Item `json:"item,omitempty"`

	// ElapsedMS is the measured search time in milliseconds.
	ElapsedMS float64 `json:"elapsed_ms"`
}

// Report captures everything one demo pass produced. It renders as
// the text transcript (WriteText) and serializes as JSON for the CLI's
// --format json mode.
type Report struct {
	RunToken     string           `json:"run_token"`
	Profile      string           `json:"profile"`
	Items        int              `json:"items"`
	GenerationMS float64          `json:"generation_elapsed_ms"`
	Linear       SearchOutcome    `json:"linear_search"`
	BinaryHit    SearchOutcome    `json:"binary_search_hit"`
	BinaryMiss   SearchOutcome    `json:"binary_search_miss"`
	Warnings     []string         `json:"warnings,omitempty"`
	SortMS       float64          `json:"quicksort_elapsed_ms"`
	FinalOrder   []inventory.Item `json:"final_order,omitempty"`
}

func newOutcome(query string, item inventory.Item, err error, elapsed time.Duration) SearchOutcome {
	out := SearchOutcome{
		Query:     query,
		ElapsedMS: timing.Millis(elapsed),
	}
	if err == nil {
		out.Found = true
		out.Item = &item
	}
	return out
}

// WriteText renders the transcript, one line per event, in the fixed
// order of the pass. Rendering is deterministic for a given report.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "generated %d items in %s\n", r.Items, ms(r.GenerationMS))

	if r.Linear.Found {
		fmt.Fprintf(&b, "linear search: found %s in %s\n", r.Linear.Item, ms(r.Linear.ElapsedMS))
	} else {
		fmt.Fprintf(&b, "linear search: %q not found in %s\n", r.Linear.Query, ms(r.Linear.ElapsedMS))
	}

	if r.BinaryHit.Found {
		fmt.Fprintf(&b, "binary search: found %s in %s\n", r.BinaryHit.Item, ms(r.BinaryHit.ElapsedMS))
	} else {
		fmt.Fprintf(&b, "binary search: ID %s not found in %s\n", r.BinaryHit.Query, ms(r.BinaryHit.ElapsedMS))
	}

	// The miss step is skipped only when the ID space is full.
	if r.BinaryMiss.Query != "" {
		if r.BinaryMiss.Found {
			fmt.Fprintf(&b, "binary search: found %s in %s\n", r.BinaryMiss.Item, ms(r.BinaryMiss.ElapsedMS))
		} else {
			fmt.Fprintf(&b, "binary search: ID %s not found in %s\n", r.BinaryMiss.Query, ms(r.BinaryMiss.ElapsedMS))
		}
	}

	for _, warning := range r.Warnings {
		fmt.Fprintf(&b, "warning: %s\n", warning)
	}
	if len(r.Warnings) == 0 {
		b.WriteString("validation: all items resolved by binary search\n")
	} else {
		fmt.Fprintf(&b, "validation: %d mismatches detected\n", len(r.Warnings))
	}

	fmt.Fprintf(&b, "quicksort: sorted %d items by value in %s\n", r.Items, ms(r.SortMS))

	if r.FinalOrder != nil {
		b.WriteString("final order:\n")
		for rank, it := range r.FinalOrder {
			fmt.Fprintf(&b, "#%d: %s\n", rank+1, it)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func ms(v float64) string {
	return fmt.Sprintf("%.3fms", v)
}
