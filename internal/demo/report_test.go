package demo

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/invlab/invlab/internal/inventory"
)

// Golden files pin the transcript format byte for byte.
// To regenerate, run:
//
//	go test ./internal/demo -update
func assertTranscriptGolden(t *testing.T, name string, r *Report) {
	t.Helper()

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("failed to render transcript: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}

func TestReport_WriteText_Golden(t *testing.T) {
	r := &Report{
		RunToken:     "test-run-0001",
		Profile:      "golden",
		Items:        3,
		GenerationMS: 0.25,
		Linear: SearchOutcome{
			Query:     "Item_1",
			Found:     true,
			Item:      &inventory.Item{ID: 4821, Name: "Item_1", Value: 57},
			ElapsedMS: 0.25,
		},
		BinaryHit: SearchOutcome{
			Query:     "2210",
			Found:     true,
			Item:      &inventory.Item{ID: 2210, Name: "Item_0", Value: 12},
			ElapsedMS: 0.25,
		},
		BinaryMiss: SearchOutcome{
			Query:     "7777",
			ElapsedMS: 0.25,
		},
		SortMS: 0.25,
		FinalOrder: []inventory.Item{
			{ID: 2210, Name: "Item_0", Value: 12},
			{ID: 9000, Name: "Item_2", Value: 30},
			{ID: 4821, Name: "Item_1", Value: 57},
		},
	}

	assertTranscriptGolden(t, "transcript", r)
}

func TestReport_WriteText_WarningsGolden(t *testing.T) {
	r := &Report{
		RunToken:     "test-run-0002",
		Profile:      "golden-warnings",
		Items:        2,
		GenerationMS: 0.1,
		Linear: SearchOutcome{
			Query:     "Item_9",
			ElapsedMS: 0.1,
		},
		BinaryHit: SearchOutcome{
			Query:     "2210",
			ElapsedMS: 0.1,
		},
		// BinaryMiss empty: the miss step was skipped.
		Warnings: []string{
			"ID 4821 resolved Item_0 (ID:2210, Value:12), want Item_1 (ID:4821, Value:57)",
		},
		SortMS: 0.1,
	}

	assertTranscriptGolden(t, "transcript_warnings", r)
}
