package demo

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"

	"github.com/invlab/invlab/internal/inventory"
	"github.com/invlab/invlab/internal/timing"
)

// Runner executes demo passes. The zero value is usable: it logs via
// slog.Default(), writes the transcript to stdout, measures with the
// wall clock, and draws UUIDv7 run tokens.
type Runner struct {
	// Log receives diagnostics. Transcript lines go to Out, not here.
	Log *slog.Logger

	// Out receives the transcript, one line per event.
	Out io.Writer

	// Clock drives the timing harness.
	Clock timing.Clock

	// Tokens issues run tokens when the profile doesn't fix one.
	Tokens TokenSource
}

// Run executes exactly one pass: generate, linear search, binary
// search hit and miss, bulk validation, shuffle, quicksort by value,
// final-order report. The pass is synchronous and always runs to
// completion; search misses and validation mismatches are recorded,
// not raised. The only error paths are an invalid profile and
// generation failure.
func (r *Runner) Run(profile *Profile) (*Report, error) {
	if profile == nil {
		profile = DefaultProfile()
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	log := r.Log
	if log == nil {
		log = slog.Default()
	}
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	tokens := r.Tokens
	if tokens == nil {
		tokens = UUIDSource{}
	}
	timer := timing.New(r.Clock)

	token := profile.RunToken
	if token == "" {
		token = tokens.NewToken()
	}
	log = log.With("run", token, "profile", profile.Name)

	rng := rand.New(rand.NewSource(profile.Seed))
	report := &Report{
		RunToken: token,
		Profile:  profile.Name,
		Items:    profile.Items,
	}

	// Generation.
	var (
		store  *inventory.Store
		genErr error
	)
	genElapsed := timer.Measure(func() {
		store, genErr = inventory.Generate(rng, profile.Items)
	})
	if genErr != nil {
		return nil, fmt.Errorf("generate inventory: %w", genErr)
	}
	report.GenerationMS = timing.Millis(genElapsed)
	log.Info("inventory generated",
		"items", store.Len(),
		"elapsed_ms", report.GenerationMS,
	)

	// Linear search for a sampled existing name. An empty store has no
	// name to sample, so the query becomes a guaranteed miss.
	query := "Item_0"
	if store.Len() > 0 {
		query = store.At(rng.Intn(store.Len())).Name
	}
	var (
		linItem inventory.Item
		linErr  error
	)
	linElapsed := timer.Measure(func() {
		linItem, linErr = store.LinearSearchByName(query)
	})
	report.Linear = newOutcome(query, linItem, linErr, linElapsed)
	log.Info("linear search finished",
		"query", query,
		"found", report.Linear.Found,
		"elapsed_ms", report.Linear.ElapsedMS,
	)

	// Binary search for a sampled existing ID.
	targetID := inventory.IDMin
	if store.Len() > 0 {
		targetID = store.At(rng.Intn(store.Len())).ID
	}
	var (
		hitItem inventory.Item
		hitErr  error
	)
	hitElapsed := timer.Measure(func() {
		hitItem, hitErr = store.BinarySearchByID(targetID)
	})
	report.BinaryHit = newOutcome(strconv.Itoa(targetID), hitItem, hitErr, hitElapsed)
	log.Info("binary search finished",
		"id", targetID,
		"found", report.BinaryHit.Found,
		"elapsed_ms", report.BinaryHit.ElapsedMS,
	)

	// Binary search for an ID known absent. Only a completely full ID
	// space has no absent ID; in that case the miss step is skipped.
	if absent, ok := missingID(rng, store); ok {
		var (
			missItem inventory.Item
			missErr  error
		)
		missElapsed := timer.Measure(func() {
			missItem, missErr = store.BinarySearchByID(absent)
		})
		report.BinaryMiss = newOutcome(strconv.Itoa(absent), missItem, missErr, missElapsed)
		log.Info("binary search finished",
			"id", absent,
			"found", report.BinaryMiss.Found,
			"elapsed_ms", report.BinaryMiss.ElapsedMS,
		)
	} else {
		log.Warn("ID space is full, skipping miss search")
	}

	// Bulk validation: every item must resolve to itself.
	var mismatches []inventory.Mismatch
	valElapsed := timer.Measure(func() {
		mismatches = store.Validate()
	})
	for _, m := range mismatches {
		w := mismatchWarning(m)
		report.Warnings = append(report.Warnings, w)
		log.Warn("validation mismatch", "detail", w)
	}
	log.Info("validation finished",
		"items", store.Len(),
		"mismatches", len(mismatches),
		"elapsed_ms", timing.Millis(valElapsed),
	)

	// Shuffle destroys the ID ordering before the value sort.
	shuffleElapsed := timer.Measure(func() {
		store.Shuffle(rng)
	})
	log.Info("store shuffled",
		"order", store.Order().String(),
		"elapsed_ms", timing.Millis(shuffleElapsed),
	)

	// Quicksort by value.
	sortElapsed := timer.Measure(func() {
		store.QuicksortByValue()
	})
	report.SortMS = timing.Millis(sortElapsed)
	log.Info("quicksort finished",
		"order", store.Order().String(),
		"elapsed_ms", report.SortMS,
	)

	if !profile.SkipReport {
		report.FinalOrder = store.Items()
	}

	if err := report.WriteText(out); err != nil {
		return nil, fmt.Errorf("write transcript: %w", err)
	}
	return report, nil
}

// missingID returns an ID in [IDMin, IDMax) that no item carries.
// Random draws are bounded; a linear scan backstops pathological luck.
// Returns false only when the store occupies the entire ID space.
func missingID(rng *rand.Rand, store *inventory.Store) (int, bool) {
	present := make(map[int]struct{}, store.Len())
	for _, it := range store.Items() {
		present[it.ID] = struct{}{}
	}

	space := inventory.IDMax - inventory.IDMin
	if len(present) >= space {
		return 0, false
	}
	for attempts := 0; attempts < space; attempts++ {
		id := inventory.IDMin + rng.Intn(space)
		if _, taken := present[id]; !taken {
			return id, true
		}
	}
	for id := inventory.IDMin; id < inventory.IDMax; id++ {
		if _, taken := present[id]; !taken {
			return id, true
		}
	}
	return 0, false
}

func mismatchWarning(m inventory.Mismatch) string {
	if m.Err != nil {
		return fmt.Sprintf("ID %d did not resolve: %v", m.Want.ID, m.Err)
	}
	return fmt.Sprintf("ID %d resolved %s, want %s", m.Want.ID, m.Got, m.Want)
}
