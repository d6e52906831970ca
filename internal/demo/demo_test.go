package demo

import (
	"bytes"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invlab/invlab/internal/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRunner(out io.Writer) *Runner {
	return &Runner{
		Log:    discardLogger(),
		Out:    out,
		Clock:  testutil.NewStepClock(250 * time.Microsecond),
		Tokens: testutil.NewFixedTokenSource("run-test-0001"),
	}
}

func TestRunner_Run_FullPass(t *testing.T) {
	var out bytes.Buffer
	report, err := testRunner(&out).Run(&Profile{Name: "full", Items: 40, Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, "run-test-0001", report.RunToken)
	assert.Equal(t, "full", report.Profile)
	assert.Equal(t, 40, report.Items)

	// The stepping clock makes every measurement exactly one step.
	assert.InDelta(t, 0.25, report.GenerationMS, 1e-9)
	assert.InDelta(t, 0.25, report.Linear.ElapsedMS, 1e-9)
	assert.InDelta(t, 0.25, report.SortMS, 1e-9)

	// Sampled queries always hit; the generated absent ID never does.
	assert.True(t, report.Linear.Found)
	require.NotNil(t, report.Linear.Item)
	assert.Equal(t, report.Linear.Query, report.Linear.Item.Name)
	assert.True(t, report.BinaryHit.Found)
	assert.False(t, report.BinaryMiss.Found)
	assert.NotEmpty(t, report.BinaryMiss.Query)

	assert.Empty(t, report.Warnings)

	require.Len(t, report.FinalOrder, 40)
	assert.True(t, sort.SliceIsSorted(report.FinalOrder, func(i, j int) bool {
		return report.FinalOrder[i].Value < report.FinalOrder[j].Value
	}))

	transcript := out.String()
	assert.Contains(t, transcript, "generated 40 items")
	assert.Contains(t, transcript, "linear search: found")
	assert.Contains(t, transcript, "not found")
	assert.Contains(t, transcript, "validation: all items resolved by binary search")
	assert.Contains(t, transcript, "quicksort: sorted 40 items by value")
	assert.Contains(t, transcript, "final order:\n#1: ")
}

func TestRunner_Run_DeterministicForSeed(t *testing.T) {
	var a, b bytes.Buffer

	first, err := testRunner(&a).Run(&Profile{Name: "det", Items: 25, Seed: 13})
	require.NoError(t, err)
	second, err := testRunner(&b).Run(&Profile{Name: "det", Items: 25, Seed: 13})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, a.String(), b.String(), "transcripts must be byte-identical")
}

func TestRunner_Run_SkipReport(t *testing.T) {
	var out bytes.Buffer
	report, err := testRunner(&out).Run(&Profile{Name: "quiet", Items: 10, Seed: 3, SkipReport: true})
	require.NoError(t, err)

	assert.Nil(t, report.FinalOrder)
	assert.NotContains(t, out.String(), "final order:")
	// The sort itself still ran.
	assert.Contains(t, out.String(), "quicksort: sorted 10 items")
}

func TestRunner_Run_EmptyStore(t *testing.T) {
	var out bytes.Buffer
	report, err := testRunner(&out).Run(&Profile{Name: "empty", Items: 0, Seed: 1})
	require.NoError(t, err)

	assert.False(t, report.Linear.Found)
	assert.False(t, report.BinaryHit.Found)
	assert.False(t, report.BinaryMiss.Found)
	assert.Empty(t, report.Warnings)
	assert.Len(t, report.FinalOrder, 0)
	assert.Contains(t, out.String(), "generated 0 items")
}

func TestRunner_Run_ProfileTokenWins(t *testing.T) {
	var out bytes.Buffer
	report, err := testRunner(&out).Run(&Profile{
		Name: "token", Items: 5, Seed: 2, RunToken: "run-fixed-42",
	})
	require.NoError(t, err)

	assert.Equal(t, "run-fixed-42", report.RunToken)
}

func TestRunner_Run_InvalidProfile(t *testing.T) {
	_, err := testRunner(io.Discard).Run(&Profile{Name: "bad", Items: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestRunner_Run_NilProfileUsesDefault(t *testing.T) {
	var out bytes.Buffer
	report, err := testRunner(&out).Run(nil)
	require.NoError(t, err)

	assert.Equal(t, "default", report.Profile)
	assert.Equal(t, DefaultItems, report.Items)
}

func TestRunner_Run_LogCarriesRunToken(t *testing.T) {
	var logBuf bytes.Buffer
	runner := testRunner(io.Discard)
	runner.Log = slog.New(slog.NewTextHandler(&logBuf, nil))

	_, err := runner.Run(&Profile{Name: "logged", Items: 8, Seed: 9})
	require.NoError(t, err)

	for _, line := range strings.Split(strings.TrimSpace(logBuf.String()), "\n") {
		assert.Contains(t, line, "run=run-test-0001")
		assert.Contains(t, line, "profile=logged")
	}
}

func TestMissingID_NeverPresent(t *testing.T) {
	var out bytes.Buffer
	report, err := testRunner(&out).Run(&Profile{Name: "miss", Items: 100, Seed: 77})
	require.NoError(t, err)

	require.False(t, report.BinaryMiss.Found)
	absent, err := strconv.Atoi(report.BinaryMiss.Query)
	require.NoError(t, err)
	for _, it := range report.FinalOrder {
		assert.NotEqual(t, absent, it.ID)
	}
}
