package report

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"ca-survey/internal/batch"
	"ca-survey/internal/classify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcomes(cats ...classify.Category) []batch.Outcome {
	out := make([]batch.Outcome, len(cats))
	for i, c := range cats {
		out[i] = batch.Outcome{Result: classify.Result{Category: c}}
	}
	return out
}

func TestResult(t *testing.T) {
	var buf bytes.Buffer
	info := RunInfo{States: 2, Radius: 1, Code: "30", Condition: "1", MaxSteps: 300}
	require.NoError(t, NewPrinter(&buf, true).Result(info, classify.Result{Category: classify.Complex}))
	assert.Equal(t,
		"The code 30 with 2 colours and a range of 1 exhibits the following behaviour with initial conditions 1:\n"+
			"The code produces a complex design which doesn't fall into any of the other categories.\n",
		buf.String())
}

func TestSummaryUniform(t *testing.T) {
	var buf bytes.Buffer
	s := batch.Summary{Code: big.NewInt(90), Outcomes: outcomes(classify.Fractal, classify.Fractal)}
	require.NoError(t, NewPrinter(&buf, true).Summary(s))
	assert.Equal(t,
		"The code 90 with 2 colours and a range of 1 always produces the same result from simple initial conditions.\n"+
			"The code produces a nested fractal pattern.\n",
		buf.String())
}

func TestSummaryMixed(t *testing.T) {
	var buf bytes.Buffer
	s := batch.Summary{Code: big.NewInt(4), Outcomes: outcomes(classify.Line, classify.Vanishing, classify.Line)}
	require.NoError(t, NewPrinter(&buf, true).Summary(s))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "exhibits different behaviour depending on its initial conditions")
	assert.Equal(t, "All active cells disappear before the end of the program. This occurred 1 times.", lines[1])
	assert.Equal(t, "The code produces a line. This occurred 2 times.", lines[2])
}

func TestParameters(t *testing.T) {
	var buf bytes.Buffer
	info := RunInfo{States: 3, Radius: 1, Code: "77", Condition: "21", MaxSteps: 50}
	res := classify.Result{Category: classify.Line, Growth: classify.Growth{Left: 0.25, Right: -0.25}}
	snap := info.Parameters(&res)
	require.Len(t, snap.Groups, 3)
	p, ok := snap.Lookup("growth_right")
	require.True(t, ok)
	assert.Equal(t, "-0.250", p.Value)

	require.NoError(t, NewPrinter(&buf, true).Parameters(snap))
	out := buf.String()
	assert.Contains(t, out, "Automaton\n")
	assert.Contains(t, out, "Initial condition:")
	assert.Contains(t, out, "line")

	assert.Len(t, info.Parameters(nil).Groups, 2)
}

func TestSummaryParameters(t *testing.T) {
	s := batch.Summary{Code: big.NewInt(4), Outcomes: outcomes(classify.Line, classify.Vanishing, classify.Line)}
	snap := SummaryParameters(s)
	require.Len(t, snap.Groups, 1)
	p, ok := snap.Lookup("line")
	require.True(t, ok)
	assert.Equal(t, "2", p.Value)
}

func TestChart(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)
	require.NoError(t, p.Chart(nil))
	assert.Empty(t, buf.String())

	require.NoError(t, p.Chart([]int{1, 3, 5, 7, 9}))
	assert.Contains(t, buf.String(), "active width per step")
}
