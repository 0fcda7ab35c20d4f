package automaton

import (
	"errors"
	"math/big"
	"slices"
	"testing"

	"ca-survey/internal/rule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule30FromSingleSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSteps = 4
	e, err := New(cfg)
	require.NoError(t, err)
	require.Equal(t, 1+2*4, e.Width())

	rows := e.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, []uint8{0, 0, 0, 0, 1, 0, 0, 0, 0}, rows[0])

	e.Step()
	rows = e.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []uint8{0, 0, 0, 1, 1, 1, 0, 0, 0}, rows[1])

	e.Run()
	rows = e.Rows()
	require.Len(t, rows, 5)
	assert.Equal(t, []uint8{0, 0, 1, 1, 0, 0, 1, 0, 0}, rows[2])
	assert.Equal(t, []uint8{0, 1, 1, 0, 1, 1, 1, 1, 0}, rows[3])
	assert.Equal(t, []uint8{1, 1, 0, 0, 1, 0, 0, 0, 1}, rows[4])
}

func TestStepMatchesDirectLookup(t *testing.T) {
	code, err := rule.ParseCode("1234567891011")
	require.NoError(t, err)
	table, err := rule.Build(3, 1, code)
	require.NoError(t, err)
	e, err := NewWithTable(table, []uint8{2, 0, 1, 1}, 6)
	require.NoError(t, err)
	e.Run()

	rows := e.Rows()
	w := e.Width()
	for y := 1; y < len(rows); y++ {
		for x := 0; x < w; x++ {
			nb := []uint8{rows[y-1][(x-1+w)%w], rows[y-1][x], rows[y-1][(x+1)%w]}
			require.Equalf(t, table.Lookup(nb), rows[y][x], "row %d cell %d", y, x)
		}
	}
}

func TestRadiusTwoWrapsAroundRing(t *testing.T) {
	table, err := rule.Build(2, 2, big.NewInt(0xFFFFFFFE))
	require.NoError(t, err)
	// Every neighborhood but the all-zero one maps to 1, so a single seed
	// spreads two cells per side per step.
	e, err := NewWithTable(table, []uint8{1}, 2)
	require.NoError(t, err)
	e.Run()
	rows := e.Rows()
	assert.Equal(t, []uint8{0, 0, 1, 1, 1, 1, 1, 0, 0}, rows[1])
	assert.Equal(t, []uint8{1, 1, 1, 1, 1, 1, 1, 1, 1}, rows[2])
}

func TestRowLengthInvariant(t *testing.T) {
	e, err := New(Config{States: 3, Radius: 2, Code: "98765432123456789", Condition: "2101", MaxSteps: 25})
	require.NoError(t, err)
	e.Run()
	require.Equal(t, 26, len(e.Rows()))
	for y, row := range e.Rows() {
		require.Lenf(t, row, 4+2*2*25, "row %d", y)
		for _, s := range row {
			require.Less(t, int(s), 3)
		}
	}
}

func TestDeterministicEvolution(t *testing.T) {
	cfg := Config{States: 3, Radius: 1, Code: "3333333333", Condition: "121", MaxSteps: 40}
	a, err := New(cfg)
	require.NoError(t, err)
	b, err := New(cfg)
	require.NoError(t, err)
	a.Run()
	b.RunSteps(40)
	require.Equal(t, a.Steps(), b.Steps())
	for y := range a.Rows() {
		require.True(t, slices.Equal(a.Rows()[y], b.Rows()[y]), "row %d differs", y)
	}
}

func TestHistoryIsAppendOnly(t *testing.T) {
	e, err := New(DefaultConfig())
	require.NoError(t, err)
	e.RunSteps(3)
	first := append([]uint8(nil), e.Rows()[1]...)
	g := e.Grid()
	e.RunSteps(5)
	assert.Equal(t, first, e.Rows()[1])
	assert.Equal(t, 4, g.Size().H, "grid taken earlier keeps its height")
	assert.Equal(t, 9, e.Grid().Size().H)
}

func TestZeroRuleDiesOut(t *testing.T) {
	e, err := New(Config{States: 2, Radius: 1, Code: "0", Condition: "1011", MaxSteps: 3})
	require.NoError(t, err)
	e.Run()
	for _, row := range e.Rows()[1:] {
		for _, s := range row {
			require.Zero(t, s)
		}
	}
}

func TestNewRejectsInvalidInput(t *testing.T) {
	_, err := New(Config{States: 2, Radius: 1, Code: "256", Condition: "1", MaxSteps: 5})
	assert.True(t, errors.Is(err, rule.ErrInvalidCode))

	_, err = New(Config{States: 2, Radius: 1, Code: "30", Condition: "102", MaxSteps: 5})
	assert.True(t, errors.Is(err, ErrInvalidDigit))

	_, err = New(Config{States: 2, Radius: 1, Code: "30", Condition: "1a", MaxSteps: 5})
	assert.True(t, errors.Is(err, ErrInvalidDigit))

	_, err = New(Config{States: 2, Radius: 1, Code: "30", Condition: "", MaxSteps: 5})
	assert.True(t, errors.Is(err, ErrEmptyCondition))

	_, err = New(Config{States: 2, Radius: 1, Code: "30", Condition: "1", MaxSteps: -1})
	assert.True(t, errors.Is(err, ErrInvalidSteps))

	table, err := rule.Build(2, 1, big.NewInt(30))
	require.NoError(t, err)
	_, err = NewWithTable(table, []uint8{1, 2}, 5)
	assert.True(t, errors.Is(err, ErrInvalidDigit))
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"k": "3", "r": "2", "code": "77", "ic": "201", "steps": "12"})
	assert.Equal(t, Config{States: 3, Radius: 2, Code: "77", Condition: "201", MaxSteps: 12}, c)

	c = FromMap(map[string]string{"k": "1", "steps": "-4"})
	assert.Equal(t, DefaultConfig(), c)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestFormatCondition(t *testing.T) {
	ic, err := ParseCondition(" 2010 ", 3)
	require.NoError(t, err)
	assert.Equal(t, []uint8{2, 0, 1, 0}, ic)
	assert.Equal(t, "2010", FormatCondition(ic))
}
