package rule

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRule30(t *testing.T) {
	tbl, err := Build(2, 1, big.NewInt(30))
	require.NoError(t, err)
	require.Equal(t, 8, tbl.Len())

	// 30 = 00011110: neighborhoods 111..000 map to these digits in order.
	want := map[string]uint8{
		"111": 0, "110": 0, "101": 0, "100": 1,
		"011": 1, "010": 1, "001": 1, "000": 0,
	}
	for nb, next := range want {
		cells := make([]uint8, len(nb))
		for i, c := range nb {
			cells[i] = uint8(c - '0')
		}
		assert.Equalf(t, next, tbl.Lookup(cells), "neighborhood %s", nb)
	}
}

func TestBuildCompleteness(t *testing.T) {
	cases := []struct {
		k, r int
		code string
	}{
		{2, 1, "110"},
		{3, 1, "7625597484986"},
		{2, 2, "4294967295"},
		{4, 0, "200"},
		{2, 0, "0"},
	}
	for _, tc := range cases {
		code, err := ParseCode(tc.code)
		require.NoError(t, err)
		tbl, err := Build(tc.k, tc.r, code)
		require.NoError(t, err)
		require.Equal(t, NeighborhoodCount(tc.k, tc.r), tbl.Len())

		seen := make(map[int]bool, tbl.Len())
		for v := 0; v < tbl.Len(); v++ {
			nb := tbl.Neighborhood(v)
			require.Len(t, nb, 2*tc.r+1)
			idx := tbl.Index(nb)
			require.False(t, seen[idx], "neighborhood %v enumerated twice", nb)
			seen[idx] = true
			require.Less(t, int(tbl.Next(v)), tc.k)
		}
		require.Len(t, seen, tbl.Len())
	}
}

func TestBuildReconstructsCode(t *testing.T) {
	code, err := ParseCode("5555555555")
	require.NoError(t, err)
	tbl, err := Build(3, 1, code)
	require.NoError(t, err)

	// Reading the digits back from the highest neighborhood down must give
	// the input code.
	got := new(big.Int)
	k := big.NewInt(3)
	for v := tbl.Len() - 1; v >= 0; v-- {
		got.Mul(got, k)
		got.Add(got, big.NewInt(int64(tbl.Next(v))))
	}
	assert.Equal(t, 0, got.Cmp(code))
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(3, 1, big.NewInt(123456789))
	require.NoError(t, err)
	b, err := Build(3, 1, big.NewInt(123456789))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildRejectsInvalidCode(t *testing.T) {
	_, err := Build(2, 1, big.NewInt(256))
	assert.True(t, errors.Is(err, ErrInvalidCode))

	_, err = Build(2, 1, big.NewInt(-1))
	assert.True(t, errors.Is(err, ErrInvalidCode))

	_, err = Build(2, 1, nil)
	assert.True(t, errors.Is(err, ErrInvalidCode))

	_, err = ParseCode("thirty")
	assert.True(t, errors.Is(err, ErrInvalidCode))

	_, err = Build(2, 1, big.NewInt(255))
	assert.NoError(t, err)
}

func TestBuildRejectsInvalidParams(t *testing.T) {
	for _, tc := range []struct{ k, r int }{{1, 1}, {11, 1}, {2, -1}} {
		_, err := Build(tc.k, tc.r, big.NewInt(0))
		assert.Truef(t, errors.Is(err, ErrInvalidParams), "k=%d r=%d", tc.k, tc.r)
	}
}

func TestMaxCode(t *testing.T) {
	assert.Equal(t, "255", MaxCode(2, 1).String())
	assert.Equal(t, "7625597484986", MaxCode(3, 1).String())
	assert.Equal(t, "3", MaxCode(2, 0).String())
}
