package latticepath_test

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlkit/latticepath"
)

//----------------------------------------------------------------------------//
// Helpers
//----------------------------------------------------------------------------//

// countAll runs every counter and memory mode on f and requires them to agree.
func countAll(t *testing.T, f latticepath.Field) int {
	t.Helper()
	ex, err := latticepath.CountExhaustive(f)
	require.NoError(t, err)
	full, err := latticepath.CountDPWith(f, latticepath.Options{Memory: latticepath.FullTable})
	require.NoError(t, err)
	roll, err := latticepath.CountDPWith(f, latticepath.Options{Memory: latticepath.RollingRow})
	require.NoError(t, err)
	bi, err := latticepath.CountDPBig(f)
	require.NoError(t, err)

	require.Equal(t, ex, full, "exhaustive vs full table on %q", f)
	require.Equal(t, ex, roll, "exhaustive vs rolling row on %q", f)
	require.Equal(t, int64(ex), bi.Int64(), "exhaustive vs big on %q", f)

	return ex
}

//----------------------------------------------------------------------------//
// Agreement between counters
//----------------------------------------------------------------------------//

// TestCount_Known covers hand-computed fields.
func TestCount_Known(t *testing.T) {
	cases := []struct {
		name  string
		field latticepath.Field
		want  int
	}{
		{"OneByOneOpen", latticepath.Field{"."}, 1},
		{"OneByOneBlocked", latticepath.Field{"X"}, 0},
		{"SingleRow", latticepath.Field{"....."}, 1},
		{"SingleColumn", latticepath.Field{".", ".", "."}, 1},
		{"SingleRowBlocked", latticepath.Field{"..X.."}, 0},
		{"TwoByTwo", latticepath.Field{"..", ".."}, 2},
		{"ThreeByThree", latticepath.Field{"...", "...", "..."}, 6},
		{"CenterBlocked", latticepath.Field{"...", ".X.", "..."}, 2},
		{"StartBlocked", latticepath.Field{"X..", "...", "..."}, 0},
		{"EndBlocked", latticepath.Field{"...", "...", "..X"}, 0},
		{"WallAcross", latticepath.Field{"...", "XXX", "..."}, 0},
		{"Diagonal", latticepath.Field{".X", "X."}, 0},
		{"Corridor", latticepath.Field{".XX", ".XX", "..."}, 1},
		{"FourByFive", latticepath.Field{".....", "..X..", "....X", "X...."}, 10},
		{"Open12x12", squareField(12), 705432},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, countAll(t, tc.field))
		})
	}
}

// TestCount_RandomAgreement cross-checks the exhaustive oracle against the
// DP counter on random fields with up to 6×6 cells.
func TestCount_RandomAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 300; i++ {
		rows, cols := 1+rng.Intn(6), 1+rng.Intn(6)
		f := make(latticepath.Field, rows)
		for r := range f {
			var sb strings.Builder
			for c := 0; c < cols; c++ {
				if rng.Intn(4) == 0 {
					sb.WriteByte(latticepath.Blocked)
				} else {
					sb.WriteByte(latticepath.Open)
				}
			}
			f[r] = sb.String()
		}
		countAll(t, f)
	}
}

//----------------------------------------------------------------------------//
// Limits and options
//----------------------------------------------------------------------------//

// TestCountExhaustive_SearchSpace rejects fields beyond 31 steps that the
// DP counter still handles.
func TestCountExhaustive_SearchSpace(t *testing.T) {
	for _, f := range []latticepath.Field{
		{strings.Repeat(".", 33)},
		squareField(17),
	} {
		_, err := latticepath.CountExhaustive(f)
		assert.ErrorIs(t, err, latticepath.ErrSearchSpace)
		assert.ErrorIs(t, err, latticepath.ErrInvalidInput)

		_, err = latticepath.CountDP(f)
		assert.NoError(t, err)
	}

	n, err := latticepath.CountDP(squareField(17))
	require.NoError(t, err)
	assert.Equal(t, 601080390, n, "C(32,16)")
}

// TestCountDP_Overflow checks that CountDP reports overflow while
// CountDPBig returns the exact central binomial coefficient.
func TestCountDP_Overflow(t *testing.T) {
	f := squareField(40)
	for _, mode := range []latticepath.MemoryMode{latticepath.FullTable, latticepath.RollingRow} {
		_, err := latticepath.CountDPWith(f, latticepath.Options{Memory: mode})
		assert.ErrorIs(t, err, latticepath.ErrOverflow, "mode %d", mode)
	}

	got, err := latticepath.CountDPBig(f)
	require.NoError(t, err)
	want := new(big.Int).Binomial(78, 39)
	assert.Zero(t, want.Cmp(got), "CountDPBig = %s; want %s", got, want)
}

// TestCountDPWith_BadOptions rejects an unknown memory mode.
func TestCountDPWith_BadOptions(t *testing.T) {
	_, err := latticepath.CountDPWith(latticepath.Field{"."}, latticepath.Options{Memory: 7})
	assert.ErrorIs(t, err, latticepath.ErrBadOptions)
}

// TestCount_DoesNotMutate verifies the field is untouched by counting.
func TestCount_DoesNotMutate(t *testing.T) {
	f := latticepath.Field{"..X", "...", "X.."}
	orig := append(latticepath.Field(nil), f...)
	countAll(t, f)
	assert.Equal(t, orig, f)
}

func squareField(n int) latticepath.Field {
	f := make(latticepath.Field, n)
	for r := range f {
		f[r] = strings.Repeat(".", n)
	}

	return f
}
