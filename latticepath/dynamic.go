package latticepath

import (
	"fmt"
	"math"
	"math/big"
)

// CountDP counts paths by tabulation with DefaultOptions.
func CountDP(f Field) (int, error) {
	return CountDPWith(f, DefaultOptions())
}

// CountDPWith counts paths by tabulation.
//
// Recurrence:
//
//	ways[0][0] = 1 if open
//	ways[r][c] = 0                                 if blocked
//	ways[r][c] = ways[r-1][c] + ways[r][c-1]       otherwise (out of bounds = 0)
//
// The answer is ways[R-1][C-1]. Returns ErrOverflow when an intermediate
// count exceeds math.MaxInt; use CountDPBig for such fields.
func CountDPWith(f Field, opts Options) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	switch opts.Memory {
	case FullTable:
		return countFull(f)
	case RollingRow:
		return countRolling(f)
	default:
		return 0, fmt.Errorf("%w: memory mode %d", ErrBadOptions, opts.Memory)
	}
}

// countFull keeps the whole R×C table.
func countFull(f Field) (int, error) {
	rows, cols := f.Rows(), f.Cols()
	ways := make([][]int, rows)
	for r := range ways {
		ways[r] = make([]int, cols)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if f[r][c] == Blocked {
				continue
			}
			if r == 0 && c == 0 {
				ways[r][c] = 1
				continue
			}
			var up, left int
			if r > 0 {
				up = ways[r-1][c]
			}
			if c > 0 {
				left = ways[r][c-1]
			}
			if up > math.MaxInt-left {
				return 0, fmt.Errorf("%w: at row %d, col %d", ErrOverflow, r, c)
			}
			ways[r][c] = up + left
		}
	}

	return ways[rows-1][cols-1], nil
}

// countRolling folds rows into one slice: before row r is processed,
// ways[c] still holds row r-1, which is the "up" term.
func countRolling(f Field) (int, error) {
	rows, cols := f.Rows(), f.Cols()
	ways := make([]int, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			switch {
			case f[r][c] == Blocked:
				ways[c] = 0
			case r == 0 && c == 0:
				ways[c] = 1
			case c > 0:
				if ways[c] > math.MaxInt-ways[c-1] {
					return 0, fmt.Errorf("%w: at row %d, col %d", ErrOverflow, r, c)
				}
				ways[c] += ways[c-1]
			}
		}
	}

	return ways[cols-1], nil
}

// CountDPBig is CountDP with arbitrary-precision counts; it never overflows.
// Memory: O(C) big integers.
func CountDPBig(f Field) (*big.Int, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	cols := f.Cols()
	ways := make([]*big.Int, cols)
	for c := range ways {
		ways[c] = new(big.Int)
	}
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < cols; c++ {
			switch {
			case f[r][c] == Blocked:
				ways[c].SetInt64(0)
			case r == 0 && c == 0:
				ways[c].SetInt64(1)
			case c > 0:
				ways[c].Add(ways[c], ways[c-1])
			}
		}
	}

	return ways[cols-1], nil
}
