package latticepath

import "fmt"

// CountExhaustive counts paths by trying every sequence of R+C−2 moves.
//
// Algorithm:
//  1. Validate f; reject R+C−2 > MaxExhaustiveSteps with ErrSearchSpace.
//  2. For each integer mask in [0, 2^(R+C−2)):
//     bit j set   → step j moves down,
//     bit j clear → step j moves right.
//  3. Walk the moves from (0,0); discard the candidate as soon as it leaves
//     the field or enters a blocked cell.
//  4. Count the candidates that finish on (R−1, C−1).
//
// A blocked start cell yields 0. A 1×1 field yields 1 if open, else 0.
func CountExhaustive(f Field) (int, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	rows, cols := f.Rows(), f.Cols()
	steps := rows + cols - 2
	if steps > MaxExhaustiveSteps {
		return 0, fmt.Errorf("%w: %dx%d field needs %d steps", ErrSearchSpace, rows, cols, steps)
	}
	if !f.IsOpen(0, 0) {
		return 0, nil
	}

	limit := uint64(1) << uint(steps)
	count := 0
	for mask := uint64(0); mask < limit; mask++ {
		r, c := 0, 0
		ok := true
		for j := 0; j < steps; j++ {
			if mask>>uint(j)&1 == 1 {
				r++
			} else {
				c++
			}
			if !f.IsOpen(r, c) {
				ok = false

				break
			}
		}
		if ok && r == rows-1 && c == cols-1 {
			count++
		}
	}

	return count, nil
}
