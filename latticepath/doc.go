// Package latticepath counts monotone lattice paths across a field with
// obstacles.
//
// What:
//
//   - A Field is a rectangle of cells, each open ('.') or blocked ('X').
//   - A path starts at the top-left cell, ends at the bottom-right cell,
//     moves one cell right or down per step, and never enters a blocked cell.
//   - CountExhaustive enumerates every candidate move sequence; it serves as
//     an independent oracle for the dynamic-programming counter.
//   - CountDP, CountDPWith and CountDPBig tabulate the same quantity.
//
// Both counters agree exactly on every field CountExhaustive accepts.
//
// Complexity:
//
//   - CountExhaustive: O(2^(R+C−2)·(R+C)) time, O(1) memory; R+C−2 ≤ 31.
//   - CountDP:         O(R·C) time; O(R·C) (FullTable) or O(C) (RollingRow) memory.
//
// Options:
//
//   - Options.Memory: FullTable or RollingRow (default).
//
// Errors (all satisfy errors.Is(err, ErrInvalidInput)):
//
//   - ErrInvalidCell:  a cell other than '.' or 'X'.
//   - ErrEmptyField:   no rows, or an empty first row.
//   - ErrRaggedRow:    rows of differing lengths.
//   - ErrSearchSpace:  R+C−2 > MaxExhaustiveSteps (exhaustive only).
//
// ErrOverflow is returned by CountDP when the count does not fit in an int;
// CountDPBig never overflows.
package latticepath
