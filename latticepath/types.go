package latticepath

// Cell symbols.
const (
	Open    byte = '.'
	Blocked byte = 'X'
)

// MaxExhaustiveSteps caps R+C−2 for CountExhaustive, bounding the search
// space at 2^31 candidates.
const MaxExhaustiveSteps = 31

// Field is a rectangular grid; Field[r][c] is the cell at row r, column c.
// Counting never modifies a Field.
type Field []string

// Rows returns the number of rows.
func (f Field) Rows() int { return len(f) }

// Cols returns the length of row 0, or 0 for an empty field.
func (f Field) Cols() int {
	if len(f) == 0 {
		return 0
	}

	return len(f[0])
}

// IsOpen reports whether (r, c) lies inside f and is open.
func (f Field) IsOpen(r, c int) bool {
	return r >= 0 && r < len(f) && c >= 0 && c < len(f[r]) && f[r][c] == Open
}

// MemoryMode controls how the DP table is stored.
//
//   - FullTable  — keep all R×C counts. Memory: O(R·C).
//   - RollingRow — fold rows into a single slice of C counts. Memory: O(C).
type MemoryMode int

const (
	// FullTable keeps the whole table.
	FullTable MemoryMode = iota
	// RollingRow keeps one row.
	RollingRow
)

// Options configures the dynamic-programming counter.
type Options struct {
	Memory MemoryMode
}

// DefaultOptions returns Options{Memory: RollingRow}.
func DefaultOptions() Options {
	return Options{Memory: RollingRow}
}
