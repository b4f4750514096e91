package latticepath

import "fmt"

// Validate checks f in a fixed order: cell symbols across every row, then a
// non-empty shape, then equal row lengths. It is shared by both counters so
// they reject malformed fields identically.
//
// Complexity: O(R·C).
func (f Field) Validate() error {
	for r, row := range f {
		for c := 0; c < len(row); c++ {
			if row[c] != Open && row[c] != Blocked {
				return fmt.Errorf("%w: %q at row %d, col %d", ErrInvalidCell, row[c], r, c)
			}
		}
	}
	if len(f) == 0 || len(f[0]) == 0 {
		return ErrEmptyField
	}
	w := len(f[0])
	for r, row := range f {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRow, r, len(row), w)
		}
	}

	return nil
}
