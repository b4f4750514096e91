package latticepath_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlkit/latticepath"
)

//----------------------------------------------------------------------------//
// Validate
//----------------------------------------------------------------------------//

// TestValidate_Errors verifies that both counters reject malformed fields
// with the same sentinel, and that each wraps ErrInvalidInput.
func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name  string
		field latticepath.Field
		err   error
	}{
		{"NilField", nil, latticepath.ErrEmptyField},
		{"NoRows", latticepath.Field{}, latticepath.ErrEmptyField},
		{"EmptyRow", latticepath.Field{""}, latticepath.ErrEmptyField},
		{"Ragged", latticepath.Field{"...", ".."}, latticepath.ErrRaggedRow},
		{"RaggedLonger", latticepath.Field{"..", "...", ".."}, latticepath.ErrRaggedRow},
		{"EmptyFirstRowThenData", latticepath.Field{"", ".."}, latticepath.ErrEmptyField},
		{"BadCell", latticepath.Field{"..", ".o"}, latticepath.ErrInvalidCell},
		{"LowercaseX", latticepath.Field{".x"}, latticepath.ErrInvalidCell},
		{"BadCellBeatsRagged", latticepath.Field{"...", "#"}, latticepath.ErrInvalidCell},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errV := tc.field.Validate()
			_, errE := latticepath.CountExhaustive(tc.field)
			_, errD := latticepath.CountDP(tc.field)
			_, errB := latticepath.CountDPBig(tc.field)
			for _, err := range []error{errV, errE, errD, errB} {
				if !errors.Is(err, tc.err) {
					t.Errorf("error = %v; want %v", err, tc.err)
				}
				if !errors.Is(err, latticepath.ErrInvalidInput) {
					t.Errorf("error = %v; want it to wrap ErrInvalidInput", err)
				}
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Field accessors
//----------------------------------------------------------------------------//

// TestField_Accessors checks Rows, Cols and IsOpen bounds.
func TestField_Accessors(t *testing.T) {
	f := latticepath.Field{".X.", "..."}
	if f.Rows() != 2 || f.Cols() != 3 {
		t.Fatalf("shape = %dx%d; want 2x3", f.Rows(), f.Cols())
	}
	if !f.IsOpen(0, 0) || f.IsOpen(0, 1) || !f.IsOpen(1, 2) {
		t.Errorf("IsOpen mismatch on in-bounds cells")
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if f.IsOpen(rc[0], rc[1]) {
			t.Errorf("IsOpen(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
	if (latticepath.Field{}).Cols() != 0 {
		t.Errorf("Cols of empty field must be 0")
	}
}
