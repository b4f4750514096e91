package latticepath

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the umbrella for every malformed-field error.
	ErrInvalidInput = errors.New("latticepath: invalid input")

	// ErrInvalidCell indicates a cell that is neither Open nor Blocked.
	ErrInvalidCell = fmt.Errorf("%w: cell must be '.' or 'X'", ErrInvalidInput)
	// ErrEmptyField indicates the field has no rows or no columns.
	ErrEmptyField = fmt.Errorf("%w: field must have at least one row and one column", ErrInvalidInput)
	// ErrRaggedRow indicates rows of differing lengths.
	ErrRaggedRow = fmt.Errorf("%w: all rows must have the same length", ErrInvalidInput)
	// ErrSearchSpace indicates a field too large to enumerate.
	ErrSearchSpace = fmt.Errorf("%w: rows+cols-2 exceeds %d", ErrInvalidInput, MaxExhaustiveSteps)

	// ErrOverflow indicates a path count larger than the platform int.
	ErrOverflow = errors.New("latticepath: path count overflows int")
	// ErrBadOptions indicates an unknown MemoryMode.
	ErrBadOptions = errors.New("latticepath: invalid options")
)
