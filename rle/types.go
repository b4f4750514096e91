package rle

import "errors"

// Sentinel errors for rle operations.
var (
	// ErrInvalidInput indicates a character outside the accepted alphabet,
	// or (for Decode) a malformed run count.
	ErrInvalidInput = errors.New("rle: invalid input")

	// ErrBadOptions indicates Options that cannot produce a decodable stream.
	ErrBadOptions = errors.New("rle: invalid options")
)

// Options tunes the encoder.
type Options struct {
	// MinRun is the shortest run written as COUNTc. Runs shorter than
	// MinRun are copied literally. Must be at least 2.
	MinRun int
}

// DefaultOptions returns Options{MinRun: 2}.
func DefaultOptions() Options {
	return Options{MinRun: 2}
}

// Run is a maximal sequence of one repeated character.
type Run struct {
	Char  byte // repeated character
	Start int  // byte offset of the first character
	Len   int  // number of repetitions, always ≥ 1
}
