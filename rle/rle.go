package rle

import (
	"fmt"
	"strconv"
	"strings"
)

// maxDecodedLen bounds the output of Decode so a short code such as
// "999999999999a" cannot exhaust memory.
const maxDecodedLen = 1 << 26

// Encode run-length encodes s with DefaultOptions.
//
// Every run of two or more identical characters becomes COUNTc, so pairs
// are encoded too: "footloose" → "f2otl2ose". Use EncodeWith with
// Options{MinRun: 3} to keep runs of one and two literal.
//
// Returns ErrInvalidInput if s contains anything other than 'a'..'z' or ' '.
func Encode(s string) (string, error) {
	return EncodeWith(s, DefaultOptions())
}

// EncodeWith run-length encodes s, writing every run of at least
// opts.MinRun characters as COUNTc and shorter runs literally.
//
// Complexity: O(n).
func EncodeWith(s string, opts Options) (string, error) {
	if opts.MinRun < 2 {
		return "", fmt.Errorf("%w: MinRun=%d, want ≥ 2", ErrBadOptions, opts.MinRun)
	}
	if err := validatePlain(s); err != nil {
		return "", err
	}
	if s == "" {
		return "", nil
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range Runs(s) {
		if r.Len >= opts.MinRun {
			sb.WriteString(strconv.Itoa(r.Len))
			sb.WriteByte(r.Char)
			continue
		}
		for i := 0; i < r.Len; i++ {
			sb.WriteByte(r.Char)
		}
	}

	return sb.String(), nil
}

// Runs splits s into maximal runs of identical bytes, left to right.
// An empty string has no runs.
func Runs(s string) []Run {
	var runs []Run
	for i := 0; i < len(s); {
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		runs = append(runs, Run{Char: s[i], Start: i, Len: j - i})
		i = j
	}

	return runs
}

// Decode expands an encoded string produced by Encode or EncodeWith.
//
// A decimal count applies to the single character that follows it.
// Returns ErrInvalidInput for characters outside 'a'..'z', ' ', '0'..'9',
// a count with nothing after it, or a count of zero.
func Decode(s string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if isPlain(c) {
			sb.WriteByte(c)
			i++
			continue
		}
		if !isDigit(c) {
			return "", fmt.Errorf("%w: byte %q at offset %d", ErrInvalidInput, c, i)
		}
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j == len(s) {
			return "", fmt.Errorf("%w: count at offset %d has no character", ErrInvalidInput, i)
		}
		if !isPlain(s[j]) {
			return "", fmt.Errorf("%w: byte %q at offset %d", ErrInvalidInput, s[j], j)
		}
		n, err := strconv.Atoi(s[i:j])
		if err != nil || n == 0 {
			return "", fmt.Errorf("%w: bad count %q at offset %d", ErrInvalidInput, s[i:j], i)
		}
		if n > maxDecodedLen-sb.Len() {
			return "", fmt.Errorf("%w: decoded output exceeds %d bytes", ErrInvalidInput, maxDecodedLen)
		}
		sb.WriteString(strings.Repeat(string(s[j]), n))
		i = j + 1
	}

	return sb.String(), nil
}

// validatePlain scans the whole string before any encoding happens.
func validatePlain(s string) error {
	for i := 0; i < len(s); i++ {
		if !isPlain(s[i]) {
			return fmt.Errorf("%w: byte %q at offset %d", ErrInvalidInput, s[i], i)
		}
	}

	return nil
}

func isPlain(c byte) bool { return c == ' ' || ('a' <= c && c <= 'z') }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
