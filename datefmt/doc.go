// Package datefmt normalizes dates written in one of four fixed patterns
// into strict YYYY-MM-DD form.
//
// Patterns, in detection order:
//
//	PatternYMD        "2022-1-15"        Y-M-D, dash-separated integers
//	PatternMDY        "1/15/2022"        M/D/Y, slash-separated integers
//	PatternMonthName  "January 15, 2022" case-insensitive full month name
//	PatternMonthAbbr  "jan 15, 2022"     case-insensitive three-letter abbreviation
//
// Leading and trailing spaces are ignored. Input without a space is tried
// against the numeric patterns only; input with a space against the month
// patterns only.
//
// Ranges:
//
//	year ∈ [1900, 2099], month ∈ [1, 12], day ∈ [1, 31].
//
// There is no calendar check: "February 31, 2022" is accepted.
//
// Errors:
//
//   - ErrInvalidFormat: no pattern matches, or a field is not purely numeric.
//   - ErrInvalidRange:  a field parsed but lies outside its range.
package datefmt
