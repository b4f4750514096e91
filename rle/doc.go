// Package rle run-length encodes strings over a restricted alphabet.
//
// What:
//
//   - Encode replaces every maximal run of a repeated character with COUNTc,
//     where COUNT is the decimal run length; shorter runs stay literal.
//   - Decode reverses the transformation.
//   - Runs exposes the maximal runs of a string.
//
// Alphabet:
//
//	Plain text may contain only lowercase ASCII letters 'a'..'z' and the space
//	character ' '. The whole input is validated before any output is built, so
//	a rejected input never yields a partial result.
//
// Threshold:
//
//	DefaultOptions().MinRun is 2, which reproduces the reference outputs:
//
//	  "aaa"                      → "3a"
//	  "heloooooooo there"        → "hel8o there"
//	  "footloose and fancy free" → "f2otl2ose and fancy fr2e"
//
//	EncodeWith(s, Options{MinRun: 3}) keeps runs of two literal.
//
// Complexity:
//
//   - Encode, Decode: O(n) time, O(n) memory.
//
// Errors:
//
//   - ErrInvalidInput: a character outside the alphabet, or a malformed code.
//   - ErrBadOptions:   Options.MinRun < 2.
package rle
