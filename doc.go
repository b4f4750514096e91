// Package lvlkit is a small set of self-contained string, date and
// combinatorial algorithms.
//
// 🚀 What is inside?
//
//	rle/         — run-length encoding of lowercase text (Encode, Decode)
//	frequent/    — longest substring of globally frequent characters
//	datefmt/     — four fixed date patterns normalized to YYYY-MM-DD
//	latticepath/ — right/down path counting across a field with obstacles,
//	               by exhaustive enumeration and by dynamic programming
//	cmd/lvlkit/  — command-line front-end for all of the above
//
// ✨ Guarantees:
//
//   - Pure functions – no I/O, no shared mutable state, safe for concurrent use
//   - Sentinel errors – match failures with errors.Is
//   - No partial results – a rejected input never yields output
//
// Quick ASCII example (latticepath):
//
//	. . .
//	. X .     two paths avoid the obstacle
//	. . .
//
//	go get github.com/katalvlaran/lvlkit
package lvlkit
