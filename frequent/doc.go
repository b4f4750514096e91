// Package frequent finds the longest substring whose characters are all
// frequent in the surrounding text.
//
// A character qualifies when its global frequency (its number of occurrences
// in the whole input text, not in the substring) is at least k. Longest
// returns the longest contiguous substring made only of qualifying
// characters; among equally long candidates the earliest one wins. When no
// character qualifies the result is the empty string, which is a normal
// outcome and not an error.
//
// Characters are Unicode code points; each byte of invalid UTF-8 counts as
// its own character. Candidates are compared by character count, and the
// result is always a slice of the input text.
//
// Complexity: O(n) time and O(σ) memory for the frequency table (σ distinct
// characters), plus O(n) for the decoded characters. A disqualifying
// character at position e rules out every start in [b, e], so each
// character is visited once.
package frequent
