package frequent

import "unicode/utf8"

// Table maps each character to its number of occurrences in a text.
// Valid UTF-8 sequences are keyed by their code point. A byte that is not
// part of a valid sequence is keyed by InvalidByte(b), so distinct invalid
// bytes never collapse into one character.
type Table map[rune]int

// Window is a half-open byte span [Start, End) of a text; text[Start:End]
// is the substring it denotes. Start and End always fall on character
// boundaries.
type Window struct {
	Start, End int
}

// Len returns the number of bytes covered by w.
func (w Window) Len() int { return w.End - w.Start }

// InvalidByte returns the Table key of an invalid UTF-8 byte b.
// Keys of invalid bytes are negative and never clash with code points.
func InvalidByte(b byte) rune { return -1 - rune(b) }

// char is one decoded character: its Table key and byte span.
type char struct {
	key        rune
	start, end int
}

// decode splits text into characters, keying invalid bytes individually.
func decode(text string) []char {
	chars := make([]char, 0, len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			r = InvalidByte(text[i])
		}
		chars = append(chars, char{key: r, start: i, end: i + size})
		i += size
	}

	return chars
}

// Count builds the global frequency table of text.
func Count(text string) Table {
	return count(decode(text))
}

func count(chars []char) Table {
	t := make(Table)
	for _, c := range chars {
		t[c.key]++
	}

	return t
}

// Longest returns the longest substring of text in which every character
// occurs at least k times in text. Ties go to the earliest start offset.
// k ≤ 0 qualifies every character. The result is always text[i:j] for
// some i ≤ j.
func Longest(text string, k int) string {
	w := LongestWindow(text, k)

	return text[w.Start:w.End]
}

// LongestWindow is Longest reporting the byte span instead of the substring.
// An empty result is Window{} (Start = End = 0).
func LongestWindow(text string, k int) Window {
	chars := decode(text)

	return longestWindow(chars, count(chars), k)
}

// longestWindow scans every start character, extending right while the
// next character is globally frequent. Windows are compared by character
// count; only a strictly longer one replaces best, which keeps the
// earliest of equal-length windows.
func longestWindow(chars []char, freq Table, k int) Window {
	var best Window
	bestLen := 0
	for b := 0; b < len(chars); {
		e := b
		for e < len(chars) && freq[chars[e].key] >= k {
			e++
		}
		if e-b > bestLen {
			bestLen = e - b
			best = Window{Start: chars[b].start, End: chars[e-1].end}
		}
		// Any start in [b, e] stops at e too; resume after it.
		b = e + 1
	}

	return best
}
