package datefmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for datefmt operations.
var (
	// ErrInvalidFormat indicates the input matches none of the four patterns.
	ErrInvalidFormat = errors.New("datefmt: unrecognized date format")

	// ErrInvalidRange indicates a year, month or day outside its accepted range.
	ErrInvalidRange = errors.New("datefmt: date component out of range")
)

// Accepted component ranges.
const (
	MinYear  = 1900
	MaxYear  = 2099
	MinMonth = 1
	MaxMonth = 12
	MinDay   = 1
	MaxDay   = 31
)

// Pattern identifies which of the four input syntaxes a string uses.
type Pattern int

const (
	// PatternNone is returned alongside an error.
	PatternNone Pattern = iota
	// PatternYMD is "Y-M-D".
	PatternYMD
	// PatternMDY is "M/D/Y".
	PatternMDY
	// PatternMonthName is "MONTH DAY, YEAR".
	PatternMonthName
	// PatternMonthAbbr is "MON DAY, YEAR".
	PatternMonthAbbr
)

// String returns the pattern's short name.
func (p Pattern) String() string {
	switch p {
	case PatternYMD:
		return "Y-M-D"
	case PatternMDY:
		return "M/D/Y"
	case PatternMonthName:
		return "MONTH DAY, YEAR"
	case PatternMonthAbbr:
		return "MON DAY, YEAR"
	default:
		return "none"
	}
}

// monthNames and monthAbbrs are indexed by month-1.
var (
	monthNames = [12]string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
	monthAbbrs = [12]string{
		"jan", "feb", "mar", "apr", "may", "jun",
		"jul", "aug", "sep", "oct", "nov", "dec",
	}
)

// Date is a validated calendar date. The zero value is not a valid Date;
// obtain one from Parse.
type Date struct {
	Year, Month, Day int
}

// String renders d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
