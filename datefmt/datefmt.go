package datefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Reformat parses input and returns it as YYYY-MM-DD.
//
// Example:
//
//	s, err := datefmt.Reformat("jan 15, 2022") // "2022-01-15", nil
func Reformat(input string) (string, error) {
	d, err := Parse(input)
	if err != nil {
		return "", err
	}

	return d.String(), nil
}

// Detect reports which pattern input uses without validating ranges.
// It returns ErrInvalidFormat when none applies.
func Detect(input string) (Pattern, error) {
	p, _, err := split(input)

	return p, err
}

// Parse detects the pattern of input, extracts year, month and day,
// and validates their ranges.
func Parse(input string) (Date, error) {
	_, f, err := split(input)
	if err != nil {
		return Date{}, err
	}

	// Tokens are all digits, so Atoi can only fail on overflow.
	var d Date
	if d.Year, err = strconv.Atoi(f.year); err != nil {
		return Date{}, rangeErr(input, "year", f.year)
	}
	if f.monthIndex > 0 {
		d.Month = f.monthIndex
	} else if d.Month, err = strconv.Atoi(f.month); err != nil {
		return Date{}, rangeErr(input, "month", f.month)
	}
	if d.Day, err = strconv.Atoi(f.day); err != nil {
		return Date{}, rangeErr(input, "day", f.day)
	}

	switch {
	case d.Year < MinYear || d.Year > MaxYear:
		return Date{}, rangeErr(input, "year", strconv.Itoa(d.Year))
	case d.Month < MinMonth || d.Month > MaxMonth:
		return Date{}, rangeErr(input, "month", strconv.Itoa(d.Month))
	case d.Day < MinDay || d.Day > MaxDay:
		return Date{}, rangeErr(input, "day", strconv.Itoa(d.Day))
	}

	return d, nil
}

// fields holds the raw tokens of a matched pattern. For the month-name
// patterns monthIndex is already resolved (1..12) and month is unused.
type fields struct {
	year, month, day string
	monthIndex       int
}

// split trims input, detects its pattern and cuts it into fields.
// Every token it returns is a non-empty run of ASCII digits.
func split(input string) (Pattern, fields, error) {
	s := strings.Trim(input, " ")
	if s == "" {
		return PatternNone, fields{}, formatErr(input, "empty")
	}

	if !strings.Contains(s, " ") {
		switch {
		case strings.Contains(s, "-"):
			parts, ok := numericParts(s, "-")
			if !ok {
				return PatternNone, fields{}, formatErr(input, "want Y-M-D")
			}

			return PatternYMD, fields{year: parts[0], month: parts[1], day: parts[2]}, nil
		case strings.Contains(s, "/"):
			parts, ok := numericParts(s, "/")
			if !ok {
				return PatternNone, fields{}, formatErr(input, "want M/D/Y")
			}

			return PatternMDY, fields{month: parts[0], day: parts[1], year: parts[2]}, nil
		default:
			return PatternNone, fields{}, formatErr(input, "no separator")
		}
	}

	name, rest, _ := strings.Cut(s, " ")
	p, idx := lookupMonth(name)
	if p == PatternNone {
		return PatternNone, fields{}, formatErr(input, "unknown month "+strconv.Quote(name))
	}
	day, year, ok := strings.Cut(rest, ",")
	if !ok {
		return PatternNone, fields{}, formatErr(input, "missing comma after day")
	}
	if strings.Contains(year, ",") {
		return PatternNone, fields{}, formatErr(input, "comma in year")
	}
	day, year = strings.Trim(day, " "), strings.Trim(year, " ")
	if !isDigits(day) || !isDigits(year) {
		return PatternNone, fields{}, formatErr(input, "day and year must be integers")
	}

	return p, fields{year: year, day: day, monthIndex: idx}, nil
}

// lookupMonth matches a case-folded token against the full names first,
// then the abbreviations. It returns the pattern and the 1-based month.
func lookupMonth(token string) (Pattern, int) {
	token = strings.ToLower(token)
	for i, m := range monthNames {
		if token == m {
			return PatternMonthName, i + 1
		}
	}
	for i, m := range monthAbbrs {
		if token == m {
			return PatternMonthAbbr, i + 1
		}
	}

	return PatternNone, 0
}

// numericParts splits s on sep and requires exactly three all-digit parts.
func numericParts(s, sep string) ([]string, bool) {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return nil, false
	}
	for _, p := range parts {
		if !isDigits(p) {
			return nil, false
		}
	}

	return parts, true
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func formatErr(input, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrInvalidFormat, input, reason)
}

func rangeErr(input, field, value string) error {
	return fmt.Errorf("%w: %q: %s %s", ErrInvalidRange, input, field, value)
}
