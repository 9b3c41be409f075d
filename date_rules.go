package validate

import (
	"strconv"
	"strings"
	"time"
)

// Date stages a rule requiring the value to be a real calendar date in the
// given d/m/Y-style format. The separator splits the value into day, month
// and year tokens; when empty, any of "-", ".", "/" or a space separates.
// Dates are checked against the calendar, so 29/02 passes only in leap years
// and 31/04 never does. Blank values pass.
func (v *Validator) Date(format, separator string, message ...string) *Validator {
	return v.register("date", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		_, ok := parseCalendarDate(value, format, separator)
		return ok
	}, v.buildMessage("date"), message)
}

// MinDate stages a rule requiring the value, parsed in the given format, to
// fall on or after a bound. The bound is resolved when the chain is built:
// an integer is a day offset from today, a name present in the inputs is
// that field's value at build time, anything else is a date literal in the
// same format. An unresolvable bound disables the comparison and the rule
// passes. Blank values pass; unparseable values fail.
func (v *Validator) MinDate(bound, format string, message ...string) *Validator {
	limit, resolved := v.resolveDateBound(bound, format)
	return v.register("mindate", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		if !resolved {
			return true
		}
		t, ok := parseCalendarDate(value, format, "")
		if !ok {
			return false
		}
		return !t.Before(limit)
	}, v.buildMessage("mindate", displayDate(bound, limit, resolved)), message)
}

// MaxDate stages a rule requiring the value, parsed in the given format, to
// fall on or before a bound, resolved the same way as MinDate's.
func (v *Validator) MaxDate(bound, format string, message ...string) *Validator {
	limit, resolved := v.resolveDateBound(bound, format)
	return v.register("maxdate", func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		if !resolved {
			return true
		}
		t, ok := parseCalendarDate(value, format, "")
		if !ok {
			return false
		}
		return !t.After(limit)
	}, v.buildMessage("maxdate", displayDate(bound, limit, resolved)), message)
}

// resolveDateBound turns a bound argument into a concrete date at
// chain-build time: a day offset from today, a snapshot of another input
// field, or a literal in the rule's format.
func (v *Validator) resolveDateBound(bound, format string) (time.Time, bool) {
	if offset, err := strconv.Atoi(bound); err == nil {
		now := time.Now().AddDate(0, 0, offset)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), true
	}
	if other, ok := v.inputs[bound]; ok {
		return parseCalendarDate(other, format, "")
	}
	return parseCalendarDate(bound, format, "")
}

func displayDate(bound string, limit time.Time, resolved bool) string {
	if resolved {
		return limit.Format("2006-01-02")
	}
	return bound
}

// parseCalendarDate maps the value's tokens onto day, month and year per the
// format string and validates them against the real calendar.
func parseCalendarDate(value, format, separator string) (time.Time, bool) {
	tokens := splitDateTokens(value, separator)
	keys := splitDateTokens(format, "")
	if len(tokens) != 3 || len(keys) != 3 {
		return time.Time{}, false
	}

	var day, month, year int
	for i, key := range keys {
		n, err := strconv.Atoi(tokens[i])
		if err != nil {
			return time.Time{}, false
		}
		switch key[0] {
		case 'd', 'j', 'D':
			day = n
		case 'm', 'n', 'M':
			month = n
		case 'y', 'Y':
			if key[0] == 'y' && n < 100 {
				n += 2000
			}
			year = n
		default:
			return time.Time{}, false
		}
	}

	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	// time.Date normalizes out-of-range days, so a round trip exposes
	// impossible dates like 31/04 or 29/02 outside leap years.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func splitDateTokens(s, separator string) []string {
	if separator != "" {
		return strings.Split(s, separator)
	}
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '.' || r == '/' || r == ' '
	})
}
