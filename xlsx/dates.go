package xlsx

import (
	"strings"
)

// isBuiltInDate returns true for the built-in number format IDs that format a date,
// time or date/time (ECMA-376 §18.8.30, including the CJK locale formats).
func isBuiltInDate(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}

	return false
}

// isDateFormat returns true if a number format code contains a day, month, year, hour
// or second token outside of quoted literals and [..] sections.
func isDateFormat(format string) bool {
	if strings.EqualFold(strings.TrimSpace(format), "General") {
		return false
	}

	quoted := false
	bracketed := false
	escaped := false

	for _, ch := range format {
		switch {
		case escaped:
			escaped = false

		case quoted:
			if ch == '"' {
				quoted = false
			}

		case bracketed:
			if ch == ']' {
				bracketed = false
			}

		case ch == '\\':
			escaped = true

		case ch == '"':
			quoted = true

		case ch == '[':
			bracketed = true

		case strings.ContainsRune("dDmMyYhHsS", ch):
			return true
		}
	}

	return false
}
