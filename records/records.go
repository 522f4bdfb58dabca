// Package records converts a worksheet grid into a sequence of key/value records.
package records

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Grid is a worksheet as rows of cell values. A cell is a string, a number, a bool,
// a time.Time or nil. Rows may be ragged.
type Grid [][]any

// Record maps the derived column keys to the (coerced) cell values of one row.
type Record map[string]any

// ISO8601 is the layout used for date cells, in UTC with millisecond precision.
const ISO8601 = "2006-01-02T15:04:05.000Z"

var whitespace = regexp.MustCompile(`\s+`)

// Extract converts the rows after the header row into records using the default options.
func Extract(grid Grid, header int) ([]Record, error) {
	return DefaultOptions().Extract(grid, header)
}

// Extract converts the grid rows into records keyed on the header row at index 'header'.
func (o Options) Extract(grid Grid, header int) ([]Record, error) {
	records := []Record{}
	if len(grid) == 0 {
		return records, nil
	}

	keys, err := o.HeaderKeys(grid, header)
	if err != nil {
		return nil, err
	}

	for i, row := range grid {
		if !o.Skip.includes(i, header) {
			continue
		}

		record := Record{}
		for c, cell := range row {
			key := ""
			if c < len(keys) {
				key = keys[c]
			} else {
				key = o.Keys.Key(c, "")
			}

			if o.DateSuffix != "" && isDate(cell) {
				key += o.DateSuffix
			}

			record[key] = Coerce(cell)
		}

		records = append(records, record)
	}

	return records, nil
}

// HeaderKeys returns the derived record keys for the header row, in column order.
func (o Options) HeaderKeys(grid Grid, header int) ([]string, error) {
	if header < 0 || header >= len(grid) {
		return nil, &HeaderIndexError{Index: header, Rows: len(grid)}
	}

	row := grid[header]
	keys := make([]string, len(row))
	for c, v := range row {
		keys[c] = o.Keys.Key(c, text(v))
	}

	return keys, nil
}

// DeriveKey lower-cases the header text and replaces each run of whitespace with
// a single underscore.
func DeriveKey(v string) string {
	return whitespace.ReplaceAllString(strings.ToLower(v), "_")
}

// Coerce converts date cells to an ISO-8601 string. All other values are returned
// unchanged.
func Coerce(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(ISO8601)

	case *time.Time:
		if t != nil {
			return t.UTC().Format(ISO8601)
		}
	}

	return v
}

func isDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}

	return false
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time, *time.Time:
		if s, ok := Coerce(t).(string); ok {
			return s
		}
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
