package records

import (
	"fmt"
	"strings"
)

// KeyPolicy selects how record keys are derived from the header row.
type KeyPolicy int

const (
	// IndexPrefixed prefixes the normalised header text with the column index
	// e.g. "0_name". Keys never collide.
	IndexPrefixed KeyPolicy = iota
	// Plain uses the normalised header text. When two columns normalise to the same
	// key the value from the later column is kept.
	Plain
)

// RowPolicy selects which rows around the header row are excluded from the records.
type RowPolicy int

const (
	// SkipThroughHeader drops every row up to and including the header row.
	SkipThroughHeader RowPolicy = iota
	// SkipHeaderOnly drops just the header row. Rows above it are converted in place.
	SkipHeaderOnly
)

// Options configures record extraction.
type Options struct {
	// Keys is the key derivation policy. Defaults to IndexPrefixed.
	Keys KeyPolicy
	// Skip is the header row exclusion policy. Defaults to SkipThroughHeader.
	Skip RowPolicy
	// DateSuffix, if not empty, is appended to the key of date valued cells
	// e.g. "_datetime".
	DateSuffix string
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	return Options{
		Keys: IndexPrefixed,
		Skip: SkipThroughHeader,
	}
}

// Key returns the record key for the header text in column 'column'.
func (p KeyPolicy) Key(column int, header string) string {
	key := DeriveKey(header)
	if p == Plain {
		return key
	}

	return fmt.Sprintf("%d_%s", column, key)
}

func (p KeyPolicy) String() string {
	switch p {
	case IndexPrefixed:
		return "indexed"
	case Plain:
		return "plain"
	default:
		return fmt.Sprintf("KeyPolicy(%d)", int(p))
	}
}

// ParseKeyPolicy parses "indexed" (or "index-prefixed") and "plain". An empty string
// is the default policy.
func ParseKeyPolicy(s string) (KeyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "indexed", "index-prefixed":
		return IndexPrefixed, nil
	case "plain":
		return Plain, nil
	default:
		return IndexPrefixed, fmt.Errorf("invalid key policy '%s' - expected 'indexed' or 'plain'", s)
	}
}

func (p RowPolicy) includes(row, header int) bool {
	if p == SkipHeaderOnly {
		return row != header
	}

	return row > header
}

func (p RowPolicy) String() string {
	switch p {
	case SkipThroughHeader:
		return "through-header"
	case SkipHeaderOnly:
		return "header-only"
	default:
		return fmt.Sprintf("RowPolicy(%d)", int(p))
	}
}

// ParseRowPolicy parses "through-header" and "header-only". An empty string is the
// default policy.
func ParseRowPolicy(s string) (RowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "through-header":
		return SkipThroughHeader, nil
	case "header-only":
		return SkipHeaderOnly, nil
	default:
		return SkipThroughHeader, fmt.Errorf("invalid row policy '%s' - expected 'through-header' or 'header-only'", s)
	}
}
