package domain

import "fmt"

// NumberingMode selects which output lines receive a line-number prefix.
type NumberingMode int

const (
	// NumberNone disables numbering.
	NumberNone NumberingMode = iota
	// NumberAll numbers every output line.
	NumberAll
	// NumberNonEmpty numbers only lines that are not blank.
	NumberNonEmpty
)

func (m NumberingMode) String() string {
	switch m {
	case NumberAll:
		return "all"
	case NumberNonEmpty:
		return "non-empty"
	default:
		return "none"
	}
}

// ParseNumberingMode parses the names produced by NumberingMode.String.
// The empty string parses as NumberNone.
func ParseNumberingMode(s string) (NumberingMode, error) {
	switch s {
	case "", "none":
		return NumberNone, nil
	case "all":
		return NumberAll, nil
	case "non-empty", "nonblank":
		return NumberNonEmpty, nil
	}
	return NumberNone, fmt.Errorf("unknown numbering mode %q (valid: none, all, non-empty)", s)
}

// Marker is an optional literal replacement string.
// The zero value is an absent marker, which means pass-through.
type Marker struct {
	Set   bool
	Value string
}

// NewMarker returns a present marker holding the given literal.
// An empty literal is still present: it deletes what it replaces.
func NewMarker(value string) Marker {
	return Marker{Set: true, Value: value}
}

// Config describes the transformations applied to a run.
// It is built once and never mutated while a run is in progress.
type Config struct {
	Numbering       NumberingMode
	EndMarker       Marker
	SqueezeBlank    bool
	TabMarker       Marker
	ShowNonPrinting bool
}

// IsPassthrough reports whether no transformation is configured, in which
// case input bytes can be copied to the output without looking at lines.
func (c Config) IsPassthrough() bool {
	return c.Numbering == NumberNone &&
		!c.EndMarker.Set &&
		!c.SqueezeBlank &&
		!c.TabMarker.Set &&
		!c.ShowNonPrinting
}

// RewritesBytes reports whether lines must be rewritten byte by byte.
// Only an end marker or non-printing escaping turn this on; a tab marker on
// its own rides along with them.
func (c Config) RewritesBytes() bool {
	return c.EndMarker.Set || c.ShowNonPrinting
}
