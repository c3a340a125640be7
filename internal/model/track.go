package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Wildcard is the marker replaced by the numeric index in a URL template.
const Wildcard = "*"

// Candidate is a single generated playlist entry.
//
// Index is the number substituted into the template. It survives
// verification untouched, so titles stay tied to the original numbering
// even when some entries are filtered out.
type Candidate struct {
	// Index is the number that was substituted for the wildcard.
	Index int

	// URL is the fully expanded address, including any global prefix/suffix.
	URL string
}

// Title returns the display title used by M3U, PLS and XSPF output.
func (c Candidate) Title() string {
	return "Track " + strconv.Itoa(c.Index)
}

// Template is a URL template split around its wildcard marker.
//
// Only the first '*' is treated as the marker; later ones are kept
// literally in Suffix.
//
// Example:
//
//	tpl, _ := ParseTemplate("http://example.com/episode_*.mp3")
//	// tpl.Prefix = "http://example.com/episode_"
//	// tpl.Suffix = ".mp3"
type Template struct {
	Prefix string
	Suffix string
}

// ParseTemplate splits link at its first wildcard.
// Returns ErrNoWildcard if link contains no '*'.
func ParseTemplate(link string) (Template, error) {
	prefix, suffix, ok := strings.Cut(link, Wildcard)
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrNoWildcard, link)
	}
	return Template{Prefix: prefix, Suffix: suffix}, nil
}

// Expand substitutes an already rendered index into the template.
func (t Template) Expand(rendered string) string {
	return t.Prefix + rendered + t.Suffix
}

// Range is an inclusive numeric range [Start, End].
type Range struct {
	Start int
	End   int
}

// NewRange builds a Range, rejecting start > end.
func NewRange(start, end int) (Range, error) {
	r := Range{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// Validate reports ErrInvalidRange when Start > End.
func (r Range) Validate() error {
	if r.Start > r.End {
		return fmt.Errorf("%w (start=%d, end=%d)", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// Len returns the number of integers in the range.
func (r Range) Len() int {
	if r.Start > r.End {
		return 0
	}
	return r.End - r.Start + 1
}
