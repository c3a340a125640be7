package generator

import (
	"fmt"
	"strconv"

	"github.com/handiism/playlist-generator/internal/model"
)

// Generator expands a URL template over a numeric range.
//
// Substitution order for each index:
//  1. render the index, zero-padded to Padding when Padding > 0
//  2. place it between the template's prefix and suffix
//  3. wrap the result with the global Prefix and Suffix
//
// Example:
//
//	g, _ := generator.New("http://example.com/*.mp3", 2, "", "?dl=1")
//	g.URL(7) // "http://example.com/07.mp3?dl=1"
type Generator struct {
	template model.Template
	padding  int
	prefix   string
	suffix   string
}

// New creates a Generator for link.
//
// Returns model.ErrNoWildcard if link has no '*'. The check runs once
// here, so Generate itself cannot fail.
func New(link string, padding int, prefix, suffix string) (*Generator, error) {
	tpl, err := model.ParseTemplate(link)
	if err != nil {
		return nil, err
	}
	return &Generator{
		template: tpl,
		padding:  padding,
		prefix:   prefix,
		suffix:   suffix,
	}, nil
}

// URL returns the expanded URL for a single index.
func (g *Generator) URL(index int) string {
	return g.prefix + g.template.Expand(g.render(index)) + g.suffix
}

// Generate returns one Candidate per integer in r, in ascending order.
// An inverted range yields no candidates.
func (g *Generator) Generate(r model.Range) []model.Candidate {
	candidates := make([]model.Candidate, 0, r.Len())
	for i := r.Start; i <= r.End; i++ {
		candidates = append(candidates, model.Candidate{Index: i, URL: g.URL(i)})
		if i == r.End {
			// r.End may be math.MaxInt
			break
		}
	}
	return candidates
}

func (g *Generator) render(index int) string {
	if g.padding > 0 {
		return fmt.Sprintf("%0*d", g.padding, index)
	}
	return strconv.Itoa(index)
}
