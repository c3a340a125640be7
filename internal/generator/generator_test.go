package generator

import (
	"math"
	"testing"

	"github.com/handiism/playlist-generator/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Padding(t *testing.T) {
	g, err := New("http://ex.com/*.mp3", 2, "", "")
	require.NoError(t, err)

	got := g.Generate(model.Range{Start: 1, End: 3})
	want := []model.Candidate{
		{Index: 1, URL: "http://ex.com/01.mp3"},
		{Index: 2, URL: "http://ex.com/02.mp3"},
		{Index: 3, URL: "http://ex.com/03.mp3"},
	}
	assert.Equal(t, want, got)
}

func TestGenerate_NoPadding(t *testing.T) {
	g, err := New("http://ex.com/ep*.mp3", 0, "", "")
	require.NoError(t, err)

	got := g.Generate(model.Range{Start: 9, End: 11})
	require.Len(t, got, 3)
	assert.Equal(t, "http://ex.com/ep9.mp3", got[0].URL)
	assert.Equal(t, "http://ex.com/ep10.mp3", got[1].URL)
	assert.Equal(t, "http://ex.com/ep11.mp3", got[2].URL)
}

func TestGenerate_PaddingNarrowerThanNumber(t *testing.T) {
	g, err := New("*", 2, "", "")
	require.NoError(t, err)
	assert.Equal(t, "1234", g.URL(1234))
}

func TestGenerate_NegativeIndex(t *testing.T) {
	g, err := New("n*", 3, "", "")
	require.NoError(t, err)
	assert.Equal(t, "n-05", g.URL(-5))
	assert.Equal(t, "n000", g.URL(0))
}

func TestGenerate_GlobalPrefixSuffix(t *testing.T) {
	g, err := New("ex.com/*.mp3", 3, "https://", "?dl=1")
	require.NoError(t, err)
	assert.Equal(t, "https://ex.com/042.mp3?dl=1", g.URL(42))
}

func TestGenerate_PrefixAppliedAfterSubstitution(t *testing.T) {
	// A '*' in the global prefix must not be substituted.
	g, err := New("/*.mp3", 0, "http://*.cdn", "")
	require.NoError(t, err)
	assert.Equal(t, "http://*.cdn/5.mp3", g.URL(5))
}

func TestGenerate_CountAndOrder(t *testing.T) {
	tests := []struct {
		start, end, padding int
	}{
		{1, 1, 0},
		{1, 100, 3},
		{-10, 10, 2},
		{0, 999, 0},
	}

	for _, tt := range tests {
		g, err := New("http://ex.com/*", tt.padding, "", "")
		require.NoError(t, err)

		got := g.Generate(model.Range{Start: tt.start, End: tt.end})
		require.Len(t, got, tt.end-tt.start+1)

		seen := make(map[string]bool, len(got))
		for i, c := range got {
			assert.Equal(t, tt.start+i, c.Index)
			assert.False(t, seen[c.URL], "duplicate URL %s", c.URL)
			seen[c.URL] = true
		}
	}
}

func TestGenerate_InvertedRange(t *testing.T) {
	g, err := New("*", 0, "", "")
	require.NoError(t, err)
	assert.Empty(t, g.Generate(model.Range{Start: 3, End: 1}))
}

func TestGenerate_MaxIntDoesNotOverflow(t *testing.T) {
	g, err := New("*", 0, "", "")
	require.NoError(t, err)

	got := g.Generate(model.Range{Start: math.MaxInt - 1, End: math.MaxInt})
	assert.Len(t, got, 2)
}

func TestNew_NoWildcard(t *testing.T) {
	_, err := New("http://ex.com/1.mp3", 0, "", "")
	assert.ErrorIs(t, err, model.ErrNoWildcard)
}
