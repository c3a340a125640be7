package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/playlist-generator/internal/pipeline"
)

// reporter prints pipeline progress events. Verification calls it from
// several goroutines, so writes are serialized.
type reporter struct {
	mu      sync.Mutex
	out     io.Writer
	verbose bool
	styles  map[pipeline.ProgressLevel]lipgloss.Style
}

func newReporter(out io.Writer, verbose bool) *reporter {
	r := lipgloss.NewRenderer(out)
	return &reporter{
		out:     out,
		verbose: verbose,
		styles: map[pipeline.ProgressLevel]lipgloss.Style{
			pipeline.LevelInfo:    r.NewStyle().Foreground(lipgloss.Color("#A8DADC")),
			pipeline.LevelVerbose: r.NewStyle().Foreground(lipgloss.Color("#6C757D")),
			pipeline.LevelWarning: r.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
			pipeline.LevelError:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
			pipeline.LevelSuccess: r.NewStyle().Foreground(lipgloss.Color("#95E1A3")),
		},
	}
}

func (r *reporter) report(event pipeline.ProgressEvent) {
	if event.Level == pipeline.LevelVerbose && !r.verbose {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, r.styles[event.Level].Render(event.Message))
}
