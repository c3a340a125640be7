package pipeline

import (
	"context"
	"fmt"

	"github.com/handiism/playlist-generator/internal/config"
	"github.com/handiism/playlist-generator/internal/generator"
	"github.com/handiism/playlist-generator/internal/http"
	ioutils "github.com/handiism/playlist-generator/internal/io"
	"github.com/handiism/playlist-generator/internal/model"
	"github.com/handiism/playlist-generator/internal/playlist"
	"github.com/handiism/playlist-generator/internal/verify"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel = verify.ProgressLevel

// ProgressEvent represents a pipeline progress update.
type ProgressEvent = verify.ProgressEvent

const (
	LevelInfo    = verify.LevelInfo
	LevelVerbose = verify.LevelVerbose
	LevelWarning = verify.LevelWarning
	LevelError   = verify.LevelError
	LevelSuccess = verify.LevelSuccess
)

// Result summarizes a completed run.
type Result struct {
	// Path is the playlist file that was written.
	Path string

	// Total is the number of generated candidates.
	Total int

	// Valid is the number of candidates written. Equal to Total when
	// verification is disabled.
	Valid int

	// Candidates are the entries written, in ascending index order.
	Candidates []model.Candidate
}

// Manager runs one playlist generation: validate, generate, optionally
// verify, write, report. Each stage runs exactly once.
type Manager struct {
	opts       *config.Options
	verifier   *verify.Verifier
	onProgress func(ProgressEvent)
}

// NewManager creates a new Manager.
//
// prober is only used when opts.Verify is set; nil selects an HTTP client
// built from opts.
func NewManager(opts *config.Options, prober verify.Prober, onProgress func(ProgressEvent)) *Manager {
	m := &Manager{
		opts:       opts,
		onProgress: onProgress,
	}

	if opts.Verify {
		if prober == nil {
			prober = http.NewClientFromOptions(opts)
		}
		m.verifier = verify.NewVerifier(prober, opts.Threads, m.progress)
	}

	return m
}

// Run executes the pipeline.
//
// Usage problems are returned as *config.UsageError before anything is
// generated or written. File-system errors are returned as is. If ctx is
// cancelled during verification no file is written and ctx.Err() is
// returned.
func (m *Manager) Run(ctx context.Context) (*Result, error) {
	if err := m.opts.Validate(); err != nil {
		return nil, err
	}

	gen, err := generator.New(m.opts.Link, m.opts.Padding, m.opts.Prefix, m.opts.Suffix)
	if err != nil {
		return nil, config.NewUsageError(err)
	}

	candidates := gen.Generate(m.opts.Range())
	total := len(candidates)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Generating playlist with %d entries...", total), Level: LevelInfo})

	if m.verifier != nil {
		candidates = m.verifier.Filter(ctx, candidates)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	content, err := playlist.NewCreator(m.opts.PlaylistFormat()).CreatePlaylist(candidates)
	if err != nil {
		return nil, err
	}

	if err := ioutils.WriteFile(ctx, m.opts.Playlist, content); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error writing playlist: %v", err), Level: LevelError})
		return nil, err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Playlist saved to %s", m.opts.Playlist), Level: LevelSuccess})

	return &Result{
		Path:       m.opts.Playlist,
		Total:      total,
		Valid:      len(candidates),
		Candidates: candidates,
	}, nil
}

// GetProgress returns verification progress. Both values are zero when
// verification is disabled or has not started.
func (m *Manager) GetProgress() (checked, total int) {
	if m.verifier == nil {
		return 0, 0
	}
	return m.verifier.Progress()
}

// Verifying reports whether this run will probe URLs.
func (m *Manager) Verifying() bool {
	return m.verifier != nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
