package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/handiism/playlist-generator/internal/model"
)

// Usage error causes. Test with errors.Is against the *UsageError
// returned by Options.Validate.
var (
	ErrMissingLink     = errors.New("missing required option: link")
	ErrMissingStart    = errors.New("missing required option: start")
	ErrMissingEnd      = errors.New("missing required option: end")
	ErrMissingPlaylist = errors.New("missing required option: playlist")
	ErrInvalidPadding  = errors.New("padding cannot be negative")
	ErrInvalidThreads  = errors.New("threads must be at least 1")
	ErrInvalidTimeout  = errors.New("timeout must be positive")

	ErrNoWildcard    = model.ErrNoWildcard
	ErrInvalidRange  = model.ErrInvalidRange
	ErrUnknownFormat = model.ErrUnknownFormat
)

// UsageError marks a problem with the user's input. It is always
// detected before any URL is generated or any file is written.
type UsageError struct {
	Err error
}

// NewUsageError wraps err as a UsageError.
func NewUsageError(err error) *UsageError {
	return &UsageError{Err: err}
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// IsUsageError reports whether err is, or wraps, a *UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// Options is the full set of inputs for one run.
type Options struct {
	// Link is the URL template; it must contain one '*'.
	Link string

	// Start and End bound the inclusive numeric range.
	Start int
	End   int

	// Playlist is the output file path. Existing files are overwritten.
	Playlist string

	// Format is one of plain, m3u, m3u8, pls, xspf.
	Format string

	// Padding zero-pads the index to this width. 0 disables padding.
	Padding int

	// Prefix and Suffix wrap every expanded URL.
	Prefix string
	Suffix string

	// Verify enables HEAD probing; unreachable URLs are dropped.
	Verify bool

	// Threads bounds the number of probes in flight.
	Threads int

	// Timeout bounds each probe.
	Timeout time.Duration

	// UserAgent is sent with every probe.
	UserAgent string

	// Verbose reports every probe result.
	Verbose bool
}

// DefaultOptions returns Options populated from DefaultSettings.
func DefaultOptions() *Options {
	return DefaultSettings().ToOptions()
}

// Validate checks the options, returning a *UsageError on the first problem.
func (o *Options) Validate() error {
	if o.Link == "" {
		return NewUsageError(ErrMissingLink)
	}
	if o.Playlist == "" {
		return NewUsageError(ErrMissingPlaylist)
	}
	if _, err := model.ParseTemplate(o.Link); err != nil {
		return NewUsageError(err)
	}
	if err := o.Range().Validate(); err != nil {
		return NewUsageError(err)
	}
	if _, err := model.ParseFormat(o.Format); err != nil {
		return NewUsageError(err)
	}
	if o.Padding < 0 {
		return NewUsageError(fmt.Errorf("%w: %d", ErrInvalidPadding, o.Padding))
	}
	if o.Threads < 1 {
		return NewUsageError(fmt.Errorf("%w: %d", ErrInvalidThreads, o.Threads))
	}
	if o.Verify && o.Timeout <= 0 {
		return NewUsageError(fmt.Errorf("%w: %s", ErrInvalidTimeout, o.Timeout))
	}
	return nil
}

// Range returns the configured numeric range.
func (o *Options) Range() model.Range {
	return model.Range{Start: o.Start, End: o.End}
}

// PlaylistFormat returns the parsed output format, falling back to plain.
func (o *Options) PlaylistFormat() model.PlaylistFormat {
	pf, err := model.ParseFormat(o.Format)
	if err != nil {
		return model.PlaylistFormatPlain
	}
	return pf
}
