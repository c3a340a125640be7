package verify

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/handiism/playlist-generator/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Prober decides whether a single URL is reachable.
//
// Implementations must be safe for concurrent use and must not retry.
type Prober interface {
	Probe(ctx context.Context, url string) bool
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(ctx context.Context, url string) bool

// Probe calls f(ctx, url).
func (f ProberFunc) Probe(ctx context.Context, url string) bool {
	return f(ctx, url)
}

// Verifier filters candidates down to the reachable ones.
type Verifier struct {
	prober     Prober
	threads    int
	onProgress func(ProgressEvent)

	checked atomic.Int32
	total   atomic.Int32
}

// NewVerifier creates a Verifier running at most threads probes at once.
// threads below 1 is treated as 1.
func NewVerifier(prober Prober, threads int, onProgress func(ProgressEvent)) *Verifier {
	if threads < 1 {
		threads = 1
	}
	return &Verifier{
		prober:     prober,
		threads:    threads,
		onProgress: onProgress,
	}
}

// Filter probes every candidate and returns the reachable ones in their
// original order, regardless of the order in which probes complete.
func (v *Verifier) Filter(ctx context.Context, candidates []model.Candidate) []model.Candidate {
	v.checked.Store(0)
	v.total.Store(int32(len(candidates)))
	v.progress(ProgressEvent{Message: "Verifying URLs...", Level: LevelInfo})

	results := make([]bool, len(candidates))

	g := new(errgroup.Group)
	g.SetLimit(v.threads)

	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			ok := v.prober.Probe(ctx, c.URL)
			results[i] = ok
			v.checked.Add(1)

			status := "OK"
			if !ok {
				status = "FAILED"
			}
			v.progress(ProgressEvent{Message: fmt.Sprintf("Checking: %s [%s]", c.URL, status), Level: LevelVerbose})
			return nil
		})
	}

	// Probes never return errors; failures only clear their result slot.
	_ = g.Wait()

	valid := make([]model.Candidate, 0, len(candidates))
	for i, c := range candidates {
		if results[i] {
			valid = append(valid, c)
		}
	}

	v.progress(ProgressEvent{
		Message: fmt.Sprintf("Found %d valid URLs out of %d", len(valid), len(candidates)),
		Level:   LevelSuccess,
	})
	return valid
}

// Progress returns how many probes have finished and how many were queued.
func (v *Verifier) Progress() (checked, total int) {
	return int(v.checked.Load()), int(v.total.Load())
}

func (v *Verifier) progress(event ProgressEvent) {
	if v.onProgress != nil {
		v.onProgress(event)
	}
}
