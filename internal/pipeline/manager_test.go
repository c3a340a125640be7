package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/handiism/playlist-generator/internal/config"
	"github.com/handiism/playlist-generator/internal/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(t *testing.T, format string) *config.Options {
	t.Helper()
	opts := config.DefaultOptions()
	opts.Link = "http://ex.com/*.mp3"
	opts.Start = 1
	opts.End = 3
	opts.Padding = 2
	opts.Format = format
	opts.Playlist = filepath.Join(t.TempDir(), "out."+format)
	return opts
}

type recorder struct {
	mu     sync.Mutex
	events []ProgressEvent
}

func (r *recorder) record(e ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) messages(level ProgressLevel) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

func TestRun_M3U(t *testing.T) {
	opts := testOptions(t, "m3u")
	rec := &recorder{}

	result, err := NewManager(opts, nil, rec.record).Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(opts.Playlist)
	require.NoError(t, err)
	assert.Equal(t, "#EXTM3U\n"+
		"#EXTINF:-1,Track 1\nhttp://ex.com/01.mp3\n"+
		"#EXTINF:-1,Track 2\nhttp://ex.com/02.mp3\n"+
		"#EXTINF:-1,Track 3\nhttp://ex.com/03.mp3\n", string(data))

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Valid)
	assert.Equal(t, opts.Playlist, result.Path)
	assert.Contains(t, rec.messages(LevelSuccess), "Playlist saved to "+opts.Playlist)
	assert.Contains(t, rec.messages(LevelInfo), "Generating playlist with 3 entries...")
}

func TestRun_Plain(t *testing.T) {
	opts := testOptions(t, "plain")

	_, err := NewManager(opts, nil, nil).Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(opts.Playlist)
	require.NoError(t, err)
	assert.Equal(t, "http://ex.com/01.mp3\nhttp://ex.com/02.mp3\nhttp://ex.com/03.mp3\n", string(data))
}

func TestRun_VerifyOddOnly(t *testing.T) {
	opts := testOptions(t, "pls")
	opts.End = 6
	opts.Verify = true
	opts.Threads = 3

	prober := verify.ProberFunc(func(_ context.Context, url string) bool {
		return strings.HasSuffix(url, "1.mp3") || strings.HasSuffix(url, "3.mp3") || strings.HasSuffix(url, "5.mp3")
	})
	rec := &recorder{}

	manager := NewManager(opts, prober, rec.record)
	require.True(t, manager.Verifying())

	result, err := manager.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, result.Total)
	assert.Equal(t, 3, result.Valid)

	data, err := os.ReadFile(opts.Playlist)
	require.NoError(t, err)
	assert.Equal(t, "[playlist]\nNumberOfEntries=3\nVersion=2\n\n"+
		"File1=http://ex.com/01.mp3\nTitle1=Track 1\nLength1=-1\n\n"+
		"File2=http://ex.com/03.mp3\nTitle2=Track 3\nLength2=-1\n\n"+
		"File3=http://ex.com/05.mp3\nTitle3=Track 5\nLength3=-1\n\n", string(data))

	assert.Contains(t, rec.messages(LevelSuccess), "Found 3 valid URLs out of 6")

	checked, total := manager.GetProgress()
	assert.Equal(t, 6, checked)
	assert.Equal(t, 6, total)
}

func TestRun_NoVerifyMakesNoProbes(t *testing.T) {
	opts := testOptions(t, "plain")
	prober := verify.ProberFunc(func(context.Context, string) bool {
		t.Error("probe called without --verify")
		return false
	})

	manager := NewManager(opts, prober, nil)
	assert.False(t, manager.Verifying())

	_, err := manager.Run(context.Background())
	require.NoError(t, err)

	checked, total := manager.GetProgress()
	assert.Zero(t, checked)
	assert.Zero(t, total)
}

func TestRun_UsageErrorsWriteNothing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *config.Options)
		want   error
	}{
		{"no wildcard", func(o *config.Options) { o.Link = "http://ex.com/1.mp3" }, config.ErrNoWildcard},
		{"start after end", func(o *config.Options) { o.Start, o.End = 4, 1 }, config.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(t, "m3u")
			tt.mutate(opts)

			_, err := NewManager(opts, nil, nil).Run(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, config.IsUsageError(err))

			_, statErr := os.Stat(opts.Playlist)
			assert.True(t, os.IsNotExist(statErr), "playlist must not be written")
		})
	}
}

func TestRun_WriteErrorIsFatal(t *testing.T) {
	opts := testOptions(t, "m3u")
	opts.Playlist = filepath.Join(t.TempDir(), "missing", "out.m3u")
	rec := &recorder{}

	_, err := NewManager(opts, nil, rec.record).Run(context.Background())
	require.Error(t, err)
	assert.False(t, config.IsUsageError(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Len(t, rec.messages(LevelError), 1)
}

func TestRun_CancelledDuringVerify(t *testing.T) {
	opts := testOptions(t, "m3u")
	opts.Verify = true

	ctx, cancel := context.WithCancel(context.Background())
	prober := verify.ProberFunc(func(ctx context.Context, _ string) bool {
		cancel()
		<-ctx.Done()
		return false
	})

	_, err := NewManager(opts, prober, nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(opts.Playlist)
	assert.True(t, os.IsNotExist(statErr))
}
