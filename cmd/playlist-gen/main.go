package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/handiism/playlist-generator/internal/config"
	"github.com/handiism/playlist-generator/internal/pipeline"
	"github.com/spf13/cobra"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and maps its outcome to a process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case config.IsUsageError(err):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
		return exitUsage
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "Interrupted.")
		return exitInterrupted
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
}

type flags struct {
	configPath string
	link       string
	start      int
	end        int
	playlist   string
	format     string
	padding    int
	verify     bool
	threads    int
	prefix     string
	suffix     string
	verbose    bool
	timeout    time.Duration
	userAgent  string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{}
	defaults := config.DefaultSettings()

	cmd := &cobra.Command{
		Use:   "playlist-gen",
		Short: "Generate a playlist from a numbered URL template",
		Long: "playlist-gen expands a URL template containing a '*' wildcard over an\n" +
			"inclusive numeric range and writes the URLs as a plain, M3U, M3U8, PLS\n" +
			"or XSPF playlist. With --verify, unreachable URLs are dropped first.",
		Example: "  playlist-gen -l \"http://example.com/episode_*.mp3\" -s 1 -e 10 -p playlist.m3u -f m3u\n" +
			"  playlist-gen -l \"http://cdn.example.com/video_*.mp4\" -s 1 -e 100 -p videos.m3u8 -f m3u8 -z 3 -v",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := f.options(cmd)
			if err != nil {
				return err
			}
			return generate(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return config.NewUsageError(err)
	})

	fl := cmd.Flags()
	fl.SortFlags = false
	fl.StringVarP(&f.link, "link", "l", "", "URL template with wildcard (*) (required)")
	fl.IntVarP(&f.start, "start", "s", 0, "starting number (required)")
	fl.IntVarP(&f.end, "end", "e", 0, "ending number (required)")
	fl.StringVarP(&f.playlist, "playlist", "p", "", "output playlist file (required)")
	fl.StringVarP(&f.format, "format", "f", defaults.Format, "playlist format: plain|m3u|m3u8|pls|xspf")
	fl.IntVarP(&f.padding, "padding", "z", defaults.Padding, "zero-pad numbers to this width (e.g. 3 for 001, 002, ...)")
	fl.BoolVarP(&f.verify, "verify", "v", defaults.Verify, "verify URLs and drop unreachable ones")
	fl.IntVarP(&f.threads, "threads", "t", defaults.Threads, "concurrent verification requests")
	fl.StringVarP(&f.prefix, "prefix", "P", defaults.Prefix, "text added before each URL")
	fl.StringVarP(&f.suffix, "suffix", "S", defaults.Suffix, "text added after each URL")
	fl.BoolVarP(&f.verbose, "verbose", "V", defaults.Verbose, "print every verification result")
	fl.DurationVar(&f.timeout, "timeout", defaults.Timeout(), "timeout for each verification request")
	fl.StringVar(&f.userAgent, "user-agent", defaults.UserAgent, "User-Agent header for verification requests")
	fl.StringVarP(&f.configPath, "config", "c", "", "JSON settings file supplying defaults")

	return cmd
}

// options merges the settings file (if any) with the flags that were set
// explicitly on the command line.
func (f *flags) options(cmd *cobra.Command) (*config.Options, error) {
	fl := cmd.Flags()

	switch {
	case f.link == "":
		return nil, config.NewUsageError(config.ErrMissingLink)
	case !fl.Changed("start"):
		return nil, config.NewUsageError(config.ErrMissingStart)
	case !fl.Changed("end"):
		return nil, config.NewUsageError(config.ErrMissingEnd)
	case f.playlist == "":
		return nil, config.NewUsageError(config.ErrMissingPlaylist)
	}

	settings := config.DefaultSettings()
	if f.configPath != "" {
		var err error
		settings, err = config.Load(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	opts := settings.ToOptions()
	opts.Link = f.link
	opts.Start = f.start
	opts.End = f.end
	opts.Playlist = f.playlist

	if fl.Changed("format") {
		opts.Format = f.format
	}
	if fl.Changed("padding") {
		opts.Padding = f.padding
	}
	if fl.Changed("verify") {
		opts.Verify = f.verify
	}
	if fl.Changed("threads") {
		opts.Threads = f.threads
	}
	if fl.Changed("prefix") {
		opts.Prefix = f.prefix
	}
	if fl.Changed("suffix") {
		opts.Suffix = f.suffix
	}
	if fl.Changed("verbose") {
		opts.Verbose = f.verbose
	}
	if fl.Changed("user-agent") {
		opts.UserAgent = f.userAgent
	}
	if fl.Changed("timeout") {
		opts.Timeout = f.timeout
	}

	return opts, nil
}

func generate(ctx context.Context, opts *config.Options, out io.Writer) error {
	rep := newReporter(out, opts.Verbose)

	manager := pipeline.NewManager(opts, nil, rep.report)
	_, err := manager.Run(ctx)
	return err
}
