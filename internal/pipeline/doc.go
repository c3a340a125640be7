// Package pipeline provides the orchestration logic that turns run
// options into a playlist file.
//
// # Manager
//
// The Manager runs the stages in order, each exactly once:
//
//  1. Validate the options
//  2. Expand the URL template over the range
//  3. Verify URLs concurrently (optional)
//  4. Render the playlist in the chosen format
//  5. Write the file and report
//
// # Basic Usage
//
//	manager := pipeline.NewManager(opts, nil, func(event pipeline.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := manager.Run(ctx)
//	if config.IsUsageError(err) {
//	    // bad input, nothing was written
//	}
//
// # Progress Tracking
//
// Progress is reported via a callback that receives ProgressEvent. While
// verification runs, GetProgress returns the number of finished probes
// and the total, which the TUI polls for its progress bar.
package pipeline
