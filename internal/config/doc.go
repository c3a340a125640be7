// Package config provides the run options and the persisted settings
// for playlist-generator.
//
// This package handles:
//   - The Options of a single run and their validation
//   - Loading and saving default settings from JSON files
//   - Default values (10 threads, 5 second probe timeout, plain format)
//
// # Options
//
//	opts := config.DefaultOptions()
//	opts.Link = "http://example.com/episode_*.mp3"
//	opts.Start, opts.End = 1, 10
//	opts.Playlist = "episodes.m3u"
//	opts.Format = "m3u"
//	if err := opts.Validate(); err != nil {
//	    // err is a *config.UsageError
//	}
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//	opts := settings.ToOptions()
package config
