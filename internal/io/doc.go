// Package ioutils provides the file output used by playlist-generator.
//
// Exactly one file is written per run:
//
//	err := ioutils.WriteFile(ctx, "/path/to/playlist.m3u", content)
//
// Existing files are overwritten. The parent directory must already exist.
package ioutils
