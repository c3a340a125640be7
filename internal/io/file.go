package ioutils

import (
	"context"
	"fmt"
	"os"
)

// WriteFile writes data to path, creating the file if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing. Missing parent directories are not
// created; that and any other file-system failure is returned wrapped
// with the path. A partially written file is left in place.
//
// Parameters:
//   - ctx: checked once before the file is opened
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	playlistContent := []byte("#EXTM3U\n...")
//	err := WriteFile(ctx, "/music/playlist.m3u", playlistContent)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create playlist %s: %w", path, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("write playlist %s: %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close playlist %s: %w", path, err)
	}
	return nil
}
