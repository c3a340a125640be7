package model

import (
	"fmt"
	"strings"
)

// PlaylistFormat represents supported playlist file formats.
type PlaylistFormat int

const (
	// PlaylistFormatPlain writes one URL per line with no header.
	PlaylistFormatPlain PlaylistFormat = iota

	// PlaylistFormatM3U creates extended .m3u playlists.
	PlaylistFormatM3U

	// PlaylistFormatM3U8 is the UTF-8 flavour of M3U. Output is identical to M3U.
	PlaylistFormatM3U8

	// PlaylistFormatPLS creates .pls playlist files (Winamp/SHOUTcast).
	PlaylistFormatPLS

	// PlaylistFormatXSPF creates XML Shareable Playlist Format files.
	PlaylistFormatXSPF
)

var formatNames = map[PlaylistFormat]string{
	PlaylistFormatPlain: "plain",
	PlaylistFormatM3U:   "m3u",
	PlaylistFormatM3U8:  "m3u8",
	PlaylistFormatPLS:   "pls",
	PlaylistFormatXSPF:  "xspf",
}

// FormatNames lists the accepted format names in display order.
func FormatNames() []string {
	return []string{"plain", "m3u", "m3u8", "pls", "xspf"}
}

// ParseFormat converts a format name (case-insensitive) to a PlaylistFormat.
func ParseFormat(name string) (PlaylistFormat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for pf, n := range formatNames {
		if n == name {
			return pf, nil
		}
	}
	return PlaylistFormatPlain, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, name, strings.Join(FormatNames(), "|"))
}

// String returns the format name as accepted by ParseFormat.
func (pf PlaylistFormat) String() string {
	if n, ok := formatNames[pf]; ok {
		return n
	}
	return fmt.Sprintf("PlaylistFormat(%d)", int(pf))
}

// Extension returns the file extension for the playlist format, including the dot.
//
// Returns:
//   - ".txt" for PlaylistFormatPlain
//   - ".m3u" for PlaylistFormatM3U
//   - ".m3u8" for PlaylistFormatM3U8
//   - ".pls" for PlaylistFormatPLS
//   - ".xspf" for PlaylistFormatXSPF
func (pf PlaylistFormat) Extension() string {
	switch pf {
	case PlaylistFormatM3U:
		return ".m3u"
	case PlaylistFormatM3U8:
		return ".m3u8"
	case PlaylistFormatPLS:
		return ".pls"
	case PlaylistFormatXSPF:
		return ".xspf"
	default:
		return ".txt"
	}
}

// Next cycles to the following format, wrapping after XSPF.
func (pf PlaylistFormat) Next() PlaylistFormat {
	return (pf + 1) % PlaylistFormat(len(formatNames))
}
