// Package playlist renders candidate lists as playlist files.
//
// # Playlist Generation
//
// Generate playlists in various formats:
//
//	creator := playlist.NewCreator(model.PlaylistFormatPLS)
//	content, err := creator.CreatePlaylist(candidates)
//	os.WriteFile("playlist.pls", content, 0644)
//
// Supported formats:
//   - plain (one URL per line)
//   - M3U and M3U8 (identical extended M3U output)
//   - PLS
//   - XSPF (XML Shareable Playlist Format, version 1)
//
// Titles are always "Track {index}" where index is the number that was
// substituted into the URL template.
package playlist
