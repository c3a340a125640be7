package playlist

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/handiism/playlist-generator/internal/model"
)

// XSPFNamespace is the XML namespace of XSPF version 1 documents.
const XSPFNamespace = "http://xspf.org/ns/0/"

// Creator generates playlist files in various formats.
//
// Creator takes the final candidate list (verified or not) and renders
// it as the bytes of a playlist file.
//
// Example:
//
//	creator := NewCreator(model.PlaylistFormatM3U)
//	content, _ := creator.CreatePlaylist(candidates)
//	os.WriteFile("episodes.m3u", content, 0644)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:-1,Track 1
//	// http://example.com/01.mp3
type Creator struct {
	format model.PlaylistFormat
}

// NewCreator creates a new Creator for the given format.
func NewCreator(format model.PlaylistFormat) *Creator {
	return &Creator{format: format}
}

// Format returns the format this Creator renders.
func (p *Creator) Format() model.PlaylistFormat {
	return p.format
}

// CreatePlaylist renders candidates in the Creator's format.
//
// Only the XSPF encoder can fail.
func (p *Creator) CreatePlaylist(candidates []model.Candidate) ([]byte, error) {
	switch p.format {
	case model.PlaylistFormatM3U, model.PlaylistFormatM3U8:
		return []byte(p.createM3U(candidates)), nil
	case model.PlaylistFormatPLS:
		return []byte(p.createPLS(candidates)), nil
	case model.PlaylistFormatXSPF:
		return p.createXSPF(candidates)
	default:
		return []byte(p.createPlain(candidates)), nil
	}
}

// createPlain writes one URL per line.
func (p *Creator) createPlain(candidates []model.Candidate) string {
	var sb strings.Builder
	for _, c := range candidates {
		sb.WriteString(c.URL + "\n")
	}
	return sb.String()
}

// createM3U generates an extended M3U playlist. Durations are unknown,
// so every entry is -1:
//
//	#EXTM3U
//	#EXTINF:-1,Track 1
//	http://example.com/01.mp3
func (p *Creator) createM3U(candidates []model.Candidate) string {
	var sb strings.Builder

	sb.WriteString("#EXTM3U\n")
	for _, c := range candidates {
		sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s\n", c.Title()))
		sb.WriteString(c.URL + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
// Entries are numbered by output position, not by candidate index, so a
// verified list with gaps still runs File1..FileN:
//
//	[playlist]
//	NumberOfEntries=2
//	Version=2
//
//	File1=http://example.com/01.mp3
//	Title1=Track 1
//	Length1=-1
//
//	File2=http://example.com/03.mp3
//	Title2=Track 3
//	Length2=-1
func (p *Creator) createPLS(candidates []model.Candidate) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")
	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(candidates)))
	sb.WriteString("Version=2\n\n")

	for i, c := range candidates {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, c.URL))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, c.Title()))
		sb.WriteString(fmt.Sprintf("Length%d=-1\n\n", idx))
	}

	return sb.String()
}

type xspfPlaylist struct {
	XMLName   xml.Name      `xml:"http://xspf.org/ns/0/ playlist"`
	Version   string        `xml:"version,attr"`
	TrackList xspfTrackList `xml:"trackList"`
}

type xspfTrackList struct {
	Tracks []xspfTrack `xml:"track"`
}

type xspfTrack struct {
	Location string `xml:"location"`
	Title    string `xml:"title"`
}

// createXSPF generates an XSPF document with a UTF-8 XML declaration.
// The trackList element is always present, even with no tracks.
func (p *Creator) createXSPF(candidates []model.Candidate) ([]byte, error) {
	doc := xspfPlaylist{Version: "1"}
	doc.TrackList.Tracks = make([]xspfTrack, 0, len(candidates))
	for _, c := range candidates {
		doc.TrackList.Tracks = append(doc.TrackList.Tracks, xspfTrack{
			Location: c.URL,
			Title:    c.Title(),
		})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode xspf: %w", err)
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
