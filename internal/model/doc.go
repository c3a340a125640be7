// Package model defines the core data structures shared by the
// playlist-generator packages.
//
// # Template
//
// Template is a URL with one wildcard marker that receives the index:
//
//	tpl, err := model.ParseTemplate("http://example.com/episode_*.mp3")
//	url := tpl.Expand("07") // http://example.com/episode_07.mp3
//
// # Range and Candidate
//
// A Range is inclusive on both ends. Every integer in it becomes one
// Candidate, whose Index is kept through verification for use in titles:
//
//	r, _ := model.NewRange(1, 3)
//	c := model.Candidate{Index: 2, URL: "http://example.com/02.mp3"}
//	c.Title() // "Track 2"
//
// # Playlist Format
//
//	pf, err := model.ParseFormat("m3u8")
//	pf.Extension() // ".m3u8"
package model
