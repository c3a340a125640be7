// Package generator turns a wildcard URL template and a numeric range
// into the ordered list of playlist candidates.
//
//	g, err := generator.New("http://example.com/episode_*.mp3", 3, "", "")
//	if err != nil {
//	    // template has no '*'
//	}
//	candidates := g.Generate(model.Range{Start: 1, End: 10})
//	// candidates[0].URL == "http://example.com/episode_001.mp3"
//
// Generation is pure: no I/O and no shared state.
package generator
