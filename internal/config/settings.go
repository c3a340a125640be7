package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Default values shared by the CLI, the TUI and the settings file.
const (
	DefaultThreads   = 10
	DefaultTimeout   = 5 * time.Second
	DefaultFormat    = "plain"
	DefaultUserAgent = "PlaylistGenerator"
)

// Settings holds the options that can be persisted between runs.
//
// Per-run inputs (template, range, output path) are deliberately absent;
// they come from the command line or the TUI form.
type Settings struct {
	// Generation
	Format  string `json:"format"` // plain, m3u, m3u8, pls, xspf
	Padding int    `json:"padding"`
	Prefix  string `json:"prefix"`
	Suffix  string `json:"suffix"`

	// Verification
	Verify         bool    `json:"verify"`
	Threads        int     `json:"threads"`
	TimeoutSeconds float64 `json:"timeout_seconds"`
	UserAgent      string  `json:"user_agent"`

	// Output
	Verbose bool `json:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Format:         DefaultFormat,
		Threads:        DefaultThreads,
		TimeoutSeconds: DefaultTimeout.Seconds(),
		UserAgent:      DefaultUserAgent,
	}
}

// Load reads settings from a JSON file.
// A missing file is not an error; defaults are returned instead.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Timeout returns the per-probe timeout as a time.Duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds * float64(time.Second))
}

// ToOptions seeds run options from the persisted settings.
func (s *Settings) ToOptions() *Options {
	return &Options{
		Format:    s.Format,
		Padding:   s.Padding,
		Prefix:    s.Prefix,
		Suffix:    s.Suffix,
		Verify:    s.Verify,
		Threads:   s.Threads,
		Timeout:   s.Timeout(),
		UserAgent: s.UserAgent,
		Verbose:   s.Verbose,
	}
}
