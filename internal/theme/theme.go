// Package theme loads optional TOML theme files and turns them into list
// styles. A missing file is not an error; callers get the defaults back.
package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"listkit/list"
)

// StyleConfig describes one style override. Zero values leave the
// corresponding default untouched.
type StyleConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Bold       bool   `toml:"bold"`
	Faint      bool   `toml:"faint"`
	Italic     bool   `toml:"italic"`
	Underline  bool   `toml:"underline"`
}

// Config is the on-disk theme layout.
type Config struct {
	Title        StyleConfig `toml:"title"`
	FilterPrompt StyleConfig `toml:"filter_prompt"`
	FilterCursor StyleConfig `toml:"filter_cursor"`
	StatusBar    StyleConfig `toml:"status_bar"`
	NoItems      StyleConfig `toml:"no_items"`
	Pagination   StyleConfig `toml:"pagination"`
	Help         StyleConfig `toml:"help"`
}

// DefaultPath returns the conventional theme file location.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "listkit", "theme.toml")
}

// Load reads a theme file. A missing file yields an empty config (all
// defaults) rather than an error.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	return &cfg, nil
}

// Styles applies the configured overrides on top of the default list styles.
func (c *Config) Styles() list.Styles {
	s := list.DefaultStyles()
	s.Title = c.Title.apply(s.Title)
	s.FilterPrompt = c.FilterPrompt.apply(s.FilterPrompt)
	s.FilterCursor = c.FilterCursor.apply(s.FilterCursor)
	s.StatusBar = c.StatusBar.apply(s.StatusBar)
	s.NoItems = c.NoItems.apply(s.NoItems)
	s.Pagination = c.Pagination.apply(s.Pagination)
	s.Help = c.Help.apply(s.Help)
	return s
}

// apply overlays the set fields of sc onto base.
func (sc StyleConfig) apply(base lipgloss.Style) lipgloss.Style {
	if sc.Foreground != "" {
		base = base.Foreground(lipgloss.Color(sc.Foreground))
	}
	if sc.Background != "" {
		base = base.Background(lipgloss.Color(sc.Background))
	}
	if sc.Bold {
		base = base.Bold(true)
	}
	if sc.Faint {
		base = base.Faint(true)
	}
	if sc.Italic {
		base = base.Italic(true)
	}
	if sc.Underline {
		base = base.Underline(true)
	}
	return base
}
