// Package config loads editor settings from a TOML file with
// environment variable overrides. A missing config file is not an
// error; the defaults apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the editor settings.
type Config struct {
	// Theme names the color theme to activate at startup.
	Theme string `toml:"theme"`

	// TabWidth is the number of spaces a Tab key inserts.
	TabWidth int `toml:"tab_width"`

	// QuitTimes is how many times Ctrl-Q must be pressed to abandon
	// unsaved changes.
	QuitTimes int `toml:"quit_times"`

	// Backup writes a tilde-suffixed copy of the previous file
	// contents before each save.
	Backup bool `toml:"backup"`

	// LogLevel selects the minimum log severity (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	// LogFile is the path log lines are appended to. Empty disables logging.
	LogFile string `toml:"log_file"`

	// FileTypeDir holds user filetype definitions (*.toml).
	FileTypeDir string `toml:"filetype_dir"`

	// ThemeDir holds user theme definitions (*.yaml).
	ThemeDir string `toml:"theme_dir"`

	// PluginDir holds user plugin scripts (*.lua).
	PluginDir string `toml:"plugin_dir"`
}

// Default returns the built-in settings.
func Default() Config {
	cfg := Config{
		Theme:     "classic",
		TabWidth:  4,
		QuitTimes: 3,
		LogLevel:  "info",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		base := filepath.Join(dir, "quill")
		cfg.FileTypeDir = filepath.Join(base, "filetypes")
		cfg.ThemeDir = filepath.Join(base, "themes")
		cfg.PluginDir = filepath.Join(base, "plugins")
	}
	return cfg
}

// DefaultPath returns the conventional config file location, or ""
// when the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quill", "quill.toml")
}

// ParseError reports a config file that could not be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads settings from path, then applies QUILL_* environment
// overrides. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults plus environment.
	case err != nil:
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, &ParseError{Path: path, Err: err}
		}
	}

	applyEnv(&cfg)
	clamp(&cfg)
	return cfg, nil
}

// applyEnv overrides cfg fields from QUILL_* environment variables.
// Unparseable numeric or boolean values are ignored.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("QUILL_THEME"); ok {
		cfg.Theme = v
	}
	if v, ok := os.LookupEnv("QUILL_TAB_WIDTH"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TabWidth = n
		}
	}
	if v, ok := os.LookupEnv("QUILL_QUIT_TIMES"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.QuitTimes = n
		}
	}
	if v, ok := os.LookupEnv("QUILL_BACKUP"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Backup = b
		}
	}
	if v, ok := os.LookupEnv("QUILL_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("QUILL_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv("QUILL_FILETYPE_DIR"); ok {
		cfg.FileTypeDir = v
	}
	if v, ok := os.LookupEnv("QUILL_THEME_DIR"); ok {
		cfg.ThemeDir = v
	}
	if v, ok := os.LookupEnv("QUILL_PLUGIN_DIR"); ok {
		cfg.PluginDir = v
	}
}

// clamp forces numeric settings into usable ranges.
func clamp(cfg *Config) {
	if cfg.TabWidth < 1 {
		cfg.TabWidth = 1
	}
	if cfg.QuitTimes < 0 {
		cfg.QuitTimes = 0
	}
}
