// Package config holds runtime configuration: defaults, an optional TOML
// file, CLI flag binding, and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// EnvConfigFile names the environment variable that points at a TOML file
// when --config is not given.
const EnvConfigFile = "FILEINFO_CONFIG"

// --- Enum types for validated string fields ---

// ReportFormat is the mediainfo --Output layout.
type ReportFormat string

const (
	ReportOldXML ReportFormat = "OLDXML" // Legacy layout: millisecond durations, _HH_MM_SSmmm menu fields (default).
	ReportXML    ReportFormat = "XML"    // Newer layout; parsed the same way where field names agree.
)

// ChecksumAlgo selects the digest used by `sum`.
type ChecksumAlgo string

const (
	ChecksumMD5     ChecksumAlgo = "md5" // Default.
	ChecksumSHA256  ChecksumAlgo = "sha256"
	ChecksumBLAKE2b ChecksumAlgo = "blake2b"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [LoadFile] when a config file is named, then by flags bound with
// [BindFlags]. Field tags are the TOML keys.
type Config struct {
	// Probing.
	MediaInfoPath   string        `toml:"mediainfo_path"`   // Explicit binary; resolved via PATH when empty.
	MediaInfoOutput ReportFormat  `toml:"mediainfo_output"` // Default: "OLDXML".
	ProbeTimeout    time.Duration `toml:"probe_timeout"`    // Default: 30s. Exceeding it means "not a medium".
	ReportsDir      string        `toml:"reports_dir"`      // Replay saved reports instead of running mediainfo.

	// Listing and scanning.
	Checksum      ChecksumAlgo `toml:"checksum"`       // Default: "md5".
	IncludeHidden bool         `toml:"include_hidden"` // Include names starting with '.', '$' or '@'.
	Workers       int          `toml:"workers"`        // Default: 4. Concurrent classifications in scan.

	// Display and logging.
	Verbose   bool      `toml:"verbose"`
	ColorMode ColorMode `toml:"color"`    // Default: "auto".
	LogFile   string    `toml:"log_file"` // Optional log file path.

	// ConfigFile is the TOML file overlaid before flags. Never read from
	// the file itself.
	ConfigFile string `toml:"-"`
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the config file and CLI flags apply overrides.
func DefaultConfig() Config {
	return Config{
		MediaInfoOutput: ReportOldXML,
		ProbeTimeout:    30 * time.Second,
		Checksum:        ChecksumMD5,
		IncludeHidden:   false,
		Workers:         4,
		Verbose:         false,
		ColorMode:       ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and numeric ranges.
func (c *Config) Validate() error {
	switch c.MediaInfoOutput {
	case ReportOldXML, ReportXML:
		// valid
	default:
		return fmt.Errorf("invalid mediainfo output %q (use 'OLDXML' or 'XML')", c.MediaInfoOutput)
	}

	switch c.Checksum {
	case ChecksumMD5, ChecksumSHA256, ChecksumBLAKE2b:
		// valid
	default:
		return fmt.Errorf("invalid checksum %q (use 'md5', 'sha256' or 'blake2b')", c.Checksum)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.ProbeTimeout <= 0 {
		return errors.New("probe timeout must be positive")
	}
	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	return nil
}
