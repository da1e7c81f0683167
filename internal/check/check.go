// Package check resolves external tools once at startup and provides the
// `check` diagnostics command.
package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/fileinfo/internal/config"
	"github.com/backmassage/fileinfo/internal/probe"
)

// ErrMediaInfoNotFound is returned when no usable mediainfo binary exists.
var ErrMediaInfoNotFound = errors.New("mediainfo not found")

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// ResolveMediaInfo returns the absolute path of the mediainfo binary:
// cfg.MediaInfoPath when set, otherwise the first "mediainfo" on PATH.
func ResolveMediaInfo(cfg *config.Config) (string, error) {
	name := cfg.MediaInfoPath
	if name == "" {
		name = "mediainfo"
	}
	p, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMediaInfoNotFound, err)
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return p, nil
}

// NewProber builds the media prober for cfg. A reports directory replays
// saved reports and needs no binary; otherwise mediainfo is resolved here,
// once, and bound into the returned prober.
func NewProber(cfg *config.Config) (probe.Prober, error) {
	if cfg.ReportsDir != "" {
		return probe.ArchiveProber{Dir: cfg.ReportsDir}, nil
	}
	bin, err := ResolveMediaInfo(cfg)
	if err != nil {
		return nil, err
	}
	return probe.MediaInfo{
		Binary:  bin,
		Output:  string(cfg.MediaInfoOutput),
		Timeout: cfg.ProbeTimeout,
	}, nil
}

// MediaInfoVersion runs `mediainfo --Version` and returns its last
// non-empty line, e.g. "MediaInfoLib - v23.04".
func MediaInfoVersion(ctx context.Context, bin string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, bin, "--Version").Output()
	if err != nil {
		return "", err
	}
	version := ""
	for _, line := range strings.Split(string(out), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			version = s
		}
	}
	if version == "" {
		return "", errors.New("empty --Version output")
	}
	return version, nil
}

// RunCheck runs the `check` flow: mediainfo availability and version,
// saved-report directory, and log file. It is informational and returns
// the number of problems found.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger) int {
	log.Info("=== System Check ===")
	problems := 0

	if cfg.ConfigFile != "" {
		log.Info("Config file: %s", cfg.ConfigFile)
	}
	if !checkMediaInfo(ctx, cfg, log) {
		problems++
	}
	if !checkReportsDir(cfg, log) {
		problems++
	}
	if !checkLogFile(cfg, log) {
		problems++
	}
	log.Info("Checksum: %s, workers: %d, probe timeout: %s", cfg.Checksum, cfg.Workers, cfg.ProbeTimeout)
	return problems
}

// checkMediaInfo logs the resolved binary and its version.
func checkMediaInfo(ctx context.Context, cfg *config.Config, log Logger) bool {
	bin, err := ResolveMediaInfo(cfg)
	if err != nil {
		if cfg.ReportsDir != "" {
			log.Warn("mediainfo not found; saved reports will be used")
			return true
		}
		log.Error("%v", err)
		return false
	}
	version, err := MediaInfoVersion(ctx, bin)
	if err != nil {
		log.Warn("mediainfo found at %s but --Version failed: %v", bin, err)
		return false
	}
	log.Success("mediainfo: %s (%s)", version, bin)
	log.Debug(cfg.Verbose, "report layout: %s", cfg.MediaInfoOutput)
	return true
}

// checkReportsDir counts saved reports when a reports directory is set.
func checkReportsDir(cfg *config.Config, log Logger) bool {
	if cfg.ReportsDir == "" {
		return true
	}
	entries, err := os.ReadDir(cfg.ReportsDir)
	if err != nil {
		log.Error("Reports directory: %v", err)
		return false
	}
	n := 0
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".xml") || strings.HasSuffix(name, ".xml"+probe.CompressedExt) {
			n++
		}
	}
	log.Success("Reports directory: %s (%d saved reports)", cfg.ReportsDir, n)
	return true
}

// checkLogFile verifies the log file's directory exists or can be created.
func checkLogFile(cfg *config.Config, log Logger) bool {
	if cfg.LogFile == "" {
		return true
	}
	dir := filepath.Dir(cfg.LogFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error("Log file directory %s: %v", dir, err)
		return false
	}
	log.Success("Log file: %s", cfg.LogFile)
	return true
}
