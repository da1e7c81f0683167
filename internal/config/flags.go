package config

// This file binds Config fields to pflag flags. Enum fields go through
// pflag.Value adapters so invalid values fail at parse time.

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// BindFlags registers the global flags on fs, writing straight into cfg.
// Defaults shown in help are cfg's current values.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ConfigFile, "config", os.Getenv(EnvConfigFile), "TOML config file (env "+EnvConfigFile+")")

	fs.StringVar(&cfg.MediaInfoPath, "mediainfo", cfg.MediaInfoPath, "mediainfo binary (default: looked up in PATH)")
	fs.Var(&reportFormatValue{&cfg.MediaInfoOutput}, "mediainfo-output", "mediainfo report layout: OLDXML | XML")
	fs.DurationVar(&cfg.ProbeTimeout, "probe-timeout", cfg.ProbeTimeout, "Per-file mediainfo time limit")
	fs.StringVar(&cfg.ReportsDir, "reports", cfg.ReportsDir, "Read saved reports from this directory instead of running mediainfo")

	fs.Var(ChecksumValue(&cfg.Checksum), "checksum", "Checksum algorithm: md5 | sha256 | blake2b")
	fs.BoolVarP(&cfg.IncludeHidden, "all", "a", cfg.IncludeHidden, "Include hidden entries (. $ @ prefixes)")
	fs.IntVarP(&cfg.Workers, "workers", "j", cfg.Workers, "Concurrent classifications during scan")

	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color", "Colored logs: auto | always | never")
	noColor := fs.VarPF(&noColorValue{&cfg.ColorMode}, "no-color", "", "Same as --color=never")
	noColor.NoOptDefVal = "true"
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Append logs to file")
}

// ChecksumValue adapts a ChecksumAlgo for use as a flag.
func ChecksumValue(p *ChecksumAlgo) pflag.Value { return &checksumValue{p} }

// pflag.Value adapters for the enum types.

type reportFormatValue struct{ p *ReportFormat }

func (r *reportFormatValue) String() string { return string(*r.p) }
func (r *reportFormatValue) Type() string   { return "format" }
func (r *reportFormatValue) Set(s string) error {
	switch strings.ToUpper(s) {
	case "OLDXML":
		*r.p = ReportOldXML
	case "XML":
		*r.p = ReportXML
	default:
		return fmt.Errorf("invalid mediainfo output %q (use 'OLDXML' or 'XML')", s)
	}
	return nil
}

type checksumValue struct{ p *ChecksumAlgo }

func (c *checksumValue) String() string { return string(*c.p) }
func (c *checksumValue) Type() string   { return "algo" }
func (c *checksumValue) Set(s string) error {
	switch a := ChecksumAlgo(strings.ToLower(s)); a {
	case ChecksumMD5, ChecksumSHA256, ChecksumBLAKE2b:
		*c.p = a
	default:
		return fmt.Errorf("invalid checksum %q (use 'md5', 'sha256' or 'blake2b')", s)
	}
	return nil
}

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch m := ColorMode(strings.ToLower(s)); m {
	case ColorAuto, ColorAlways, ColorNever:
		*c.p = m
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}

// noColorValue is a boolean view of ColorMode for --no-color.
type noColorValue struct{ p *ColorMode }

func (n *noColorValue) String() string { return strconv.FormatBool(*n.p == ColorNever) }
func (n *noColorValue) Type() string   { return "bool" }
func (n *noColorValue) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*n.p = ColorNever
	} else if *n.p == ColorNever {
		*n.p = ColorAuto
	}
	return nil
}
