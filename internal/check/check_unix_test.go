//go:build unix

package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/fileinfo/internal/config"
	"github.com/backmassage/fileinfo/internal/probe"
)

type mockLogger struct {
	success, warn, errors int
}

func (m *mockLogger) Info(string, ...interface{})        {}
func (m *mockLogger) Success(string, ...interface{})     { m.success++ }
func (m *mockLogger) Warn(string, ...interface{})        { m.warn++ }
func (m *mockLogger) Error(string, ...interface{})       { m.errors++ }
func (m *mockLogger) Debug(bool, string, ...interface{}) {}

// fakeMediaInfo installs an executable "mediainfo" script in a fresh
// directory and returns its path.
func fakeMediaInfo(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mediainfo")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveMediaInfo(t *testing.T) {
	bin := fakeMediaInfo(t, "exit 0")

	t.Run("explicit path", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.MediaInfoPath = bin
		got, err := ResolveMediaInfo(&cfg)
		if err != nil || got != bin {
			t.Errorf("got %q, %v; want %q", got, err, bin)
		}
	})

	t.Run("from PATH", func(t *testing.T) {
		t.Setenv("PATH", filepath.Dir(bin))
		cfg := config.DefaultConfig()
		got, err := ResolveMediaInfo(&cfg)
		if err != nil || got != bin {
			t.Errorf("got %q, %v; want %q", got, err, bin)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())
		cfg := config.DefaultConfig()
		if _, err := ResolveMediaInfo(&cfg); !errors.Is(err, ErrMediaInfoNotFound) {
			t.Errorf("err = %v, want ErrMediaInfoNotFound", err)
		}
	})
}

func TestNewProber(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ReportsDir = t.TempDir()
	p, err := NewProber(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(probe.ArchiveProber); !ok {
		t.Errorf("NewProber with reports dir = %T, want probe.ArchiveProber", p)
	}

	cfg = config.DefaultConfig()
	cfg.MediaInfoPath = fakeMediaInfo(t, "exit 0")
	p, err = NewProber(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	mi, ok := p.(probe.MediaInfo)
	if !ok || mi.Binary != cfg.MediaInfoPath || mi.Timeout != cfg.ProbeTimeout || mi.Output != "OLDXML" {
		t.Errorf("NewProber = %#v", p)
	}
}

func TestMediaInfoVersion(t *testing.T) {
	bin := fakeMediaInfo(t, `printf 'MediaInfo Command line,\nMediaInfoLib - v23.04\n\n'`)
	got, err := MediaInfoVersion(context.Background(), bin)
	if err != nil {
		t.Fatal(err)
	}
	if got != "MediaInfoLib - v23.04" {
		t.Errorf("got %q", got)
	}
}

func TestRunCheck(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MediaInfoPath = fakeMediaInfo(t, `echo "MediaInfoLib - v23.04"`)
	cfg.ReportsDir = t.TempDir()
	for i := 0; i < 2; i++ {
		name := filepath.Join(cfg.ReportsDir, fmt.Sprintf("m%d.xml", i))
		if err := os.WriteFile(name, []byte("<x/>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	log := &mockLogger{}
	if n := RunCheck(context.Background(), &cfg, log); n != 0 {
		t.Errorf("RunCheck found %d problems", n)
	}
	if log.success != 2 || log.errors != 0 {
		t.Errorf("success=%d errors=%d", log.success, log.errors)
	}

	cfg.MediaInfoPath = filepath.Join(t.TempDir(), "nope")
	cfg.ReportsDir = ""
	log = &mockLogger{}
	if n := RunCheck(context.Background(), &cfg, log); n != 1 || log.errors != 1 {
		t.Errorf("missing binary: problems=%d errors=%d", n, log.errors)
	}
}
