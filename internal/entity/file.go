package entity

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// File is the untyped fallback kind and the identity component embedded in
// every other kind. Its path is NFC-normalised and cleaned so that the same
// logical path always compares equal.
type File struct {
	path string
	name string
	reg  *Registry
}

func normalizePath(path string) string {
	return filepath.Clean(norm.NFC.String(path))
}

func newFile(reg *Registry, path string) *File {
	p := normalizePath(path)
	return &File{path: p, name: filepath.Base(p), reg: reg}
}

func (f *File) Kind() Kind     { return KindFile }
func (f *File) Path() string   { return f.path }
func (f *File) Name() string   { return f.name }
func (f *File) Base() *File    { return f }
func (f *File) String() string { return f.path }

// IsDir is false for every kind except Directory.
func (f *File) IsDir() bool { return false }

// Extension returns the lowercase extension including the dot, or "".
func (f *File) Extension() string {
	return strings.ToLower(filepath.Ext(f.path))
}

// Size returns the size reported by stat.
func (f *File) Size() (int64, error) {
	fi, err := os.Stat(f.path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

func (f *File) Exists() bool {
	_, err := os.Stat(f.path)
	return err == nil
}

// IsHidden reports whether the name starts with '.', '$' or '@'.
func (f *File) IsHidden() bool {
	if f.name == "" {
		return false
	}
	switch f.name[0] {
	case '.', '$', '@':
		return true
	}
	return false
}

// Parent classifies the directory containing f.
func (f *File) Parent(ctx context.Context) (Entity, error) {
	return f.registry().Resolve(ctx, filepath.Dir(f.path))
}

// RelPath returns f's path relative to start.
func (f *File) RelPath(start string) (string, error) {
	return filepath.Rel(start, f.path)
}

// MoveTo moves the file (or tree) to dst, creating missing parent
// directories, and rebinds f to the new path.
func (f *File) MoveTo(dst string) error {
	dst = normalizePath(dst)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f.registry().info("file move: %s -> %s", f.path, dst)
	if err := move(f.path, dst); err != nil {
		return fmt.Errorf("move %q: %w", f.path, err)
	}
	f.path = dst
	f.name = filepath.Base(dst)
	return nil
}

// CopyTo copies the file (or tree) to dst, creating missing parent
// directories, and returns the classified copy.
func (f *File) CopyTo(ctx context.Context, dst string) (Entity, error) {
	dst = normalizePath(dst)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, err
	}
	f.registry().info("file copy: %s -> %s", f.path, dst)
	if err := copyPath(f.path, dst); err != nil {
		return nil, fmt.Errorf("copy %q: %w", f.path, err)
	}
	return f.registry().Resolve(ctx, dst)
}

// Remove deletes the file. Directory overrides it to remove the tree.
func (f *File) Remove() error {
	return os.Remove(f.path)
}

func (f *File) registry() *Registry {
	if f.reg == nil {
		f.reg = NewRegistry()
	}
	return f.reg
}
