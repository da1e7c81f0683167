package entity

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/backmassage/fileinfo/internal/probe"
)

// ErrNotFound is returned by Resolve when the path does not exist.
var ErrNotFound = errors.New("path does not exist")

// Logger is the subset of the application logger used by the registry.
type Logger interface {
	Info(format string, args ...interface{})
	Debug(verbose bool, format string, args ...interface{})
}

// Candidate is one registered kind. Build validates path by content and
// returns the typed entity; any error means "not this kind".
type Candidate struct {
	Kind  Kind
	Hints []string // lowercase extensions including the dot
	Build func(ctx context.Context, r *Registry, path string) (Entity, error)
}

func (c Candidate) hinted(ext string) bool {
	return ext != "" && slices.Contains(c.Hints, ext)
}

// Registry holds the ordered candidate kinds and the collaborators they
// need. A Registry is read-only after construction and safe for
// concurrent use.
type Registry struct {
	candidates []Candidate
	prober     probe.Prober
	log        Logger
	verbose    bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithProber sets the media prober. Without one no path classifies as a
// Medium.
func WithProber(p probe.Prober) Option {
	return func(r *Registry) { r.prober = p }
}

// WithLogger routes classification decisions to l.
func WithLogger(l Logger, verbose bool) Option {
	return func(r *Registry) {
		r.log = l
		r.verbose = verbose
	}
}

// WithCandidate registers an additional kind after the built-in ones.
func WithCandidate(c Candidate) Option {
	return func(r *Registry) { r.candidates = append(r.candidates, c) }
}

// NewRegistry returns a registry with the built-in kinds in registration
// order: JSON, YAML, Image, Medium, Directory.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		candidates: []Candidate{
			jsonCandidate,
			yamlCandidate,
			imageCandidate,
			mediumCandidate,
			directoryCandidate,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Order returns the candidate kinds in the order Resolve would try them
// for a path with extension ext. The File fallback is implicit and always
// last.
func (r *Registry) Order(ext string) []Kind {
	var kinds []Kind
	for _, c := range r.order(strings.ToLower(ext)) {
		kinds = append(kinds, c.Kind)
	}
	return kinds
}

// order partitions candidates into hinted then unhinted, keeping
// registration order within each group, and moves Directory to the end so
// content checks for specific kinds run first.
func (r *Registry) order(ext string) []Candidate {
	var hinted, rest, dirs []Candidate
	for _, c := range r.candidates {
		switch {
		case c.Kind == KindDirectory:
			dirs = append(dirs, c)
		case c.hinted(ext):
			hinted = append(hinted, c)
		default:
			rest = append(rest, c)
		}
	}
	return slices.Concat(hinted, rest, dirs)
}

// Resolve classifies path into the most specific kind whose content check
// succeeds. It returns ErrNotFound when the path does not exist and any
// other stat error as is; candidate failures are never surfaced. The only
// other error is ctx's, checked between candidates.
func (r *Registry) Resolve(ctx context.Context, path string) (Entity, error) {
	path = normalizePath(path)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, c := range r.order(ext) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e, err := c.Build(ctx, r, path)
		if err == nil {
			r.debug("%s: %s", path, c.Kind)
			return e, nil
		}
		r.debug("%s: not %s: %v", path, c.Kind, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.debug("%s: %s", path, KindFile)
	return newFile(r, path), nil
}

func (r *Registry) debug(format string, args ...interface{}) {
	if r.log != nil {
		r.log.Debug(r.verbose, format, args...)
	}
}

func (r *Registry) info(format string, args ...interface{}) {
	if r.log != nil {
		r.log.Info(format, args...)
	}
}

var errIsDir = errors.New("is a directory")
var errNotDir = errors.New("not a directory")

// regularFile fails for directories so file-content kinds never claim one.
func regularFile(path string) (os.FileInfo, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, errIsDir
	}
	return fi, nil
}
