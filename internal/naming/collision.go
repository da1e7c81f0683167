package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CollisionResolver tracks destination paths claimed by sources and
// resolves duplicates by appending " - dupN" suffixes. A path already
// present on disk counts as claimed, so copies and moves never overwrite.
// All methods are goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	owners   map[string]string // destination path → source path that owns it
	counters map[string]int    // base destination path → next dup counter

	// Exists reports whether a destination is already taken on disk.
	// Defaults to an os.Lstat check.
	Exists func(path string) bool
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
		Exists: func(path string) bool {
			_, err := os.Lstat(path)
			return err == nil
		},
	}
}

func (cr *CollisionResolver) free(path, source string) bool {
	owner, claimed := cr.owners[path]
	if claimed {
		return owner == source
	}
	return !cr.Exists(path)
}

// Resolve returns the final destination for source. If requested is free
// (or already owned by source) it is returned as-is; otherwise the first
// free " - dupN" variant is.
func (cr *CollisionResolver) Resolve(source, requested string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.free(requested, source) {
		cr.owners[requested] = source
		return requested
	}

	dir := filepath.Dir(requested)
	base := filepath.Base(requested)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	counter := cr.counters[requested]
	if counter == 0 {
		counter = 1
	}

	for {
		candidate := filepath.Join(dir, fmt.Sprintf("%s - dup%d%s", stem, counter, ext))
		if cr.free(candidate, source) {
			cr.counters[requested] = counter + 1
			cr.owners[candidate] = source
			return candidate
		}
		counter++
	}
}
