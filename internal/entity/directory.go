package entity

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Directory is a classified directory. Its listings are naturally sorted.
type Directory struct {
	*File
}

var directoryCandidate = Candidate{
	Kind: KindDirectory,
	Build: func(_ context.Context, r *Registry, path string) (Entity, error) {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			return nil, errNotDir
		}
		return &Directory{File: newFile(r, path)}, nil
	},
}

func (d *Directory) Kind() Kind  { return KindDirectory }
func (d *Directory) IsDir() bool { return true }

// Size returns the total size of the regular files in the tree.
func (d *Directory) Size() (int64, error) {
	var total int64
	err := filepath.WalkDir(d.path, func(_ string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !de.Type().IsRegular() {
			return nil
		}
		fi, err := de.Info()
		if err != nil {
			return err
		}
		total += fi.Size()
		return nil
	})
	return total, err
}

// Remove deletes the directory and everything below it.
func (d *Directory) Remove() error {
	return os.RemoveAll(d.path)
}

// Files classifies the direct children. A missing directory lists as
// empty. Hidden children are skipped unless includeHidden is set.
func (d *Directory) Files(ctx context.Context, includeHidden bool) ([]Entity, error) {
	des, err := os.ReadDir(d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	out := make([]Entity, 0, len(des))
	for _, de := range des {
		e, err := d.registry().Resolve(ctx, filepath.Join(d.path, de.Name()))
		if errors.Is(err, ErrNotFound) {
			continue // removed since the listing
		}
		if err != nil {
			return nil, err
		}
		if !includeHidden && e.IsHidden() {
			continue
		}
		out = append(out, e)
	}
	Sort(out)
	return out, nil
}

// Walk classifies every entry below d and returns them in natural path
// order. Hidden directories are not descended into unless includeHidden
// is set.
func (d *Directory) Walk(ctx context.Context, includeHidden bool) ([]Entity, error) {
	out, err := d.walk(ctx, includeHidden)
	if err != nil {
		return nil, err
	}
	Sort(out)
	return out, nil
}

func (d *Directory) walk(ctx context.Context, includeHidden bool) ([]Entity, error) {
	children, err := d.Files(ctx, includeHidden)
	if err != nil {
		return nil, err
	}
	var out []Entity
	for _, c := range children {
		out = append(out, c)
		sub, ok := c.(*Directory)
		if !ok {
			continue
		}
		below, err := sub.walk(ctx, includeHidden)
		if err != nil {
			return nil, err
		}
		out = append(out, below...)
	}
	return out, nil
}
