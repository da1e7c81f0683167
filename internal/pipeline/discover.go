package pipeline

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/backmassage/fileinfo/internal/entity"
)

// hidden matches the entity rule: names starting with '.', '$' or '@'.
func hidden(name string) bool {
	return name != "" && strings.ContainsRune(".$@", rune(name[0]))
}

// Discover walks root and returns every non-directory entry in natural
// path order. Hidden files are skipped and hidden directories pruned
// unless includeHidden is set.
func Discover(root string, includeHidden bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && !includeHidden && hidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(files, entity.ComparePaths)
	return files, nil
}

// FilterExtensions keeps paths whose lowercase extension is in exts.
// Entries in exts may omit the leading dot. An empty exts keeps all.
func FilterExtensions(paths []string, exts []string) []string {
	if len(exts) == 0 {
		return paths
	}
	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" && !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		want[e] = true
	}
	var out []string
	for _, p := range paths {
		if want[strings.ToLower(filepath.Ext(p))] {
			out = append(out, p)
		}
	}
	return out
}
