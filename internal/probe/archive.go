package probe

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// CompressedExt marks a zstd-compressed report archive.
const CompressedExt = ".zst"

// ArchiveName returns the file name under which the report for mediaPath is
// saved, e.g. "movie.mkv.xml" or "movie.mkv.xml.zst".
func ArchiveName(mediaPath string, compress bool) string {
	name := filepath.Base(mediaPath) + ".xml"
	if compress {
		name += CompressedExt
	}
	return name
}

// WriteArchive stores raw mediainfo output at path, compressing it with zstd
// when path ends in CompressedExt.
func WriteArchive(path string, raw []byte) error {
	if strings.HasSuffix(path, CompressedExt) {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return err
		}
		raw = enc.EncodeAll(raw, nil)
		if err := enc.Close(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// ReadArchive returns the raw report stored at path.
func ReadArchive(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, CompressedExt) {
		return data, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompress %q: %w", path, err)
	}
	return out, nil
}

// LoadArchive reads and parses a saved report.
func LoadArchive(path string) (*Report, error) {
	raw, err := ReadArchive(path)
	if err != nil {
		return nil, err
	}
	return ParseXML(raw)
}

// ArchiveProber replays reports previously saved under Dir instead of
// running mediainfo. A media file matches by base name, plain XML first.
type ArchiveProber struct {
	Dir string
}

// Probe loads the saved report for path.
func (a ArchiveProber) Probe(ctx context.Context, path string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, compress := range []bool{false, true} {
		p := filepath.Join(a.Dir, ArchiveName(path, compress))
		if _, err := os.Stat(p); err == nil {
			return LoadArchive(p)
		}
	}
	return nil, fmt.Errorf("no saved report for %q in %s: %w", path, a.Dir, fs.ErrNotExist)
}
