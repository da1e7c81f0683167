package entity

import (
	"bytes"
	"context"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

const (
	compareBlockSize  = 4096
	checksumChunkSize = 128
)

// Algorithm selects the digest used by Checksum.
type Algorithm string

const (
	MD5     Algorithm = "md5"
	SHA256  Algorithm = "sha256"
	BLAKE2b Algorithm = "blake2b" // 256-bit
)

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case MD5:
		return md5.New(), nil
	case SHA256:
		return sha256.New(), nil
	case BLAKE2b:
		return blake2b.New256(nil)
	}
	return nil, fmt.Errorf("unknown checksum algorithm %q (use md5, sha256 or blake2b)", string(a))
}

// Identical reports path identity, the notion used for map keys and set
// membership. It says nothing about content.
func Identical(a, b Entity) bool {
	return a.Path() == b.Path()
}

// IsEqual reports whether other has the same content as f. Equal paths are
// equal without I/O; different sizes are unequal without reading; otherwise
// both files are streamed in fixed blocks until the first mismatch.
func (f *File) IsEqual(other Entity) (bool, error) {
	if other == nil {
		return false, nil
	}
	if f.path == other.Path() {
		return true, nil
	}

	ls, err := statSize(f.path)
	if err != nil {
		return false, err
	}
	rs, err := statSize(other.Path())
	if err != nil {
		return false, err
	}
	if ls != rs {
		return false, nil
	}

	lf, err := os.Open(f.path)
	if err != nil {
		return false, err
	}
	defer lf.Close()
	rf, err := os.Open(other.Path())
	if err != nil {
		return false, err
	}
	defer rf.Close()

	return sameContent(lf, rf)
}

// IsEqualPath classifies path and compares it with e.
func (r *Registry) IsEqualPath(ctx context.Context, e Entity, path string) (bool, error) {
	other, err := r.Resolve(ctx, path)
	if err != nil {
		return false, err
	}
	return e.IsEqual(other)
}

func statSize(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

func sameContent(a, b io.Reader) (bool, error) {
	bufA := make([]byte, compareBlockSize)
	bufB := make([]byte, compareBlockSize)
	for {
		na, errA := io.ReadFull(a, bufA)
		if errA != nil && errA != io.EOF && errA != io.ErrUnexpectedEOF {
			return false, errA
		}
		nb, errB := io.ReadFull(b, bufB)
		if errB != nil && errB != io.EOF && errB != io.ErrUnexpectedEOF {
			return false, errB
		}

		if na != nb || !bytes.Equal(bufA[:na], bufB[:nb]) {
			return false, nil
		}
		endA, endB := errA != nil, errB != nil
		if endA || endB {
			return endA == endB, nil
		}
	}
}

// Checksum streams the file through algo in small chunks and returns the
// digest.
func (f *File) Checksum(algo Algorithm) ([]byte, error) {
	h, err := algo.newHash()
	if err != nil {
		return nil, err
	}

	in, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	buf := make([]byte, checksumChunkSize)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return h.Sum(nil), nil
}

// MD5 returns the hex MD5 digest of the file.
func (f *File) MD5() (string, error) {
	sum, err := f.Checksum(MD5)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}
