package entity

import (
	"path/filepath"
	"testing"
)

func TestImage(t *testing.T) {
	path := writePNG(t, filepath.Join(t.TempDir(), "5x4.png"), 5, 4)
	img, ok := mustResolve(t, NewRegistry(), path).(*Image)
	if !ok {
		t.Fatal("not an Image")
	}
	if w, h := img.Resolution(); w != 5 || h != 4 {
		t.Errorf("Resolution() = %dx%d, want 5x4", w, h)
	}
	if img.Format() != "png" {
		t.Errorf("Format() = %q, want png", img.Format())
	}
	decoded, err := img.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if b := decoded.Bounds(); b.Dx() != 5 || b.Dy() != 4 {
		t.Errorf("decoded bounds = %v", b)
	}
}
