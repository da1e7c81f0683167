package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/fileinfo/internal/config"
)

func TestResolve(t *testing.T) {
	regular, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer regular.Close()

	tests := []struct {
		name string
		mode config.ColorMode
		f    *os.File
		want bool
	}{
		{"always", config.ColorAlways, nil, true},
		{"never", config.ColorNever, nil, false},
		{"auto on a regular file", config.ColorAuto, regular, false},
		{"auto on nil", config.ColorAuto, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.mode, tt.f); got != tt.want {
				t.Errorf("Resolve(%s) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestPaint(t *testing.T) {
	t.Cleanup(func() { set(false) })

	set(false)
	if got := Paint(Red, "x"); got != "x" {
		t.Errorf("Paint without colours = %q", got)
	}
	set(true)
	if got := Paint(Red, "x"); got != "\033[1;91mx\033[0m" {
		t.Errorf("Paint with colours = %q", got)
	}
	if !Enabled() {
		t.Error("Enabled() = false after set(true)")
	}
}
