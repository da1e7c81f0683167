package entity

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/fileinfo/internal/probe"
)

const mediumXML = `<?xml version="1.0" encoding="UTF-8"?>
<Mediainfo version="0.7.99">
<File>
<track type="General">
<Duration>600000</Duration>
<Title>Sample</Title>
<Album>Collection</Album>
<Performer>Someone</Performer>
</track>
<track type="Video">
<Codec>AVC</Codec>
<Width>1920</Width>
<Height>1080</Height>
<Display_aspect_ratio>16:9</Display_aspect_ratio>
<Scan_type>Progressive</Scan_type>
</track>
<track type="Audio">
<Codec>AAC LC</Codec>
<Channel_s_>2</Channel_s_>
</track>
<track type="Menu">
<_00_00_00000>Chapter 1</_00_00_00000>
<_00_02_00000>Chapter 2</_00_02_00000>
<_00_05_00000>Chapter 3</_00_05_00000>
</track>
</File>
</Mediainfo>`

const audioXML = `<Mediainfo><File>
<track type="General"><Duration>180000</Duration></track>
<track type="Audio"><Codec>MPEG Audio</Codec><Channel_s_>2</Channel_s_></track>
</File></Mediainfo>`

const generalOnlyXML = `<Mediainfo><File>
<track type="General"><File_size>0</File_size></track>
</File></Mediainfo>`

// fakeProber answers from a fixed report per base name and fails for
// everything else, the way mediainfo fails on a non-media file.
func fakeProber(reports map[string]string) probe.Prober {
	return probe.ProberFunc(func(_ context.Context, path string) (*probe.Report, error) {
		raw, ok := reports[filepath.Base(path)]
		if !ok {
			return nil, errors.New("exit status 1")
		}
		return probe.ParseXML([]byte(raw))
	})
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writePNG(t *testing.T, path string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func mustResolve(t *testing.T, r *Registry, path string) Entity {
	t.Helper()
	e, err := r.Resolve(context.Background(), path)
	if err != nil {
		t.Fatalf("Resolve(%q): %v", path, err)
	}
	return e
}
