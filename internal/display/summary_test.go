package display

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/fileinfo/internal/entity"
	"github.com/backmassage/fileinfo/internal/probe"
)

const movieXML = `<Mediainfo><File>
<track type="General"><Duration>5022400</Duration><Title>Pilot</Title></track>
<track type="Video"><Codec>AVC</Codec><Width>1920</Width><Height>1080</Height>
<Display_aspect_ratio>16:9</Display_aspect_ratio><Frame_rate>29.970</Frame_rate><Scan_type>Progressive</Scan_type></track>
<track type="Audio"><Codec>AAC LC</Codec><Channel_s_>2</Channel_s_><Language>English</Language><Compression_mode>Lossy</Compression_mode></track>
</File></Mediainfo>`

func lookup(fields []Field, label string) (string, bool) {
	for _, f := range fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

func TestSummaryMedium(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pilot.mp4")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	reg := entity.NewRegistry(entity.WithProber(probe.ProberFunc(
		func(context.Context, string) (*probe.Report, error) { return probe.ParseXML([]byte(movieXML)) },
	)))
	e, err := reg.Resolve(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	fields := Summary(e)
	tests := []struct {
		label, want string
	}{
		{"Kind", "medium"},
		{"Size", "1 B"},
		{"Duration", "01:23:42.400"},
		{"Video", "AVC, 1920x1080, DAR 16:9, 29.97 fps"},
		{"HD", "yes"},
		{"HDR", "sdr"},
		{"Audio #1", "AAC LC, 2 ch, English, lossy"},
		{"Chapters", "1"},
		{"Title", "Pilot"},
	}
	for _, tt := range tests {
		got, ok := lookup(fields, tt.label)
		if !ok || got != tt.want {
			t.Errorf("%s = %q (present %v), want %q", tt.label, got, ok, tt.want)
		}
	}
	if _, ok := lookup(fields, "Subtitles"); ok {
		t.Error("Subtitles listed for a file without text tracks")
	}
}

func TestSummaryDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	if err := os.WriteFile(path, []byte("b: 1\na: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	e, err := entity.NewRegistry().Resolve(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	fields := Summary(e)
	if got, _ := lookup(fields, "Root"); got != "mapping, 2 keys" {
		t.Errorf("Root = %q", got)
	}
	if got, _ := lookup(fields, "Keys"); got != "a, b" {
		t.Errorf("Keys = %q", got)
	}
}
