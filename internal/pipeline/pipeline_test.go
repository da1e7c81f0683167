package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/backmassage/fileinfo/internal/config"
	"github.com/backmassage/fileinfo/internal/entity"
	"github.com/backmassage/fileinfo/internal/logging"
	"github.com/backmassage/fileinfo/internal/probe"
)

// --- Discover tests ---

func TestDiscover_NaturalOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "ep10.mkv")
	touch(t, dir, "ep2.mkv")
	touch(t, dir, "ep1.mkv")
	touch(t, filepath.Join(dir, "Season 10"), "a.mkv")
	touch(t, filepath.Join(dir, "Season 2"), "a.mkv")

	files, err := Discover(dir, false)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	// Text runs compare case-insensitively: "ep" sorts before "Season ".
	want := []string{
		filepath.Join(dir, "ep1.mkv"),
		filepath.Join(dir, "ep2.mkv"),
		filepath.Join(dir, "ep10.mkv"),
		filepath.Join(dir, "Season 2", "a.mkv"),
		filepath.Join(dir, "Season 10", "a.mkv"),
	}
	if !sliceEqual(files, want) {
		t.Errorf("got %v, want %v", files, want)
	}
}

func TestDiscover_Hidden(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "visible.txt")
	touch(t, dir, ".DS_Store")
	touch(t, filepath.Join(dir, "@eaDir"), "thumb.jpg")
	touch(t, filepath.Join(dir, "$RECYCLE.BIN"), "junk")

	files, err := Discover(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := basenames(files); !sliceEqual(got, []string{"visible.txt"}) {
		t.Errorf("without hidden: %v", got)
	}

	files, err = Discover(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 4 {
		t.Errorf("with hidden: got %d files, want 4", len(files))
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	files, err := Discover(t.TempDir(), false)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestDiscover_MissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope"), false); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestFilterExtensions(t *testing.T) {
	paths := []string{"/a/x.MKV", "/a/y.mp4", "/a/z.txt", "/a/noext"}
	tests := []struct {
		name string
		exts []string
		want []string
	}{
		{"none keeps all", nil, paths},
		{"with dot", []string{".mkv"}, []string{"/a/x.MKV"}},
		{"without dot", []string{"mp4", "TXT"}, []string{"/a/y.mp4", "/a/z.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterExtensions(paths, tt.exts); !sliceEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// --- Run tests ---

const videoXML = `<Mediainfo><File>
<track type="General"><Duration>60000</Duration></track>
<track type="Video"><Width>1280</Width><Height>720</Height></track>
</File></Mediainfo>`

func quietLogger(t *testing.T) *logging.Logger {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	log.SetOutput(io.Discard, io.Discard)
	return log
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.json"), `{"k": 1}`)
	writeFile(t, filepath.Join(dir, "b.yml"), "k: v\n")
	writeFile(t, filepath.Join(dir, "c.txt"), "plain")
	for _, n := range []string{"m1.mkv", "m2.mkv", "m10.mkv"} {
		writeFile(t, filepath.Join(dir, "video", n), "x")
	}

	var probes atomic.Int32
	reg := entity.NewRegistry(entity.WithProber(probe.ProberFunc(
		func(_ context.Context, path string) (*probe.Report, error) {
			probes.Add(1)
			if strings.HasSuffix(path, ".mkv") {
				return probe.ParseXML([]byte(videoXML))
			}
			return nil, errors.New("not media")
		},
	)))

	rep, err := Run(context.Background(), Options{Root: dir, Workers: 3}, reg, quietLogger(t))
	if err != nil {
		t.Fatal(err)
	}

	s := rep.Stats
	if s.Total != 6 || s.Failed != 0 || s.Classified() != 6 {
		t.Errorf("Total/Failed/Classified = %d/%d/%d", s.Total, s.Failed, s.Classified())
	}
	wantKinds := map[entity.Kind]int{entity.KindJSON: 1, entity.KindYAML: 1, entity.KindFile: 1, entity.KindMedium: 3}
	for k, n := range wantKinds {
		if s.ByKind[k] != n {
			t.Errorf("ByKind[%s] = %d, want %d", k, s.ByKind[k], n)
		}
	}
	if s.MediaDuration != 180 {
		t.Errorf("MediaDuration = %v, want 180", s.MediaDuration)
	}
	if s.ID.String() == "" || s.ID.Version() != 4 {
		t.Errorf("run ID = %v", s.ID)
	}

	got := basenames(resultPaths(rep.Results))
	want := []string{"a.json", "b.yml", "c.txt", "m1.mkv", "m2.mkv", "m10.mkv"}
	if !sliceEqual(got, want) {
		t.Errorf("result order = %v, want %v", got, want)
	}
}

func TestRunExtensionsAndInventory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.json"), `[1]`)
	writeFile(t, filepath.Join(dir, "b.txt"), "plain")

	rep, err := Run(context.Background(), Options{Root: dir, Extensions: []string{"json"}}, entity.NewRegistry(), quietLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	inv := rep.Inventory()
	if len(inv.Entries) != 1 || inv.Entries[0].Kind != "json" || inv.Counts["json"] != 1 {
		t.Errorf("inventory = %+v", inv)
	}
	data, err := json.Marshal(inv)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"kind":"json"`) {
		t.Errorf("json = %s", data)
	}
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := Run(ctx, Options{Root: dir}, entity.NewRegistry(), quietLogger(t))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	for _, r := range rep.Results {
		if r.Err == nil {
			t.Errorf("%s classified after cancel", r.Path)
		}
	}
}

// --- helpers ---

func touch(t *testing.T, dir, name string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, name), "")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func resultPaths(rs []Result) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Path
	}
	return out
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
