package entity

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func names(es []Entity) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Name())
	}
	return out
}

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ep10.txt"), "10")
	writeFile(t, filepath.Join(root, "ep2.txt"), "2")
	writeFile(t, filepath.Join(root, "Ep1.txt"), "1")
	writeFile(t, filepath.Join(root, ".hidden"), "h")
	writeFile(t, filepath.Join(root, "@eaDir", "thumb.txt"), "t")
	writeFile(t, filepath.Join(root, "season 2", "b.txt"), "bb")
	writeFile(t, filepath.Join(root, "season 2", "a.json"), `{"x": 1}`)
	return root
}

func TestDirectoryFiles(t *testing.T) {
	root := setupTree(t)
	d, ok := mustResolve(t, NewRegistry(), root).(*Directory)
	if !ok {
		t.Fatal("root did not classify as Directory")
	}

	got, err := d.Files(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Ep1.txt", "ep2.txt", "ep10.txt", "season 2"}
	if !slices.Equal(names(got), want) {
		t.Errorf("Files = %v, want %v", names(got), want)
	}

	all, err := d.Files(context.Background(), true)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 6 {
		t.Errorf("Files(includeHidden) returned %d entries, want 6: %v", len(all), names(all))
	}
}

func TestDirectoryWalk(t *testing.T) {
	root := setupTree(t)
	d := mustResolve(t, NewRegistry(), root).(*Directory)

	got, err := d.Walk(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Ep1.txt", "ep2.txt", "ep10.txt", "season 2", "a.json", "b.txt"}
	if !slices.Equal(names(got), want) {
		t.Errorf("Walk = %v, want %v", names(got), want)
	}
	if got[4].Kind() != KindJSON {
		t.Errorf("a.json kind = %s, want json", got[4].Kind())
	}
}

func TestDirectoryWalkSortsWholeResult(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "x.txt"), "x")
	writeFile(t, filepath.Join(root, "a-b.txt"), "y")
	writeFile(t, filepath.Join(root, "a.txt"), "z")
	d := mustResolve(t, NewRegistry(), root).(*Directory)

	got, err := d.Walk(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	var rel []string
	for _, e := range got {
		r, err := e.Base().RelPath(root)
		if err != nil {
			t.Fatal(err)
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	want := []string{"a", "a-b.txt", "a.txt", "a/x.txt"}
	if !slices.Equal(rel, want) {
		t.Errorf("Walk = %v, want %v", rel, want)
	}
	for i := 1; i < len(got); i++ {
		if Less(got[i], got[i-1]) {
			t.Errorf("%s sorts before %s", got[i].Path(), got[i-1].Path())
		}
	}
}

func TestDirectorySize(t *testing.T) {
	root := setupTree(t)
	d := mustResolve(t, NewRegistry(), root)
	size, err := d.Size()
	if err != nil {
		t.Fatal(err)
	}
	// 2+1+1+1+1+2+8 bytes across all files, hidden included.
	if size != 16 {
		t.Errorf("Size = %d, want 16", size)
	}
	if !d.IsDir() {
		t.Error("IsDir = false")
	}
}

func TestDirectoryMissing(t *testing.T) {
	root := t.TempDir()
	d := mustResolve(t, NewRegistry(), root).(*Directory)
	if err := os.Remove(root); err != nil {
		t.Fatal(err)
	}
	got, err := d.Files(context.Background(), true)
	if err != nil || len(got) != 0 {
		t.Errorf("Files on removed dir = %v, %v; want empty, nil", got, err)
	}
}

func TestParent(t *testing.T) {
	root := setupTree(t)
	r := NewRegistry()
	child := mustResolve(t, r, filepath.Join(root, "season 2", "b.txt"))
	parent, err := child.Base().Parent(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if parent.Kind() != KindDirectory || parent.Name() != "season 2" {
		t.Errorf("Parent = %s %q", parent.Kind(), parent.Name())
	}
	rel, err := child.Base().RelPath(root)
	if err != nil || rel != filepath.Join("season 2", "b.txt") {
		t.Errorf("RelPath = %q, %v", rel, err)
	}
}
