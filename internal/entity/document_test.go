package entity

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestJSONDocument(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "conf.json"), `{"name": "x", "count": 2, "nested": {"a": [1, 2]}}`)
	d, ok := mustResolve(t, NewRegistry(), path).(*Document)
	if !ok {
		t.Fatal("not a Document")
	}

	if d.Format() != FormatJSON || !d.IsMapping() || d.IsSequence() || d.Len() != 3 {
		t.Errorf("Format/IsMapping/IsSequence/Len = %s/%v/%v/%d", d.Format(), d.IsMapping(), d.IsSequence(), d.Len())
	}
	if got := d.Keys(); !slices.Equal(got, []string{"count", "name", "nested"}) {
		t.Errorf("Keys() = %v", got)
	}
	if v, ok := d.Get("count"); !ok || v != float64(2) {
		t.Errorf("Get(count) = %v, %v", v, ok)
	}
	if _, ok := d.Index(0); ok {
		t.Error("Index on a mapping should fail")
	}
}

func TestJSONDump(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "conf.json"), `{"b": 1, "a": "<tag>"}`)
	d := mustResolve(t, NewRegistry(), path).(*Document)
	if err := d.Set("c", true); err != nil {
		t.Fatal(err)
	}
	if err := d.Dump(); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"a\": \"<tag>\",\n    \"b\": 1,\n    \"c\": true\n}\n"
	if string(got) != want {
		t.Errorf("dumped %q, want %q", got, want)
	}
}

func TestYAMLDocument(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "list.yaml"), "- one\n- 2\n- {k: v}\n")
	d := mustResolve(t, NewRegistry(), path).(*Document)

	if d.Kind() != KindYAML || !d.IsSequence() || d.Len() != 3 {
		t.Errorf("Kind/IsSequence/Len = %s/%v/%d", d.Kind(), d.IsSequence(), d.Len())
	}
	if v, ok := d.Index(0); !ok || v != "one" {
		t.Errorf("Index(0) = %v, %v", v, ok)
	}
	if v, _ := d.Index(2); v == nil {
		t.Error("Index(2) = nil")
	} else if _, ok := v.(map[string]any); !ok {
		t.Errorf("Index(2) is %T, want map[string]any", v)
	}

	if err := d.Append("four"); err != nil {
		t.Fatal(err)
	}
	if err := d.Dump(); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(path)
	if !strings.Contains(string(got), "- four") {
		t.Errorf("dumped YAML missing appended item:\n%s", got)
	}
}

func TestYAMLNonStringKeys(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "keys.yml"), "1: one\ntrue: yes\n")
	d := mustResolve(t, NewRegistry(), path).(*Document)
	if got := d.Keys(); !slices.Equal(got, []string{"1", "true"}) {
		t.Errorf("Keys() = %v", got)
	}
}

func TestDocumentString(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "a.json"), `[1, "two"]`)
	d := mustResolve(t, NewRegistry(), path).(*Document)
	want := d.Path() + "\n[\n    1,\n    \"two\"\n]\n"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
