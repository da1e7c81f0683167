package entity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DocFormat is the serialisation a Document was read from.
type DocFormat string

const (
	FormatJSON DocFormat = "json"
	FormatYAML DocFormat = "yaml"
)

// Files larger than this are never parsed as documents.
const maxDocumentSize = 64 << 20

var errNotContainer = errors.New("document root is not a mapping or sequence")

// Document is a structured data file whose root is a mapping or a
// sequence. Mappings are map[string]any and sequences are []any at every
// level.
type Document struct {
	*File
	format DocFormat
	root   any
}

var jsonCandidate = Candidate{
	Kind:  KindJSON,
	Hints: []string{".json"},
	Build: func(_ context.Context, r *Registry, path string) (Entity, error) {
		data, err := readDocument(path)
		if err != nil {
			return nil, err
		}
		if i := bytes.IndexFunc(data, func(c rune) bool { return !isSpace(c) }); i < 0 || (data[i] != '{' && data[i] != '[') {
			return nil, errNotContainer
		}
		root, err := decodeJSON(data)
		if err != nil {
			return nil, err
		}
		return newDocument(r, path, FormatJSON, root)
	},
}

var yamlCandidate = Candidate{
	Kind:  KindYAML,
	Hints: []string{".yml", ".yaml"},
	Build: func(_ context.Context, r *Registry, path string) (Entity, error) {
		data, err := readDocument(path)
		if err != nil {
			return nil, err
		}
		var root any
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, err
		}
		return newDocument(r, path, FormatYAML, normalizeYAML(root))
	},
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func readDocument(path string) ([]byte, error) {
	fi, err := regularFile(path)
	if err != nil {
		return nil, err
	}
	if fi.Size() > maxDocumentSize {
		return nil, fmt.Errorf("%d bytes exceeds document limit", fi.Size())
	}
	return os.ReadFile(path)
}

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after JSON value")
	}
	return root, nil
}

// normalizeYAML rewrites map[interface{}]interface{} (non-string keys) into
// map[string]any so both formats expose the same shapes.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeYAML(e)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return m
	case []any:
		for i, e := range t {
			t[i] = normalizeYAML(e)
		}
		return t
	}
	return v
}

func newDocument(r *Registry, path string, format DocFormat, root any) (*Document, error) {
	switch root.(type) {
	case map[string]any, []any:
		return &Document{File: newFile(r, path), format: format, root: root}, nil
	}
	return nil, errNotContainer
}

func (d *Document) Kind() Kind {
	if d.format == FormatYAML {
		return KindYAML
	}
	return KindJSON
}

func (d *Document) Format() DocFormat { return d.format }

// Value returns the decoded root.
func (d *Document) Value() any { return d.root }

func (d *Document) IsMapping() bool {
	_, ok := d.root.(map[string]any)
	return ok
}

func (d *Document) IsSequence() bool {
	_, ok := d.root.([]any)
	return ok
}

// Len returns the number of keys or elements at the root.
func (d *Document) Len() int {
	switch t := d.root.(type) {
	case map[string]any:
		return len(t)
	case []any:
		return len(t)
	}
	return 0
}

// Get returns the value under key for a mapping root.
func (d *Document) Get(key string) (any, bool) {
	m, ok := d.root.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

// Index returns element i for a sequence root.
func (d *Document) Index(i int) (any, bool) {
	s, ok := d.root.([]any)
	if !ok || i < 0 || i >= len(s) {
		return nil, false
	}
	return s[i], true
}

// Keys returns the sorted keys of a mapping root.
func (d *Document) Keys() []string {
	m, ok := d.root.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set stores value under key in a mapping root. Call Dump to persist.
func (d *Document) Set(key string, value any) error {
	m, ok := d.root.(map[string]any)
	if !ok {
		return errors.New("document root is not a mapping")
	}
	m[key] = value
	return nil
}

// Append adds value to a sequence root. Call Dump to persist.
func (d *Document) Append(value any) error {
	s, ok := d.root.([]any)
	if !ok {
		return errors.New("document root is not a sequence")
	}
	d.root = append(s, value)
	return nil
}

// Marshal encodes the root in the document's own format. JSON uses a
// four-space indent with sorted keys and no HTML escaping.
func (d *Document) Marshal() ([]byte, error) {
	if d.format == FormatYAML {
		return yaml.Marshal(d.root)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d.root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Dump writes the current root back to the document's path.
func (d *Document) Dump() error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	perm := os.FileMode(0o644)
	if fi, err := os.Stat(d.path); err == nil {
		perm = fi.Mode().Perm()
	}
	return writeFileAtomic(d.path, data, perm)
}

// String renders the path followed by the pretty-printed root.
func (d *Document) String() string {
	data, err := d.Marshal()
	if err != nil {
		return d.path
	}
	return d.path + "\n" + string(data)
}
