package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"typical file 700 MiB", 734003200, "700.0 MiB"},
		{"4.7 GiB", 5046586572, "4.7 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00.000"},
		{"fraction", 450.5, "00:07:30.500"},
		{"feature length", 5022.4, "01:23:42.400"},
		{"over a day", 90061.001, "25:01:01.001"},
		{"negative clamps", -3, "00:00:00.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.seconds); got != tt.want {
				t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatFrameRate(t *testing.T) {
	tests := []struct {
		fps  float64
		want string
	}{
		{23.976, "23.976 fps"},
		{25, "25 fps"},
		{29.970, "29.97 fps"},
		{0, "unknown"},
	}
	for _, tt := range tests {
		if got := FormatFrameRate(tt.fps); got != tt.want {
			t.Errorf("FormatFrameRate(%v) = %q, want %q", tt.fps, got, tt.want)
		}
	}
}

func TestPrintFields(t *testing.T) {
	var buf bytes.Buffer
	PrintFields(&buf, []Field{{"Path", "/a"}, {"Duration", "00:00:01.000"}})
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{"Path      /a", "Duration  00:00:01.000"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
