package probe

import "strings"

// TrackType is the value of a track node's type attribute.
type TrackType string

const (
	TrackGeneral TrackType = "General"
	TrackVideo   TrackType = "Video"
	TrackAudio   TrackType = "Audio"
	TrackText    TrackType = "Text"
	TrackMenu    TrackType = "Menu"
)

// Field is one name/text pair of a track node, in report order.
type Field struct {
	Name  string
	Value string
}

// Track is one track node of a report. mediainfo -f repeats field names
// (e.g. a raw "1920" followed by "1 920 pixels"), so all occurrences are kept.
type Track struct {
	Type   TrackType
	Fields []Field
}

// Lookup returns the first value of name. ok is false when the field is
// absent, which is distinct from a present but empty value.
func (t Track) Lookup(name string) (string, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Value returns the first value of name or "" when absent.
func (t Track) Value(name string) string {
	v, _ := t.Lookup(name)
	return v
}

// Values returns every value of name in report order.
func (t Track) Values(name string) []string {
	var out []string
	for _, f := range t.Fields {
		if f.Name == name {
			out = append(out, f.Value)
		}
	}
	return out
}

// Has reports whether name occurs at least once.
func (t Track) Has(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// Layout identifies which mediainfo XML dialect a report came from.
type Layout int

const (
	// LayoutLegacy is --Output=OLDXML: Mediainfo/File/track, durations in
	// milliseconds, chapter markers named _HH_MM_SSmmm.
	LayoutLegacy Layout = iota
	// LayoutMedia is --Output=XML: MediaInfo/media/track, durations in
	// seconds, chapter markers named _HH_MM_SS_mmm inside the Menu's extra.
	LayoutMedia
)

// Report is the parsed output of a single mediainfo call.
type Report struct {
	Layout Layout
	Tracks []Track
}

// TracksOf returns the tracks of the given type in report order.
func (r *Report) TracksOf(typ TrackType) []Track {
	if r == nil {
		return nil
	}
	var out []Track
	for _, t := range r.Tracks {
		if strings.EqualFold(string(t.Type), string(typ)) {
			out = append(out, t)
		}
	}
	return out
}

// General returns the file-level track. mediainfo emits it first, but any
// position is accepted.
func (r *Report) General() (Track, bool) {
	tracks := r.TracksOf(TrackGeneral)
	if len(tracks) == 0 {
		return Track{}, false
	}
	return tracks[0], true
}

// Menu returns the first chapter-marker track.
func (r *Report) Menu() (Track, bool) {
	tracks := r.TracksOf(TrackMenu)
	if len(tracks) == 0 {
		return Track{}, false
	}
	return tracks[0], true
}

// Duration returns the General track's duration in seconds. Legacy
// reports store milliseconds, media reports seconds; the first parseable
// Duration value wins.
func (r *Report) Duration() (float64, bool) {
	g, ok := r.General()
	if !ok {
		return 0, false
	}
	for _, v := range g.Values("Duration") {
		if d, ok := parseFloat(v); ok {
			if r.Layout == LayoutMedia {
				return d, true
			}
			return d / 1000, true
		}
	}
	return 0, false
}
