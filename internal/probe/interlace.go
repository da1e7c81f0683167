package probe

import "strings"

// Interlaced reports whether the track's Scan_type is anything other than
// progressive. A track without Scan_type is progressive.
func (v VideoTrack) Interlaced() bool {
	st, ok := v.track.Lookup("Scan_type")
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(st)) {
	case "progressive":
		return false
	}
	return true
}

// Progressive is the negation of Interlaced.
func (v VideoTrack) Progressive() bool {
	return !v.Interlaced()
}
