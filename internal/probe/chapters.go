package probe

import "strings"

// Chapter is one contiguous segment of a medium's timeline. Start and
// Duration are in seconds; Number is 1-based.
type Chapter struct {
	Number   int
	Start    float64
	Duration float64
}

// DeriveChapters rebuilds the chapter timeline from the report's Menu
// track. Legacy marker names have the form _HH_MM_SSmmm, whose last
// component is seconds expressed in milliseconds; media reports split it
// as _HH_MM_SS_mmm. Each chapter lasts until the next
// marker, and the last one until total. Without any decodable marker the
// whole medium is a single chapter.
func DeriveChapters(r *Report, total float64) []Chapter {
	var starts []float64
	if menu, ok := r.Menu(); ok {
		for _, f := range menu.Fields {
			if start, ok := markerOffset(r.Layout, f.Name); ok {
				starts = append(starts, start)
			}
		}
	}
	if len(starts) == 0 {
		starts = append(starts, 0)
	}

	// Synthetic terminal marker; it only bounds the last chapter.
	starts = append(starts, total)

	chapters := make([]Chapter, 0, len(starts)-1)
	for i := 0; i < len(starts)-1; i++ {
		chapters = append(chapters, Chapter{
			Number:   i + 1,
			Start:    starts[i],
			Duration: starts[i+1] - starts[i],
		})
	}
	return chapters
}

func markerOffset(layout Layout, name string) (float64, bool) {
	parts := strings.Split(name, "_")
	want := 4
	if layout == LayoutMedia {
		want = 5
	}
	if len(parts) != want || parts[0] != "" {
		return 0, false
	}
	var v [4]float64
	for i, p := range parts[1:] {
		f, ok := parseFloat(p)
		if !ok {
			return 0, false
		}
		v[i] = f
	}
	if layout == LayoutMedia {
		return v[0]*3600 + v[1]*60 + v[2] + v[3]/1000, true
	}
	return v[0]*3600 + v[1]*60 + v[2]/1000, true
}
