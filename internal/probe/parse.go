package probe

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseXML converts raw mediainfo XML output into a Report. Both the legacy
// layout (Mediainfo/File/track) and the media one (MediaInfo/media/track)
// are accepted and recorded in Report.Layout: any element named "track"
// starts a track, and its direct children become fields. The children of a
// Menu track's <extra> are its chapter markers and also become fields;
// other nesting is ignored.
//
// Exported for testing without a real mediainfo binary.
func ParseXML(data []byte) (*Report, error) {
	data = bytes.ToValidUTF8(data, nil)
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		r       Report
		cur     *Track
		field   string
		text    strings.Builder
		nested  int
		inExtra bool
		sawRoot bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse mediainfo XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			sawRoot = true
			switch {
			case cur == nil:
				switch t.Name.Local {
				case "track":
					cur = &Track{Type: TrackType(attr(t, "type"))}
				case "media":
					r.Layout = LayoutMedia
				}
			case field == "" && !inExtra && t.Name.Local == "extra" && strings.EqualFold(string(cur.Type), string(TrackMenu)):
				inExtra = true
			case field == "":
				field = t.Name.Local
				text.Reset()
			default:
				nested++
			}
		case xml.CharData:
			if cur != nil && field != "" && nested == 0 {
				text.Write(t)
			}
		case xml.EndElement:
			switch {
			case cur == nil:
			case nested > 0:
				nested--
			case field != "":
				cur.Fields = append(cur.Fields, Field{Name: field, Value: strings.TrimSpace(text.String())})
				field = ""
			case inExtra:
				inExtra = false
			case t.Name.Local == "track":
				r.Tracks = append(r.Tracks, *cur)
				cur = nil
			}
		}
	}

	if !sawRoot {
		return nil, errors.New("parse mediainfo XML: empty document")
	}
	return &r, nil
}

func attr(e xml.StartElement, name string) string {
	for _, a := range e.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// --- Numeric parsing helpers (mediainfo reports every value as text) ---

func parseInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}

// firstInt returns the first value of name that parses as an integer.
func firstInt(t Track, name string) (int64, bool) {
	for _, v := range t.Values(name) {
		if n, ok := parseInt(v); ok {
			return n, true
		}
	}
	return 0, false
}

// firstFloat returns the first value of name that parses as a real.
func firstFloat(t Track, name string) (float64, bool) {
	for _, v := range t.Values(name) {
		if f, ok := parseFloat(v); ok {
			return f, true
		}
	}
	return 0, false
}
