package naming

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// MediaTags is the subset of container tags used to organise media.
type MediaTags struct {
	Title         string
	Album         string
	Artist        string // Album performer, else track performer.
	TrackPosition string // "3" or "3/12".
}

// OrganizedPath builds a tag-based destination under dstDir. ext includes
// the dot.
//
//	Music: <dstDir>/<Artist>/<Album>/<NN> - <Title><ext>
//	Other: <dstDir>/<Title>/<Title><ext>
//
// It reports false when the tags carry no title.
func OrganizedPath(dstDir string, t MediaTags, ext string) (string, bool) {
	title := strings.TrimSpace(t.Title)
	if title == "" {
		return "", false
	}
	title = SanitizeName(title)

	album := strings.TrimSpace(t.Album)
	if album == "" {
		return filepath.Join(dstDir, title, title+ext), true
	}

	artist := strings.TrimSpace(t.Artist)
	if artist == "" {
		artist = "Unknown Artist"
	}
	file := title + ext
	if n := trackNumber(t.TrackPosition); n > 0 {
		file = fmt.Sprintf("%02d - %s%s", n, title, ext)
	}
	return filepath.Join(dstDir, SanitizeName(artist), SanitizeName(album), file), true
}

// trackNumber parses "3" or "3/12"; 0 when absent or malformed.
func trackNumber(pos string) int {
	pos, _, _ = strings.Cut(strings.TrimSpace(pos), "/")
	n, err := strconv.Atoi(pos)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
