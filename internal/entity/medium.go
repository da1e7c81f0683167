package entity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bogem/id3v2/v2"

	"github.com/backmassage/fileinfo/internal/probe"
)

var errNoProber = errors.New("no media prober configured")
var errNoStreams = errors.New("report has no video or audio track")

// Medium is an audio/video container that the prober recognised. Track
// lists, chapters and tags are derived from the report on first use.
type Medium struct {
	*File
	report *probe.Report

	tracksOnce sync.Once
	video      []probe.VideoTrack
	audio      []probe.AudioTrack
	subtitles  []probe.SubtitleTrack

	chaptersOnce sync.Once
	chapters     []probe.Chapter

	tagsOnce sync.Once
	tags     Tags
}

// Tags is the descriptive metadata of the container.
type Tags struct {
	Title          string
	Album          string
	AlbumPerformer string
	Performer      string
	TrackName      string
	TrackPosition  string
	PartPosition   string
}

var mediumCandidate = Candidate{
	Kind: KindMedium,
	Hints: []string{
		".avi", ".mov", ".mp4", ".m4v", ".m4a", ".mkv", ".mpg", ".mpeg", ".ts", ".m2ts",
		".webm", ".wmv", ".flv", ".mp3", ".flac", ".wav", ".ogg", ".opus",
	},
	Build: func(ctx context.Context, r *Registry, path string) (Entity, error) {
		if _, err := regularFile(path); err != nil {
			return nil, err
		}
		if r.prober == nil {
			return nil, errNoProber
		}
		report, err := r.prober.Probe(ctx, path)
		if err != nil {
			return nil, err
		}
		m := &Medium{File: newFile(r, path), report: report}
		if len(m.VideoTracks()) == 0 && len(m.AudioTracks()) == 0 {
			return nil, errNoStreams
		}
		return m, nil
	},
}

func (m *Medium) Kind() Kind { return KindMedium }

// Report returns the parsed probe output.
func (m *Medium) Report() *probe.Report { return m.report }

func (m *Medium) loadTracks() {
	m.tracksOnce.Do(func() {
		m.video = m.report.VideoTracks()
		m.audio = m.report.AudioTracks()
		m.subtitles = m.report.SubtitleTracks()
	})
}

func (m *Medium) VideoTracks() []probe.VideoTrack {
	m.loadTracks()
	return m.video
}

func (m *Medium) AudioTracks() []probe.AudioTrack {
	m.loadTracks()
	return m.audio
}

func (m *Medium) SubtitleTracks() []probe.SubtitleTrack {
	m.loadTracks()
	return m.subtitles
}

// MainVideoTrack returns the first video track.
func (m *Medium) MainVideoTrack() (probe.VideoTrack, bool) {
	v := m.VideoTracks()
	if len(v) == 0 {
		return probe.VideoTrack{}, false
	}
	return v[0], true
}

// MainAudioTrack returns the first audio track.
func (m *Medium) MainAudioTrack() (probe.AudioTrack, bool) {
	a := m.AudioTracks()
	if len(a) == 0 {
		return probe.AudioTrack{}, false
	}
	return a[0], true
}

// Duration returns the container duration in seconds, or 0 when the report
// carries none.
func (m *Medium) Duration() float64 {
	d, _ := m.report.Duration()
	return d
}

// Chapters returns the contiguous chapter list ending at Duration.
func (m *Medium) Chapters() []probe.Chapter {
	m.chaptersOnce.Do(func() {
		m.chapters = probe.DeriveChapters(m.report, m.Duration())
	})
	return m.chapters
}

func (m *Medium) Width() int {
	if v, ok := m.MainVideoTrack(); ok {
		return v.Width()
	}
	return 0
}

func (m *Medium) Height() int {
	if v, ok := m.MainVideoTrack(); ok {
		return v.Height()
	}
	return 0
}

// Resolution returns "WxH" of the main video track, or "unknown".
func (m *Medium) Resolution() string {
	w, h := m.Width(), m.Height()
	if w == 0 || h == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%dx%d", w, h)
}

func (m *Medium) Interlaced() bool {
	v, ok := m.MainVideoTrack()
	return ok && v.Interlaced()
}

// HDRFormat classifies the main video track, "" for audio-only media.
func (m *Medium) HDRFormat() string {
	if v, ok := m.MainVideoTrack(); ok {
		return v.HDRFormat()
	}
	return ""
}

// IsHD reports width >= 1200 or height >= 700.
func (m *Medium) IsHD() bool {
	return m.Width() >= 1200 || m.Height() >= 700
}

func (m *Medium) IsVideo() bool { return len(m.VideoTracks()) > 0 }

// IsAudio is true only for media with audio and no video.
func (m *Medium) IsAudio() bool {
	return !m.IsVideo() && len(m.AudioTracks()) > 0
}

func (m *Medium) IsAudioTrackEmpty() bool { return len(m.AudioTracks()) == 0 }

// Tags returns the container tags. For MP3 files any field the report
// leaves empty is filled from the ID3v2 tag.
func (m *Medium) Tags() Tags {
	m.tagsOnce.Do(func() {
		m.tags = m.reportTags()
		if m.Extension() == ".mp3" {
			m.fillID3(&m.tags)
		}
	})
	return m.tags
}

func (m *Medium) reportTags() Tags {
	g, ok := m.report.General()
	if !ok {
		return Tags{}
	}
	first := func(names ...string) string {
		for _, n := range names {
			if v, ok := g.Lookup(n); ok && v != "" {
				return v
			}
		}
		return ""
	}
	return Tags{
		Title:          first("Title", "Movie_name"),
		Album:          first("Album"),
		AlbumPerformer: first("Album_Performer"),
		Performer:      first("Performer"),
		TrackName:      first("Track_name", "Track"),
		TrackPosition:  first("Track_name_Position", "Track_Position"),
		PartPosition:   first("Part_Position"),
	}
}

func (m *Medium) fillID3(t *Tags) {
	tag, err := id3v2.Open(m.path, id3v2.Options{Parse: true})
	if err != nil {
		m.registry().debug("%s: id3v2: %v", m.path, err)
		return
	}
	defer tag.Close()

	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&t.Title, tag.Title())
	fill(&t.TrackName, tag.Title())
	fill(&t.Album, tag.Album())
	fill(&t.Performer, tag.Artist())
	fill(&t.AlbumPerformer, tag.GetTextFrame(tag.CommonID("Band/Orchestra/Accompaniment")).Text)
	fill(&t.TrackPosition, tag.GetTextFrame(tag.CommonID("Track number/Position in set")).Text)
	fill(&t.PartPosition, tag.GetTextFrame(tag.CommonID("Part of a set")).Text)
}
