package probe

import "math"

// view is the part shared by every typed track: identity, language, title.
type view struct {
	track Track
}

// Track returns the underlying report node.
func (v view) Track() Track { return v.track }

// StreamID returns the smallest reported Stream_identifier.
func (v view) StreamID() (int, bool) {
	lowest, found := int64(math.MaxInt64), false
	for _, s := range v.track.Values("Stream_identifier") {
		if n, ok := parseInt(s); ok && n < lowest {
			lowest, found = n, true
		}
	}
	if !found {
		return 0, false
	}
	return int(lowest), true
}

// Language resolves the first Language value that the registry knows.
func (v view) Language() (Language, bool) {
	for _, name := range v.track.Values("Language") {
		if lang, ok := LookupLanguage(name); ok {
			return lang, true
		}
	}
	return Language{}, false
}

// Title returns the track title, if any.
func (v view) Title() (string, bool) {
	return v.track.Lookup("Title")
}

// codec prefers the legacy Codec field and falls back to Format, which is
// all newer mediainfo versions emit.
func (v view) codec() string {
	if c, ok := v.track.Lookup("Codec"); ok {
		return c
	}
	return v.track.Value("Format")
}

// VideoTrack is a read-only view over one Video track.
type VideoTrack struct{ view }

// NewVideoTrack wraps t.
func NewVideoTrack(t Track) VideoTrack { return VideoTrack{view{t}} }

func (v VideoTrack) Codec() string { return v.codec() }

func (v VideoTrack) Width() int {
	n, _ := firstInt(v.track, "Width")
	return int(n)
}

func (v VideoTrack) Height() int {
	n, _ := firstInt(v.track, "Height")
	return int(n)
}

// DisplayHeight is the pixel height; only the width is stretched by the
// display aspect ratio.
func (v VideoTrack) DisplayHeight() int { return v.Height() }

// DisplayAspectRatio returns the first Display_aspect_ratio in W:H form,
// else the first reported value.
func (v VideoTrack) DisplayAspectRatio() (string, bool) {
	values := v.track.Values("Display_aspect_ratio")
	for _, s := range values {
		if hasRatioSeparator(s) {
			return s, true
		}
	}
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// DisplayWidth derives the display width from the aspect ratio and height.
// A report without any aspect ratio field yields ErrNoAspectRatio.
func (v VideoTrack) DisplayWidth() (int, error) {
	ar, ok := v.DisplayAspectRatio()
	if !ok {
		return 0, ErrNoAspectRatio
	}
	return DisplayWidth(ar, v.Height())
}

// FrameRate returns Frame_rate, falling back to Original_frame_rate.
func (v VideoTrack) FrameRate() float64 {
	if v.track.Has("Frame_rate") {
		f, _ := firstFloat(v.track, "Frame_rate")
		return f
	}
	f, _ := firstFloat(v.track, "Original_frame_rate")
	return f
}

func (v VideoTrack) FrameCount() int64 {
	n, _ := firstInt(v.track, "Frame_count")
	return n
}

// AudioTrack is a read-only view over one Audio track.
type AudioTrack struct{ view }

// NewAudioTrack wraps t.
func NewAudioTrack(t Track) AudioTrack { return AudioTrack{view{t}} }

func (a AudioTrack) Codec() string { return a.codec() }

// Channels returns the channel descriptor verbatim; compound layouts such
// as "7 / 6" are kept as reported.
func (a AudioTrack) Channels() string {
	if c, ok := a.track.Lookup("Channel_s_"); ok {
		return c
	}
	return a.track.Value("Channels")
}

func (a AudioTrack) CompressionMode() (string, bool) {
	return a.track.Lookup("Compression_mode")
}

// SubtitleTrack is a read-only view over one Text track.
type SubtitleTrack struct{ view }

// NewSubtitleTrack wraps t.
func NewSubtitleTrack(t Track) SubtitleTrack { return SubtitleTrack{view{t}} }

func (s SubtitleTrack) Format() string { return s.track.Value("Format") }

// Codec returns Codec_ID (e.g. "S_HDMV/PGS"), else Codec.
func (s SubtitleTrack) Codec() string {
	if c, ok := s.track.Lookup("Codec_ID"); ok {
		return c
	}
	return s.track.Value("Codec")
}

// VideoTracks returns every Video track in report order.
func (r *Report) VideoTracks() []VideoTrack {
	var out []VideoTrack
	for _, t := range r.TracksOf(TrackVideo) {
		out = append(out, NewVideoTrack(t))
	}
	return out
}

// AudioTracks returns every Audio track in report order.
func (r *Report) AudioTracks() []AudioTrack {
	var out []AudioTrack
	for _, t := range r.TracksOf(TrackAudio) {
		out = append(out, NewAudioTrack(t))
	}
	return out
}

// SubtitleTracks returns every Text track in report order.
func (r *Report) SubtitleTracks() []SubtitleTrack {
	var out []SubtitleTrack
	for _, t := range r.TracksOf(TrackText) {
		out = append(out, NewSubtitleTrack(t))
	}
	return out
}
