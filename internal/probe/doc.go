// Package probe provides mediainfo-based media inspection and typed views
// over the resulting report. A single XML call per file yields every track;
// all derived values (tracks, chapters, display width) are computed from
// that retained report.
//
// Types:
//   - Report, Track, Field: the raw report tree (absence is distinct from "")
//   - VideoTrack, AudioTrack, SubtitleTrack: typed read-only views
//   - Chapter: one entry of the derived chapter timeline
//
// Functions:
//   - (MediaInfo).Probe(ctx, path) → *Report
//     Runs mediainfo --Output=OLDXML -f with a per-call timeout.
//   - ParseXML(data) → *Report
//   - DeriveChapters(report, duration) → []Chapter
//   - DisplayWidth(aspect, height) → int (exact rational arithmetic)
//   - LookupLanguage(name) → Language
//
// Saved reports can be replayed through ArchiveProber; files ending in .zst
// are zstd-compressed.
package probe
