package display

import (
	"fmt"
	"math"
	"strings"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatTimestamp renders seconds as HH:MM:SS.mmm. Negative values clamp
// to zero.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	ms := int64(math.Round(seconds * 1000))
	h := ms / 3_600_000
	ms -= h * 3_600_000
	m := ms / 60_000
	ms -= m * 60_000
	s := ms / 1000
	ms -= s * 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

// FormatFrameRate trims trailing zeros: 23.976, 25, 29.97.
func FormatFrameRate(fps float64) string {
	if fps <= 0 {
		return "unknown"
	}
	s := strings.TrimRight(fmt.Sprintf("%.3f", fps), "0")
	return strings.TrimSuffix(s, ".") + " fps"
}

// YesNo renders a flag for summaries.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
